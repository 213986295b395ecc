package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

// briefingFailure is the only error detail exposed to clients.
const briefingFailure = "Failed to generate briefing"

// BriefingSource supplies the latest report and its cache windows.
type BriefingSource interface {
	Latest(ctx context.Context) (*models.Report, error)
	CacheTTL() time.Duration
	StaleTTL() time.Duration
}

// BriefingHandler serves the weekly briefing as JSON or markdown.
type BriefingHandler struct {
	logger *common.Logger
	source BriefingSource
}

// NewBriefingHandler creates a new briefing handler.
func NewBriefingHandler(logger *common.Logger, source BriefingSource) *BriefingHandler {
	return &BriefingHandler{logger: logger, source: source}
}

// ServeHTTP handles GET /api/briefing. ?format=markdown returns the report
// rendered as a markdown document.
func (h *BriefingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "markdown" {
		WriteError(w, http.StatusBadRequest, "format must be json or markdown")
		return
	}

	report, err := h.source.Latest(r.Context())
	if err != nil {
		common.RequestLogger(r.Context(), h.logger).Error().
			Err(err).
			Msg("Error generating briefing")
		WriteError(w, http.StatusInternalServerError, briefingFailure)
		return
	}

	w.Header().Set("Cache-Control", CacheControl(h.source.CacheTTL(), h.source.StaleTTL()))

	if format == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(report.ToMarkdown()))
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// CacheControl builds a shared-cache header allowing stale responses while
// the briefing regenerates.
func CacheControl(ttl, stale time.Duration) string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d", int(ttl.Seconds()), int(stale.Seconds()))
}
