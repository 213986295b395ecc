package mcp

import (
	"context"
	"net/http"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/models"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// BriefingSource supplies the latest weekly report.
type BriefingSource interface {
	Latest(ctx context.Context) (*models.Report, error)
}

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler creates an MCP handler exposing the briefing, strategy and
// version tools.
func NewHandler(source BriefingSource, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		config.AppName,
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	count := RegisterTools(mcpSrv, source, logger)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", count).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
