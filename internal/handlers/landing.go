package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
	"github.com/bobmcallan/investiq/internal/models"
	"github.com/bobmcallan/investiq/internal/strategy"
)

// briefingUnavailable is shown on the briefing page when generation fails.
const briefingUnavailable = "Unable to load briefing. Please try again later."

// PageHandler serves HTML pages rendered with Go templates.
type PageHandler struct {
	logger    *common.Logger
	templates *template.Template
	devMode   bool
	source    BriefingSource
	markdown  goldmark.Markdown
}

// NewPageHandler creates a new page handler that loads templates from the pages directory.
func NewPageHandler(logger *common.Logger, devMode bool, source BriefingSource) *PageHandler {
	pagesDir := FindPagesDir()

	templates := template.Must(template.New("").Funcs(templateFuncs).ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &PageHandler{
		logger:    logger,
		templates: templates,
		devMode:   devMode,
		source:    source,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return common.FormatMoney(d.InexactFloat64())
	},
}

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// calculatorForm echoes the calculator inputs back into the page.
type calculatorForm struct {
	Risk   string
	Amount string
	Years  string
}

// ServeLanding renders the landing page with the strategy calculator. When
// the query carries a risk tolerance the calculated plan is rendered too.
func (h *PageHandler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	q := r.URL.Query()
	form := calculatorForm{
		Risk:   valueOr(q.Get("risk"), string(models.RiskMedium)),
		Amount: valueOr(q.Get("amount"), "10000"),
		Years:  valueOr(q.Get("years"), "5"),
	}

	data := h.baseData("home")
	data["Form"] = form
	data["Tolerances"] = strategy.Tolerances
	data["Strategies"] = strategy.All()

	status := http.StatusOK
	if q.Has("risk") {
		plan, err := calculateFromForm(form)
		if err != nil {
			data["Error"] = err.Error()
			status = http.StatusBadRequest
		} else {
			data["Plan"] = plan
		}
	}

	h.render(w, r, status, "landing.html", data)
}

func calculateFromForm(form calculatorForm) (*models.StrategyPlan, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		return nil, errors.New("Investment amount must be a number")
	}
	years, err := strconv.Atoi(strings.TrimSpace(form.Years))
	if err != nil {
		return nil, errors.New("Time horizon must be a whole number of years")
	}
	return strategy.Calculate(strategy.Request{
		RiskTolerance: models.RiskTolerance(form.Risk),
		Amount:        amount,
		Years:         years,
	})
}

// ServeBriefing renders the latest briefing as HTML.
func (h *PageHandler) ServeBriefing(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	data := h.baseData("briefing")

	report, err := h.source.Latest(r.Context())
	if err != nil {
		common.RequestLogger(r.Context(), h.logger).Error().Err(err).Msg("Error loading briefing page")
		data["Error"] = briefingUnavailable
		h.render(w, r, http.StatusInternalServerError, "briefing.html", data)
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(report.ToMarkdown()), &buf); err != nil {
		common.RequestLogger(r.Context(), h.logger).Error().Err(err).Msg("Failed to render briefing markdown")
		data["Error"] = briefingUnavailable
		h.render(w, r, http.StatusInternalServerError, "briefing.html", data)
		return
	}

	data["Report"] = report
	// goldmark escapes raw HTML by default, so the output is safe to embed.
	data["Content"] = template.HTML(buf.String())
	h.render(w, r, http.StatusOK, "briefing.html", data)
}

func (h *PageHandler) baseData(page string) map[string]interface{} {
	return map[string]interface{}{
		"Page":       page,
		"DevMode":    h.devMode,
		"AppName":    config.AppName,
		"Version":    config.GetVersion(),
		"Disclaimer": models.DefaultDisclaimer,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, templateName string, data map[string]interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		common.RequestLogger(r.Context(), h.logger).Error().Str("template", templateName).Err(err).Msg("failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// StaticFileHandler serves static files (CSS, JS, images).
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	pagesDir := FindPagesDir()
	staticDir := filepath.Join(pagesDir, "static")

	// Remove /static/ prefix from URL path
	path := strings.TrimPrefix(r.URL.Path, "/static/")
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if !strings.HasPrefix(absFullPath, absStaticDir+string(filepath.Separator)) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
