package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/investiq/internal/common"
)

func newTestPageHandler(src BriefingSource) *PageHandler {
	return NewPageHandler(common.NewSilentLogger(), false, src)
}

func TestPageHandler_LandingRendersForm(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.ServeLanding(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Create Your Investment Strategy", `name="risk"`, `value="10000"`, "Balanced Growth Strategy"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected landing page to contain %q", want)
		}
	}
	if strings.Contains(body, "Your Investment Breakdown") {
		t.Error("expected no result before the form is submitted")
	}
}

func TestPageHandler_LandingRendersPlan(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/?risk=low&amount=10000&years=5", nil)
	w := httptest.NewRecorder()
	h.ServeLanding(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Conservative Growth Strategy", "Your Investment Breakdown", "$4,000.00", "Government Bonds", "Disclaimer"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected result to contain %q", want)
		}
	}
}

func TestPageHandler_LandingInvalidInput(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/?risk=low&amount=lots&years=5", nil)
	w := httptest.NewRecorder()
	h.ServeLanding(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Investment amount must be a number") {
		t.Error("expected validation message")
	}
}

func TestPageHandler_LandingUnknownPath(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	h.ServeLanding(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestPageHandler_BriefingRendersMarkdown(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/briefing", nil)
	w := httptest.NewRecorder()
	h.ServeBriefing(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Weekly Investment Briefing: Week 11</h1>") {
		t.Error("expected rendered heading")
	}
	if !strings.Contains(body, "<table>") {
		t.Error("expected GFM tables to render")
	}
	if strings.Contains(body, "<b>calm</b>") {
		t.Error("expected raw HTML in the summary to be escaped")
	}
}

func TestPageHandler_BriefingFailure(t *testing.T) {
	h := newTestPageHandler(&stubSource{err: errors.New("boom")})

	req := httptest.NewRequest("GET", "/briefing", nil)
	w := httptest.NewRecorder()
	h.ServeBriefing(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, briefingUnavailable) {
		t.Error("expected generic error message")
	}
	if strings.Contains(body, "boom") {
		t.Error("internal error leaked to the page")
	}
}

func TestPageHandler_StaticFiles(t *testing.T) {
	h := newTestPageHandler(&stubSource{report: sampleReport()})

	req := httptest.NewRequest("GET", "/static/css/investiq.css", nil)
	w := httptest.NewRecorder()
	h.StaticFileHandler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/static/../landing.html", nil)
	req.URL.Path = "/static/../landing.html"
	w = httptest.NewRecorder()
	h.StaticFileHandler(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected traversal to 404, got %d", w.Code)
	}
}
