package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/investiq/internal/app"
	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/config"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Briefing.Seed = 42

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}

	t.Cleanup(func() {
		application.Close()
	})

	return application
}

func TestRoutes_HealthEndpoint(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %s", body["status"])
	}
}

func TestRoutes_VersionEndpoint(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field in response")
	}
}

func TestRoutes_APINotFound(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/nonexistent", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestRoutes_BriefingJSON(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/briefing", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, s-maxage=3600, stale-while-revalidate=7200" {
		t.Errorf("unexpected Cache-Control %q", cc)
	}

	var body struct {
		ID            string `json:"id"`
		WeekNumber    int    `json:"week_number"`
		CryptoMarkets struct {
			TopPerformers []json.RawMessage `json:"top_performers"`
		} `json:"crypto_markets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body.ID == "" {
		t.Error("expected report id")
	}
	if body.WeekNumber < 1 || body.WeekNumber > 54 {
		t.Errorf("week number out of range: %d", body.WeekNumber)
	}
	if len(body.CryptoMarkets.TopPerformers) != 5 {
		t.Errorf("expected 5 crypto top performers, got %d", len(body.CryptoMarkets.TopPerformers))
	}
}

func TestRoutes_BriefingMarkdown(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/briefing?format=markdown", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("expected text/markdown, got %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "# Weekly Investment Briefing") {
		t.Error("expected markdown heading")
	}
}

func TestRoutes_BriefingPostNotAllowed(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("POST", "/api/briefing", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRoutes_Strategies(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/strategies", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Strategies []struct {
			ID string `json:"id"`
		} `json:"strategies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(body.Strategies) != 3 {
		t.Errorf("expected 3 strategies, got %d", len(body.Strategies))
	}
}

func TestRoutes_StrategyCalculate(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("POST", "/api/strategy", strings.NewReader(`{"risk_tolerance":"high","amount":"1000","years":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"risk_tolerance":"high"`) {
		t.Errorf("expected high risk plan, got %s", w.Body.String())
	}
}

func TestRoutes_StrategyGetNotAllowed(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/strategy", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRoutes_LandingPage(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "InvestIQ") {
		t.Error("expected landing page to contain InvestIQ")
	}
	if !strings.Contains(body, "investiq.css") {
		t.Error("expected landing page to reference investiq.css")
	}
}

func TestRoutes_BriefingPage(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/briefing", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<h1>Weekly Investment Briefing") {
		t.Error("expected rendered markdown heading")
	}
}

func TestRoutes_UnknownPage(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestRoutes_MCPRegistered(t *testing.T) {
	srv := New(newTestApp(t))

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`
	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "InvestIQ") {
		t.Errorf("expected server info in initialize response, got %s", w.Body.String())
	}
}

func TestRoutes_MiddlewareApplied(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	// Verify correlation ID middleware is applied
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected X-Correlation-ID header from middleware")
	}

	// Verify CORS middleware is applied
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header from middleware")
	}
}

func TestRoutes_SecurityHeadersApplied(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected X-Content-Type-Options header from security middleware")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected X-Frame-Options header from security middleware")
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected Content-Security-Policy header from security middleware")
	}
}
