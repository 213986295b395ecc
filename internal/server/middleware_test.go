package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/investiq/internal/common"
)

func newTestServer() *Server {
	return &Server{logger: common.NewSilentLogger()}
}

// serve runs req through h and returns the recorded response.
func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestCorrelationIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{"generated", "", "", ""},
		{"request id", "X-Request-ID", "req-1", "req-1"},
		{"correlation id", "X-Correlation-ID", "corr-1", "corr-1"},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := s.correlationIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = common.CorrelationID(r.Context())
			}))

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := serve(h, req)

			got := rec.Header().Get("X-Correlation-ID")
			if got == "" || seen != got {
				t.Fatalf("header %q and context %q should match and be non-empty", got, seen)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCorrelationIDMiddleware_RequestIDWins(t *testing.T) {
	h := newTestServer().correlationIDMiddleware(http.HandlerFunc(okHandler))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "from-request")
	req.Header.Set("X-Correlation-ID", "from-correlation")

	if got := serve(h, req).Header().Get("X-Correlation-ID"); got != "from-request" {
		t.Errorf("expected X-Request-ID to take precedence, got %s", got)
	}
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()
	called := false
	h := s.corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := serve(h, httptest.NewRequest("GET", "/test", nil))
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS origin header")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Error("expected POST in allowed methods")
	}
	if !called {
		t.Error("expected GET to reach the next handler")
	}

	called = false
	rec = serve(h, httptest.NewRequest("OPTIONS", "/test", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", rec.Code)
	}
	if called {
		t.Error("preflight should not reach the next handler")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	s := newTestServer()

	panicking := s.recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	if rec := serve(panicking, httptest.NewRequest("GET", "/panic", nil)); rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}

	healthy := s.recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	}))
	rec := serve(healthy, httptest.NewRequest("GET", "/ok", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "fine" {
		t.Errorf("expected pass-through, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRecoveryMiddleware_WithCorrelationID(t *testing.T) {
	s := newTestServer()
	h := s.correlationIDMiddleware(s.recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest("GET", "/panic", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := serve(h, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}
	if rec.Header().Get("X-Correlation-ID") != "req-123" {
		t.Errorf("expected correlation id to survive the panic, got %q", rec.Header().Get("X-Correlation-ID"))
	}
}

func TestLoggingMiddleware_PreservesResponse(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNotFound, http.StatusInternalServerError} {
		h := newTestServer().loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("body"))
		}))

		rec := serve(h, httptest.NewRequest("POST", "/test", nil))
		if rec.Code != status {
			t.Errorf("expected status %d, got %d", status, rec.Code)
		}
		if rec.Body.String() != "body" {
			t.Errorf("expected body to pass through, got %q", rec.Body.String())
		}
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := newTestServer().securityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := serve(h, httptest.NewRequest("GET", "/test", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("expected %s=%s, got %q", header, value, got)
		}
	}
	if !strings.Contains(rec.Header().Get("Content-Security-Policy"), "default-src 'self'") {
		t.Error("expected CSP default-src directive")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status to pass through, got %d", rec.Code)
	}
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		body    string
		wantErr bool
	}{
		{"small body", "POST", "small", false},
		{"oversized body", "POST", strings.Repeat("x", 100), true},
		{"no body", "GET", "", false},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			var got []byte
			h := s.maxBodySizeMiddleware(10)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, readErr = io.ReadAll(r.Body)
			}))

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			serve(h, httptest.NewRequest(tt.method, "/test", body))

			if tt.wantErr && readErr == nil {
				t.Error("expected error reading oversized body")
			}
			if !tt.wantErr {
				if readErr != nil {
					t.Fatalf("unexpected read error: %v", readErr)
				}
				if string(got) != tt.body {
					t.Errorf("expected body %q, got %q", tt.body, got)
				}
			}
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusAccepted)
	n, err := rw.Write([]byte("hello world"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	rw.Flush()

	if rw.statusCode != http.StatusAccepted {
		t.Errorf("expected captured status 202, got %d", rw.statusCode)
	}
	if n != 11 || rw.bytesWritten != 11 {
		t.Errorf("expected 11 bytes written, got n=%d captured=%d", n, rw.bytesWritten)
	}
	if !rec.Flushed {
		t.Error("expected Flush to reach the underlying writer")
	}
}
