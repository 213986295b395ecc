package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI page routes (HTML templates)
	mux.HandleFunc("/", s.app.PageHandler.ServeLanding)
	mux.HandleFunc("/briefing", s.app.PageHandler.ServeBriefing)

	// Static files (CSS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)
	mux.Handle("/api/briefing", s.app.BriefingHandler)
	mux.HandleFunc("/api/strategies", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": s.app.StrategyHandler.HandleList})
	})
	mux.HandleFunc("/api/strategy", func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, nil, s.app.StrategyHandler.HandleCalculate)
	})

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
