package server

import (
	"net/http"
)

// Router is the API's root handler with middleware applied.
type Router struct {
	handler http.Handler
}

// NewRouter registers the API routes.
func NewRouter(analysis *AnalysisHandler) *Router {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", analysis.Analyze)
	mux.HandleFunc("GET /api/history", analysis.History)
	mux.HandleFunc("GET /healthz", analysis.Health)
	return &Router{handler: RequestLogging(CORS(mux))}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
