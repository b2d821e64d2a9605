// Package web implements the HTTP server: the landing page, the health check
// endpoint used by orchestration probes, and the request middleware pipeline.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"landing-go/internal/config"
)

// HealthStatus is the payload returned by the health check endpoint
type HealthStatus struct {
	Status string `json:"status"`
}

// Server handles the web routes
type Server struct {
	config   *config.Config
	log      *zap.SugaredLogger
	pipeline []Middleware
}

// NewServer creates a new web server with the standard middleware pipeline
func NewServer(cfg *config.Config, log *zap.SugaredLogger) *Server {
	return &Server{
		config: cfg,
		log:    log,
		pipeline: []Middleware{
			RequestID(),
			RequestLogger(log),
		},
	}
}

// Handler returns the route dispatcher wrapped in the middleware pipeline.
// The pipeline applies to every route, including unknown paths.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return Chain(mux, s.pipeline...)
}

// Start binds to all interfaces on the configured port and serves until the
// listener fails or the process is terminated.
func (s *Server) Start() error {
	s.log.Infof("Listening on http://0.0.0.0:%d/", s.config.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.config.Port), s.Handler())
}

// handleIndex serves the HTML landing page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// ServeMux sends every unregistered path here
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	serverTime := time.Now().UTC().Format("2006-01-02 15:04:05") + " UTC"
	page, err := RenderPage(serverTime, s.config.Port)
	if err != nil {
		s.log.Errorf("Failed to render landing page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// handleHealthz serves the liveness/readiness probe. It depends on nothing
// external and always reports ok.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := json.Marshal(HealthStatus{Status: "ok"})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
