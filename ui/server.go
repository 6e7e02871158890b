// Package ui exposes the analysis service over HTTP: a JSON API for
// running and fetching race model analyses, and an HTML report view.
package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gorace/app"
)

// Server is the HTTP application.
type Server struct {
	router  *chi.Mux
	service *app.AnalysisService
}

// NewServer creates the HTTP server around an analysis service.
func NewServer(service *app.AnalysisService) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/analyses", func(r chi.Router) {
		r.Post("/", s.handleCreateAnalysis)
		r.Get("/", s.handleListAnalyses)
		r.Get("/{id}", s.handleGetAnalysis)
		r.Get("/{id}/report", s.handleAnalysisReport)
	})
	s.router.Get("/healthz", s.handleHealth)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given port.
func (s *Server) ListenAndServe(port string) error {
	addr := ":" + port
	log.Printf("[Server] listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
