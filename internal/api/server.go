// Package api provides the HTTP API server and handlers for the movie query service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vishalPatil7/Binaried/internal/http/response"
	"github.com/vishalPatil7/Binaried/internal/logger"
	"github.com/vishalPatil7/Binaried/internal/service"
	"github.com/vishalPatil7/Binaried/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	interpreter *service.Interpreter
	movies      *service.MovieService
	validator   *validation.Validator
	router      *chi.Mux
	logger      *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(interpreter *service.Interpreter, movies *service.MovieService, validator *validation.Validator, log *logger.Logger) *Server {
	s := &Server{
		interpreter: interpreter,
		movies:      movies,
		validator:   validator,
		router:      chi.NewRouter(),
		logger:      log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/ai-movie-query", s.handleAIMovieQuery)
		r.Get("/bundle", s.handleBundle)

		// Single-category lists.
		r.Get("/now_playing", s.handleCategory("now_playing"))
		r.Get("/popular", s.handleCategory("popular"))
		r.Get("/top_rated", s.handleCategory("top_rated"))
		r.Get("/upcoming", s.handleCategory("upcoming"))
		r.Get("/trending", s.handleCategory("trending"))

		r.Get("/genre/{name}", s.handleGenre)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger.Logger)
}
