package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vishalPatil7/Binaried/internal/http/response"
	"github.com/vishalPatil7/Binaried/internal/metadata/tmdb"
)

// aiMovieQueryRequest is the body for POST /api/ai-movie-query.
type aiMovieQueryRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// moviesResponse is the common list payload. Movies is always present,
// never null, so clients can map over it unconditionally.
type moviesResponse struct {
	Movies []tmdb.Movie `json:"movies"`
	Error  string       `json:"error,omitempty"`
}

func movieList(movies []tmdb.Movie) moviesResponse {
	if movies == nil {
		movies = []tmdb.Movie{}
	}
	return moviesResponse{Movies: movies}
}

func movieListError(message string) moviesResponse {
	return moviesResponse{Movies: []tmdb.Movie{}, Error: message}
}

// resultsResponse is the TMDB page pass-through shape the browse carousels
// consume. Results is always present, never null.
type resultsResponse struct {
	Results []tmdb.Movie `json:"results"`
}

func resultsList(movies []tmdb.Movie) resultsResponse {
	if movies == nil {
		movies = []tmdb.Movie{}
	}
	return resultsResponse{Results: movies}
}

// handleAIMovieQuery interprets a free-text movie prompt and returns
// matching movies. Interpretation never fails outright; catalog failures
// surface as a 500 with an empty list.
func (s *Server) handleAIMovieQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req aiMovieQueryRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.JSON(w, http.StatusBadRequest, movieListError("No prompt provided"), s.logger.Logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.JSON(w, http.StatusBadRequest, movieListError("No prompt provided"), s.logger.Logger)
		return
	}

	intent := s.interpreter.Interpret(ctx, req.Prompt)

	movies, err := s.movies.Resolve(ctx, intent)
	if err != nil {
		s.logger.Error("Failed to resolve movie query", "error", err, "intent", string(intent.Type))
		response.JSON(w, http.StatusInternalServerError, movieListError("Server error"), s.logger.Logger)
		return
	}

	response.Success(w, movieList(movies), s.logger.Logger)
}

// handleBundle returns all front-page categories in a single payload. The
// fetch is all or nothing; one failed category fails the whole request.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := s.movies.Bundle(r.Context())
	if err != nil {
		s.logger.Error("Failed to fetch bundle", "error", err)
		response.Error(w, http.StatusInternalServerError, "TMDB parallel fetch failed", s.logger.Logger)
		return
	}

	response.Success(w, bundle, s.logger.Logger)
}

// handleCategory returns a handler serving one named catalog list in the
// TMDB page pass-through shape.
func (s *Server) handleCategory(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := s.movies.Category(r.Context(), name)
		if err != nil {
			s.logger.Error("Failed to fetch category", "error", err, "category", name)
			response.Error(w, http.StatusInternalServerError, "TMDB fetch failed", s.logger.Logger)
			return
		}

		response.Success(w, resultsList(movies), s.logger.Logger)
	}
}

// handleGenre serves a browse list for a named genre or vibe.
func (s *Server) handleGenre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	movies, err := s.movies.GenreBrowse(r.Context(), name)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, movieList(movies), s.logger.Logger)
}
