package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vishalPatil7/Binaried/internal/domain"
	apperrors "github.com/vishalPatil7/Binaried/internal/errors"
	"github.com/vishalPatil7/Binaried/internal/genre"
	"github.com/vishalPatil7/Binaried/internal/metadata/tmdb"
)

// defaultYearFrom is the lower bound applied when a year-range intent omits
// its starting year.
const defaultYearFrom = 1900

// Catalog is the slice of the TMDB client the movie service needs.
// *tmdb.Client satisfies it; tests substitute a fake.
type Catalog interface {
	SearchMovie(ctx context.Context, query string) ([]tmdb.Movie, error)
	SearchPerson(ctx context.Context, name string) ([]tmdb.Person, error)
	SearchKeyword(ctx context.Context, keyword string) ([]tmdb.Keyword, error)
	Similar(ctx context.Context, movieID int64) ([]tmdb.Movie, error)
	DiscoverByGenre(ctx context.Context, genreID int) ([]tmdb.Movie, error)
	DiscoverByKeyword(ctx context.Context, keywordID int64) ([]tmdb.Movie, error)
	DiscoverByYearRange(ctx context.Context, from, to int) ([]tmdb.Movie, error)
	MovieCredits(ctx context.Context, personID int64) (*tmdb.Credits, error)
	TopRated(ctx context.Context) ([]tmdb.Movie, error)
	Trending(ctx context.Context) ([]tmdb.Movie, error)
	NowPlaying(ctx context.Context) ([]tmdb.Movie, error)
	Popular(ctx context.Context) ([]tmdb.Movie, error)
	Upcoming(ctx context.Context) ([]tmdb.Movie, error)
}

// Bundle is the combined payload the front page loads in one call. The
// trending slot carries the now-playing list; the client has always shown
// theater releases under that heading.
type Bundle struct {
	Trending []tmdb.Movie `json:"trending"`
	Popular  []tmdb.Movie `json:"popular"`
	TopRated []tmdb.Movie `json:"top_rated"`
	Upcoming []tmdb.Movie `json:"upcoming"`
}

// MovieService resolves intents and browse requests against the catalog.
type MovieService struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewMovieService creates a movie service.
func NewMovieService(catalog Catalog, logger *slog.Logger) *MovieService {
	return &MovieService{
		catalog: catalog,
		logger:  logger,
	}
}

// Resolve dispatches a validated intent to the matching catalog lookup and
// returns at most intent.Limit movies in the provider's native order.
// Entity misses (unknown title, person, keyword, genre) come back as an
// empty or fallback list; only transport and upstream failures return an
// error.
func (s *MovieService) Resolve(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	switch intent.Type {
	case domain.IntentSimilar:
		return s.resolveSimilar(ctx, intent)
	case domain.IntentGenre, domain.IntentVibe:
		return s.resolveGenre(ctx, intent)
	case domain.IntentActor:
		return s.resolveActor(ctx, intent)
	case domain.IntentDirector:
		return s.resolveDirector(ctx, intent)
	case domain.IntentKeyword:
		return s.resolveKeyword(ctx, intent)
	case domain.IntentYearRange:
		return s.resolveYearRange(ctx, intent)
	case domain.IntentTrending:
		movies, err := s.catalog.Trending(ctx)
		if err != nil {
			return nil, err
		}
		return truncate(movies, intent.Limit), nil
	default:
		// top_rated, plus anything Normalize did not catch.
		return s.topRated(ctx, intent.Limit)
	}
}

// topRated is both an intent target and the safety net other branches fall
// back to.
func (s *MovieService) topRated(ctx context.Context, limit int) ([]tmdb.Movie, error) {
	movies, err := s.catalog.TopRated(ctx)
	if err != nil {
		return nil, err
	}
	return truncate(movies, limit), nil
}

func (s *MovieService) resolveSimilar(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	// Best-effort title: the model sometimes files the name under keyword
	// or vibe instead of movie.
	title := intent.MovieTitle
	if title == "" {
		title = intent.Keyword
	}
	if title == "" {
		title = intent.GenreOrVibe
	}
	if title == "" {
		return s.topRated(ctx, intent.Limit)
	}

	matches, err := s.catalog.SearchMovie(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		s.logger.Debug("no title match, falling back to top rated", "title", title)
		return s.topRated(ctx, intent.Limit)
	}

	// First search result wins; no disambiguation.
	movies, err := s.catalog.Similar(ctx, matches[0].ID)
	if err != nil {
		return nil, err
	}
	return truncate(movies, intent.Limit), nil
}

func (s *MovieService) resolveGenre(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	if intent.GenreOrVibe == "" {
		return s.topRated(ctx, intent.Limit)
	}

	genreID, ok := genre.Resolve(intent.GenreOrVibe)
	if !ok {
		s.logger.Debug("unresolvable genre or vibe", "value", intent.GenreOrVibe)
		return []tmdb.Movie{}, nil
	}

	movies, err := s.catalog.DiscoverByGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return truncate(movies, intent.Limit), nil
}

func (s *MovieService) resolveActor(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	if intent.ActorName == "" {
		return []tmdb.Movie{}, nil
	}

	people, err := s.catalog.SearchPerson(ctx, intent.ActorName)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return []tmdb.Movie{}, nil
	}

	credits, err := s.catalog.MovieCredits(ctx, people[0].ID)
	if err != nil {
		return nil, err
	}

	movies := make([]tmdb.Movie, 0, len(credits.Cast))
	for _, c := range credits.Cast {
		movies = append(movies, c.Movie)
	}
	return truncate(movies, intent.Limit), nil
}

func (s *MovieService) resolveDirector(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	if intent.DirectorName == "" {
		return []tmdb.Movie{}, nil
	}

	people, err := s.catalog.SearchPerson(ctx, intent.DirectorName)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return []tmdb.Movie{}, nil
	}

	credits, err := s.catalog.MovieCredits(ctx, people[0].ID)
	if err != nil {
		return nil, err
	}

	movies := make([]tmdb.Movie, 0)
	for _, c := range credits.Crew {
		if strings.EqualFold(c.Job, "Director") {
			movies = append(movies, c.Movie)
		}
	}
	return truncate(movies, intent.Limit), nil
}

func (s *MovieService) resolveKeyword(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	if intent.Keyword == "" {
		return []tmdb.Movie{}, nil
	}

	keywords, err := s.catalog.SearchKeyword(ctx, intent.Keyword)
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return []tmdb.Movie{}, nil
	}

	movies, err := s.catalog.DiscoverByKeyword(ctx, keywords[0].ID)
	if err != nil {
		return nil, err
	}
	return truncate(movies, intent.Limit), nil
}

func (s *MovieService) resolveYearRange(ctx context.Context, intent domain.Intent) ([]tmdb.Movie, error) {
	from := intent.Years.From
	if from == 0 {
		from = defaultYearFrom
	}
	to := intent.Years.To
	if to == 0 {
		to = time.Now().Year()
	}

	movies, err := s.catalog.DiscoverByYearRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return truncate(movies, intent.Limit), nil
}

// Bundle fetches the four front-page category lists concurrently. All four
// must succeed; a single failure fails the whole call.
func (s *MovieService) Bundle(ctx context.Context) (*Bundle, error) {
	var b Bundle
	var errs [4]error
	var wg sync.WaitGroup

	wg.Go(func() { b.Trending, errs[0] = s.catalog.NowPlaying(ctx) })
	wg.Go(func() { b.Popular, errs[1] = s.catalog.Popular(ctx) })
	wg.Go(func() { b.TopRated, errs[2] = s.catalog.TopRated(ctx) })
	wg.Go(func() { b.Upcoming, errs[3] = s.catalog.Upcoming(ctx) })
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// Category returns a single browse list by name.
func (s *MovieService) Category(ctx context.Context, name string) ([]tmdb.Movie, error) {
	switch name {
	case "now_playing":
		return s.catalog.NowPlaying(ctx)
	case "popular":
		return s.catalog.Popular(ctx)
	case "top_rated":
		return s.catalog.TopRated(ctx)
	case "upcoming":
		return s.catalog.Upcoming(ctx)
	case "trending":
		return s.catalog.Trending(ctx)
	default:
		return nil, apperrors.NotFoundf("unknown category %q", name)
	}
}

// GenreBrowse returns the discovery list for a genre name or vibe phrase.
func (s *MovieService) GenreBrowse(ctx context.Context, name string) ([]tmdb.Movie, error) {
	genreID, ok := genre.Resolve(name)
	if !ok {
		return nil, apperrors.NotFound("Unknown genre")
	}
	return s.catalog.DiscoverByGenre(ctx, genreID)
}

// truncate takes the first limit entries without re-ranking.
func truncate(movies []tmdb.Movie, limit int) []tmdb.Movie {
	if limit > 0 && len(movies) > limit {
		return movies[:limit]
	}
	return movies
}
