package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DiscoverByGenre fetches movies in a genre, best rated first.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) ([]Movie, error) {
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	q.Set("sort_by", "vote_average.desc")
	return c.movieList(ctx, "discoverByGenre", "/discover/movie", q)
}

// DiscoverByKeyword fetches movies tagged with a keyword, most popular first.
func (c *Client) DiscoverByKeyword(ctx context.Context, keywordID int64) ([]Movie, error) {
	q := url.Values{}
	q.Set("with_keywords", strconv.FormatInt(keywordID, 10))
	q.Set("sort_by", "popularity.desc")
	return c.movieList(ctx, "discoverByKeyword", "/discover/movie", q)
}

// DiscoverByYearRange fetches movies released between the from and to years
// inclusive, most popular first.
func (c *Client) DiscoverByYearRange(ctx context.Context, from, to int) ([]Movie, error) {
	q := url.Values{}
	q.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", from))
	q.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", to))
	q.Set("sort_by", "popularity.desc")
	return c.movieList(ctx, "discoverByYearRange", "/discover/movie", q)
}

// Similar fetches movies similar to the given movie.
func (c *Client) Similar(ctx context.Context, movieID int64) ([]Movie, error) {
	path := fmt.Sprintf("/movie/%d/similar", movieID)
	return c.movieList(ctx, "similar", path, nil)
}
