package tmdb

import (
	"context"
	"net/url"
)

// listQuery is the standard query for the curated list endpoints.
func listQuery() url.Values {
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("page", "1")
	return q
}

// TopRated fetches the top-rated movie list.
func (c *Client) TopRated(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "topRated", "/movie/top_rated", listQuery())
}

// NowPlaying fetches movies currently in theaters.
func (c *Client) NowPlaying(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "nowPlaying", "/movie/now_playing", listQuery())
}

// Popular fetches the popular movie list.
func (c *Client) Popular(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "popular", "/movie/popular", listQuery())
}

// Upcoming fetches movies with upcoming releases.
func (c *Client) Upcoming(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "upcoming", "/movie/upcoming", listQuery())
}

// Trending fetches the weekly trending movie list.
func (c *Client) Trending(ctx context.Context) ([]Movie, error) {
	return c.movieList(ctx, "trending", "/trending/movie/week", nil)
}
