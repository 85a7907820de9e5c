package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
)

// SearchMovie searches the catalog by title. Results come back in TMDB's
// relevance order; callers that only need the best match take the first.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]Movie, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.movieList(ctx, "searchMovie", "/search/movie", q)
}

// SearchPerson searches for actors, directors and other people by name.
func (c *Client) SearchPerson(ctx context.Context, name string) ([]Person, error) {
	const path = "/search/person"

	q := url.Values{}
	q.Set("query", name)

	body, err := c.doRequest(ctx, path, q)
	if err != nil {
		return nil, wrapError("searchPerson", path, err)
	}

	var page personPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, wrapError("searchPerson", path, fmt.Errorf("parse response: %w", err))
	}
	return page.Results, nil
}

// SearchKeyword searches TMDB's keyword vocabulary.
func (c *Client) SearchKeyword(ctx context.Context, keyword string) ([]Keyword, error) {
	const path = "/search/keyword"

	q := url.Values{}
	q.Set("query", keyword)

	body, err := c.doRequest(ctx, path, q)
	if err != nil {
		return nil, wrapError("searchKeyword", path, err)
	}

	var page keywordPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, wrapError("searchKeyword", path, fmt.Errorf("parse response: %w", err))
	}
	return page.Results, nil
}
