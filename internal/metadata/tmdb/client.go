package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production TMDB API endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	// TMDB allows roughly 50 requests per second; stay under it.
	defaultRPS   = 40
	defaultBurst = 10

	defaultTimeout = 30 * time.Second
)

// Config holds TMDB client configuration. The access token is carried here
// explicitly rather than read from the environment at call time, so tests
// and alternate deployments can substitute their own.
type Config struct {
	BaseURL     string
	AccessToken string
}

// Client is a rate-limited TMDB API client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a new TMDB client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   cfg.AccessToken,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRPS), defaultBurst),
		logger:  logger,
	}
}

// doRequest executes a GET request against the API with rate limiting.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}

// movieList fetches a paged movie endpoint and returns its results.
func (c *Client) movieList(ctx context.Context, op, path string, query url.Values) ([]Movie, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, wrapError(op, path, err)
	}

	var page moviePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, wrapError(op, path, fmt.Errorf("parse response: %w", err))
	}
	return page.Results, nil
}
