package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
)

// MovieCredits fetches a person's movie credits. Cast and crew are returned
// separately, in the API's native ordering.
func (c *Client) MovieCredits(ctx context.Context, personID int64) (*Credits, error) {
	path := fmt.Sprintf("/person/%d/movie_credits", personID)

	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, wrapError("movieCredits", path, err)
	}

	var credits Credits
	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, wrapError("movieCredits", path, fmt.Errorf("parse response: %w", err))
	}
	return &credits, nil
}
