package crate

import "context"

// FetchSuggestions retrieves the current listening suggestions. Generation on
// the server side can be slow when the cache is cold.
func (c *Client) FetchSuggestions(ctx context.Context) ([]Suggestion, error) {
	var suggestions []Suggestion
	_, err := c.do(ctx, "GET", apiPrefix+"/suggestions", requestOptions{timeout: slowTimeout}, &suggestions)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// RefreshSuggestions forces the server to regenerate suggestions. This runs
// AI inference and is the slowest call in the API.
func (c *Client) RefreshSuggestions(ctx context.Context) ([]Suggestion, error) {
	var suggestions []Suggestion
	_, err := c.do(ctx, "POST", apiPrefix+"/suggestions/refresh", requestOptions{timeout: verySlowTimeout}, &suggestions)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
