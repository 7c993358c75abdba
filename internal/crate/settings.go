package crate

import "context"

// FetchSettings retrieves the server settings document.
func (c *Client) FetchSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := c.get(ctx, apiPrefix+"/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SettingsUpdate carries settings fields to change. Nil fields are left alone.
type SettingsUpdate struct {
	DiscogsUsername *string `json:"discogsUsername,omitempty"`
	DiscogsToken    *string `json:"discogsToken,omitempty"`
	LastfmUsername  *string `json:"lastfmUsername,omitempty"`
	LastfmAPIKey    *string `json:"lastfmApiKey,omitempty"`
	SuggestionModel *string `json:"suggestionModel,omitempty"`
}

// UpdateSettings applies a partial settings update.
func (c *Client) UpdateSettings(ctx context.Context, update SettingsUpdate) (*Settings, error) {
	var settings Settings
	if err := c.put(ctx, apiPrefix+"/settings", update, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// TestDiscogsConnection verifies the stored Discogs credentials.
func (c *Client) TestDiscogsConnection(ctx context.Context) (*ConnectionTest, error) {
	var result ConnectionTest
	if err := c.post(ctx, apiPrefix+"/settings/discogs/test", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TestLastfmConnection verifies the stored Last.fm credentials.
func (c *Client) TestLastfmConnection(ctx context.Context) (*ConnectionTest, error) {
	var result ConnectionTest
	if err := c.post(ctx, apiPrefix+"/settings/lastfm/test", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
