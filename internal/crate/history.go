package crate

import (
	"context"
	"fmt"
)

// FetchHistory retrieves one page of the scrobbled listening history.
func (c *Client) FetchHistory(ctx context.Context, query ListQuery) (Page[PlayEntry], error) {
	return fetchPage[PlayEntry](ctx, c, apiPrefix+"/history", query)
}

// FetchAlbumPlays retrieves the play history for one collection album.
func (c *Client) FetchAlbumPlays(ctx context.Context, albumID int64) ([]PlayEntry, error) {
	if albumID <= 0 {
		return nil, fmt.Errorf("album id required")
	}
	var plays []PlayEntry
	if err := c.get(ctx, fmt.Sprintf("%s/history/album/%d/plays", apiPrefix, albumID), nil, &plays); err != nil {
		return nil, err
	}
	return plays, nil
}

// StartHistorySync asks the server to begin a scrobble history sync job.
func (c *Client) StartHistorySync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/history/sync", nil, nil)
}

// FetchHistorySyncStatus retrieves the scrobble sync job status.
func (c *Client) FetchHistorySyncStatus(ctx context.Context) (*SyncStatus, error) {
	var status SyncStatus
	if err := c.get(ctx, apiPrefix+"/history/sync/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PauseHistorySync pauses a running scrobble sync job.
func (c *Client) PauseHistorySync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/history/sync/pause", nil, nil)
}

// ResumeHistorySync resumes a paused scrobble sync job.
func (c *Client) ResumeHistorySync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/history/sync/resume", nil, nil)
}
