package crate

import (
	"context"
	"fmt"
)

// FetchReleases retrieves one page of tracked vinyl releases.
func (c *Client) FetchReleases(ctx context.Context, query ListQuery) (Page[Release], error) {
	return fetchPage[Release](ctx, c, apiPrefix+"/releases", query)
}

// StartReleaseCheck asks the server to look for new releases across the
// collection's artists.
func (c *Client) StartReleaseCheck(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/releases/check", nil, nil)
}

// FetchReleaseCheckStatus retrieves the release check job status.
func (c *Client) FetchReleaseCheckStatus(ctx context.Context) (*SyncStatus, error) {
	var status SyncStatus
	if err := c.get(ctx, apiPrefix+"/releases/check/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// MarkReleaseSeen marks a tracked release as seen.
func (c *Client) MarkReleaseSeen(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("release id required")
	}
	return c.put(ctx, fmt.Sprintf("%s/releases/%d/seen", apiPrefix, id), nil, nil)
}
