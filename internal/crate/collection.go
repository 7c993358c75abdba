package crate

import (
	"context"
	"fmt"
)

// FetchCollection retrieves one page of the Discogs collection.
func (c *Client) FetchCollection(ctx context.Context, query ListQuery) (Page[Album], error) {
	return fetchPage[Album](ctx, c, apiPrefix+"/collection", query)
}

// FetchAlbum retrieves a single collection entry.
func (c *Client) FetchAlbum(ctx context.Context, id int64) (*Album, error) {
	if id <= 0 {
		return nil, fmt.Errorf("album id required")
	}
	var album Album
	if err := c.get(ctx, fmt.Sprintf("%s/collection/%d", apiPrefix, id), nil, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// FetchFolders retrieves the Discogs collection folders.
func (c *Client) FetchFolders(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	if err := c.get(ctx, apiPrefix+"/collection/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// StartCollectionSync asks the server to begin a collection sync job.
func (c *Client) StartCollectionSync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/collection/sync", nil, nil)
}

// FetchCollectionSyncStatus retrieves the collection sync job status.
func (c *Client) FetchCollectionSyncStatus(ctx context.Context) (*SyncStatus, error) {
	var status SyncStatus
	if err := c.get(ctx, apiPrefix+"/collection/sync/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PauseCollectionSync pauses a running collection sync job.
func (c *Client) PauseCollectionSync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/collection/sync/pause", nil, nil)
}

// ResumeCollectionSync resumes a paused collection sync job.
func (c *Client) ResumeCollectionSync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/collection/sync/resume", nil, nil)
}

// CancelCollectionSync cancels the collection sync job.
func (c *Client) CancelCollectionSync(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/collection/sync/cancel", nil, nil)
}
