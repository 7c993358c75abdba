package crate

import (
	"context"
	"fmt"
	"strings"
)

// FetchMappings retrieves the discovery mappings linking history names to
// collection entries.
func (c *Client) FetchMappings(ctx context.Context) ([]Mapping, error) {
	var mappings []Mapping
	if err := c.get(ctx, apiPrefix+"/mappings", nil, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// CreateMapping records a discovery mapping, disambiguating a history name to
// a specific collection entry.
func (c *Client) CreateMapping(ctx context.Context, historyName string, collectionID int64) (*Mapping, error) {
	historyName = strings.TrimSpace(historyName)
	if historyName == "" {
		return nil, fmt.Errorf("history name required")
	}
	if collectionID <= 0 {
		return nil, fmt.Errorf("collection id required")
	}
	body := map[string]any{
		"historyName":  historyName,
		"collectionId": collectionID,
	}
	var mapping Mapping
	if err := c.post(ctx, apiPrefix+"/mappings", body, &mapping); err != nil {
		return nil, err
	}
	return &mapping, nil
}

// DeleteMapping removes a discovery mapping.
func (c *Client) DeleteMapping(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("mapping id required")
	}
	return c.delete(ctx, fmt.Sprintf("%s/mappings/%d", apiPrefix, id))
}

// RunMatching asks the server to re-run history-to-collection matching.
func (c *Client) RunMatching(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/matching/run", nil, nil)
}

// FetchMatchingStatus retrieves the matching job status.
func (c *Client) FetchMatchingStatus(ctx context.Context) (*SyncStatus, error) {
	var status SyncStatus
	if err := c.get(ctx, apiPrefix+"/matching/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
