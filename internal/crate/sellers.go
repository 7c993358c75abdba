package crate

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// FetchSellers retrieves the monitored marketplace sellers.
func (c *Client) FetchSellers(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	if err := c.get(ctx, apiPrefix+"/sellers", nil, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

// AddSeller registers a seller for monitoring.
func (c *Client) AddSeller(ctx context.Context, username string) (*Seller, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("seller username required")
	}
	body := map[string]string{"username": username}
	var seller Seller
	if err := c.post(ctx, apiPrefix+"/sellers", body, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

// RemoveSeller stops monitoring a seller.
func (c *Client) RemoveSeller(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("seller username required")
	}
	return c.delete(ctx, apiPrefix+"/sellers/"+url.PathEscape(username))
}

// StartSellerScan asks the server to scan one seller's inventory.
func (c *Client) StartSellerScan(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("seller username required")
	}
	return c.post(ctx, apiPrefix+"/sellers/"+url.PathEscape(username)+"/scan", nil, nil)
}

// FetchSellerScanStatus retrieves the scan job status for one seller.
func (c *Client) FetchSellerScanStatus(ctx context.Context, username string) (*SellerScanStatus, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("seller username required")
	}
	var status SellerScanStatus
	if err := c.get(ctx, apiPrefix+"/sellers/"+url.PathEscape(username)+"/scan/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FetchSellerMatches retrieves collection matches in a seller's inventory.
func (c *Client) FetchSellerMatches(ctx context.Context, username string) ([]SellerMatch, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("seller username required")
	}
	var matches []SellerMatch
	if err := c.get(ctx, apiPrefix+"/sellers/"+url.PathEscape(username)+"/matches", nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// RefreshSellerInventories re-fetches every monitored seller's full inventory.
// This is one of the server's slowest operations.
func (c *Client) RefreshSellerInventories(ctx context.Context) error {
	_, err := c.do(ctx, "POST", apiPrefix+"/sellers/refresh", requestOptions{timeout: verySlowTimeout}, nil)
	return err
}
