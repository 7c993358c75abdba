package crate

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery configures paginated list endpoints. Zero values are omitted from
// the query string so the server applies its own defaults.
type ListQuery struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder SortOrder
	Search    string

	// Filter carries endpoint-specific filters (folder, unread, format, ...).
	Filter url.Values
}

// Values encodes the query into URL parameters.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if sortBy := strings.TrimSpace(q.SortBy); sortBy != "" {
		values.Set("sort_by", sortBy)
	}
	if q.SortOrder != "" {
		values.Set("sort_order", string(q.SortOrder))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		values.Set("search", search)
	}
	for key, vals := range q.Filter {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	return values
}

// fetchPage runs a GET against a list endpoint and bundles items with the
// envelope's pagination block.
func fetchPage[T any](ctx context.Context, c *Client, path string, query ListQuery) (Page[T], error) {
	var items []T
	pg, err := c.do(ctx, http.MethodGet, path, requestOptions{query: query.Values()}, &items)
	if err != nil {
		return Page[T]{}, err
	}
	page := Page[T]{Items: items}
	if pg != nil {
		page.Pagination = *pg
	}
	return page, nil
}
