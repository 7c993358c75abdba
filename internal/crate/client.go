// Package crate talks to the crate server HTTP API.
//
// The crate server owns all heavy lifting (Discogs/Last.fm sync, matching,
// suggestion generation, release checks, seller scans); this package is a thin
// typed wrapper around its REST surface. Every method performs exactly one
// HTTP call and unwraps the server's {success, data} envelope.
package crate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "http://localhost:3001"
	defaultUserAgent = "stylus/0.1"
	apiPrefix        = "/api/v1"

	// Per-call timeouts. The default covers ordinary list and mutation
	// endpoints; the slow tiers cover operations the server is known to take
	// its time over (AI suggestion generation, full seller inventory refresh,
	// backup restore).
	requestTimeout  = 30 * time.Second
	slowTimeout     = 90 * time.Second
	verySlowTimeout = 10 * time.Minute
)

// ErrServerDown reports that the crate server could not be reached at all.
// Transport-level failures are folded into this one error so the UI can show a
// single consistent message instead of raw dial errors.
var ErrServerDown = errors.New("crate server is not reachable")

// APIError carries an error message returned by the server, either from the
// {success:false, error} envelope or from a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("crate server returned status %d", e.StatusCode)
}

// Client talks to the crate server HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logf      func(format string, args ...any)
}

// NewClient builds a Client for the given base URL. An empty value uses the
// default local server address. Host:port values without a scheme are accepted.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		// No Timeout on the shared http.Client: deadlines are applied per
		// request so slow endpoints can exceed the default.
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logf:      log.Printf,
	}, nil
}

// BaseURL returns the resolved server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// envelope mirrors the server's standard response wrapper.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

// requestOptions configure a single API call.
type requestOptions struct {
	timeout time.Duration
	query   url.Values
	body    any
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	_, err := c.do(ctx, http.MethodGet, path, requestOptions{query: query}, dest)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	_, err := c.do(ctx, http.MethodPost, path, requestOptions{body: body}, dest)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, dest any) error {
	_, err := c.do(ctx, http.MethodPut, path, requestOptions{body: body}, dest)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, requestOptions{}, nil)
	return err
}

// do executes one API call and decodes the envelope into dest. It returns the
// pagination block when the endpoint carries one.
func (c *Client) do(ctx context.Context, method, path string, opts requestOptions, dest any) (*Pagination, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rel := &url.URL{Path: path}
	if len(opts.query) > 0 {
		rel.RawQuery = opts.query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reqBody io.Reader
	if opts.body != nil {
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logf("crate: %s %s", method, rel.String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logf("crate: %s %s failed: %v", method, rel.String(), err)
		if isConnectionError(err) {
			return nil, ErrServerDown
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		c.logf("crate: %s %s returned status %d", method, rel.String(), resp.StatusCode)
		msg := ""
		if decodeErr == nil {
			msg = env.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		c.logf("crate: %s %s rejected: %s", method, rel.String(), env.Error)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if dest != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Pagination, nil
}

// Health checks the unauthenticated /health endpoint, which lives outside the
// versioned API prefix and returns a bare JSON object rather than an envelope.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: "/health"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, ErrServerDown
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	var payload HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	// http.Client wraps dial errors in *url.Error.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if errors.Is(urlErr.Err, context.DeadlineExceeded) {
			return false
		}
		var inner *net.OpError
		return errors.As(urlErr.Err, &inner)
	}
	return false
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
