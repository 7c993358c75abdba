package crate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("base url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("localhost:4100")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "localhost:4100" {
		t.Fatalf("base url = %q, want http://localhost:4100", u.String())
	}

	u, err = parseBaseURL("http://example.com:3001/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.logf = func(string, ...any) {}
	return c
}

func writeEnvelope(w http.ResponseWriter, data any, pagination *Pagination) {
	w.Header().Set("Content-Type", "application/json")
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: raw, Pagination: pagination})
}

func TestClient_UnwrapsEnvelopeAndPagination(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case apiPrefix + "/collection":
			gotQuery = r.URL.Query()
			writeEnvelope(w, []Album{{ID: 7, Artist: "Can", Title: "Future Days"}},
				&Pagination{Page: 2, Pages: 3, Total: 150, PerPage: 50})
		case apiPrefix + "/collection/sync/status":
			writeEnvelope(w, SyncStatus{Status: JobSyncing, Progress: 40, ScrobblesFetched: 2000}, nil)
		default:
			http.NotFound(w, r)
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.FetchCollection(ctx, ListQuery{
		Page:      2,
		PerPage:   50,
		SortBy:    "artist",
		SortOrder: SortAsc,
		Search:    "future",
	})
	if err != nil {
		t.Fatalf("FetchCollection returned error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != 7 {
		t.Fatalf("FetchCollection items = %#v, want 1 item id=7", page.Items)
	}
	if page.Pagination.Pages != 3 || page.Pagination.Total != 150 {
		t.Fatalf("pagination = %#v, want pages=3 total=150", page.Pagination)
	}

	if gotQuery.Get("page") != "2" ||
		gotQuery.Get("per_page") != "50" ||
		gotQuery.Get("sort_by") != "artist" ||
		gotQuery.Get("sort_order") != "asc" ||
		gotQuery.Get("search") != "future" {
		t.Fatalf("query = %v, want pagination/sort/search params encoded", gotQuery)
	}

	status, err := c.FetchCollectionSyncStatus(ctx)
	if err != nil {
		t.Fatalf("FetchCollectionSyncStatus returned error: %v", err)
	}
	if status.Status != JobSyncing || status.ScrobblesFetched != 2000 {
		t.Fatalf("status = %#v, want syncing with 2000 scrobbles", status)
	}

	if !strings.HasPrefix(gotUserAgent, "stylus/") {
		t.Fatalf("User-Agent = %q, want stylus/*", gotUserAgent)
	}
}

func TestClient_SurfacesServerErrors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case apiPrefix + "/history":
			// Envelope rejection with 200 status.
			_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: "Failed to load album history"})
		case apiPrefix + "/sellers":
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: "seller already monitored"})
		case apiPrefix + "/suggestions":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.NotFound(w, r)
		}
	}))

	_, err := c.FetchHistory(context.Background(), ListQuery{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Failed to load album history" {
		t.Fatalf("FetchHistory error = %v, want APIError with backend message", err)
	}

	_, err = c.AddSeller(context.Background(), "recordshack")
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("AddSeller error = %v, want APIError status 400", err)
	}
	if apiErr.Error() != "seller already monitored" {
		t.Fatalf("AddSeller message = %q, want backend message verbatim", apiErr.Error())
	}

	_, err = c.FetchSuggestions(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchSuggestions error = %v, want decode error", err)
	}
}

func TestClient_TranslatesConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.logf = func(string, ...any) {}

	_, err = c.FetchSellers(context.Background())
	if !errors.Is(err, ErrServerDown) {
		t.Fatalf("FetchSellers error = %v, want ErrServerDown", err)
	}

	_, err = c.Health(context.Background())
	if !errors.Is(err, ErrServerDown) {
		t.Fatalf("Health error = %v, want ErrServerDown", err)
	}
}

func TestClient_ValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))

	if _, err := c.ExportBackup(context.Background(), ExportRequest{IncludeCredentials: true, Password: "short"}); err == nil {
		t.Fatalf("ExportBackup accepted short password, want validation error")
	}
	if err := c.ImportBackup(context.Background(), ImportRequest{Mode: "sideways", Payload: []byte(`{}`)}); err == nil {
		t.Fatalf("ImportBackup accepted bad mode, want validation error")
	}
	if err := c.ImportBackup(context.Background(), ImportRequest{Mode: BackupMerge}); err == nil {
		t.Fatalf("ImportBackup accepted empty payload, want validation error")
	}
	if _, err := c.AddSeller(context.Background(), "  "); err == nil {
		t.Fatalf("AddSeller accepted blank username, want validation error")
	}
	if _, err := c.CreateMapping(context.Background(), "", 1); err == nil {
		t.Fatalf("CreateMapping accepted empty history name, want validation error")
	}
	if err := c.MarkReleaseSeen(context.Background(), 0); err == nil {
		t.Fatalf("MarkReleaseSeen accepted zero id, want validation error")
	}
}

func TestClient_HealthOutsideAPIPrefix(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthStatus{Status: "ok", Version: "1.4.2"})
	}))

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if health.Status != "ok" || health.Version != "1.4.2" {
		t.Fatalf("health = %#v, want ok/1.4.2", health)
	}
}
