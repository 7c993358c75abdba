package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylus/internal/crate"
)

func TestCollectionCommand_ListsAlbums(t *testing.T) {
	var gotQuery map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/collection", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"sort":  q.Get("sort_by"),
			"order": q.Get("sort_order"),
		}
		writePagedEnvelope(t, w, []crate.Album{
			{ID: 1, Artist: "Stereolab", Title: "Dots and Loops", Year: 1997, Format: "2xLP", PlayCount: 12},
			{ID: 2, Artist: "Broadcast", Title: "Tender Buttons", Year: 2005, Format: "LP", PlayCount: 4},
		}, &crate.Pagination{Page: 1, Pages: 3, Total: 120, PerPage: 50})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	out, _, err := runCLI(t, server.URL, "collection", "--sort", "year", "--order", "asc")
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	requireContains(t, out, "Stereolab")
	requireContains(t, out, "Tender Buttons")
	requireContains(t, out, "page 1 of 3 (120 total)")
	if gotQuery["sort"] != "year" || gotQuery["order"] != "asc" {
		t.Fatalf("expected sort=year order=asc forwarded, got %v", gotQuery)
	}
}

func TestCollectionCommand_RejectsBadOrder(t *testing.T) {
	_, _, err := runCLI(t, "http://localhost:1", "collection", "--order", "sideways")
	if err == nil {
		t.Fatal("expected an error for an invalid sort order")
	}
	requireContains(t, err.Error(), "order must be asc or desc")
}

func TestListFlagsQuery_Defaults(t *testing.T) {
	flags := listFlags{page: 1, order: "desc", sortBy: "artist"}
	query, err := flags.query(50)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if query.PerPage != 50 {
		t.Fatalf("expected configured per-page default 50, got %d", query.PerPage)
	}
	if query.SortOrder != crate.SortDesc {
		t.Fatalf("expected desc order, got %s", query.SortOrder)
	}

	flags.perPage = 25
	query, err = flags.query(50)
	if err != nil {
		t.Fatalf("query with explicit per-page: %v", err)
	}
	if query.PerPage != 25 {
		t.Fatalf("expected explicit per-page to win, got %d", query.PerPage)
	}
}
