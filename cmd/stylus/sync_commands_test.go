package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylus/internal/crate"
)

func TestSyncHistory_StartsJob(t *testing.T) {
	started := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/history/sync", func(w http.ResponseWriter, r *http.Request) {
		started = true
		writeEnvelope(t, w, nil)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	out, _, err := runCLI(t, server.URL, "sync", "history")
	if err != nil {
		t.Fatalf("sync history: %v", err)
	}
	if !started {
		t.Fatal("expected the sync endpoint to be called")
	}
	requireContains(t, out, "history sync started")
}

func TestSyncCollection_WaitReportsCompletion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/collection/sync", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, nil)
	})
	mux.HandleFunc("/api/v1/collection/sync/status", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, crate.SyncStatus{Status: crate.JobCompleted, Progress: 100})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	out, _, err := runCLI(t, server.URL, "sync", "collection", "--wait")
	if err != nil {
		t.Fatalf("sync collection --wait: %v", err)
	}
	requireContains(t, out, "collection sync started")
	requireContains(t, out, "sync completed")
}

func TestSyncCollection_WaitSurfacesJobError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/collection/sync", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, nil)
	})
	mux.HandleFunc("/api/v1/collection/sync/status", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, crate.SyncStatus{Status: crate.JobError, Error: "discogs rate limit"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	_, _, err := runCLI(t, server.URL, "sync", "collection", "--wait")
	if err == nil {
		t.Fatal("expected an error when the job finishes in the error state")
	}
	requireContains(t, err.Error(), "sync finished with an error")
}
