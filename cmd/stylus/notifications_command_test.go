package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylus/internal/crate"
)

func TestNotificationsCommand_ForwardsUnreadFilter(t *testing.T) {
	var gotUnread string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		gotUnread = r.URL.Query().Get("unread")
		writeEnvelope(t, w, []crate.Notification{
			{ID: "n-1", Type: crate.NotifyWarning, Title: "Scan failed", Message: "rate limited", Read: false},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	out, _, err := runCLI(t, server.URL, "notifications", "--unread")
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if gotUnread != "1" {
		t.Fatalf("expected unread=1 forwarded, got %q", gotUnread)
	}
	requireContains(t, out, "Scan failed")
	requireContains(t, out, "*")
}

func TestNotificationsReadAll(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeEnvelope(t, w, nil)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	if _, _, err := runCLI(t, server.URL, "notifications", "read-all"); err != nil {
		t.Fatalf("read-all: %v", err)
	}
	if !called {
		t.Fatal("expected read-all endpoint to be called")
	}
}
