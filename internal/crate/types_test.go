package crate

import (
	"testing"
	"time"
)

func TestJobStatus_InProgressAndTerminal(t *testing.T) {
	tests := []struct {
		status     JobStatus
		inProgress bool
		terminal   bool
	}{
		{JobIdle, false, false},
		{JobSyncing, true, false},
		{JobPaused, true, false},
		{JobScanning, true, false},
		{JobMatching, true, false},
		{JobCompleted, false, true},
		{JobError, false, true},
		{JobStatus("unknown"), false, false},
	}

	for _, tt := range tests {
		if got := tt.status.InProgress(); got != tt.inProgress {
			t.Errorf("%q.InProgress() = %v, want %v", tt.status, got, tt.inProgress)
		}
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%q.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestParseTime_AcceptsServerLayouts(t *testing.T) {
	if got := parseTime(""); !got.IsZero() {
		t.Fatalf("parseTime(\"\") = %v, want zero", got)
	}
	if got := parseTime("2026-03-01T12:30:00Z"); got.IsZero() {
		t.Fatalf("parseTime RFC3339 = zero, want parsed")
	}
	if got := parseTime("2026-03-01 12:30:00"); got.IsZero() {
		t.Fatalf("parseTime legacy layout = zero, want parsed")
	}
	if got := parseTime("not a time"); !got.IsZero() {
		t.Fatalf("parseTime(garbage) = %v, want zero", got)
	}
}

func TestSyncStatus_ETA(t *testing.T) {
	if got := (SyncStatus{}).ETA(); got != 0 {
		t.Fatalf("ETA with no estimate = %v, want 0", got)
	}
	status := SyncStatus{EstimatedTimeRemaining: 90}
	if got := status.ETA(); got != 90*time.Second {
		t.Fatalf("ETA = %v, want 90s", got)
	}
}

func TestListQuery_OmitsZeroValues(t *testing.T) {
	values := ListQuery{}.Values()
	if len(values) != 0 {
		t.Fatalf("empty query encoded = %v, want no params", values)
	}

	values = ListQuery{Page: 1, Search: "   "}.Values()
	if values.Get("search") != "" {
		t.Fatalf("blank search encoded = %q, want omitted", values.Get("search"))
	}
	if values.Get("page") != "1" {
		t.Fatalf("page = %q, want 1", values.Get("page"))
	}
}
