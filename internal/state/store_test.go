package state

import (
	"errors"
	"testing"

	"stylus/internal/crate"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	store := &Store{}

	store.Update(Refresh{
		HistorySync: &crate.SyncStatus{Status: crate.JobSyncing, Progress: 25},
		Sellers:     []crate.Seller{{Username: "waxstacks"}},
		Notifications: []crate.Notification{
			{ID: "a", Read: true},
			{ID: "b"},
			{ID: "c"},
		},
	}, nil)

	snap := store.Snapshot()
	if !snap.HasStatus {
		t.Fatalf("HasStatus = false, want true after refresh")
	}
	if snap.HistorySync.Status != crate.JobSyncing {
		t.Fatalf("HistorySync.Status = %q, want syncing", snap.HistorySync.Status)
	}
	if !snap.AnySyncActive() {
		t.Fatalf("AnySyncActive = false, want true while syncing")
	}
	if got := snap.UnreadCount(); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}
	if snap.LastUpdated.IsZero() {
		t.Fatalf("LastUpdated not set")
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	store := &Store{}
	store.Update(Refresh{
		HistorySync: &crate.SyncStatus{Status: crate.JobCompleted},
		Sellers:     []crate.Seller{{Username: "waxstacks"}},
	}, nil)

	pollErr := errors.New("status poll failed")
	store.Update(Refresh{}, pollErr)
	store.Update(Refresh{}, pollErr)

	snap := store.Snapshot()
	if len(snap.Sellers) != 1 {
		t.Fatalf("Sellers lost on error update: %#v", snap.Sellers)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatalf("IsOffline = false, want true after two failures")
	}

	store.Update(Refresh{HistorySync: &crate.SyncStatus{Status: crate.JobIdle}}, nil)
	snap = store.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("failure state not cleared: failures=%d err=%v", snap.ConsecutiveFailures, snap.LastError)
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := &Store{}
	store.Update(Refresh{
		Sellers:     []crate.Seller{{Username: "waxstacks"}},
		SellerScans: map[string]crate.SellerScanStatus{"waxstacks": {Status: crate.JobScanning}},
	}, nil)

	snap := store.Snapshot()
	snap.Sellers[0].Username = "mutated"
	snap.SellerScans["waxstacks"] = crate.SellerScanStatus{Status: crate.JobError}

	fresh := store.Snapshot()
	if fresh.Sellers[0].Username != "waxstacks" {
		t.Fatalf("store sellers mutated through snapshot copy")
	}
	if fresh.SellerScans["waxstacks"].Status != crate.JobScanning {
		t.Fatalf("store scans mutated through snapshot copy")
	}
}
