package ui

import (
	"testing"

	"stylus/internal/cache"
	"stylus/internal/crate"
	"stylus/internal/state"
)

func TestSnapshotCompletedTransitionRefetches(t *testing.T) {
	m := New(Options{})
	m.snapshot.HistorySync.Status = crate.JobSyncing

	updated, cmd := m.Update(snapshotMsg(state.Snapshot{
		HistorySync: crate.SyncStatus{Status: crate.JobCompleted},
	}))
	if cmd == nil {
		t.Fatalf("no dependent refetch issued on syncing -> completed")
	}

	// The next poll still reports completed: the refetch already happened.
	m = updated.(Model)
	if _, cmd = m.Update(snapshotMsg(state.Snapshot{
		HistorySync: crate.SyncStatus{Status: crate.JobCompleted},
	})); cmd != nil {
		t.Fatalf("refetch issued twice for one completed transition")
	}
}

func TestSnapshotReleaseCheckCompletionRefetches(t *testing.T) {
	m := New(Options{})
	m.snapshot.ReleaseCheck.Status = crate.JobScanning

	if _, cmd := m.Update(snapshotMsg(state.Snapshot{
		ReleaseCheck: crate.SyncStatus{Status: crate.JobCompleted},
	})); cmd == nil {
		t.Fatalf("no refetch issued when a release check finished")
	}
}

func TestSnapshotNoRefetchWithoutObservedProgress(t *testing.T) {
	// Completed on the very first observation: the job finished before this
	// client ever saw it running, so nothing is stale.
	m := New(Options{})
	if _, cmd := m.Update(snapshotMsg(state.Snapshot{
		HistorySync: crate.SyncStatus{Status: crate.JobCompleted},
	})); cmd != nil {
		t.Fatalf("refetch issued for a job that was never observed in progress")
	}

	// A job that ends in the error state fetches nothing.
	m = New(Options{})
	m.snapshot.CollectionSync.Status = crate.JobSyncing
	if _, cmd := m.Update(snapshotMsg(state.Snapshot{
		CollectionSync: crate.SyncStatus{Status: crate.JobError},
	})); cmd != nil {
		t.Fatalf("refetch issued for a job that finished with an error")
	}
}

func TestNotificationsLocalReadStaysLocal(t *testing.T) {
	localCache, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer localCache.Close()
	n, err := localCache.AddLocalNotification(crate.NotifySuccess, "Backup exported", "~/stylus-backup.json")
	if err != nil {
		t.Fatalf("AddLocalNotification: %v", err)
	}

	// No client: a locally-created notification must never reach the server.
	m := New(Options{Cache: localCache})
	m.currentView = ViewNotifications
	m.snapshot.Notifications = []crate.Notification{n}

	_, cmd := m.handleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatalf("enter on an unread notification issued no action")
	}
	action, ok := cmd().(actionMsg)
	if !ok {
		t.Fatalf("unexpected message type from read action")
	}
	if action.err != nil {
		t.Fatalf("local read failed: %v", action.err)
	}
	if !localCache.IsRead(n.ID) {
		t.Fatalf("local notification not marked read in cache")
	}
}

func TestNotificationsLocalDismissStaysLocal(t *testing.T) {
	localCache, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer localCache.Close()
	n, err := localCache.AddLocalNotification(crate.NotifyInfo, "Heads up", "something local")
	if err != nil {
		t.Fatalf("AddLocalNotification: %v", err)
	}

	m := New(Options{Cache: localCache})
	m.currentView = ViewNotifications
	m.snapshot.Notifications = []crate.Notification{n}

	_, cmd := m.handleKey(keyMsg("x"))
	if cmd == nil {
		t.Fatalf("dismiss issued no action")
	}
	action, ok := cmd().(actionMsg)
	if !ok {
		t.Fatalf("unexpected message type from dismiss action")
	}
	if action.err != nil {
		t.Fatalf("local dismiss failed: %v", action.err)
	}
	if remaining := localCache.LocalNotifications(); len(remaining) != 0 {
		t.Fatalf("local notification survived dismissal: %#v", remaining)
	}
}
