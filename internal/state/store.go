// Package state holds the shared snapshot of server data that the background
// poller writes and the UI reads.
package state

import (
	"sync"
	"time"

	"stylus/internal/crate"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	HistorySync    crate.SyncStatus
	CollectionSync crate.SyncStatus
	ReleaseCheck   crate.SyncStatus
	HasStatus      bool

	Sellers       []crate.Seller
	SellerScans   map[string]crate.SellerScanStatus
	Notifications []crate.Notification

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the server has been unreachable for multiple
// consecutive polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// UnreadCount returns the number of unread notifications in the snapshot.
func (s Snapshot) UnreadCount() int {
	count := 0
	for _, n := range s.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// AnySyncActive reports whether either sync job is currently in progress.
func (s Snapshot) AnySyncActive() bool {
	return s.HistorySync.Status.InProgress() || s.CollectionSync.Status.InProgress()
}

// Refresh carries one poll cycle's worth of fresh data into the store.
type Refresh struct {
	HistorySync    *crate.SyncStatus
	CollectionSync *crate.SyncStatus
	ReleaseCheck   *crate.SyncStatus
	Sellers        []crate.Seller
	SellerScans    map[string]crate.SellerScanStatus
	Notifications  []crate.Notification
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(refresh Refresh, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if refresh.HistorySync != nil {
		s.snapshot.HistorySync = *refresh.HistorySync
		s.snapshot.HasStatus = true
	}
	if refresh.CollectionSync != nil {
		s.snapshot.CollectionSync = *refresh.CollectionSync
	}
	if refresh.ReleaseCheck != nil {
		s.snapshot.ReleaseCheck = *refresh.ReleaseCheck
	}
	s.snapshot.Sellers = cloneSlice(refresh.Sellers)
	s.snapshot.SellerScans = cloneScans(refresh.SellerScans)
	s.snapshot.Notifications = cloneSlice(refresh.Notifications)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Sellers = cloneSlice(s.snapshot.Sellers)
	snap.SellerScans = cloneScans(s.snapshot.SellerScans)
	snap.Notifications = cloneSlice(s.snapshot.Notifications)
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

func cloneScans(scans map[string]crate.SellerScanStatus) map[string]crate.SellerScanStatus {
	if len(scans) == 0 {
		return nil
	}
	dup := make(map[string]crate.SellerScanStatus, len(scans))
	for k, v := range scans {
		dup[k] = v
	}
	return dup
}
