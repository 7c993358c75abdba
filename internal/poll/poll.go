// Package poll implements the poll-until-terminal loop used for every server
// job: fetch the job status at a fixed cadence while it reports an in-progress
// state and stop the moment it leaves that set.
package poll

import (
	"context"
	"fmt"
	"time"

	"stylus/internal/crate"
)

// DefaultInterval is the poll cadence when none is configured.
const DefaultInterval = 2 * time.Second

// Update is delivered to the watcher's callback after every fetch. Err is set
// when the fetch itself failed; Status is only meaningful when Err is nil.
type Update struct {
	Status crate.JobStatus
	Err    error
}

// Watcher polls one job's status endpoint until the job reaches a terminal
// state. Polling is fixed-interval with no backoff, which mirrors the server's
// expectations: job status calls are cheap and local.
type Watcher struct {
	// Fetch retrieves the current job status. Required.
	Fetch func(ctx context.Context) (crate.JobStatus, error)

	// Interval between polls. Zero uses DefaultInterval.
	Interval time.Duration

	// OnUpdate, when set, observes every fetch result.
	OnUpdate func(Update)

	// OnComplete, when set, runs exactly once if the job transitions from an
	// in-progress state into completed. It does not run when the job was
	// already terminal on the first fetch, and never runs on error.
	OnComplete func()
}

// Run polls until the job leaves the in-progress set or the context is
// cancelled. It returns the final observed status. Fetch errors do not stop
// the loop; the job may still be running even when a poll fails.
func (w Watcher) Run(ctx context.Context) (crate.JobStatus, error) {
	if w.Fetch == nil {
		return "", fmt.Errorf("watcher fetch is nil")
	}
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	status, err := w.fetchOnce(ctx)
	if err == nil && !status.InProgress() {
		return status, nil
	}

	sawInProgress := err == nil && status.InProgress()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}

		next, err := w.fetchOnce(ctx)
		if err != nil {
			continue
		}
		status = next
		if status.InProgress() {
			sawInProgress = true
			continue
		}
		if status == crate.JobCompleted && sawInProgress && w.OnComplete != nil {
			w.OnComplete()
		}
		return status, nil
	}
}

func (w Watcher) fetchOnce(ctx context.Context) (crate.JobStatus, error) {
	status, err := w.Fetch(ctx)
	if w.OnUpdate != nil {
		w.OnUpdate(Update{Status: status, Err: err})
	}
	return status, err
}
