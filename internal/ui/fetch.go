package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/cache"
	"stylus/internal/crate"
	"stylus/internal/state"
)

type albumsMsg struct {
	seq  uint64
	page crate.Page[crate.Album]
	err  error
}

type playsMsg struct {
	seq  uint64
	page crate.Page[crate.PlayEntry]
	err  error
}

type releasesMsg struct {
	seq  uint64
	page crate.Page[crate.Release]
	err  error
}

type suggestionsMsg struct {
	items []crate.Suggestion
	err   error
}

// fetchCurrentView kicks off the data load for the active view.
func (m *Model) fetchCurrentView() tea.Cmd {
	return m.fetchView(m.currentView)
}

func (m *Model) fetchView(v View) tea.Cmd {
	switch v {
	case ViewCollection:
		return m.fetchCollection()
	case ViewHistory:
		return m.fetchHistory()
	case ViewReleases:
		return m.fetchReleases()
	case ViewSuggestions:
		return m.fetchSuggestions(false)
	}
	// Sellers and notifications arrive with the poller snapshot.
	return nil
}

func (m *Model) fetchCollection() tea.Cmd {
	p := m.collection.pager
	query := p.Query()
	if len(m.albums) == 0 && m.cache != nil {
		if cached, ok := cache.GetPage[crate.Album](m.cache, cache.PageKey("collection", query)); ok {
			m.albums = cached.Items
		}
	}
	m.collection.loading = true
	seq := p.Issue()
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		page, err := client.FetchCollection(ctx, query)
		return albumsMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) fetchHistory() tea.Cmd {
	p := m.history.pager
	query := p.Query()
	if len(m.plays) == 0 && m.cache != nil {
		if cached, ok := cache.GetPage[crate.PlayEntry](m.cache, cache.PageKey("history", query)); ok {
			m.plays = cached.Items
		}
	}
	m.history.loading = true
	seq := p.Issue()
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		page, err := client.FetchHistory(ctx, query)
		return playsMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) fetchReleases() tea.Cmd {
	p := m.releases.pager
	query := p.Query()
	m.releases.loading = true
	seq := p.Issue()
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		page, err := client.FetchReleases(ctx, query)
		return releasesMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) fetchSuggestions(refresh bool) tea.Cmd {
	m.suggestionsLoading = true
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		var (
			items []crate.Suggestion
			err   error
		)
		if refresh {
			items, err = client.RefreshSuggestions(ctx)
		} else {
			items, err = client.FetchSuggestions(ctx)
		}
		return suggestionsMsg{items: items, err: err}
	}
}

func (m Model) handleAlbums(msg albumsMsg) (tea.Model, tea.Cmd) {
	p := m.collection.pager
	if msg.err != nil {
		if !p.Stale(msg.seq) {
			m.collection.loading = false
			m.setNotice(msg.err.Error(), true)
		}
		return m, nil
	}
	// Accept rejects responses from superseded fetches, so a slow page 1
	// can never overwrite a faster page 2.
	if !p.Accept(msg.seq, msg.page.Pagination) {
		return m, nil
	}
	m.collection.loading = false
	m.albums = msg.page.Items
	clampCursor(&m.collection.selected, len(m.albums))
	if m.cache != nil {
		_ = cache.PutPage(m.cache, cache.PageKey("collection", p.Query()), msg.page)
	}
	return m, nil
}

func (m Model) handlePlays(msg playsMsg) (tea.Model, tea.Cmd) {
	p := m.history.pager
	if msg.err != nil {
		if !p.Stale(msg.seq) {
			m.history.loading = false
			m.setNotice(msg.err.Error(), true)
		}
		return m, nil
	}
	if !p.Accept(msg.seq, msg.page.Pagination) {
		return m, nil
	}
	m.history.loading = false
	m.plays = msg.page.Items
	clampCursor(&m.history.selected, len(m.plays))
	if m.cache != nil {
		_ = cache.PutPage(m.cache, cache.PageKey("history", p.Query()), msg.page)
	}
	return m, nil
}

func (m Model) handleReleases(msg releasesMsg) (tea.Model, tea.Cmd) {
	p := m.releases.pager
	if msg.err != nil {
		if !p.Stale(msg.seq) {
			m.releases.loading = false
			m.setNotice(msg.err.Error(), true)
		}
		return m, nil
	}
	if !p.Accept(msg.seq, msg.page.Pagination) {
		return m, nil
	}
	m.releases.loading = false
	m.releaseRows = msg.page.Items
	clampCursor(&m.releases.selected, len(m.releaseRows))
	return m, nil
}

// refetchCompleted issues one dependent-list refetch for every job that moved
// from an in-progress state into completed between two snapshots. Jobs that
// were already terminal, or that finished in the error state, fetch nothing.
func (m *Model) refetchCompleted(prev state.Snapshot) tea.Cmd {
	var cmds []tea.Cmd
	if completedEdge(prev.HistorySync.Status, m.snapshot.HistorySync.Status) {
		if m.cache != nil {
			m.cache.InvalidateView("history")
		}
		cmds = append(cmds, m.fetchView(ViewHistory))
	}
	if completedEdge(prev.CollectionSync.Status, m.snapshot.CollectionSync.Status) {
		if m.cache != nil {
			m.cache.InvalidateView("collection")
		}
		cmds = append(cmds, m.fetchView(ViewCollection))
	}
	if completedEdge(prev.ReleaseCheck.Status, m.snapshot.ReleaseCheck.Status) {
		cmds = append(cmds, m.fetchView(ViewReleases))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func completedEdge(prev, next crate.JobStatus) bool {
	return prev.InProgress() && next == crate.JobCompleted
}

func (m Model) handleAction(msg actionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(msg.err.Error(), true)
		return m, nil
	}
	if msg.notice != "" {
		m.setNotice(msg.notice, false)
	}
	if msg.reload {
		return m, tea.Batch(m.fetchCurrentView(), fetchSnapshotCmd(m.store))
	}
	return m, nil
}

// runAction wraps a client call into a command that reports back via actionMsg.
func (m *Model) runAction(notice string, reload bool, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{notice: notice, reload: reload}
	}
}

func clampCursor(sel *int, count int) {
	if count == 0 {
		*sel = 0
		return
	}
	if *sel >= count {
		*sel = count - 1
	}
	if *sel < 0 {
		*sel = 0
	}
}
