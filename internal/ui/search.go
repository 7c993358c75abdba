package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchKey processes input while the search or quick-filter prompt is
// open. Server-side search commits after a quiet window; the quick filter is
// applied live to the rows already on screen.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		if m.filtering {
			m.filtering = false
			m.filterQuery = ""
			return m, nil
		}
		m.searching = false
		if p := m.pagerFor(m.currentView); p != nil && p.ClearSearch() {
			m.setSelection(0)
			return m, m.fetchCurrentView()
		}
		return m, nil

	case "enter":
		m.searchInput.Blur()
		if m.filtering {
			m.filtering = false
			m.filterQuery = strings.TrimSpace(m.searchInput.Value())
			m.setSelection(0)
			return m, nil
		}
		m.searching = false
		p := m.pagerFor(m.currentView)
		if p == nil {
			return m, nil
		}
		// Enter skips the remaining quiet window.
		gen := p.SetSearchInput(m.searchInput.Value())
		if p.CommitSearch(gen) {
			m.setSelection(0)
			return m, m.fetchCurrentView()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.filtering {
		m.filterQuery = m.searchInput.Value()
		m.setSelection(0)
		return m, cmd
	}

	p := m.pagerFor(m.currentView)
	if p == nil {
		return m, cmd
	}
	gen := p.SetSearchInput(m.searchInput.Value())
	view := m.currentView
	debounce := tea.Tick(p.DebounceWindow(), func(time.Time) tea.Msg {
		return searchDebouncedMsg{view: view, gen: gen}
	})
	return m, tea.Batch(cmd, debounce)
}

// handleSearchDebounced fires when one keystroke's quiet window elapses. Only
// the newest generation commits, so a burst of typing produces one fetch.
func (m Model) handleSearchDebounced(msg searchDebouncedMsg) (tea.Model, tea.Cmd) {
	p := m.pagerFor(msg.view)
	if p == nil || !p.CommitSearch(msg.gen) {
		return m, nil
	}
	if msg.view == m.currentView {
		m.setSelection(0)
	}
	return m, m.fetchView(msg.view)
}
