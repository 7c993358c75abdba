package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// handleHistoryKey processes keys specific to the listening history view.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		m.history.pager.ToggleSort("date")
		m.setSelection(0)
		return m, m.fetchCurrentView()
	case "a":
		m.history.pager.ToggleSort("artist")
		m.setSelection(0)
		return m, m.fetchCurrentView()

	case "S":
		return m, m.runAction("Scrobble sync started", false, m.client.StartHistorySync)
	case " ":
		if m.snapshot.HistorySync.Status == crate.JobPaused {
			return m, m.runAction("Scrobble sync resumed", false, m.client.ResumeHistorySync)
		}
		if m.snapshot.HistorySync.Status.InProgress() {
			return m, m.runAction("Scrobble sync paused", false, m.client.PauseHistorySync)
		}
		return m, nil

	case "M":
		play := m.selectedPlay()
		name := ""
		if play != nil {
			name = play.Artist
		}
		m.modal = newMappingModal(name)
		return m, nil

	case "m":
		return m, m.runAction("Matching started", false, m.client.RunMatching)
	}
	return m, nil
}

// renderHistory renders the scrobbled plays list.
func (m Model) renderHistory() string {
	plays := m.visiblePlays()
	if len(plays) == 0 && !m.history.loading && !m.searching && !m.filtering {
		if m.history.pager.Search() != "" || m.filterQuery != "" {
			return m.emptyMessage("No plays match")
		}
		return m.emptyMessage("No listening history yet. Press S to sync from Last.fm.")
	}

	p := m.history.pager
	artistW := m.width * 25 / 100
	if artistW < 12 {
		artistW = 12
	}
	albumW := m.width * 35 / 100
	if albumW < 16 {
		albumW = 16
	}

	header := pad("Played"+sortIndicator(p, "date"), 18) +
		pad("Artist"+sortIndicator(p, "artist"), artistW) +
		pad("Album", albumW) +
		"In crate"

	rows := make([]string, 0, len(plays))
	for _, play := range plays {
		played := ""
		if t := play.ParsedPlayedAt(); !t.IsZero() {
			played = t.Format("2006-01-02 15:04")
		}
		inCrate := ""
		if play.InCrate {
			inCrate = "✓"
		}
		rows = append(rows, pad(played, 18)+pad(play.Artist, artistW)+pad(play.Album, albumW)+inCrate)
	}

	return m.renderList(header, rows, m.history.selected, m.listFooter(p, m.history.loading, len(plays)))
}

func (m *Model) selectedPlay() *crate.PlayEntry {
	plays := m.visiblePlays()
	if m.history.selected < 0 || m.history.selected >= len(plays) {
		return nil
	}
	return &plays[m.history.selected]
}
