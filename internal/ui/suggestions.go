package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleSuggestionsKey processes keys specific to the suggestions view.
func (m Model) handleSuggestionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "S" {
		m.setNotice("Regenerating suggestions, this can take a while", false)
		return m, m.fetchSuggestions(true)
	}
	return m, nil
}

// renderSuggestions renders listening suggestions with their reasons.
func (m Model) renderSuggestions() string {
	suggestions := m.visibleSuggestions()
	if len(suggestions) == 0 && !m.suggestionsLoading && !m.filtering {
		return m.emptyMessage("No suggestions yet. Press S to generate some.")
	}

	artistW := m.width * 22 / 100
	if artistW < 12 {
		artistW = 12
	}
	titleW := m.width * 28 / 100
	if titleW < 16 {
		titleW = 16
	}

	header := pad("Artist", artistW) + pad("Title", titleW) + pad("Score", 7) + "Why"

	rows := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows,
			pad(s.Artist, artistW)+
				pad(s.Title, titleW)+
				pad(fmt.Sprintf("%.1f", s.Score), 7)+
				s.Reason)
	}

	footer := m.listFooter(nil, m.suggestionsLoading, len(suggestions))
	return m.renderList(header, rows, m.suggestionsSelected, footer)
}
