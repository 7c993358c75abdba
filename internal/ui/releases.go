package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// handleReleasesKey processes keys specific to the new-releases view.
func (m Model) handleReleasesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		release := m.selectedRelease()
		if release == nil || release.Seen {
			return m, nil
		}
		id := release.ID
		client := m.client
		return m, m.runAction("Marked seen", true, func(ctx context.Context) error {
			return client.MarkReleaseSeen(ctx, id)
		})

	case "S":
		return m, m.runAction("Release check started", false, m.client.StartReleaseCheck)
	}
	return m, nil
}

// renderReleases renders tracked new releases.
func (m Model) renderReleases() string {
	releases := m.visibleReleases()
	if len(releases) == 0 && !m.releases.loading && !m.searching && !m.filtering {
		return m.emptyMessage("No new releases. Press S to check now.")
	}

	p := m.releases.pager
	artistW := m.width * 22 / 100
	if artistW < 12 {
		artistW = 12
	}
	titleW := m.width * 30 / 100
	if titleW < 16 {
		titleW = 16
	}

	header := pad("", 2) + pad("Artist", artistW) + pad("Title", titleW) +
		pad("Date", 12) + pad("Format", 10) + "Label"

	rows := make([]string, 0, len(releases))
	for _, release := range releases {
		marker := "•"
		if release.Seen {
			marker = " "
		}
		date := ""
		if t := release.ParsedReleaseDate(); !t.IsZero() {
			date = t.Format("2006-01-02")
		}
		rows = append(rows,
			pad(marker, 2)+
				pad(release.Artist, artistW)+
				pad(release.Title, titleW)+
				pad(date, 12)+
				pad(release.Format, 10)+
				release.Label)
	}

	return m.renderList(header, rows, m.releases.selected, m.listFooter(p, m.releases.loading, len(releases)))
}

func (m *Model) selectedRelease() *crate.Release {
	releases := m.visibleReleases()
	if m.releases.selected < 0 || m.releases.selected >= len(releases) {
		return nil
	}
	return &releases[m.releases.selected]
}
