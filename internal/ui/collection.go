package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// handleCollectionKey processes keys specific to the collection view.
func (m Model) handleCollectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m.toggleCollectionSort("artist")
	case "t":
		return m.toggleCollectionSort("title")
	case "y":
		return m.toggleCollectionSort("year")
	case "p":
		return m.toggleCollectionSort("playCount")
	case "d":
		return m.toggleCollectionSort("addedAt")

	case "S":
		return m, m.runAction("Collection sync started", false, m.client.StartCollectionSync)
	case " ":
		if m.snapshot.CollectionSync.Status == crate.JobPaused {
			return m, m.runAction("Collection sync resumed", false, m.client.ResumeCollectionSync)
		}
		if m.snapshot.CollectionSync.Status.InProgress() {
			return m, m.runAction("Collection sync paused", false, m.client.PauseCollectionSync)
		}
		return m, nil
	case "X":
		if m.snapshot.CollectionSync.Status.InProgress() {
			return m, m.runAction("Collection sync cancelled", false, m.client.CancelCollectionSync)
		}
		return m, nil

	case "B":
		m.modal = newBackupExportModal()
		return m, nil
	case "I":
		m.modal = newBackupImportModal()
		return m, nil
	}
	return m, nil
}

func (m Model) toggleCollectionSort(field string) (tea.Model, tea.Cmd) {
	m.collection.pager.ToggleSort(field)
	m.setSelection(0)
	return m, m.fetchCurrentView()
}

// renderCollection renders the album list.
func (m Model) renderCollection() string {
	albums := m.visibleAlbums()
	if len(albums) == 0 && !m.collection.loading && !m.searching && !m.filtering {
		if m.collection.pager.Search() != "" || m.filterQuery != "" {
			return m.emptyMessage("No albums match")
		}
		return m.emptyMessage("Collection is empty. Press S to sync from Discogs.")
	}

	p := m.collection.pager
	artistW, titleW, yearW, playsW := collectionColumns(m.width)

	header := pad("Artist"+sortIndicator(p, "artist"), artistW) +
		pad("Title"+sortIndicator(p, "title"), titleW) +
		pad("Year"+sortIndicator(p, "year"), yearW) +
		pad("Plays"+sortIndicator(p, "playCount"), playsW) +
		"Last played"

	rows := make([]string, 0, len(albums))
	for _, album := range albums {
		rows = append(rows, formatAlbumRow(album, artistW, titleW, yearW, playsW))
	}

	return m.renderList(header, rows, m.collection.selected, m.listFooter(p, m.collection.loading, len(albums)))
}

func collectionColumns(width int) (artist, title, year, plays int) {
	artist = width * 25 / 100
	title = width * 35 / 100
	year = 6
	plays = 7
	if artist < 12 {
		artist = 12
	}
	if title < 16 {
		title = 16
	}
	return
}

func formatAlbumRow(album crate.Album, artistW, titleW, yearW, playsW int) string {
	year := ""
	if album.Year > 0 {
		year = fmt.Sprintf("%d", album.Year)
	}
	last := ""
	if t := album.ParsedLastPlayed(); !t.IsZero() {
		last = t.Format("2006-01-02")
	}
	return pad(album.Artist, artistW) +
		pad(album.Title, titleW) +
		pad(year, yearW) +
		pad(fmt.Sprintf("%d", album.PlayCount), playsW) +
		last
}

// selectedAlbum returns the album under the cursor, nil when none.
func (m *Model) selectedAlbum() *crate.Album {
	albums := m.visibleAlbums()
	if m.collection.selected < 0 || m.collection.selected >= len(albums) {
		return nil
	}
	return &albums[m.collection.selected]
}
