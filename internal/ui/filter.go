package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"stylus/internal/crate"
)

// fuzzySource adapts a slice to the fuzzy matcher.
type fuzzySource[T any] struct {
	items  []T
	target func(T) string
}

func (s fuzzySource[T]) String(i int) string { return s.target(s.items[i]) }
func (s fuzzySource[T]) Len() int            { return len(s.items) }

// fuzzyFilter narrows items to those matching the query, best matches first.
// An empty query returns the input unchanged.
func fuzzyFilter[T any](items []T, query string, target func(T) string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	matches := fuzzy.FindFrom(query, fuzzySource[T]{items: items, target: target})
	out := make([]T, 0, len(matches))
	for _, match := range matches {
		out = append(out, items[match.Index])
	}
	return out
}

// visibleAlbums applies the quick filter to the loaded collection page.
func (m *Model) visibleAlbums() []crate.Album {
	return fuzzyFilter(m.albums, m.filterQuery, func(a crate.Album) string {
		return a.Artist + " " + a.Title
	})
}

func (m *Model) visiblePlays() []crate.PlayEntry {
	return fuzzyFilter(m.plays, m.filterQuery, func(p crate.PlayEntry) string {
		return p.Artist + " " + p.Album
	})
}

func (m *Model) visibleReleases() []crate.Release {
	return fuzzyFilter(m.releaseRows, m.filterQuery, func(r crate.Release) string {
		return r.Artist + " " + r.Title
	})
}

func (m *Model) visibleSuggestions() []crate.Suggestion {
	return fuzzyFilter(m.suggestions, m.filterQuery, func(s crate.Suggestion) string {
		return s.Artist + " " + s.Title
	})
}
