package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stylus/internal/crate"
	"stylus/internal/pager"
)

// renderList lays out a column header, selectable rows, and a footer line
// inside the content area below the two header bars.
func (m Model) renderList(header string, rows []string, selected int, footer string) string {
	contentHeight := m.height - 2
	if contentHeight < 3 {
		contentHeight = 3
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.FaintText.Bold(true).Render(truncate(header, m.width)))
	b.WriteString("\n")

	// One line for the header, one for the footer.
	visible := contentHeight - 2
	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}

	lineStyle := lipgloss.NewStyle().Width(m.width)
	selectedStyle := styles.Selected.Width(m.width)

	written := 0
	for i := start; i < len(rows) && written < visible; i++ {
		if i == selected {
			b.WriteString(selectedStyle.Render(rows[i]))
		} else {
			b.WriteString(lineStyle.Render(rows[i]))
		}
		b.WriteString("\n")
		written++
	}
	for ; written < visible; written++ {
		b.WriteString("\n")
	}

	b.WriteString(footer)
	return b.String()
}

// listFooter builds the bottom line: search prompt while typing, otherwise
// pagination state and row totals.
func (m Model) listFooter(p *pager.Controller, loading bool, count int) string {
	styles := m.theme.Styles()

	if m.searching || m.filtering {
		label := "Search"
		if m.filtering {
			label = "Filter"
		}
		return styles.AccentText.Render(label+": ") + m.searchInput.View()
	}

	var parts []string

	if p != nil && p.ShowPagination() {
		prev := "‹"
		next := "›"
		prevStyle := styles.AccentText
		nextStyle := styles.AccentText
		if !p.CanPrev() {
			prevStyle = styles.FaintText
		}
		if !p.CanNext() {
			nextStyle = styles.FaintText
		}
		parts = append(parts,
			prevStyle.Render(prev)+" "+styles.MutedText.Render(p.PageLabel())+" "+nextStyle.Render(next))
	}

	if p != nil && p.Total() > 0 {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%d total", p.Total())))
	} else if count > 0 {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%d items", count)))
	}

	if loading {
		parts = append(parts, styles.InfoText.Render("loading..."))
	}

	return strings.Join(parts, styles.FaintText.Render("  ·  "))
}

// sortIndicator marks the active sort column.
func sortIndicator(p *pager.Controller, field string) string {
	if p == nil || p.SortBy() != field {
		return ""
	}
	if p.SortOrder() == crate.SortAsc {
		return " ↑"
	}
	return " ↓"
}

// emptyMessage centers a hint in the content area.
func (m Model) emptyMessage(text string) string {
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
		m.theme.Styles().MutedText.Render(text))
}

// pad right-pads or truncates a cell to a fixed width.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate(s, width)
	if len(s) < width {
		s += strings.Repeat(" ", width-len(s))
	}
	return s
}
