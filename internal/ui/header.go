package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"stylus/internal/crate"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasStatus {
		return m.renderConnectingHeader(styles, bg)
	}

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderConnectingHeader shows the connecting/error state.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render("stylus", styles.Logo),
			bg.Render("CRATE "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("stylus", styles.Logo) + sep +
			bg.Render("Connecting to crate server...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 100
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("stylus", styles.Logo))

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("● OFF", styles.DangerText))
	} else {
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	}

	if mini := m.formatSyncMini("Scrobbles", m.snapshot.HistorySync, compact, styles, bg); mini != "" {
		parts = append(parts, mini)
	}
	if mini := m.formatSyncMini("Collection", m.snapshot.CollectionSync, compact, styles, bg); mini != "" {
		parts = append(parts, mini)
	}

	if scanning := m.countActiveScans(); scanning > 0 {
		parts = append(parts,
			bg.Render("Scans:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", scanning), styles.InfoText))
	}

	unread := m.snapshot.UnreadCount()
	unreadStyle := styles.MutedText
	if unread > 0 {
		unreadStyle = styles.WarningText
	}
	parts = append(parts,
		bg.Render("Unread:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", unread), unreadStyle))

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", m.snapshot.LastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	if m.notice != "" {
		noticeStyle := styles.InfoText
		prefix := "·"
		if m.noticeErr {
			noticeStyle = styles.WarningText
			prefix = "!"
		}
		parts = append(parts,
			bg.Render(prefix, noticeStyle.Bold(true))+bg.Space()+
				bg.Render(truncate(m.notice, 60), noticeStyle))
	}

	return bg.Join(parts, sep)
}

// formatSyncMini formats a compact sync-progress display for the header.
// Returns "" for idle jobs so the header stays quiet when nothing runs.
func (m Model) formatSyncMini(label string, sync crate.SyncStatus, compact bool, styles Styles, bg BgStyle) string {
	if sync.Status == "" || sync.Status == crate.JobIdle {
		return ""
	}

	statusColor := lipgloss.Color(m.theme.StatusColor(sync.Status))
	statusStyle := lipgloss.NewStyle().Foreground(statusColor)

	var parts []string
	parts = append(parts, bg.Render("♫", statusStyle))
	if !compact {
		parts = append(parts, bg.Render(label, styles.MutedText))
	}
	parts = append(parts, bg.Render(string(sync.Status), statusStyle))

	if sync.Status.InProgress() {
		if sync.Progress > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("%.0f%%", sync.Progress), styles.AccentText))
		}
		if !compact && sync.TotalScrobbles > 0 {
			parts = append(parts, bg.Render(
				fmt.Sprintf("(%d/%d)", sync.ScrobblesFetched, sync.TotalScrobbles), styles.FaintText))
		}
		if eta := sync.ETA(); eta > 0 && !compact {
			parts = append(parts, bg.Render("ETA:"+formatETA(eta), styles.MutedText))
		}
	}
	if sync.Status == crate.JobError && sync.Error != "" {
		parts = append(parts, bg.Render(truncate(sync.Error, 40), styles.DangerText))
	}

	return strings.Join(parts, bg.Space())
}

func (m Model) countActiveScans() int {
	active := 0
	for _, scan := range m.snapshot.SellerScans {
		if scan.Status.InProgress() {
			active++
		}
	}
	return active
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, crate.ErrServerDown) {
		return "OFFLINE"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewCollection:
		commands = []cmd{
			{"/", "Search"},
			{"f", "Filter"},
			{"a/t/y/p", "Sort"},
			{"[ ]", "Page"},
			{"S", "Sync"},
			{"B", "Backup"},
		}
	case ViewHistory:
		commands = []cmd{
			{"/", "Search"},
			{"d/a", "Sort"},
			{"[ ]", "Page"},
			{"S", "Sync"},
			{"space", "Pause"},
			{"M", "Map artist"},
		}
	case ViewSellers:
		commands = []cmd{
			{"a", "Add"},
			{"x", "Remove"},
			{"s", "Scan"},
			{"enter", "Matches"},
			{"R", "Refresh all"},
		}
	case ViewReleases:
		commands = []cmd{
			{"/", "Search"},
			{"[ ]", "Page"},
			{"enter", "Seen"},
			{"S", "Check now"},
		}
	case ViewSuggestions:
		commands = []cmd{
			{"f", "Filter"},
			{"S", "Regenerate"},
		}
	case ViewNotifications:
		commands = []cmd{
			{"enter", "Read"},
			{"A", "Read all"},
			{"x", "Dismiss"},
			{"C", "Clear"},
		}
	}

	commands = append(commands,
		cmd{"1-6", "Views"},
		cmd{"r", "Reload"},
		cmd{"?", "Help"},
	)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+3)
	segments = append(segments,
		bg.Render(m.viewTitle(), lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Accent))))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if p := m.pagerFor(m.currentView); p != nil && p.Search() != "" {
		segments = append(segments, bg.Render("/"+truncate(p.Search(), 18), styles.AccentText))
	}
	if m.filterQuery != "" {
		segments = append(segments, bg.Render("f:"+truncate(m.filterQuery, 18), styles.WarningText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func (m Model) viewTitle() string {
	switch m.currentView {
	case ViewCollection:
		return "Collection"
	case ViewHistory:
		return "History"
	case ViewSellers:
		return "Sellers"
	case ViewReleases:
		return "Releases"
	case ViewSuggestions:
		return "Suggestions"
	case ViewNotifications:
		return "Notifications"
	}
	return ""
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatETA formats a duration for the header, coarsest useful unit only.
func formatETA(d time.Duration) string {
	if d <= 0 {
		return "--"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours >= 24 {
		days := hours / 24
		hours %= 24
		return fmt.Sprintf("~%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("~%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("~%dm", minutes)
	}
	return fmt.Sprintf("~%ds", int(d.Seconds()))
}
