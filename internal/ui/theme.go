package ui

import (
	"github.com/charmbracelet/lipgloss"

	"stylus/internal/crate"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // outermost background
	Surface    string // header and command bar
	SurfaceAlt string // content panels

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Per-job-status colors
	StatusColors map[crate.JobStatus]string
}

// StatusColor returns the color for a job status, falling back to muted.
func (t Theme) StatusColor(status crate.JobStatus) string {
	if color, ok := t.StatusColors[status]; ok {
		return color
	}
	return t.Muted
}

// NotificationColor returns the accent color for a notification type.
func (t Theme) NotificationColor(kind crate.NotificationType) string {
	switch kind {
	case crate.NotifySuccess:
		return t.Success
	case crate.NotifyWarning:
		return t.Warning
	case crate.NotifyAlert:
		return t.Danger
	default:
		return t.Info
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Nord":    nordTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Background: "#1e1f29",
		Surface:    "#282a36",
		SurfaceAlt: "#313442",

		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",

		Text:    "#f8f8f2",
		Muted:   "#9ea8c7",
		Faint:   "#6272a4",
		Accent:  "#bd93f9",
		Success: "#50fa7b",
		Warning: "#f1fa8c",
		Danger:  "#ff5555",
		Info:    "#8be9fd",

		StatusColors: map[crate.JobStatus]string{
			crate.JobIdle:      "#6272a4",
			crate.JobSyncing:   "#8be9fd",
			crate.JobPaused:    "#f1fa8c",
			crate.JobScanning:  "#bd93f9",
			crate.JobMatching:  "#ff79c6",
			crate.JobCompleted: "#50fa7b",
			crate.JobError:     "#ff5555",
		},
	}
}

func nordTheme() Theme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Theme{
		Name: "Nord",

		Background: "#2e3440",
		Surface:    "#3b4252",
		SurfaceAlt: "#434c5e",

		SelectionBg:   "#4c566a",
		SelectionText: "#eceff4",

		Border:      "#4c566a",
		BorderFocus: "#88c0d0",

		Text:    "#eceff4",
		Muted:   "#aab4c7",
		Faint:   "#7b88a1",
		Accent:  "#88c0d0",
		Success: "#a3be8c",
		Warning: "#ebcb8b",
		Danger:  "#bf616a",
		Info:    "#81a1c1",

		StatusColors: map[crate.JobStatus]string{
			crate.JobIdle:      "#7b88a1",
			crate.JobSyncing:   "#81a1c1",
			crate.JobPaused:    "#ebcb8b",
			crate.JobScanning:  "#88c0d0",
			crate.JobMatching:  "#b48ead",
			crate.JobCompleted: "#a3be8c",
			crate.JobError:     "#bf616a",
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: map[crate.JobStatus]string{
			crate.JobIdle:      "#64748b", // slate-500
			crate.JobSyncing:   "#0ea5e9", // sky-500
			crate.JobPaused:    "#f59e0b", // amber-500
			crate.JobScanning:  "#38bdf8", // sky-400
			crate.JobMatching:  "#22d3ee", // cyan-400
			crate.JobCompleted: "#16a34a", // green-600
			crate.JobError:     "#dc2626", // red-600
		},
	}
}
