package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs. Update returns the updated modal,
// a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.KeyMsg, app *Model) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal, cmd, closed := m.modal.Update(msg, &m)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

func (m Model) renderModalOverlay() string {
	return m.modal.View(m.theme, m.width, m.height)
}

// renderModalBox centers a bordered dialog in the full window.
func renderModalBox(theme Theme, width, height int, title, content string) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(content)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(52)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func renderModalError(theme Theme, err string) string {
	if err == "" {
		return ""
	}
	return "\n" + theme.Styles().DangerText.Render(err) + "\n"
}

func renderModalHint(theme Theme, hint string) string {
	return "\n" + theme.Styles().FaintText.Render(hint)
}

// Validation rules shared by the dialogs. All of these run before any request
// is sent, so a dialog with bad input never touches the network.

const minBackupPasswordLen = 8

func validateSellerUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func validateBackupPassword(password, confirm string) error {
	if len(password) < minBackupPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minBackupPasswordLen)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func validateMapping(historyName, idText string) (int64, error) {
	if strings.TrimSpace(historyName) == "" {
		return 0, fmt.Errorf("history name is required")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("collection id must be a positive number")
	}
	return id, nil
}
