package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// backupExportModal drives a backup export. Including credentials requires an
// encryption password of at least eight characters, entered twice.
type backupExportModal struct {
	includeCredentials bool
	password           textinput.Model
	confirm            textinput.Model
	focusIdx           int // 0 = credentials toggle, 1 = password, 2 = confirm
	err                string
}

func newBackupExportModal() *backupExportModal {
	password := textinput.New()
	password.Placeholder = "password (min 8 chars)"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 32

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128
	confirm.Width = 32

	return &backupExportModal{password: password, confirm: confirm}
}

func (d *backupExportModal) fieldCount() int {
	if d.includeCredentials {
		return 3
	}
	return 1
}

func (d *backupExportModal) refocus() {
	d.password.Blur()
	d.confirm.Blur()
	switch d.focusIdx {
	case 1:
		d.password.Focus()
	case 2:
		d.confirm.Focus()
	}
}

func (d *backupExportModal) Update(msg tea.KeyMsg, app *Model) (Modal, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		return d, nil, true

	case "tab":
		d.focusIdx = (d.focusIdx + 1) % d.fieldCount()
		d.refocus()
		return d, nil, false

	case "shift+tab":
		d.focusIdx = (d.focusIdx + d.fieldCount() - 1) % d.fieldCount()
		d.refocus()
		return d, nil, false

	case " ":
		if d.focusIdx == 0 {
			d.includeCredentials = !d.includeCredentials
			if !d.includeCredentials {
				d.focusIdx = 0
				d.refocus()
			}
			d.err = ""
			return d, nil, false
		}

	case "enter":
		if d.includeCredentials {
			if err := validateBackupPassword(d.password.Value(), d.confirm.Value()); err != nil {
				d.err = err.Error()
				return d, nil, false
			}
		}
		return d, d.submit(app), true
	}

	var cmd tea.Cmd
	switch d.focusIdx {
	case 1:
		d.password, cmd = d.password.Update(msg)
	case 2:
		d.confirm, cmd = d.confirm.Update(msg)
	}
	d.err = ""
	return d, cmd, false
}

func (d *backupExportModal) submit(app *Model) tea.Cmd {
	req := crate.ExportRequest{IncludeCredentials: d.includeCredentials}
	if d.includeCredentials {
		req.Password = d.password.Value()
	}
	ctx := app.ctx
	client, localCache := app.client, app.cache
	return func() tea.Msg {
		payload, err := client.ExportBackup(ctx, req)
		if err != nil {
			return actionMsg{err: err}
		}
		path := backupExportPath(time.Now())
		if err := os.WriteFile(path, payload, 0o600); err != nil {
			return actionMsg{err: fmt.Errorf("write backup: %w", err)}
		}
		if localCache != nil {
			_, _ = localCache.AddLocalNotification(crate.NotifySuccess, "Backup exported", path)
		}
		return actionMsg{notice: "Backup written to " + path}
	}
}

func backupExportPath(now time.Time) string {
	name := "stylus-backup-" + now.Format("20060102-150405") + ".json"
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

func (d *backupExportModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	check := "[ ]"
	if d.includeCredentials {
		check = "[x]"
	}
	toggleStyle := styles.MutedText
	if d.focusIdx == 0 {
		toggleStyle = styles.AccentText
	}
	content := toggleStyle.Render(check+" Include credentials (space to toggle)") + "\n"

	if d.includeCredentials {
		content += "\n" + styles.MutedText.Render("Encryption password") + "\n" +
			d.password.View() + "\n\n" +
			styles.MutedText.Render("Confirm password") + "\n" +
			d.confirm.View() + "\n"
	}

	content += renderModalError(theme, d.err) +
		renderModalHint(theme, "enter: export  ·  esc: cancel")
	return renderModalBox(theme, width, height, "Export backup", content)
}

// backupImportModal restores a backup file, either merging into or replacing
// the current library.
type backupImportModal struct {
	path     textinput.Model
	password textinput.Model
	replace  bool
	focusIdx int // 0 = path, 1 = mode toggle, 2 = password
	err      string
}

func newBackupImportModal() *backupImportModal {
	path := textinput.New()
	path.Placeholder = "/path/to/stylus-backup.json"
	path.CharLimit = 256
	path.Width = 40
	path.Focus()

	password := textinput.New()
	password.Placeholder = "password (if encrypted)"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 32

	return &backupImportModal{path: path, password: password}
}

func (d *backupImportModal) refocus() {
	d.path.Blur()
	d.password.Blur()
	switch d.focusIdx {
	case 0:
		d.path.Focus()
	case 2:
		d.password.Focus()
	}
}

func (d *backupImportModal) Update(msg tea.KeyMsg, app *Model) (Modal, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		return d, nil, true

	case "tab":
		d.focusIdx = (d.focusIdx + 1) % 3
		d.refocus()
		return d, nil, false

	case "shift+tab":
		d.focusIdx = (d.focusIdx + 2) % 3
		d.refocus()
		return d, nil, false

	case " ":
		if d.focusIdx == 1 {
			d.replace = !d.replace
			d.err = ""
			return d, nil, false
		}

	case "enter":
		path := d.path.Value()
		if path == "" {
			d.err = "backup file path is required"
			return d, nil, false
		}
		return d, d.submit(app), true
	}

	var cmd tea.Cmd
	switch d.focusIdx {
	case 0:
		d.path, cmd = d.path.Update(msg)
	case 2:
		d.password, cmd = d.password.Update(msg)
	}
	d.err = ""
	return d, cmd, false
}

func (d *backupImportModal) submit(app *Model) tea.Cmd {
	mode := crate.BackupMerge
	if d.replace {
		mode = crate.BackupReplace
	}
	path := d.path.Value()
	password := d.password.Value()
	ctx := app.ctx
	client := app.client
	return func() tea.Msg {
		payload, err := os.ReadFile(path)
		if err != nil {
			return actionMsg{err: fmt.Errorf("read backup: %w", err)}
		}
		req := crate.ImportRequest{Mode: mode, Password: password, Payload: payload}
		if err := client.ImportBackup(ctx, req); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{notice: "Backup imported", reload: true}
	}
}

func (d *backupImportModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	mode := "merge"
	if d.replace {
		mode = "replace"
	}
	modeStyle := styles.MutedText
	if d.focusIdx == 1 {
		modeStyle = styles.AccentText
	}

	content := styles.MutedText.Render("Backup file") + "\n" +
		d.path.View() + "\n\n" +
		modeStyle.Render("Mode: "+mode+" (space to toggle)") + "\n\n" +
		styles.MutedText.Render("Password") + "\n" +
		d.password.View() + "\n" +
		renderModalError(theme, d.err) +
		renderModalHint(theme, "tab: next field  ·  enter: import  ·  esc: cancel")
	return renderModalBox(theme, width, height, "Import backup", content)
}
