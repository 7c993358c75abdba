package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestValidateSellerUsername(t *testing.T) {
	if err := validateSellerUsername("waxtrader"); err != nil {
		t.Fatalf("valid username rejected: %v", err)
	}
	if err := validateSellerUsername("   "); err == nil {
		t.Fatalf("blank username accepted")
	}
}

func TestValidateBackupPassword(t *testing.T) {
	if err := validateBackupPassword("longenough", "longenough"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	if err := validateBackupPassword("short", "short"); err == nil {
		t.Fatalf("7-char password accepted")
	}
	if err := validateBackupPassword("longenough", "different1"); err == nil {
		t.Fatalf("mismatched confirmation accepted")
	}
}

func TestValidateMapping(t *testing.T) {
	id, err := validateMapping("Sun Ra Arkestra", " 42 ")
	if err != nil {
		t.Fatalf("valid mapping rejected: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}

	if _, err := validateMapping("", "42"); err == nil {
		t.Fatalf("empty history name accepted")
	}
	if _, err := validateMapping("Sun Ra", "not-a-number"); err == nil {
		t.Fatalf("non-numeric id accepted")
	}
	if _, err := validateMapping("Sun Ra", "-3"); err == nil {
		t.Fatalf("negative id accepted")
	}
}

func TestBackupExportModal_ValidationBlocksSubmit(t *testing.T) {
	d := newBackupExportModal()
	d.includeCredentials = true
	d.password.SetValue("short")
	d.confirm.SetValue("short")

	// A nil client would panic if the modal submitted; validation must stop
	// it first.
	app := &Model{}
	modal, cmd, closed := d.Update(keyMsg("enter"), app)
	if closed {
		t.Fatalf("modal closed despite invalid password")
	}
	if cmd != nil {
		t.Fatalf("modal produced a command despite invalid password")
	}
	if got := modal.(*backupExportModal).err; !strings.Contains(got, "8 characters") {
		t.Fatalf("err = %q, want minimum-length message", got)
	}
}

func TestBackupExportModal_NoCredentialsSkipsPassword(t *testing.T) {
	d := newBackupExportModal()
	if d.fieldCount() != 1 {
		t.Fatalf("fieldCount = %d without credentials, want 1", d.fieldCount())
	}
	d.includeCredentials = true
	if d.fieldCount() != 3 {
		t.Fatalf("fieldCount = %d with credentials, want 3", d.fieldCount())
	}
}

func TestAddSellerModal_RejectsBlankUsername(t *testing.T) {
	d := newAddSellerModal()
	d.input.SetValue("   ")

	app := &Model{}
	modal, cmd, closed := d.Update(keyMsg("enter"), app)
	if closed || cmd != nil {
		t.Fatalf("blank username submitted (closed=%v cmd=%v)", closed, cmd != nil)
	}
	if modal.(*addSellerModal).err == "" {
		t.Fatalf("no validation error recorded")
	}
}

func TestBackupExportPath(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	path := backupExportPath(now)
	if !strings.Contains(path, "stylus-backup-20260314-092653.json") {
		t.Fatalf("path = %q, want timestamped backup name", path)
	}
}
