package ui

import (
	"testing"

	"stylus/internal/crate"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Nord" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Nord Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nord" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nord", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got.Name)
		}
	}
	if got := GetTheme("Unknown"); got.Name != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got.Name)
	}
}

func TestStatusColorFallback(t *testing.T) {
	th := GetTheme("Dracula")
	if got := th.StatusColor(crate.JobSyncing); got != th.StatusColors[crate.JobSyncing] {
		t.Fatalf("StatusColor(syncing) = %q, want %q", got, th.StatusColors[crate.JobSyncing])
	}
	if got := th.StatusColor(crate.JobStatus("bogus")); got != th.Muted {
		t.Fatalf("StatusColor(bogus) = %q, want muted %q", got, th.Muted)
	}
}

func TestNotificationColor(t *testing.T) {
	th := GetTheme("Nord")
	cases := []struct {
		kind crate.NotificationType
		want string
	}{
		{crate.NotifySuccess, th.Success},
		{crate.NotifyWarning, th.Warning},
		{crate.NotifyAlert, th.Danger},
		{crate.NotifyInfo, th.Info},
		{crate.NotificationType("other"), th.Info},
	}
	for _, tc := range cases {
		if got := th.NotificationColor(tc.kind); got != tc.want {
			t.Fatalf("NotificationColor(%s) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
