package ui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"stylus/internal/crate"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is a longer string", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{crate.ErrServerDown, "OFFLINE"},
		{fmt.Errorf("health check: %w", crate.ErrServerDown), "OFFLINE"},
		{errors.New("dial tcp: connection refused"), "OFFLINE"},
		{errors.New("lookup crate.local: no such host"), "HOST NOT FOUND"},
		{errors.New("context deadline exceeded"), "TIMEOUT"},
		{errors.New("something else"), "ERROR"},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(tc.err); got != tc.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestFormatETA(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "--"},
		{-time.Minute, "--"},
		{45 * time.Second, "~45s"},
		{3 * time.Minute, "~3m"},
		{90 * time.Minute, "~1h 30m"},
		{26 * time.Hour, "~1d 2h"},
	}
	for _, tc := range cases {
		if got := formatETA(tc.d); got != tc.want {
			t.Fatalf("formatETA(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestViewFromName(t *testing.T) {
	if got := ViewFromName("sellers"); got != ViewSellers {
		t.Fatalf("ViewFromName(sellers) = %d, want ViewSellers", got)
	}
	if got := ViewFromName("  Releases "); got != ViewReleases {
		t.Fatalf("ViewFromName with padding = %d, want ViewReleases", got)
	}
	if got := ViewFromName("bogus"); got != ViewCollection {
		t.Fatalf("ViewFromName(bogus) = %d, want ViewCollection (default)", got)
	}
}
