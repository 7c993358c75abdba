package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"stylus/internal/crate"
)

func runCLI(t *testing.T, serverURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	writePagedEnvelope(t, w, data, nil)
}

func writePagedEnvelope(t *testing.T, w http.ResponseWriter, data any, pagination *crate.Pagination) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]any{"success": true, "data": data}
	if pagination != nil {
		payload["pagination"] = pagination
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Errorf("encode envelope: %v", err)
	}
}
