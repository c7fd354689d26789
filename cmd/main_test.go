package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestRunList(t *testing.T) {
	path := writeSettings(t, "default_pattern: box\n")
	if err := run([]string{"--config", path, "--list"}); err != nil {
		t.Fatalf("run(--list): %v", err)
	}
}

func TestRunStopsAfterCycles(t *testing.T) {
	path := writeSettings(t, `patterns:
  - id: quick
    phases:
      - {label: inhale, seconds: 1}
      - {label: exhale, seconds: 1}
`)
	if err := run([]string{"--config", path, "--pattern", "quick", "--tick", "1ms", "--cycles", "2"}); err != nil {
		t.Fatalf("run(): %v", err)
	}
}

func TestRunRejectsUnknownPattern(t *testing.T) {
	path := writeSettings(t, "")
	if err := run([]string{"--config", path, "--pattern", "missing"}); err == nil {
		t.Fatalf("run() accepted an unknown pattern")
	}
}

func TestRunRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "positional", args: []string{"box"}},
		{name: "log level", args: []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args); err == nil {
				t.Fatalf("run(%v) succeeded", tt.args)
			}
		})
	}
}
