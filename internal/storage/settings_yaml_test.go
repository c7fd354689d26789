package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"breathwork/internal/core/catalog"
	"breathwork/internal/core/model"
	"breathwork/internal/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings("breathwork")
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.DefaultPattern != defaults.DefaultPattern || settings.TickInterval != defaults.TickInterval {
		t.Fatalf("settings = %+v want defaults %+v", settings, defaults)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "settings.yaml")
	content := `default_pattern: coherent
quick_relief_pattern: box
tick_interval_ms: 500
subscriber_buffer: 16
pattern_files:
  - extra.jsonc
  - /abs/more.yaml
patterns:
  - id: coherent
    name: Coherent Breathing
    phases:
      - {label: inhale, seconds: 5}
      - {label: exhale, seconds: 5}
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	settings, err := LoadSettingsFile(configPath)
	if err != nil {
		t.Fatalf("LoadSettingsFile(): %v", err)
	}

	if settings.DefaultPattern != "coherent" || settings.QuickReliefPattern != "box" {
		t.Fatalf("patterns = %q/%q", settings.DefaultPattern, settings.QuickReliefPattern)
	}
	if settings.TickInterval != 500*time.Millisecond || settings.SubscriberBuffer != 16 {
		t.Fatalf("tick/buffer = %v/%d", settings.TickInterval, settings.SubscriberBuffer)
	}
	wantFiles := []string{filepath.Join(dir, "extra.jsonc"), "/abs/more.yaml"}
	if len(settings.PatternFiles) != len(wantFiles) {
		t.Fatalf("PatternFiles = %v want %v", settings.PatternFiles, wantFiles)
	}
	for i := range wantFiles {
		if settings.PatternFiles[i] != wantFiles[i] {
			t.Errorf("PatternFiles[%d] = %q want %q", i, settings.PatternFiles[i], wantFiles[i])
		}
	}
	if len(settings.Patterns) != 1 || settings.Patterns[0].Phases[1].Label != "Exhale" {
		t.Fatalf("Patterns = %+v", settings.Patterns)
	}
}

func TestLoadSettingsFileRejectsBadYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(configPath, []byte("default_pattern: [unterminated"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := LoadSettingsFile(configPath); err == nil {
		t.Fatalf("LoadSettingsFile() accepted malformed yaml")
	}
}

func TestSaveThenLoadSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings := preferences.DefaultSettings()
	settings.DefaultPattern = catalog.Diaphragmatic
	settings.TickInterval = 2 * time.Second
	settings.Patterns = []model.Pattern{{ID: "hum", Name: "Humming", Phases: []model.Phase{{Label: "Hum", Duration: 6}}}}

	if err := SaveSettings("breathwork", settings); err != nil {
		t.Fatalf("SaveSettings(): %v", err)
	}
	loaded, err := LoadSettings("breathwork")
	if err != nil {
		t.Fatalf("LoadSettings(): %v", err)
	}

	if loaded.DefaultPattern != catalog.Diaphragmatic || loaded.TickInterval != 2*time.Second {
		t.Fatalf("loaded = %+v", loaded)
	}
	if len(loaded.Patterns) != 1 || loaded.Patterns[0].Name != "Humming" || loaded.Patterns[0].Phases[0].Duration != 6 {
		t.Fatalf("loaded patterns = %+v", loaded.Patterns)
	}
}
