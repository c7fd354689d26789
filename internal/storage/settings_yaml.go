package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"breathwork/internal/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DefaultPattern     string        `yaml:"default_pattern"`
	QuickReliefPattern string        `yaml:"quick_relief_pattern"`
	TickIntervalMillis int           `yaml:"tick_interval_ms"`
	SubscriberBuffer   int           `yaml:"subscriber_buffer"`
	PatternFiles       []string      `yaml:"pattern_files,omitempty"`
	Patterns           []filePattern `yaml:"patterns,omitempty"`
}

// LoadSettings reads user preferences from YAML in the user config
// directory. If the config file does not exist, default settings are
// returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from the YAML file at
// configPath. Relative pattern file paths are resolved against the
// directory holding configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData, filepath.Dir(configPath))
	return settings, nil
}

// SaveSettings writes user preferences to YAML in the user config
// directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to the YAML file at
// configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DefaultPattern:     settings.DefaultPattern,
		QuickReliefPattern: settings.QuickReliefPattern,
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		SubscriberBuffer:   settings.SubscriberBuffer,
		PatternFiles:       settings.PatternFiles,
		Patterns:           toFilePatterns(settings.Patterns),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings, baseDir string) {
	if fileData.DefaultPattern != "" {
		settings.DefaultPattern = fileData.DefaultPattern
	}
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.SubscriberBuffer > 0 {
		settings.SubscriberBuffer = fileData.SubscriberBuffer
	}

	settings.QuickReliefPattern = fileData.QuickReliefPattern
	for _, path := range fileData.PatternFiles {
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		settings.PatternFiles = append(settings.PatternFiles, path)
	}
	settings.Patterns = fromFilePatterns(fileData.Patterns)
}
