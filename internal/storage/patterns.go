package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"breathwork/internal/core/catalog"
	"breathwork/internal/core/model"
	"breathwork/internal/preferences"
)

type filePhase struct {
	Label   string `yaml:"label" json:"label"`
	Seconds int    `yaml:"seconds" json:"seconds"`
}

type filePattern struct {
	ID     string      `yaml:"id" json:"id"`
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Phases []filePhase `yaml:"phases" json:"phases"`
}

// ParsePatterns decodes a list of patterns. Formats are chosen by
// extension: .yaml and .yml are YAML, .json and .jsonc are JSON with
// comments and trailing commas allowed.
func ParsePatterns(data []byte, extension string) ([]model.Pattern, error) {
	var filePatterns []filePattern
	switch strings.ToLower(extension) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &filePatterns); err != nil {
			return nil, fmt.Errorf("parse patterns yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &filePatterns); err != nil {
			return nil, fmt.Errorf("parse patterns json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported pattern file extension %q", extension)
	}
	return fromFilePatterns(filePatterns), nil
}

// LoadPatternFile reads patterns from a YAML or JSONC file.
func LoadPatternFile(path string) ([]model.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	patterns, err := ParsePatterns(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

// LoadCatalog builds the pattern catalog for settings: the built-in
// patterns, then inline settings patterns, then every pattern file in
// order.
func LoadCatalog(settings preferences.Settings) (*catalog.Catalog, error) {
	patterns := catalog.Builtin()
	patterns = append(patterns, settings.Patterns...)
	for _, path := range settings.PatternFiles {
		loaded, err := LoadPatternFile(path)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}

	patternCatalog, err := catalog.New(patterns...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return patternCatalog, nil
}

func fromFilePatterns(filePatterns []filePattern) []model.Pattern {
	if len(filePatterns) == 0 {
		return nil
	}
	caser := cases.Title(language.English)
	patterns := make([]model.Pattern, 0, len(filePatterns))
	for _, filePattern := range filePatterns {
		pattern := model.Pattern{
			ID:     strings.TrimSpace(filePattern.ID),
			Name:   strings.TrimSpace(filePattern.Name),
			Phases: make([]model.Phase, 0, len(filePattern.Phases)),
		}
		for _, phase := range filePattern.Phases {
			pattern.Phases = append(pattern.Phases, model.Phase{
				Label:    caser.String(strings.TrimSpace(phase.Label)),
				Duration: phase.Seconds,
			})
		}
		patterns = append(patterns, pattern)
	}
	return patterns
}

func toFilePatterns(patterns []model.Pattern) []filePattern {
	if len(patterns) == 0 {
		return nil
	}
	filePatterns := make([]filePattern, 0, len(patterns))
	for _, pattern := range patterns {
		filePattern := filePattern{ID: pattern.ID, Name: pattern.Name}
		for _, phase := range pattern.Phases {
			filePattern.Phases = append(filePattern.Phases, filePhase{Label: phase.Label, Seconds: phase.Duration})
		}
		filePatterns = append(filePatterns, filePattern)
	}
	return filePatterns
}
