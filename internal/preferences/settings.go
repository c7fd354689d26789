package preferences

import (
	"time"

	"breathwork/internal/core/catalog"
	"breathwork/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	DefaultPattern string

	// QuickReliefPattern is the pattern QuickRelief starts. Empty picks
	// the catalog pattern with the longest exhale.
	QuickReliefPattern string

	TickInterval     time.Duration
	SubscriberBuffer int

	PatternFiles []string
	Patterns     []model.Pattern
}

// DefaultSettings returns default settings for breathwork.
func DefaultSettings() Settings {
	return Settings{
		DefaultPattern:   catalog.Box,
		TickInterval:     time.Second,
		SubscriberBuffer: 8,
	}
}

// SessionConfig converts settings to a SessionConfig, resolving the
// quick-relief pattern against patterns.
func (settings Settings) SessionConfig(patterns *catalog.Catalog) model.SessionConfig {
	quickRelief := settings.QuickReliefPattern
	if quickRelief == "" && patterns != nil {
		if pattern, ok := patterns.LongestExhale(); ok {
			quickRelief = pattern.ID
		}
	}
	return model.SessionConfig{
		TickInterval:       settings.TickInterval,
		SubscriberBuffer:   settings.SubscriberBuffer,
		InitialPattern:     settings.DefaultPattern,
		QuickReliefPattern: quickRelief,
	}
}
