package preferences

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BREATHWORK_"

type envOverrides struct {
	DefaultPattern     string        `env:"DEFAULT_PATTERN"`
	QuickReliefPattern string        `env:"QUICK_RELIEF_PATTERN"`
	TickInterval       time.Duration `env:"TICK_INTERVAL"`
	SubscriberBuffer   int           `env:"SUBSCRIBER_BUFFER"`
	PatternFiles       []string      `env:"PATTERN_FILES"`
}

// ApplyEnv overrides settings with any BREATHWORK_* variables that are
// set.
func ApplyEnv(settings *Settings) error {
	var overrides envOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overrides.DefaultPattern != "" {
		settings.DefaultPattern = overrides.DefaultPattern
	}
	if overrides.QuickReliefPattern != "" {
		settings.QuickReliefPattern = overrides.QuickReliefPattern
	}
	if overrides.TickInterval > 0 {
		settings.TickInterval = overrides.TickInterval
	}
	if overrides.SubscriberBuffer > 0 {
		settings.SubscriberBuffer = overrides.SubscriberBuffer
	}
	if len(overrides.PatternFiles) > 0 {
		settings.PatternFiles = append(settings.PatternFiles, overrides.PatternFiles...)
	}
	return nil
}
