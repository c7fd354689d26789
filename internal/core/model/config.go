package model

import "time"

// SessionConfig contains runtime settings for the session controller.
type SessionConfig struct {
	TickInterval time.Duration

	// SubscriberBuffer is the default channel capacity for subscribers
	// that ask for a non-positive buffer.
	SubscriberBuffer int

	// InitialPattern is selected when the controller is created. Empty
	// leaves the controller without a pattern.
	InitialPattern     string
	QuickReliefPattern string
}
