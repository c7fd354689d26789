package session

import "time"

// EventType defines the type of session event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event is a session update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	PatternID    string
	PatternName  string
	PhaseLabel   string
	PhaseIndex   int
	PhaseCount   int
	Elapsed      int
	Remaining    int
	Progress     float64
	Running      bool
	Cycles       int
	CycleElapsed int
	CycleSeconds int
}

// Percent returns Progress as a whole percentage.
func (snapshot Snapshot) Percent() int {
	return int(snapshot.Progress*100 + 0.5)
}
