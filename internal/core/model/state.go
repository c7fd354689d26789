package model

// SessionState is the position of a breathing session within its pattern.
type SessionState struct {
	PatternID  string
	PhaseIndex int
	Elapsed    int
	Running    bool

	// Cycles counts full passes through the pattern since the last start.
	Cycles int
}

// IdleState returns the idle state for a pattern.
func IdleState(patternID string) SessionState {
	return SessionState{PatternID: patternID}
}
