// Package scheduler advances a breathing session through its pattern.
//
// Every function is a pure transition over a SessionState and the
// pattern it refers to. One call to Tick is one second of session time;
// the caller decides when ticks happen.
package scheduler

import "breathwork/internal/core/model"

// Tick advances a running state by one second. A state that is not
// running is returned unchanged.
func Tick(state model.SessionState, pattern model.Pattern) model.SessionState {
	if !state.Running || pattern.PhaseCount() == 0 {
		return state
	}

	duration := CurrentDuration(state, pattern)
	if duration == 0 {
		return Settle(state, pattern)
	}

	state.Elapsed++
	if state.Elapsed < duration {
		return state
	}
	state = advance(state, pattern)
	return Settle(state, pattern)
}

// Settle moves past zero-duration phases so that none is left current.
// When every phase has zero duration the state is held as is.
func Settle(state model.SessionState, pattern model.Pattern) model.SessionState {
	count := pattern.PhaseCount()
	if count == 0 || CurrentDuration(state, pattern) > 0 {
		return state
	}

	next := state
	for i := 0; i < count; i++ {
		next = advance(next, pattern)
		if CurrentDuration(next, pattern) > 0 {
			return next
		}
	}
	return state
}

// Progress returns how far the current phase has run, in [0, 1]. A
// zero-duration phase is complete as soon as it is entered. Tick rolls
// a timed phase over when Elapsed reaches its duration d, so the largest
// value observed for a timed phase is (d-1)/d.
func Progress(state model.SessionState, pattern model.Pattern) float64 {
	duration := CurrentDuration(state, pattern)
	if duration <= 0 {
		return 1
	}
	progress := float64(state.Elapsed) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Remaining returns the whole seconds left in the current phase.
func Remaining(state model.SessionState, pattern model.Pattern) int {
	remaining := CurrentDuration(state, pattern) - state.Elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CurrentDuration returns the duration of the phase the state points at.
func CurrentDuration(state model.SessionState, pattern model.Pattern) int {
	return pattern.Phase(state.PhaseIndex).Duration
}

// CyclePosition returns the seconds elapsed since the start of the
// current cycle.
func CyclePosition(state model.SessionState, pattern model.Pattern) int {
	position := state.Elapsed
	for i := 0; i < state.PhaseIndex && i < pattern.PhaseCount(); i++ {
		position += pattern.Phases[i].Duration
	}
	return position
}

func advance(state model.SessionState, pattern model.Pattern) model.SessionState {
	state.PhaseIndex = (state.PhaseIndex + 1) % pattern.PhaseCount()
	state.Elapsed = 0
	if state.PhaseIndex == 0 {
		state.Cycles++
	}
	return state
}
