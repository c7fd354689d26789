package model

// Phase is one labeled segment of a breathing pattern.
type Phase struct {
	Label    string
	Duration int
}

// Pattern is a named, ordered sequence of phases.
type Pattern struct {
	ID     string
	Name   string
	Phases []Phase
}

// PhaseCount returns the number of phases in the pattern.
func (pattern Pattern) PhaseCount() int {
	return len(pattern.Phases)
}

// Phase returns the phase at index, or the zero Phase when out of range.
func (pattern Pattern) Phase(index int) Phase {
	if index < 0 || index >= len(pattern.Phases) {
		return Phase{}
	}
	return pattern.Phases[index]
}

// CycleSeconds returns the length of one full pass through the pattern.
func (pattern Pattern) CycleSeconds() int {
	total := 0
	for _, phase := range pattern.Phases {
		total += phase.Duration
	}
	return total
}

// Clone returns a copy that shares no memory with pattern.
func (pattern Pattern) Clone() Pattern {
	clone := pattern
	clone.Phases = append([]Phase(nil), pattern.Phases...)
	return clone
}
