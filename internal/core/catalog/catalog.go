package catalog

import (
	"errors"
	"fmt"
	"strings"

	"breathwork/internal/core/model"
)

// ErrNotFound indicates that no pattern is registered under an id.
var ErrNotFound = errors.New("pattern not found")

// ErrInvalidPattern indicates a pattern was rejected at registration.
var ErrInvalidPattern = errors.New("invalid pattern")

// NotFoundError reports a lookup of an unknown pattern id.
type NotFoundError struct {
	ID string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("pattern %q not found", err.ID)
}

// Is reports whether target is ErrNotFound.
func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Catalog is a read-only registry of breathing patterns.
type Catalog struct {
	patterns []model.Pattern
	index    map[string]int
}

// New validates the patterns and returns a catalog that lists them in
// the order given.
func New(patterns ...model.Pattern) (*Catalog, error) {
	catalog := &Catalog{
		patterns: make([]model.Pattern, 0, len(patterns)),
		index:    make(map[string]int, len(patterns)),
	}
	for _, pattern := range patterns {
		if err := validate(pattern); err != nil {
			return nil, err
		}
		if _, exists := catalog.index[pattern.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidPattern, pattern.ID)
		}
		pattern = pattern.Clone()
		if pattern.Name == "" {
			pattern.Name = pattern.ID
		}
		catalog.index[pattern.ID] = len(catalog.patterns)
		catalog.patterns = append(catalog.patterns, pattern)
	}
	return catalog, nil
}

// Default returns a catalog holding the built-in patterns.
func Default() *Catalog {
	catalog, err := New(Builtin()...)
	if err != nil {
		panic(err)
	}
	return catalog
}

// List returns every pattern in registration order.
func (catalog *Catalog) List() []model.Pattern {
	patterns := make([]model.Pattern, len(catalog.patterns))
	for i, pattern := range catalog.patterns {
		patterns[i] = pattern.Clone()
	}
	return patterns
}

// Get returns the pattern registered under id.
func (catalog *Catalog) Get(id string) (model.Pattern, error) {
	position, ok := catalog.index[id]
	if !ok {
		return model.Pattern{}, &NotFoundError{ID: id}
	}
	return catalog.patterns[position].Clone(), nil
}

// LongestExhale returns the pattern with the longest exhale phase. The
// first registered pattern wins a tie.
func (catalog *Catalog) LongestExhale() (model.Pattern, bool) {
	best := -1
	bestSeconds := 0
	for i, pattern := range catalog.patterns {
		for _, phase := range pattern.Phases {
			if !strings.EqualFold(phase.Label, "exhale") {
				continue
			}
			if best < 0 || phase.Duration > bestSeconds {
				best = i
				bestSeconds = phase.Duration
			}
		}
	}
	if best < 0 {
		return model.Pattern{}, false
	}
	return catalog.patterns[best].Clone(), true
}

func validate(pattern model.Pattern) error {
	if strings.TrimSpace(pattern.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidPattern)
	}
	if len(pattern.Phases) == 0 {
		return fmt.Errorf("%w: %q has no phases", ErrInvalidPattern, pattern.ID)
	}
	for i, phase := range pattern.Phases {
		if phase.Duration < 0 {
			return fmt.Errorf("%w: %q phase %d has negative duration", ErrInvalidPattern, pattern.ID, i)
		}
		if strings.TrimSpace(phase.Label) == "" {
			return fmt.Errorf("%w: %q phase %d has no label", ErrInvalidPattern, pattern.ID, i)
		}
	}
	return nil
}
