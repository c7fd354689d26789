// Package session owns the lifecycle of a breathing session.
//
// A Controller binds the pure scheduler to a tick source: it selects a
// pattern from the catalog, applies every delivered tick to its state
// and publishes a Snapshot to subscribers after each tick and after
// each command that changes the state.
//
// Start always restarts the cycle from the first phase. Resume is the
// position-preserving alternative for continuing after Pause.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"breathwork/internal/core/catalog"
	"breathwork/internal/core/model"
	"breathwork/internal/core/scheduler"
	"breathwork/internal/core/tick"
)

// ErrNoPatternSelected indicates a session command that needs a pattern
// was issued before any pattern was selected.
var ErrNoPatternSelected = errors.New("no pattern selected")

// ErrClosed indicates a command was issued after Close.
var ErrClosed = errors.New("session closed")

// PatternSource looks up breathing patterns by id.
type PatternSource interface {
	Get(id string) (model.Pattern, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(controller *Controller) {
		if logger != nil {
			controller.logger = logger
		}
	}
}

// WithClock sets the time source used to stamp command events.
func WithClock(now func() time.Time) Option {
	return func(controller *Controller) {
		if now != nil {
			controller.now = now
		}
	}
}

// Controller is a state machine that runs one breathing session at a
// time.
type Controller struct {
	mu       sync.Mutex
	patterns PatternSource
	source   tick.Source
	config   model.SessionConfig
	logger   *slog.Logger
	now      func() time.Time

	pattern  model.Pattern
	selected bool
	state    model.SessionState

	stopTicks  func()
	generation uint64

	events []chan Event
	closed bool
}

// New creates a Controller. When config.InitialPattern is set it is
// selected before New returns.
func New(patterns PatternSource, source tick.Source, config model.SessionConfig, options ...Option) (*Controller, error) {
	if config.SubscriberBuffer <= 0 {
		config.SubscriberBuffer = 1
	}
	if config.QuickReliefPattern == "" {
		config.QuickReliefPattern = catalog.FourSevenEight
	}

	controller := &Controller{
		patterns: patterns,
		source:   source,
		config:   config,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, option := range options {
		option(controller)
	}

	if config.InitialPattern != "" {
		if err := controller.SelectPattern(config.InitialPattern); err != nil {
			return nil, err
		}
	}
	return controller, nil
}

// Subscribe registers a new observer channel. A non-positive buffer
// uses the configured default.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if buffer <= 0 {
		buffer = controller.config.SubscriberBuffer
	}
	ch := make(chan Event, buffer)
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// Snapshot returns the current session view.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// SelectPattern switches to the pattern with the given id and leaves the
// session idle. An unknown id leaves the current session untouched.
func (controller *Controller) SelectPattern(id string) error {
	pattern, err := controller.patterns.Get(id)
	if err != nil {
		controller.logger.Warn("select pattern failed", "pattern", id, "error", err)
		return fmt.Errorf("select pattern: %w", err)
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed {
		return ErrClosed
	}
	controller.stopTicksLocked()
	controller.pattern = pattern
	controller.selected = true
	controller.state = model.IdleState(pattern.ID)

	controller.logger.Info("pattern selected", "pattern", pattern.ID)
	controller.emitLocked(EventStateChange, controller.now())
	return nil
}

// Start begins the session from the first phase. Starting a running
// session does nothing.
func (controller *Controller) Start() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed {
		return ErrClosed
	}
	if !controller.selected {
		return ErrNoPatternSelected
	}
	if controller.state.Running {
		return nil
	}

	controller.state = scheduler.Settle(model.SessionState{
		PatternID: controller.pattern.ID,
		Running:   true,
	}, controller.pattern)
	controller.startTicksLocked()

	controller.logger.Info("session started", "pattern", controller.pattern.ID)
	controller.emitLocked(EventStateChange, controller.now())
	return nil
}

// Resume continues a paused session from where it stopped.
func (controller *Controller) Resume() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed {
		return ErrClosed
	}
	if !controller.selected {
		return ErrNoPatternSelected
	}
	if controller.state.Running {
		return nil
	}

	controller.state.Running = true
	controller.state = scheduler.Settle(controller.state, controller.pattern)
	controller.startTicksLocked()

	controller.logger.Info("session resumed",
		"pattern", controller.pattern.ID,
		"phase", controller.state.PhaseIndex,
		"elapsed", controller.state.Elapsed)
	controller.emitLocked(EventStateChange, controller.now())
	return nil
}

// Pause stops ticking and keeps the current position.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if !controller.state.Running {
		return
	}
	controller.stopTicksLocked()
	controller.state.Running = false

	controller.logger.Info("session paused",
		"pattern", controller.pattern.ID,
		"phase", controller.state.PhaseIndex,
		"elapsed", controller.state.Elapsed)
	controller.emitLocked(EventStateChange, controller.now())
}

// Reset stops the session and rewinds it to the first phase. Reset
// after Close does nothing.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed {
		return
	}
	controller.stopTicksLocked()
	controller.state = model.IdleState(controller.pattern.ID)

	controller.logger.Info("session reset", "pattern", controller.pattern.ID)
	controller.emitLocked(EventStateChange, controller.now())
}

// QuickRelief selects the quick-relief pattern and starts it.
func (controller *Controller) QuickRelief() error {
	if err := controller.SelectPattern(controller.config.QuickReliefPattern); err != nil {
		return fmt.Errorf("quick relief: %w", err)
	}
	return controller.Start()
}

// Close stops ticking and closes every subscriber channel.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.stopTicksLocked()
	controller.state.Running = false
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) tick(generation uint64, tickTime time.Time) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed || generation != controller.generation || !controller.state.Running {
		return
	}
	controller.state = scheduler.Tick(controller.state, controller.pattern)

	controller.logger.Debug("tick",
		"pattern", controller.pattern.ID,
		"phase", controller.state.PhaseIndex,
		"elapsed", controller.state.Elapsed,
		"cycles", controller.state.Cycles)
	controller.emitLocked(EventTick, tickTime)
}

func (controller *Controller) startTicksLocked() {
	controller.stopTicksLocked()
	if controller.closed {
		return
	}
	controller.generation++
	generation := controller.generation
	controller.stopTicks = controller.source.Subscribe(func(tickTime time.Time) {
		controller.tick(generation, tickTime)
	})
}

func (controller *Controller) stopTicksLocked() {
	if controller.stopTicks == nil {
		return
	}
	controller.stopTicks()
	controller.stopTicks = nil
	controller.generation++
}

func (controller *Controller) snapshotLocked() Snapshot {
	state := controller.state
	pattern := controller.pattern
	return Snapshot{
		PatternID:    pattern.ID,
		PatternName:  pattern.Name,
		PhaseLabel:   pattern.Phase(state.PhaseIndex).Label,
		PhaseIndex:   state.PhaseIndex,
		PhaseCount:   pattern.PhaseCount(),
		Elapsed:      state.Elapsed,
		Remaining:    scheduler.Remaining(state, pattern),
		Progress:     scheduler.Progress(state, pattern),
		Running:      state.Running,
		Cycles:       state.Cycles,
		CycleElapsed: scheduler.CyclePosition(state, pattern),
		CycleSeconds: pattern.CycleSeconds(),
	}
}

func (controller *Controller) emitLocked(eventType EventType, at time.Time) {
	event := Event{
		Type:     eventType,
		Snapshot: controller.snapshotLocked(),
		At:       at,
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
