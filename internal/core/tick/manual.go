package tick

import (
	"sync"
	"time"
)

// Manual is a Source that ticks only when Advance is called. Handlers
// run synchronously in the goroutine that calls Advance.
//
// Manual is safe for concurrent use.
type Manual struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration
	nextID   int
	handlers map[int]Handler
	order    []int
}

// NewManual returns a Manual source whose clock starts at start and
// moves by interval on every tick.
func NewManual(start time.Time, interval time.Duration) *Manual {
	if interval <= 0 {
		interval = time.Second
	}
	return &Manual{
		now:      start,
		interval: interval,
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers handler until stop is called.
func (manual *Manual) Subscribe(handler Handler) func() {
	manual.mu.Lock()
	id := manual.nextID
	manual.nextID++
	manual.handlers[id] = handler
	manual.order = append(manual.order, id)
	manual.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			manual.mu.Lock()
			delete(manual.handlers, id)
			manual.mu.Unlock()
		})
	}
}

// Advance delivers n ticks. Subscriptions stopped by a handler do not
// receive the remaining ticks.
func (manual *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		manual.mu.Lock()
		manual.now = manual.now.Add(manual.interval)
		at := manual.now
		manual.order = manual.liveOrderLocked()
		ids := append([]int(nil), manual.order...)
		manual.mu.Unlock()

		for _, id := range ids {
			manual.mu.Lock()
			handler, ok := manual.handlers[id]
			manual.mu.Unlock()
			if ok {
				handler(at)
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (manual *Manual) Subscribers() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return len(manual.handlers)
}

func (manual *Manual) liveOrderLocked() []int {
	live := manual.order[:0]
	for _, id := range manual.order {
		if _, ok := manual.handlers[id]; ok {
			live = append(live, id)
		}
	}
	return live
}
