// Package tick delivers the periodic ticks that drive a breathing
// session.
//
// Production code uses NewTicker, which is backed by time.Ticker. Tests
// use NewManual and call Advance to deliver ticks deterministically
// instead of waiting on the wall clock.
package tick

import (
	"sync"
	"time"
)

// Handler receives one tick.
type Handler func(at time.Time)

// Source delivers ticks to subscribers. The returned stop function
// deregisters the handler; it is idempotent.
type Source interface {
	Subscribe(handler Handler) (stop func())
}

// Ticker is a Source backed by time.Ticker.
type Ticker struct {
	interval time.Duration
}

// NewTicker returns a Source that ticks every interval. A non-positive
// interval defaults to one second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick period.
func (ticker *Ticker) Interval() time.Duration {
	return ticker.interval
}

// Subscribe starts a goroutine that calls handler on every tick until
// stop is called.
func (ticker *Ticker) Subscribe(handler Handler) func() {
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		timeTicker := time.NewTicker(ticker.interval)
		defer timeTicker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case tickTime := <-timeTicker.C:
				select {
				case <-stopCh:
					return
				default:
				}
				handler(tickTime)
			}
		}
	}()

	return func() {
		once.Do(func() { close(stopCh) })
	}
}
