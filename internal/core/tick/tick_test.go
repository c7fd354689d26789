package tick

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualAdvanceDeliversTicks(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	manual := NewManual(start, time.Second)

	var got []time.Time
	stop := manual.Subscribe(func(at time.Time) {
		got = append(got, at)
	})
	manual.Advance(3)

	if len(got) != 3 {
		t.Fatalf("received %d ticks want 3", len(got))
	}
	if want := start.Add(3 * time.Second); !got[2].Equal(want) {
		t.Fatalf("third tick at %v want %v", got[2], want)
	}

	stop()
	stop()
	manual.Advance(2)
	if len(got) != 3 {
		t.Fatalf("received %d ticks after stop want 3", len(got))
	}
	if manual.Subscribers() != 0 {
		t.Fatalf("Subscribers() = %d want 0", manual.Subscribers())
	}
}

func TestManualStopFromHandler(t *testing.T) {
	manual := NewManual(time.Time{}, time.Second)

	count := 0
	var stop func()
	stop = manual.Subscribe(func(time.Time) {
		count++
		if count == 2 {
			stop()
		}
	})
	manual.Advance(5)

	if count != 2 {
		t.Fatalf("handler ran %d times want 2", count)
	}
}

func TestTickerDeliversAndStops(t *testing.T) {
	ticker := NewTicker(5 * time.Millisecond)

	var count atomic.Int32
	done := make(chan struct{})
	stop := ticker.Subscribe(func(time.Time) {
		if count.Add(1) == 3 {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker delivered %d ticks before timeout", count.Load())
	}
	stop()
	stop()
}

func TestNewTickerDefaultsInterval(t *testing.T) {
	if got := NewTicker(0).Interval(); got != time.Second {
		t.Fatalf("Interval() = %v want 1s", got)
	}
}
