package carousel

import (
	"sync"
	"time"
)

// Debouncer runs a function once a quiet period has passed since the last
// call. Rapid successive calls reset the timer.
type Debouncer struct {
	mu       sync.Mutex
	clock    Clock
	timer    Timer
	gen      uint64
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(clock Clock, duration time.Duration) *Debouncer {
	if clock == nil {
		clock = SystemClock
	}
	return &Debouncer{
		clock:    clock,
		duration: duration,
	}
}

// Debounce schedules fn, replacing any pending call.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.duration, func() {
		// A callback that lost the race with Stop must not run.
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
