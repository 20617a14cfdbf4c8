package carousel

import (
	"sync"
	"time"
)

// Transition durations for animated properties.
const (
	DefaultTransition = 800 * time.Millisecond
	ReducedTransition = 100 * time.Millisecond
)

// TransitionDuration returns how long card transitions should take.
func TransitionDuration(reducedMotion bool) time.Duration {
	if reducedMotion {
		return ReducedTransition
	}
	return DefaultTransition
}

// MotionDetector holds the viewer's reduced-motion preference and tells
// listeners when it changes. Sources (environment, preference files, flags)
// push into it with Set.
type MotionDetector struct {
	mu        sync.Mutex
	reduced   bool
	nextID    int
	listeners map[int]func(bool)
}

// NewMotionDetector starts with the given preference.
func NewMotionDetector(reduced bool) *MotionDetector {
	return &MotionDetector{
		reduced:   reduced,
		listeners: make(map[int]func(bool)),
	}
}

// Reduced reports the current preference.
func (d *MotionDetector) Reduced() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reduced
}

// Set updates the preference and reports whether it changed. Listeners run
// only on change, in no particular order.
func (d *MotionDetector) Set(reduced bool) bool {
	d.mu.Lock()
	if d.reduced == reduced {
		d.mu.Unlock()
		return false
	}
	d.reduced = reduced
	fns := make([]func(bool), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
	return true
}

// Subscribe registers fn for future changes and returns a function that
// removes it.
func (d *MotionDetector) Subscribe(fn func(bool)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}
