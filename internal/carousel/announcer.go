package carousel

import (
	"fmt"
	"sync"
	"time"
)

// DefaultAnnounceDelay is the quiet period before the live region updates.
const DefaultAnnounceDelay = 500 * time.Millisecond

// Announcement formats the live-region text for a 1-based position.
func Announcement(label string, position, total int) string {
	return fmt.Sprintf("Now showing: %s, %d of %d", label, position, total)
}

// Announcer produces debounced descriptions of the active card for assistive
// technology. Only the state that is still current once navigation has been
// quiet for the delay is announced.
type Announcer struct {
	mu       sync.Mutex
	debounce *Debouncer
	current  string
	stopped  bool
	emit     func(string)
}

// NewAnnouncer creates an announcer. emit, if non-nil, receives each settled
// announcement.
func NewAnnouncer(clock Clock, delay time.Duration, emit func(string)) *Announcer {
	if delay <= 0 {
		delay = DefaultAnnounceDelay
	}
	return &Announcer{
		debounce: NewDebouncer(clock, delay),
		emit:     emit,
	}
}

// Announce schedules the description of item at index (0-based) out of total.
func (a *Announcer) Announce(item Item, index, total int) {
	if total <= 0 {
		return
	}
	text := Announcement(item.Label(), index+1, total)
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	a.debounce.Debounce(func() {
		a.mu.Lock()
		if a.stopped {
			a.mu.Unlock()
			return
		}
		a.current = text
		emit := a.emit
		a.mu.Unlock()
		if emit != nil {
			emit(text)
		}
	})
}

// Current returns the last settled announcement.
func (a *Announcer) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Stop cancels any pending announcement and ignores later calls.
func (a *Announcer) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.debounce.Cancel()
}
