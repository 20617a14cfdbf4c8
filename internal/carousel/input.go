package carousel

import "math"

// Navigator is the surface that input adapters drive. Hosts translate raw
// events (keys, pointer drags, clicks) into these calls; Controller
// implements it.
type Navigator interface {
	Next() int
	Previous() int
	JumpTo(index int) int
	ToggleAutoplay() bool
	Len() int
}

// Key is a host-independent key identity.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "unknown"
	}
}

// KeyResult tells the host what happened to a key press. PreventDefault is
// set when the host must suppress its own default action for the key (the
// space bar would otherwise scroll the page).
type KeyResult struct {
	Handled        bool
	PreventDefault bool
}

// DispatchKey applies the carousel keyboard map to nav. Unmapped keys are
// ignored.
func DispatchKey(nav Navigator, k Key) KeyResult {
	switch k {
	case KeyLeft:
		nav.Previous()
	case KeyRight:
		nav.Next()
	case KeySpace:
		nav.ToggleAutoplay()
		return KeyResult{Handled: true, PreventDefault: true}
	case KeyHome:
		nav.JumpTo(0)
	case KeyEnd:
		nav.JumpTo(nav.Len() - 1)
	default:
		return KeyResult{}
	}
	return KeyResult{Handled: true}
}

// HandleKey applies the keyboard map to this carousel.
func (c *Controller) HandleKey(k Key) KeyResult {
	return DispatchKey(c, k)
}

// SwipeThresholds decide when a drag counts as a swipe. Distance is in the
// host's coordinate units, Velocity in units per second.
type SwipeThresholds struct {
	Distance float64
	Velocity float64
}

// DefaultSwipeThresholds are tuned for pixel coordinates.
var DefaultSwipeThresholds = SwipeThresholds{Distance: 50, Velocity: 500}

// Drag is a horizontal drag gesture measured at release.
type Drag struct {
	Offset   float64
	Velocity float64
}

// Swipe is the navigation a drag resolves to.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipePrevious
	SwipeNext
)

func (s Swipe) String() string {
	switch s {
	case SwipePrevious:
		return "previous"
	case SwipeNext:
		return "next"
	default:
		return "none"
	}
}

// Classify resolves a drag. A drag past either threshold is a swipe: a
// positive offset goes back, anything else goes forward. Short slow drags are
// treated as accidental.
func (t SwipeThresholds) Classify(d Drag) Swipe {
	if math.Abs(d.Offset) <= t.Distance && math.Abs(d.Velocity) <= t.Velocity {
		return SwipeNone
	}
	if d.Offset > 0 {
		return SwipePrevious
	}
	return SwipeNext
}

// DispatchDrag classifies d and applies it to nav.
func DispatchDrag(nav Navigator, t SwipeThresholds, d Drag) Swipe {
	s := t.Classify(d)
	switch s {
	case SwipePrevious:
		nav.Previous()
	case SwipeNext:
		nav.Next()
	}
	return s
}

// HandleDrag applies a drag gesture to this carousel.
func (c *Controller) HandleDrag(d Drag) Swipe {
	return DispatchDrag(c, c.swipe, d)
}
