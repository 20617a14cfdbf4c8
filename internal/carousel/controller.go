package carousel

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInterval is the autoplay period.
const DefaultInterval = 5 * time.Second

// State is a snapshot of one carousel's navigation state.
type State struct {
	ActiveIndex   int
	ItemCount     int
	Autoplay      bool
	HoverPaused   bool
	ReducedMotion bool
	Tier          Tier
	ViewportWidth int

	// TimerArmed is derived: Autoplay && !HoverPaused && !ReducedMotion, and
	// only when there is more than one card to move between.
	TimerArmed bool

	// Announcement is the last settled live-region text.
	Announcement string

	// Version increases with every published change.
	Version uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval overrides the autoplay period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithClock substitutes the clock used for autoplay and announcements.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithReducedMotion sets the motion preference at mount. A reduced-motion
// viewer starts with autoplay off.
func WithReducedMotion(reduced bool) Option {
	return func(c *Controller) { c.initReduced = reduced }
}

// WithAutoplay sets the autoplay flag at mount, overriding the
// reduced-motion default. Hosts use it to carry a viewer's choice across a
// remount.
func WithAutoplay(on bool) Option {
	return func(c *Controller) { c.initAutoplay = &on }
}

// WithHover mounts the carousel with the pointer already over it.
func WithHover(hover bool) Option {
	return func(c *Controller) { c.initHover = hover }
}

// WithViewportWidth sets the initial viewport width in pixels.
func WithViewportWidth(px int) Option {
	return func(c *Controller) { c.initWidth = px }
}

// WithAnnounceDelay overrides the announcement quiet period.
func WithAnnounceDelay(d time.Duration) Option {
	return func(c *Controller) { c.announceDelay = d }
}

// WithSwipeThresholds overrides the drag classification thresholds.
func WithSwipeThresholds(t SwipeThresholds) Option {
	return func(c *Controller) { c.swipe = t }
}

// WithStartIndex mounts the carousel on a card other than the first. The
// index is clamped into range.
func WithStartIndex(i int) Option {
	return func(c *Controller) { c.initIndex = i }
}

// Controller owns a carousel's NavigationState and is its only mutator.
// Every operation is atomic with respect to the others: the index update, the
// autoplay timer decision and the published snapshot happen under one lock.
type Controller struct {
	mu sync.Mutex

	id            string
	items         []Item
	clock         Clock
	interval      time.Duration
	announceDelay time.Duration
	swipe         SwipeThresholds
	logger        *zap.Logger

	breakpoints *BreakpointTracker
	announcer   *Announcer

	state    State
	timer    Timer
	timerGen uint64
	closed   bool

	subs    map[int]chan State
	nextSub int

	initIndex    int
	initReduced  bool
	initAutoplay *bool
	initHover    bool
	initWidth    int
}

// NewController mounts a carousel over items. The collection is copied and
// treated as read-only.
func NewController(items []Item, opts ...Option) *Controller {
	c := &Controller{
		id:            uuid.NewString(),
		items:         slices.Clone(items),
		clock:         SystemClock,
		interval:      DefaultInterval,
		announceDelay: DefaultAnnounceDelay,
		swipe:         DefaultSwipeThresholds,
		logger:        zap.NewNop(),
		initWidth:     DesktopMinWidth,
		subs:          make(map[int]chan State),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.With(zap.String("carousel", c.id))
	c.breakpoints = NewBreakpointTracker(c.initWidth)
	c.announcer = NewAnnouncer(c.clock, c.announceDelay, c.onAnnounce)

	autoplay := !c.initReduced
	if c.initAutoplay != nil {
		autoplay = *c.initAutoplay
	}

	n := len(c.items)
	c.state = State{
		ActiveIndex:   clampIndex(c.initIndex, n),
		ItemCount:     n,
		Autoplay:      autoplay,
		HoverPaused:   c.initHover,
		ReducedMotion: c.initReduced,
		Tier:          c.breakpoints.Tier(),
		ViewportWidth: c.breakpoints.Width(),
	}

	c.mu.Lock()
	c.rearmLocked()
	c.announceLocked()
	c.mu.Unlock()

	c.logger.Debug("carousel mounted",
		zap.Int("items", n),
		zap.Duration("interval", c.interval),
		zap.Bool("reduced_motion", c.initReduced),
		zap.Stringer("tier", c.state.Tier))
	return c
}

// ID identifies this carousel instance in logs.
func (c *Controller) ID() string { return c.id }

// Len returns the number of cards.
func (c *Controller) Len() int { return len(c.items) }

// Items returns a copy of the card collection.
func (c *Controller) Items() []Item { return slices.Clone(c.items) }

// Interval returns the autoplay period.
func (c *Controller) Interval() time.Duration { return c.interval }

// SwipeThresholds returns the drag classification thresholds.
func (c *Controller) SwipeThresholds() SwipeThresholds { return c.swipe }

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Next moves one card forward, wrapping past the end.
func (c *Controller) Next() int {
	return c.step(1, "next")
}

// Previous moves one card back, wrapping past the start.
func (c *Controller) Previous() int {
	return c.step(-1, "previous")
}

// JumpTo makes index the active card. Out-of-range indexes are clamped into
// [0, Len()-1]. It returns the resulting active index.
func (c *Controller) JumpTo(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.ItemCount == 0 {
		return c.state.ActiveIndex
	}
	target := clampIndex(index, c.state.ItemCount)
	if target != index {
		c.logger.Debug("jump index clamped", zap.Int("requested", index), zap.Int("index", target))
	}
	c.moveLocked(target, "jump")
	return c.state.ActiveIndex
}

// ToggleAutoplay flips the autoplay flag and returns the new value.
func (c *Controller) ToggleAutoplay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.state.Autoplay
	}
	c.state.Autoplay = !c.state.Autoplay
	c.rearmLocked()
	c.logger.Debug("autoplay toggled", zap.Bool("autoplay", c.state.Autoplay))
	c.commitLocked()
	return c.state.Autoplay
}

// SetHover records whether the pointer is over the carousel. Hovering
// suspends autoplay; leaving restarts a full interval.
func (c *Controller) SetHover(hovered bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.HoverPaused == hovered {
		return
	}
	c.state.HoverPaused = hovered
	c.rearmLocked()
	c.commitLocked()
}

// SetReducedMotion records a change in the viewer's motion preference.
func (c *Controller) SetReducedMotion(reduced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.ReducedMotion == reduced {
		return
	}
	c.state.ReducedMotion = reduced
	c.rearmLocked()
	c.logger.Debug("motion preference changed", zap.Bool("reduced_motion", reduced))
	c.commitLocked()
}

// SetViewportWidth records a resize.
func (c *Controller) SetViewportWidth(px int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.ViewportWidth == px {
		return
	}
	tier, changed := c.breakpoints.Resize(px)
	c.state.ViewportWidth = px
	c.state.Tier = tier
	if changed {
		c.logger.Debug("breakpoint changed", zap.Stringer("tier", tier), zap.Int("width", px))
	}
	c.commitLocked()
}

// Close tears the carousel down. Pending autoplay and announcement callbacks
// are cancelled before Close returns, subscriber channels are closed, and
// every later call is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.state.TimerArmed = false
	c.announcer.Stop()
	for id, ch := range c.subs {
		close(ch)
		delete(c.subs, id)
	}
	c.logger.Debug("carousel unmounted")
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller) step(delta int, source string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.state.ItemCount
	if c.closed || n == 0 {
		return c.state.ActiveIndex
	}
	c.moveLocked(((c.state.ActiveIndex+delta)%n+n)%n, source)
	return c.state.ActiveIndex
}

func (c *Controller) moveLocked(to int, source string) {
	from := c.state.ActiveIndex
	if to == from {
		return
	}
	c.state.ActiveIndex = to
	c.logger.Debug("carousel moved",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("source", source))
	c.announceLocked()
	c.commitLocked()
}

func (c *Controller) announceLocked() {
	n := c.state.ItemCount
	if n == 0 {
		return
	}
	idx := c.state.ActiveIndex
	c.announcer.Announce(c.items[idx], idx, n)
}

func (c *Controller) onAnnounce(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Announcement = text
	c.commitLocked()
}

// rearmLocked reconciles the autoplay timer with the derived armed flag.
func (c *Controller) rearmLocked() {
	armed := !c.closed &&
		c.state.Autoplay &&
		!c.state.HoverPaused &&
		!c.state.ReducedMotion &&
		c.state.ItemCount > 1
	if armed == c.state.TimerArmed && armed == (c.timer != nil) {
		return
	}
	c.state.TimerArmed = armed
	c.stopTimerLocked()
	if armed {
		c.timerGen++
		c.scheduleLocked(c.timerGen)
	}
}

func (c *Controller) scheduleLocked(gen uint64) {
	c.timer = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.timerGen || !c.state.TimerArmed {
		return
	}
	n := c.state.ItemCount
	c.moveLocked((c.state.ActiveIndex+1)%n, "autoplay")
	c.scheduleLocked(gen)
}

func (c *Controller) stopTimerLocked() {
	// Bumping the generation also invalidates a callback that already fired
	// and is waiting for the lock.
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
