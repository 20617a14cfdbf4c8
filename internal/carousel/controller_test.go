package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sampleItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n-1; i++ {
		id := string(rune('a' + i))
		items = append(items, Project(id, "Project "+id, "/img/"+id+".png", []string{"Go", "TUI"}, "https://example.com/"+id))
	}
	if n > 0 {
		items = append(items, CallToAction("cta", "Have a project in mind?", "Let's talk", "#contact"))
	}
	return items
}

func newTestController(t *testing.T, n int, opts ...Option) (*Controller, *manualClock) {
	t.Helper()
	clock := newManualClock()
	opts = append([]Option{WithClock(clock), WithLogger(zaptest.NewLogger(t))}, opts...)
	c := NewController(sampleItems(n), opts...)
	t.Cleanup(c.Close)
	return c, clock
}

func TestController_InitialState(t *testing.T) {
	c, _ := newTestController(t, 5)
	s := c.Snapshot()

	assert.Equal(t, 0, s.ActiveIndex)
	assert.Equal(t, 5, s.ItemCount)
	assert.True(t, s.Autoplay)
	assert.False(t, s.HoverPaused)
	assert.False(t, s.ReducedMotion)
	assert.True(t, s.TimerArmed)
	assert.Equal(t, TierDesktop, s.Tier)
	assert.NotEmpty(t, c.ID())
	assert.Equal(t, DefaultInterval, c.Interval())
}

func TestController_ReducedMotionDisablesAutoplayAtMount(t *testing.T) {
	c, clock := newTestController(t, 5, WithReducedMotion(true))
	s := c.Snapshot()
	assert.False(t, s.Autoplay)
	assert.False(t, s.TimerArmed)

	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)
}

func TestController_MountCarriesAutoplayAndHover(t *testing.T) {
	c, clock := newTestController(t, 5, WithAutoplay(false))
	s := c.Snapshot()
	assert.False(t, s.Autoplay)
	assert.False(t, s.TimerArmed)
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	hovered, _ := newTestController(t, 5, WithHover(true))
	s = hovered.Snapshot()
	assert.True(t, s.Autoplay)
	assert.True(t, s.HoverPaused)
	assert.False(t, s.TimerArmed)

	hovered.SetHover(false)
	assert.True(t, hovered.Snapshot().TimerArmed)
}

func TestController_NextAndPreviousWrap(t *testing.T) {
	c, _ := newTestController(t, 5)

	assert.Equal(t, 4, c.Previous())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
}

func TestController_NextCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			c, _ := newTestController(t, n, WithStartIndex(start))
			for i := 0; i < n; i++ {
				c.Next()
			}
			require.Equal(t, start, c.Snapshot().ActiveIndex, "n=%d start=%d", n, start)
		}
	}
}

func TestController_JumpToClamps(t *testing.T) {
	c, _ := newTestController(t, 5)

	assert.Equal(t, 3, c.JumpTo(3))
	assert.Equal(t, 4, c.JumpTo(99))
	assert.Equal(t, 0, c.JumpTo(-2))
}

func TestController_StartIndexClamped(t *testing.T) {
	c, _ := newTestController(t, 3, WithStartIndex(10))
	assert.Equal(t, 2, c.Snapshot().ActiveIndex)
}

func TestController_EmptyCollectionIsNoop(t *testing.T) {
	c, clock := newTestController(t, 0)

	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Previous())
	assert.Equal(t, 0, c.JumpTo(3))
	assert.False(t, c.Snapshot().TimerArmed)
	clock.Advance(time.Minute)
	assert.Empty(t, c.Snapshot().Announcement)
	assert.Equal(t, 0, clock.Pending())
}

func TestController_SingleItemNeverArmsTimer(t *testing.T) {
	c, clock := newTestController(t, 1)
	s := c.Snapshot()
	assert.True(t, s.Autoplay)
	assert.False(t, s.TimerArmed)

	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)
}

func TestController_AutoplayAdvancesEachInterval(t *testing.T) {
	c, clock := newTestController(t, 5, WithInterval(2*time.Second))

	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Snapshot().ActiveIndex)

	clock.Advance(6 * time.Second)
	assert.Equal(t, 4, c.Snapshot().ActiveIndex)

	clock.Advance(2 * time.Second)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex, "autoplay wraps")
}

func TestController_ToggleAutoplayStopsAndResumes(t *testing.T) {
	c, clock := newTestController(t, 5)

	assert.False(t, c.ToggleAutoplay())
	assert.False(t, c.Snapshot().TimerArmed)
	clock.Advance(30 * time.Second)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	assert.True(t, c.ToggleAutoplay())
	clock.Advance(DefaultInterval - time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Snapshot().ActiveIndex)
}

func TestController_HoverSuspendsAndRestartsFullInterval(t *testing.T) {
	c, clock := newTestController(t, 5)

	clock.Advance(3 * time.Second)
	c.SetHover(true)
	assert.False(t, c.Snapshot().TimerArmed)
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	c.SetHover(false)
	clock.Advance(DefaultInterval - time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex, "elapsed time before hover is not carried over")
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Snapshot().ActiveIndex)
}

func TestController_ManualNavigationKeepsTimerPhase(t *testing.T) {
	c, clock := newTestController(t, 5)

	clock.Advance(4 * time.Second)
	c.Next()
	clock.Advance(time.Second)
	assert.Equal(t, 2, c.Snapshot().ActiveIndex)
}

func TestController_ReducedMotionChangeDisarms(t *testing.T) {
	c, clock := newTestController(t, 5)

	c.SetReducedMotion(true)
	s := c.Snapshot()
	assert.True(t, s.ReducedMotion)
	assert.True(t, s.Autoplay, "autoplay flag is preserved")
	assert.False(t, s.TimerArmed)
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Snapshot().ActiveIndex)

	c.SetReducedMotion(false)
	assert.True(t, c.Snapshot().TimerArmed)
	clock.Advance(DefaultInterval)
	assert.Equal(t, 1, c.Snapshot().ActiveIndex)
}

func TestController_ViewportWidthSetsTier(t *testing.T) {
	c, _ := newTestController(t, 5, WithViewportWidth(500))
	assert.Equal(t, TierMobile, c.Snapshot().Tier)

	c.SetViewportWidth(800)
	assert.Equal(t, TierTablet, c.Snapshot().Tier)
	c.SetViewportWidth(1024)
	assert.Equal(t, TierDesktop, c.Snapshot().Tier)
	assert.Equal(t, 1024, c.Snapshot().ViewportWidth)
}

func TestController_CloseCancelsPendingTimers(t *testing.T) {
	c, clock := newTestController(t, 5)

	clock.Advance(400 * time.Millisecond)
	require.Equal(t, 2, clock.Pending(), "autoplay and announcement timers pending")
	before := c.Snapshot()

	c.Close()
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Hour)
	after := c.Snapshot()
	assert.Equal(t, before.ActiveIndex, after.ActiveIndex)
	assert.Equal(t, before.Version, after.Version)
	assert.Empty(t, after.Announcement, "announcement never settled")
	assert.True(t, c.Closed())
}

func TestController_OperationsAfterCloseAreNoops(t *testing.T) {
	c, clock := newTestController(t, 5)
	c.Close()
	before := c.Snapshot()

	c.Next()
	c.Previous()
	c.JumpTo(3)
	c.ToggleAutoplay()
	c.SetHover(true)
	c.SetReducedMotion(true)
	c.SetViewportWidth(300)
	c.Close()
	clock.Advance(time.Hour)

	after := c.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, before.ActiveIndex, after.ActiveIndex)
	assert.Equal(t, 0, clock.Pending())
}

func TestController_AnnouncesSettledState(t *testing.T) {
	c, clock := newTestController(t, 5, WithInterval(time.Hour))

	clock.Advance(DefaultAnnounceDelay)
	assert.Equal(t, "Now showing: Project a, 1 of 5", c.Snapshot().Announcement)

	for i := 0; i < 5; i++ {
		c.Next()
		clock.Advance(50 * time.Millisecond)
		assert.Equal(t, "Now showing: Project a, 1 of 5", c.Snapshot().Announcement,
			"no intermediate announcement after step %d", i+1)
	}

	clock.Advance(DefaultAnnounceDelay)
	assert.Equal(t, "Now showing: Project a, 1 of 5", c.Snapshot().Announcement,
		"five steps on a five-card ring return to the first card")

	c.JumpTo(4)
	clock.Advance(DefaultAnnounceDelay)
	assert.Equal(t, "Now showing: Have a project in mind?, 5 of 5", c.Snapshot().Announcement)
}

func TestController_SubscribeDeliversLatest(t *testing.T) {
	c, _ := newTestController(t, 5, WithInterval(time.Hour))

	ch, cancel := c.Subscribe()
	defer cancel()

	first := <-ch
	assert.Equal(t, 0, first.ActiveIndex)

	c.Next()
	c.Next()
	c.Next()
	latest := <-ch
	assert.Equal(t, 3, latest.ActiveIndex, "intermediate snapshots are dropped")

	select {
	case s := <-ch:
		t.Fatalf("unexpected extra snapshot %+v", s)
	default:
	}
}

func TestController_SubscribeClosedOnClose(t *testing.T) {
	c, _ := newTestController(t, 3)
	ch, _ := c.Subscribe()
	<-ch

	c.Close()
	_, ok := <-ch
	assert.False(t, ok)

	late, cancel := c.Subscribe()
	cancel()
	_, ok = <-late
	assert.False(t, ok)
}

func TestController_UnsubscribeStopsDelivery(t *testing.T) {
	c, _ := newTestController(t, 3)
	ch, cancel := c.Subscribe()
	<-ch
	cancel()
	cancel()

	c.Next()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestController_ItemsAreCopied(t *testing.T) {
	items := sampleItems(3)
	c := NewController(items, WithClock(newManualClock()))
	defer c.Close()

	items[0].Title = "mutated"
	assert.Equal(t, "Project a", c.Items()[0].Title)
	assert.Equal(t, 3, c.Len())
}
