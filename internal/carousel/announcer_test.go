package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_Format(t *testing.T) {
	assert.Equal(t, "Now showing: Story Bible App, 3 of 6", Announcement("Story Bible App", 3, 6))
}

func TestAnnouncer_BurstAnnouncesOnce(t *testing.T) {
	clock := newManualClock()
	var got []string
	a := NewAnnouncer(clock, 500*time.Millisecond, func(s string) { got = append(got, s) })
	items := sampleItems(6)

	for i := 1; i <= 5; i++ {
		a.Announce(items[i], i, len(items))
		clock.Advance(90 * time.Millisecond)
	}
	assert.Empty(t, got, "nothing announced while navigation continues")

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"Now showing: Have a project in mind?, 6 of 6"}, got)
	assert.Equal(t, got[0], a.Current())
}

func TestAnnouncer_SeparateSettledChanges(t *testing.T) {
	clock := newManualClock()
	count := 0
	a := NewAnnouncer(clock, 0, func(string) { count++ })
	items := sampleItems(3)

	a.Announce(items[0], 0, 3)
	clock.Advance(DefaultAnnounceDelay)
	a.Announce(items[1], 1, 3)
	clock.Advance(DefaultAnnounceDelay)

	assert.Equal(t, 2, count)
	assert.Equal(t, "Now showing: Project b, 2 of 3", a.Current())
}

func TestAnnouncer_StopCancelsPending(t *testing.T) {
	clock := newManualClock()
	count := 0
	a := NewAnnouncer(clock, 0, func(string) { count++ })

	a.Announce(sampleItems(2)[0], 0, 2)
	a.Stop()
	clock.Advance(time.Second)
	a.Announce(sampleItems(2)[1], 1, 2)
	clock.Advance(time.Second)

	assert.Zero(t, count)
	assert.Empty(t, a.Current())
	assert.Zero(t, clock.Pending())
}

func TestAnnouncer_IgnoresEmptyCollection(t *testing.T) {
	clock := newManualClock()
	a := NewAnnouncer(clock, 0, nil)
	a.Announce(Item{}, 0, 0)
	assert.Zero(t, clock.Pending())
}
