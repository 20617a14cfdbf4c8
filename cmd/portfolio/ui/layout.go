package ui

import "portfolio/internal/carousel"

// Layout constants for the carousel screen
const (
	MinCardColumns = 14
	MinCardRows    = 5
	CardGap        = 1

	// Rows outside the stage: header, controls (3), indicators, live region.
	ChromeRows = 6

	// Cards drawn on each side of the focal card, at most.
	MaxSideCards = 2

	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 16

	DetailMaxWidth = 80
)

type zoneKind int

const (
	zoneCard zoneKind = iota
	zoneControl
	zoneIndicator
)

// zone is a clickable rectangle, half-open on both axes.
type zone struct {
	kind           zoneKind
	x0, x1, y0, y1 int
	index          int
	control        carousel.ControlKind
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

// screenLayout records where the last render put things so mouse events
// can be hit-tested.
type screenLayout struct {
	zones       []zone
	stageTop    int
	stageBottom int

	// regionBottom ends the carousel region: stage, controls and indicators.
	regionBottom int
}

func (l screenLayout) hit(x, y int) (zone, bool) {
	for _, z := range l.zones {
		if z.contains(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

func (l screenLayout) inStage(y int) bool {
	return y >= l.stageTop && y < l.stageBottom
}

func (l screenLayout) inRegion(y int) bool {
	return y >= l.stageTop && y < l.regionBottom
}
