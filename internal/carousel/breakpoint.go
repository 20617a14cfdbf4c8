package carousel

import "sync"

// Tier is a viewport size class.
type Tier int

const (
	TierMobile Tier = iota
	TierTablet
	TierDesktop
)

func (t Tier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Width breakpoints, in pixels.
const (
	// TabletMinWidth is the narrowest tablet viewport.
	TabletMinWidth = 768
	// DesktopMinWidth is the narrowest desktop viewport.
	DesktopMinWidth = 1024
)

// GoldenRatio is the focal card's width:height ratio.
const GoldenRatio = 1.618

// Mobile focal cards take a share of the viewport, capped.
const (
	MobileFocalWidthShare = 0.9
	MobileFocalMaxWidth   = 500
)

// Size is a card size in pixels.
type Size struct {
	Width  int
	Height int
}

var cardSizes = map[Tier][2]Size{
	TierDesktop: {{Width: 720, Height: 445}, {Width: 400, Height: 400}},
	TierTablet:  {{Width: 600, Height: 371}, {Width: 320, Height: 320}},
	TierMobile:  {{}, {Width: 280, Height: 280}},
}

// ClassifyWidth maps a viewport width to its tier.
func ClassifyWidth(width int) Tier {
	switch {
	case width < TabletMinWidth:
		return TierMobile
	case width < DesktopMinWidth:
		return TierTablet
	default:
		return TierDesktop
	}
}

// Dimensions returns the card size for a tier. Focal cards are golden
// rectangles, the rest are square. On mobile the focal card width follows the
// viewport.
func Dimensions(tier Tier, focal bool, viewportWidth int) Size {
	sizes := cardSizes[tier]
	if !focal {
		return sizes[1]
	}
	if tier != TierMobile {
		return sizes[0]
	}
	w := int(float64(viewportWidth) * MobileFocalWidthShare)
	if w > MobileFocalMaxWidth {
		w = MobileFocalMaxWidth
	}
	if w < 0 {
		w = 0
	}
	return Size{Width: w, Height: int(float64(w) / GoldenRatio)}
}

// BreakpointTracker follows the viewport width and exposes the current tier.
type BreakpointTracker struct {
	mu    sync.RWMutex
	width int
	tier  Tier
}

// NewBreakpointTracker starts tracking at the given width.
func NewBreakpointTracker(width int) *BreakpointTracker {
	return &BreakpointTracker{width: width, tier: ClassifyWidth(width)}
}

// Resize records a new viewport width and reports whether the tier changed.
func (b *BreakpointTracker) Resize(width int) (Tier, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width = width
	tier := ClassifyWidth(width)
	changed := tier != b.tier
	b.tier = tier
	return tier, changed
}

// Tier returns the current tier.
func (b *BreakpointTracker) Tier() Tier {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tier
}

// Width returns the last recorded width.
func (b *BreakpointTracker) Width() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width
}
