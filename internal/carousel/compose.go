package carousel

import (
	"fmt"
	"strings"
	"time"
)

// Presentation constants.
const (
	RegionLabel        = "Featured Projects Carousel"
	IndicatorsLabel    = "Carousel navigation"
	ProjectLinkText    = "View Project →"
	TechLineSeparator  = " • "
	MaxTechTags        = 3
	ContentMaxRotation = 144.0
)

// ControlKind identifies one of the three carousel controls.
type ControlKind int

const (
	ControlPrevious ControlKind = iota
	ControlNext
	ControlAutoplay
)

// Control is an accessible, labelled button.
type Control struct {
	Kind    ControlKind
	Label   string
	Pressed bool
}

// Indicator is one position dot.
type Indicator struct {
	Index    int
	Label    string
	Selected bool
}

// CardView is a positioned card ready to draw.
type CardView struct {
	Index     int
	Item      Item
	Transform CardTransform
	Size      Size

	// ShowContent is set for project cards close enough to the front to carry
	// a caption.
	ShowContent bool
	TechLine    string
	// Link is the project link, offered only on the focal card.
	Link string
}

// Frame is everything a host needs to draw the carousel for one state.
type Frame struct {
	RegionLabel     string
	Tier            Tier
	Cards           []CardView
	Controls        []Control
	Indicators      []Indicator
	IndicatorsLabel string
	LiveRegion      string
	Transition      time.Duration
}

// Empty reports whether there is nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Cards) == 0
}

// Focal returns the focal card.
func (f Frame) Focal() (CardView, bool) {
	for _, c := range f.Cards {
		if c.Transform.Focal {
			return c, true
		}
	}
	return CardView{}, false
}

// Control returns the control of the given kind.
func (f Frame) Control(kind ControlKind) (Control, bool) {
	for _, c := range f.Controls {
		if c.Kind == kind {
			return c, true
		}
	}
	return Control{}, false
}

// Compose turns items and a state snapshot into a Frame. It is pure; hosts
// call it after every state change. An empty collection composes an empty
// frame.
func Compose(items []Item, s State) Frame {
	f := Frame{
		RegionLabel: RegionLabel,
		Tier:        s.Tier,
		LiveRegion:  s.Announcement,
		Transition:  TransitionDuration(s.ReducedMotion),
	}
	n := len(items)
	if n == 0 {
		return f
	}
	active := clampIndex(s.ActiveIndex, n)

	f.Cards = make([]CardView, n)
	for i, item := range items {
		t := Transform(i, active, n)
		cv := CardView{
			Index:     i,
			Item:      item,
			Transform: t,
			Size:      Dimensions(s.Tier, t.Focal, s.ViewportWidth),
		}
		if item.IsProject() && abs64(t.RotateY) <= ContentMaxRotation {
			cv.ShowContent = true
			cv.TechLine = TechLine(item.TechStack)
			if t.Focal {
				cv.Link = item.ProjectURL
			}
		}
		f.Cards[i] = cv
	}

	f.Controls = []Control{
		{Kind: ControlPrevious, Label: "Previous project"},
		{Kind: ControlNext, Label: "Next project"},
		autoplayControl(s.Autoplay),
	}

	f.IndicatorsLabel = IndicatorsLabel
	f.Indicators = make([]Indicator, n)
	for i := range f.Indicators {
		f.Indicators[i] = Indicator{
			Index:    i,
			Label:    fmt.Sprintf("Project %d", i+1),
			Selected: i == active,
		}
	}
	return f
}

// TechLine joins the first few technology tags for a card caption.
func TechLine(tags []string) string {
	if len(tags) > MaxTechTags {
		tags = tags[:MaxTechTags]
	}
	return strings.Join(tags, TechLineSeparator)
}

func autoplayControl(playing bool) Control {
	c := Control{Kind: ControlAutoplay, Pressed: !playing}
	if playing {
		c.Label = "Pause auto-rotation"
	} else {
		c.Label = "Play auto-rotation"
	}
	return c
}

func abs64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
