package carousel

// Per-distance presentation values.
const (
	FocalScale = 1.0
	NearScale  = 0.7
	FarScale   = 0.5

	FocalOpacity = 1.0
	NearOpacity  = 0.7
	FarOpacity   = 0.4

	// PushedBackDepth is the depth offset for every non-focal card.
	PushedBackDepth = -200.0

	// BaseZIndex is the stacking order of the focal card; every step of
	// circular distance lowers it by one.
	BaseZIndex = 5
)

// Distance classifies how far a card sits from the focal position.
type Distance int

const (
	DistanceFocal Distance = iota
	DistanceNear
	DistanceFar
)

func (d Distance) String() string {
	switch d {
	case DistanceFocal:
		return "focal"
	case DistanceNear:
		return "near"
	default:
		return "far"
	}
}

// CardTransform is the derived presentation of one card. It is recomputed on
// every state change and never stored.
type CardTransform struct {
	Offset     int     // circular offset from the active card
	RotateY    float64 // degrees, signed
	Scale      float64
	Opacity    float64
	ZIndex     int
	TranslateZ float64
	Focal      bool
}

// Distance reports the distance class of the transform.
func (t CardTransform) Distance() Distance {
	return classify(t.Offset)
}

// CircularOffset returns the shortest signed distance from active to card on a
// ring of total positions, normalised into (-total/2, total/2]. An exact
// half-way distance on an even ring is always reported as +total/2, whichever
// index is larger.
func CircularOffset(card, active, total int) int {
	if total <= 1 {
		return 0
	}
	offset := ((card-active)%total + total) % total
	if offset > total/2 {
		offset -= total
	}
	return offset
}

// Transform computes the presentation of card when active is the focal index.
// A non-positive total yields the zero transform.
func Transform(card, active, total int) CardTransform {
	if total <= 0 {
		return CardTransform{}
	}
	offset := CircularOffset(card, active, total)
	dist := classify(offset)

	t := CardTransform{
		Offset:  offset,
		RotateY: float64(offset) * 360 / float64(total),
		ZIndex:  BaseZIndex - abs(offset),
	}
	switch dist {
	case DistanceFocal:
		t.Scale, t.Opacity, t.Focal = FocalScale, FocalOpacity, true
	case DistanceNear:
		t.Scale, t.Opacity, t.TranslateZ = NearScale, NearOpacity, PushedBackDepth
	default:
		t.Scale, t.Opacity, t.TranslateZ = FarScale, FarOpacity, PushedBackDepth
	}
	return t
}

// Transforms returns the transform of every card for the given active index.
func Transforms(active, total int) []CardTransform {
	if total <= 0 {
		return nil
	}
	out := make([]CardTransform, total)
	for i := range out {
		out[i] = Transform(i, active, total)
	}
	return out
}

// StepAngle is the rotation between adjacent cards.
func StepAngle(total int) float64 {
	if total <= 0 {
		return 0
	}
	return 360 / float64(total)
}

func classify(offset int) Distance {
	switch abs(offset) {
	case 0:
		return DistanceFocal
	case 1:
		return DistanceNear
	default:
		return DistanceFar
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
