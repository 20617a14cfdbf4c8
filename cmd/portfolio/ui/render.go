package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/carousel"
)

// controlText is the visible text on each control; the accessible label
// comes from the frame.
var controlText = map[carousel.ControlKind]string{
	carousel.ControlPrevious: "‹ Previous",
	carousel.ControlNext:     "Next ›",
}

// placedCard is a card chosen for the stage with its size in cells.
type placedCard struct {
	view       carousel.CardView
	cols, rows int
}

// renderFrame draws a frame into width×height cells. moving marks the focal
// card while a move's transition is still running. detail, when it fits,
// goes under the live region.
func renderFrame(f carousel.Frame, st Styles, width, height, cellPx int, moving bool, detail string) (string, screenLayout) {
	var lay screenLayout
	if f.Empty() {
		return "", lay
	}
	width = max(width, MinimumTerminalWidth)
	height = max(height, MinimumTerminalHeight)

	var b strings.Builder
	y := 0

	b.WriteString(renderHeader(f, st))
	b.WriteByte('\n')
	y++

	maxRows := max(MinCardRows, height-ChromeRows-1)
	placed := placeCards(f.Cards, width, maxRows, cellPx)
	stage, zones := renderStage(placed, st, width, y, moving)
	lay.zones = append(lay.zones, zones...)
	lay.stageTop = y
	lay.stageBottom = y + lipgloss.Height(stage)
	b.WriteString(stage)
	b.WriteByte('\n')
	y = lay.stageBottom

	controls, zones := renderControls(f.Controls, st, width, y)
	lay.zones = append(lay.zones, zones...)
	b.WriteString(controls)
	b.WriteByte('\n')
	y += lipgloss.Height(controls)

	indicators, zones := renderIndicators(f.IndicatorsLabel, f.Indicators, st, width, y)
	lay.zones = append(lay.zones, zones...)
	b.WriteString(indicators)
	b.WriteByte('\n')
	y++
	lay.regionBottom = y

	b.WriteString(st.Live.Render(f.LiveRegion))
	y++

	if detail != "" && y+lipgloss.Height(detail) <= height {
		b.WriteByte('\n')
		b.WriteString(detail)
	}
	return b.String(), lay
}

func renderHeader(f carousel.Frame, st Styles) string {
	status := ""
	if focal, ok := f.Focal(); ok {
		status = fmt.Sprintf("%d of %d · %s", focal.Index+1, len(f.Cards), f.Tier)
	}
	if ap, ok := f.Control(carousel.ControlAutoplay); ok && ap.Pressed {
		status += " · paused"
	}
	if f.Transition <= carousel.ReducedTransition {
		status += " · reduced motion"
	}
	return st.Header.Render(f.RegionLabel) + st.Muted.Render(status)
}

// placeCards picks the focal card and up to MaxSideCards neighbours per
// side, then scales their pixel sizes uniformly to the terminal width.
// Neighbours are dropped in pairs until every card is legible.
func placeCards(cards []carousel.CardView, width, maxRows, cellPx int) []placedCard {
	ordered := make([]carousel.CardView, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Transform.Offset < ordered[j].Transform.Offset
	})

	for side := MaxSideCards; side >= 0; side-- {
		var visible []carousel.CardView
		for _, c := range ordered {
			if abs(c.Transform.Offset) <= side {
				visible = append(visible, c)
			}
		}
		placed, ok := scaleCards(visible, width, maxRows, cellPx)
		if ok || side == 0 {
			return placed
		}
	}
	return nil
}

func scaleCards(visible []carousel.CardView, width, maxRows, cellPx int) ([]placedCard, bool) {
	total := 0.0
	for _, c := range visible {
		total += float64(c.Size.Width) * c.Transform.Scale
	}
	avail := float64((width - CardGap*(len(visible)-1)) * cellPx)
	factor := 1.0
	if total > avail && total > 0 {
		factor = avail / total
	}

	ok := true
	placed := make([]placedCard, len(visible))
	for i, c := range visible {
		w := float64(c.Size.Width) * c.Transform.Scale * factor
		h := float64(c.Size.Height) * c.Transform.Scale * factor
		cols := int(w) / cellPx
		rows := int(h) / (cellPx * 2)
		if cols < MinCardColumns {
			ok = false
			cols = MinCardColumns
		}
		placed[i] = placedCard{
			view: c,
			cols: cols,
			rows: min(max(rows, MinCardRows), maxRows),
		}
	}
	return placed, ok
}

func renderStage(placed []placedCard, st Styles, width, top int, moving bool) (string, []zone) {
	boxes := make([]string, 0, 2*len(placed))
	spans := make([][2]int, len(placed))
	x := 0
	for i, p := range placed {
		if i > 0 {
			boxes = append(boxes, strings.Repeat(" ", CardGap))
			x += CardGap
		}
		box := renderCard(p, st, moving)
		boxes = append(boxes, box)
		spans[i] = [2]int{x, x + lipgloss.Width(box)}
		x = spans[i][1]
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
	row, left := centre(row, width)

	height := lipgloss.Height(row)
	zones := make([]zone, len(placed))
	for i, p := range placed {
		zones[i] = zone{
			kind:  zoneCard,
			x0:    left + spans[i][0],
			x1:    left + spans[i][1],
			y0:    top,
			y1:    top + height,
			index: p.view.Index,
		}
	}
	return row, zones
}

func renderCard(p placedCard, st Styles, moving bool) string {
	style := st.FarCard
	switch p.view.Transform.Distance() {
	case carousel.DistanceFocal:
		style = st.FocalCard
		if moving {
			style = st.FocalCardMoving
		}
	case carousel.DistanceNear:
		style = st.NearCard
	}

	inner := max(p.cols-4, 1)
	content := cardContent(p.view, st, inner)
	content = lipgloss.NewStyle().Width(inner).Render(content)

	lines := strings.Split(content, "\n")
	if maxLines := p.rows - 2; len(lines) > maxLines {
		lines = lines[:max(maxLines, 0)]
	}
	return style.
		Width(p.cols - 2).
		Height(p.rows - 2).
		Render(strings.Join(lines, "\n"))
}

func cardContent(cv carousel.CardView, st Styles, inner int) string {
	item := cv.Item
	if item.Kind == carousel.KindCTA {
		parts := []string{
			st.CTATitle.Width(inner).Render(item.Heading),
			"",
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.CTAButton.Render(item.ButtonText)),
		}
		if cv.Transform.Focal {
			parts = append(parts, "", st.CardMeta.Render(item.Link))
		}
		return strings.Join(parts, "\n")
	}
	if !cv.ShowContent {
		return ""
	}

	parts := []string{st.CardTitle.Render(item.Title)}
	if item.ClientType != "" {
		parts = append(parts, st.CardMeta.Render(item.ClientType))
	}
	if cv.TechLine != "" {
		parts = append(parts, "", st.CardMeta.Render(cv.TechLine))
	}
	if cv.Link != "" {
		parts = append(parts, "", st.CardLink.Render(carousel.ProjectLinkText), st.CardMeta.Render(cv.Link))
	}
	return strings.Join(parts, "\n")
}

func renderControls(controls []carousel.Control, st Styles, width, top int) (string, []zone) {
	buttons := make([]string, 0, 2*len(controls))
	spans := make([][2]int, len(controls))
	x := 0
	for i, c := range controls {
		if i > 0 {
			buttons = append(buttons, "  ")
			x += 2
		}
		text, ok := controlText[c.Kind]
		if !ok {
			text = c.Label
		}
		style := st.Control
		if c.Pressed {
			style = st.ControlPressed
		}
		btn := style.Render(text)
		buttons = append(buttons, btn)
		spans[i] = [2]int{x, x + lipgloss.Width(btn)}
		x = spans[i][1]
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	row, left := centre(row, width)

	height := lipgloss.Height(row)
	zones := make([]zone, len(controls))
	for i, c := range controls {
		zones[i] = zone{
			kind:    zoneControl,
			x0:      left + spans[i][0],
			x1:      left + spans[i][1],
			y0:      top,
			y1:      top + height,
			control: c.Kind,
		}
	}
	return row, zones
}

func renderIndicators(label string, indicators []carousel.Indicator, st Styles, width, top int) (string, []zone) {
	prefix := ""
	if label != "" {
		prefix = st.Muted.Render(label) + "  "
	}
	offset := lipgloss.Width(prefix)

	dots := make([]string, len(indicators))
	for i, ind := range indicators {
		if ind.Selected {
			dots[i] = st.IndicatorOn.Render("●")
		} else {
			dots[i] = st.Indicator.Render("○")
		}
	}
	row, left := centre(prefix+strings.Join(dots, " "), width)
	left += offset

	zones := make([]zone, len(indicators))
	for i, ind := range indicators {
		zones[i] = zone{
			kind:  zoneIndicator,
			x0:    left + 2*i,
			x1:    left + 2*i + 2,
			y0:    top,
			y1:    top + 1,
			index: ind.Index,
		}
	}
	return row, zones
}

// centre left-pads every line so the block sits in the middle of width
// and returns the padding used.
func centre(block string, width int) (string, int) {
	left := max((width-lipgloss.Width(block))/2, 0)
	if left == 0 {
		return block, 0
	}
	pad := strings.Repeat(" ", left)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n"), left
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
