package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/carousel"
	"portfolio/internal/catalog"
)

func composeDefault(active, viewport int) carousel.Frame {
	items := catalog.Default()
	return carousel.Compose(items, carousel.State{
		ActiveIndex:   active,
		ItemCount:     len(items),
		Tier:          carousel.ClassifyWidth(viewport),
		ViewportWidth: viewport,
		Autoplay:      true,
	})
}

func TestPlaceCards_FocalInTheMiddle(t *testing.T) {
	f := composeDefault(0, 1024)
	placed := placeCards(f.Cards, 128, 30, 8)

	require.Len(t, placed, 5)
	assert.Equal(t, 0, placed[2].view.Index)
	assert.True(t, placed[2].view.Transform.Focal)
	for i := 1; i < len(placed); i++ {
		assert.Less(t, placed[i-1].view.Transform.Offset, placed[i].view.Transform.Offset)
	}
	assert.Greater(t, placed[2].cols, placed[1].cols, "the focal card is widest")
	assert.Greater(t, placed[1].cols, placed[0].cols, "near cards are wider than far ones")
}

func TestPlaceCards_NarrowTerminalDropsNeighbours(t *testing.T) {
	f := composeDefault(0, 320)
	placed := placeCards(f.Cards, 40, 20, 8)

	require.NotEmpty(t, placed)
	assert.Less(t, len(placed), 5)
	for _, p := range placed {
		assert.GreaterOrEqual(t, p.cols, MinCardColumns)
	}
}

func TestRenderFrame_ZonesCoverControls(t *testing.T) {
	f := composeDefault(2, 1024)
	_, lay := renderFrame(f, NewStyles(LightTheme()), 128, 40, 8, false, "")

	counts := map[zoneKind]int{}
	for _, z := range lay.zones {
		counts[z.kind]++
		assert.Less(t, z.x0, z.x1)
		assert.Less(t, z.y0, z.y1)
	}
	assert.Equal(t, 3, counts[zoneControl])
	assert.Equal(t, 6, counts[zoneIndicator])
	assert.Equal(t, 5, counts[zoneCard])

	assert.Equal(t, 1, lay.stageTop)
	assert.Greater(t, lay.stageBottom, lay.stageTop)
}

func TestRenderFrame_RegionCoversControlsAndIndicators(t *testing.T) {
	f := composeDefault(0, 1024)
	_, lay := renderFrame(f, NewStyles(LightTheme()), 128, 40, 8, false, "")

	for _, z := range lay.zones {
		if z.kind == zoneCard {
			continue
		}
		assert.True(t, lay.inRegion(z.y0), "zone %v at row %d", z.kind, z.y0)
		assert.False(t, lay.inStage(z.y0))
	}
	assert.False(t, lay.inRegion(lay.regionBottom), "the live region sits outside")
}

func TestRenderIndicators_LabelPrecedesDots(t *testing.T) {
	f := composeDefault(1, 1024)
	st := NewStyles(LightTheme())
	row, zones := renderIndicators(f.IndicatorsLabel, f.Indicators, st, 128, 7)

	assert.Contains(t, row, carousel.IndicatorsLabel)
	require.Len(t, zones, 6)
	labelEnd := strings.Index(row, carousel.IndicatorsLabel) + len(carousel.IndicatorsLabel)
	assert.Greater(t, zones[0].x0, labelEnd)
	for i, z := range zones {
		assert.Equal(t, i, z.index)
		assert.Equal(t, 7, z.y0)
	}

	// Dots are one cell apart, so the second zone starts two cells on.
	assert.Equal(t, zones[0].x0+2, zones[1].x0)
}

func TestRenderHeader_ReducedMotion(t *testing.T) {
	st := NewStyles(LightTheme())
	items := catalog.Default()

	f := carousel.Compose(items, carousel.State{ItemCount: len(items), Autoplay: true})
	assert.NotContains(t, renderHeader(f, st), "reduced motion")

	f = carousel.Compose(items, carousel.State{ItemCount: len(items), ReducedMotion: true})
	header := renderHeader(f, st)
	assert.Contains(t, header, "reduced motion")
	assert.Contains(t, header, "paused")
}

func TestRenderFrame_HidesContentBeyondThreshold(t *testing.T) {
	f := composeDefault(0, 1024)
	for _, c := range f.Cards {
		if c.Transform.Offset == 2 || c.Transform.Offset == -2 {
			// 6 cards: ±2 is 120°, still captioned
			assert.True(t, c.ShowContent || !c.Item.IsProject())
		}
		if c.Transform.Offset == 3 {
			assert.False(t, c.ShowContent, "180° is beyond the caption limit")
		}
	}
}

func TestCentre(t *testing.T) {
	out, left := centre("ab\ncd", 10)
	assert.Equal(t, 4, left)
	assert.Equal(t, "    ab\n    cd", out)

	out, left = centre("wide", 2)
	assert.Equal(t, 0, left)
	assert.Equal(t, "wide", out)
}

func TestDetailMarkdown(t *testing.T) {
	items := catalog.Default()

	md := DetailMarkdown(items[0])
	assert.Contains(t, md, "### Portuguese Verb Conjugator")
	assert.Contains(t, md, "*Personal Project*")
	assert.Contains(t, md, "**Stack:** Next.js, TypeScript, OpenAI, Tailwind, Vercel")
	assert.NotContains(t, md, "[Source]", "code link equal to the project link is not repeated")

	assert.Contains(t, DetailMarkdown(items[3]), "[Source](https://github.com/jarrodmedrano/binary-quiz)")
	assert.Empty(t, DetailMarkdown(items[5]))
}

func TestDetailRenderer_Caches(t *testing.T) {
	d := NewDetailRenderer(nil)
	item := catalog.Default()[1]

	first := d.Render(item, 80, LightTheme())
	second := d.Render(item, 80, LightTheme())
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	hits, misses := d.cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}
