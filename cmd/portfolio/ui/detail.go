package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"portfolio/internal/carousel"
)

// DetailRenderer renders the focal item's long description as markdown.
// Output is cached per item, width and style; glamour is slow enough to
// notice on every autoplay tick.
type DetailRenderer struct {
	cache  *RenderCache
	logger *zap.Logger
}

// NewDetailRenderer creates a renderer with its own cache.
func NewDetailRenderer(logger *zap.Logger) *DetailRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailRenderer{
		cache:  NewRenderCache(64),
		logger: logger,
	}
}

// Render returns the rendered detail panel for item, or "" when the item
// has nothing to say.
func (d *DetailRenderer) Render(item carousel.Item, width int, theme Theme) string {
	md := DetailMarkdown(item)
	if md == "" {
		return ""
	}
	width = min(max(width-4, 20), DetailMaxWidth)
	style := theme.GlamourStyle()

	key := ComputeKey(item.ID, md, width, style)
	return d.cache.GetOrCompute(key, func() string {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			d.logger.Warn("glamour renderer", zap.Error(err))
			return md
		}
		out, err := renderer.Render(md)
		if err != nil {
			d.logger.Warn("glamour render", zap.String("item", item.ID), zap.Error(err))
			return md
		}
		return strings.TrimRight(out, "\n")
	})
}

// DetailMarkdown builds the markdown shown for an item.
func DetailMarkdown(item carousel.Item) string {
	if item.Kind == carousel.KindCTA || item.Description == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", item.Title)
	if item.ClientType != "" {
		fmt.Fprintf(&b, "*%s*\n\n", item.ClientType)
	}
	b.WriteString(item.Description)
	b.WriteString("\n")
	if len(item.TechStack) > 0 {
		fmt.Fprintf(&b, "\n**Stack:** %s\n", strings.Join(item.TechStack, ", "))
	}
	if item.CodeURL != "" && item.CodeURL != item.ProjectURL {
		fmt.Fprintf(&b, "\n[Source](%s)\n", item.CodeURL)
	}
	return b.String()
}
