package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"portfolio/internal/carousel"
)

// transformTable renders the transform of every card as a table.
func transformTable(count, active int) string {
	if count <= 0 {
		return "no cards\n"
	}
	if active < 0 || active >= count {
		active = min(max(active, 0), count-1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("card", "offset", "rotateY", "scale", "opacity", "z", "depth", "distance")

	for i, tr := range carousel.Transforms(active, count) {
		t.Row(
			fmt.Sprint(i),
			fmt.Sprintf("%+d", tr.Offset),
			fmt.Sprintf("%.1f°", tr.RotateY),
			fmt.Sprintf("%.1f", tr.Scale),
			fmt.Sprintf("%.1f", tr.Opacity),
			fmt.Sprint(tr.ZIndex),
			fmt.Sprintf("%.0f", tr.TranslateZ),
			tr.Distance().String(),
		)
	}
	return fmt.Sprintf("%d cards, active %d, step %.1f°\n%s\n", count, active, carousel.StepAngle(count), t.Render())
}
