package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/cmd/portfolio/ui"
	"portfolio/internal/carousel"
	"portfolio/internal/ux"
)

var (
	renderActive int
	renderWidth  int
	renderHeight int
	renderDetail bool
)

// renderCmd prints one frame without starting the interactive program
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single carousel frame",
	Long: `Renders the carousel once, as the interactive view would show it with
the given card in front, and prints it to stdout.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderActive, "active", 0, "Card to put in front")
	renderCmd.Flags().IntVar(&renderWidth, "width", 128, "Width in columns")
	renderCmd.Flags().IntVar(&renderHeight, "height", 40, "Height in rows")
	renderCmd.Flags().BoolVar(&renderDetail, "detail", false, "Include the focal project's description")
}

func runRender(cmd *cobra.Command, args []string) error {
	items, err := resolveItems()
	if err != nil {
		return err
	}

	cellPx := cfg.CellWidth()
	ctrl := carousel.NewController(items, append(controllerOptions(),
		carousel.WithStartIndex(renderActive),
		carousel.WithViewportWidth(renderWidth*cellPx),
		carousel.WithReducedMotion(cfg.Carousel.ReducedMotion),
	)...)
	state := ctrl.Snapshot()
	ctrl.Close()

	if state.ItemCount > 0 {
		item := items[state.ActiveIndex]
		state.Announcement = carousel.Announcement(item.Label(), state.ActiveIndex+1, state.ItemCount)
	}

	theme, err := ux.ParseTheme(cfg.UI.Theme)
	if err != nil {
		return err
	}
	out := ui.RenderStatic(items, state, ui.ResolveTheme(theme), renderWidth, renderHeight, cellPx, renderDetail)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
