package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var transformsActive int

// transformsCmd prints the geometry of every card for a carousel size
var transformsCmd = &cobra.Command{
	Use:   "transforms [count]",
	Short: "Print card transforms for a carousel of N cards",
	Long: `Prints rotation, scale, opacity, depth and stacking order for every
card position, relative to the active card. Defaults to the size of the
configured item collection.

Example:
  portfolio transforms 6 --active 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransforms,
}

func init() {
	transformsCmd.Flags().IntVar(&transformsActive, "active", 0, "Active card index")
}

func runTransforms(cmd *cobra.Command, args []string) error {
	var count int
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("count must be a non-negative integer, got %q", args[0])
		}
		count = n
	} else {
		items, err := resolveItems()
		if err != nil {
			return err
		}
		count = len(items)
	}
	fmt.Fprint(cmd.OutOrStdout(), transformTable(count, transformsActive))
	return nil
}
