package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/internal/carousel"
	"portfolio/internal/catalog"
	"portfolio/internal/logging"
)

// validateCmd checks an item file
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an item file for duplicate IDs and missing fields",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.Catalog.ItemsPath
	if len(args) == 1 {
		path = args[0]
	}

	var items []carousel.Item
	if path == "" {
		items = catalog.Default()
		if err := catalog.Validate(items); err != nil {
			return err
		}
		path = "built-in catalog"
	} else {
		var err error
		items, err = catalog.Load(path)
		if err != nil {
			logging.For(logger, logging.CategoryCatalog).Debug("validation failed", zap.String("path", path), zap.Error(err))
			return err
		}
	}

	projects := 0
	for _, it := range items {
		if it.IsProject() {
			projects++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d items (%d projects, %d calls to action)\n",
		path, len(items), projects, len(items)-projects)
	return nil
}

// resolveItems loads the configured items.
func resolveItems() ([]carousel.Item, error) {
	return catalog.Resolve(cfg.Catalog.ItemsPath)
}
