package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/catalog"
)

// exportCmd writes the current items as YAML, a starting point for a
// custom item file
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the item collection as a YAML item file",
	Long: `Writes the configured items (the built-in portfolio by default) in the
item file format. With no file argument the YAML goes to stdout.

Example:
  portfolio export ~/portfolio/items.yaml
  portfolio --items ~/portfolio/items.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	items, err := resolveItems()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := catalog.Write(args[0], items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items to %s\n", len(items), args[0])
		return nil
	}

	data, err := catalog.Marshal(items)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
