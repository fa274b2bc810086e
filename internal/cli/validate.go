package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// validateCommand creates the "validate" command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.toml>",
		Short: "Check a catalog file against the grid invariants",
		Long: `Validate loads a catalog file and checks every preset geometry:
placements must stay in bounds, never overlap, and tile the grid
exactly. The default preset must define a geometry for every tier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			c.Logger.Debug("validating catalog", "path", path)

			cat, err := catalog.LoadFile(path)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				if code := errors.GetCode(err); code != "" {
					printDetail("code: %s", code)
				}
				return fmt.Errorf("catalog invalid")
			}

			printSuccess("Catalog is valid")
			printDetail("default preset: %s", cat.DefaultName())
			for _, name := range cat.Names() {
				p, _ := cat.Preset(name)
				tiers := 0
				for _, tier := range layout.Tiers() {
					if _, ok := p.Geometry(tier); ok {
						tiers++
					}
				}
				printDetail("%s: %d tiers, %d bindings", name, tiers, len(p.Bindings))
			}
			return nil
		},
	}
}
