package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/render"
)

// presetsCommand creates the "presets" command with its subcommands.
func (c *CLI) presetsCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List layout presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("PRESET", "DEFAULT", "TIER", "GRID", "PLACEMENTS")

			for _, name := range cat.Names() {
				p, _ := cat.Preset(name)
				isDefault := ""
				if name == cat.DefaultName() {
					isDefault = iconSuccess
				}
				for _, tier := range layout.Tiers() {
					geom, ok := p.Geometry(tier)
					if !ok {
						continue
					}
					t.Row(name, isDefault, tier.String(),
						fmt.Sprintf("%dx%d", geom.Columns, geom.Rows),
						strings.Join(geom.PlacementIDs(), ", "))
					// Only label the first row per preset
					name, isDefault = "", ""
				}
			}

			fmt.Println(t)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (default: builtin presets)")
	cmd.AddCommand(c.presetsGraphCommand(&catalogPath))
	return cmd
}

// presetsGraphCommand creates the "presets graph" subcommand, exporting
// a Graphviz structure diagram of one preset.
func (c *CLI) presetsGraphCommand(catalogPath *string) *cobra.Command {
	var (
		presetName string
		tierName   string
		out        string
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export a preset's structure as a Graphviz diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(*catalogPath)
			if err != nil {
				return err
			}
			tier, err := layout.ParseTier(tierName)
			if err != nil {
				return err
			}
			if err := errors.ValidateOutputPath(out); err != nil {
				return err
			}

			reg, err := board.NewRegistry(sampleTiles()...)
			if err != nil {
				return err
			}
			composer := board.NewComposer(cat)
			preset := cat.Resolve(presetName)
			geom := composer.Geometry(preset.Name, tier)
			slots := composer.Compose(preset.Name, tier, board.NewSwapLedger(), reg)

			dot := render.ToDOT(preset.Name, geom, slots, nil, render.DOTOptions{Detailed: detailed})

			var data []byte
			switch ext := filepath.Ext(out); ext {
			case ".dot", ".gv":
				data = []byte(dot)
			case ".svg":
				data, err = render.GraphSVG(dot)
			case ".png":
				data, err = render.GraphPNG(dot)
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported graph format %q", ext)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			printSuccess("Exported %s structure", preset.Name)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "preset name (default: catalog default)")
	cmd.Flags().StringVar(&tierName, "tier", "desktop", "breakpoint tier (mobile|tablet|desktop)")
	cmd.Flags().StringVarP(&out, "out", "o", "preset.svg", "output file (.dot, .gv, .svg, .png)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include spans and tile types in labels")
	return cmd
}
