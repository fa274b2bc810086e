package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/cache"
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/render"
)

// composeCommand creates the "compose" command.
func (c *CLI) composeCommand() *cobra.Command {
	var (
		catalogPath string
		boardPath   string
		presetName  string
		width       float64
		formats     string
		outDir      string
		baseName    string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Render a board to JSON, SVG, PNG, or DOT files",
		Long: `Compose resolves tiles onto the active preset's grid for the given
viewport width and writes the result in one or more formats. A board
file can pin its preferred preset; --preset overrides it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			boardPreset, reg, err := loadBoard(boardPath)
			if err != nil {
				return err
			}
			if presetName == "" {
				presetName = boardPreset
			}

			ed := board.NewEditor(cat, reg,
				board.WithPreset(presetName),
				board.WithViewportWidth(width))

			p := newProgress(c.Logger)
			slots := ed.Compose()
			empty := 0
			for _, s := range slots {
				if s.Empty() {
					empty++
				}
			}
			p.done(fmt.Sprintf("Composed %s/%s: %d slots", ed.Preset(), ed.Tier(), len(slots)))

			artifacts, err := newArtifactCache(noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			cachedAny := false
			for _, format := range parseFormats(formats) {
				out := filepath.Join(outDir, baseName+"."+format)
				if err := errors.ValidateOutputPath(out); err != nil {
					return err
				}

				data, cached, err := c.renderFormat(cmd, ed, artifacts, format)
				if err != nil {
					return err
				}
				cachedAny = cachedAny || cached

				if err := os.WriteFile(out, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				printFile(out)
			}
			printBoardStats(len(slots), empty, cachedAny)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default: builtin presets)")
	cmd.Flags().StringVar(&boardPath, "board", "", "board file (default: sample brand kit)")
	cmd.Flags().StringVar(&presetName, "preset", "", "preset name (default: board file or catalog default)")
	cmd.Flags().Float64Var(&width, "width", 1280, "viewport width in px, selects the breakpoint tier")
	cmd.Flags().StringVarP(&formats, "formats", "f", FormatSVG, "comma-separated output formats (json,svg,png,dot)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&baseName, "name", "board", "output file base name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")
	return cmd
}

// renderFormat renders the composed board in one format, consulting the
// artifact cache for the raster-ish formats.
func (c *CLI) renderFormat(cmd *cobra.Command, ed *board.Editor, artifacts cache.Cache, format string) (data []byte, cached bool, err error) {
	ctx := cmd.Context()
	geom := ed.Geometry()
	slots := ed.Compose()

	switch format {
	case FormatJSON:
		data, err = render.BoardJSON(ed.Preset(), ed.Tier(), geom, slots)
		return data, false, err

	case FormatDOT:
		dot := render.ToDOT(ed.Preset(), geom, slots, ed.Swaps(), render.DOTOptions{})
		return []byte(dot), false, nil

	case FormatSVG, FormatPNG:
		key := cache.BoardKey(ed.Preset(), ed.Tier().String(), ed.Swaps(), format)
		if data, hit, err := artifacts.Get(ctx, key); err == nil && hit {
			c.Logger.Debug("artifact cache hit", "format", format)
			return data, true, nil
		}

		svg := render.BoardSVG(geom, slots)
		data = svg
		if format == FormatPNG {
			data, err = render.ToPNG(svg, 2.0)
			if err != nil {
				return nil, false, err
			}
		}
		if err := artifacts.Set(ctx, key, data, 0); err != nil {
			c.Logger.Warn("cache artifact", "err", err)
		}
		return data, false, nil

	default:
		return nil, false, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (want json, svg, png, or dot)", format)
	}
}
