// Package cli implements the moodgrid command-line interface.
//
// This package provides commands for validating layout catalogs,
// composing boards into render artifacts, editing a board interactively
// in the terminal, and serving the HTTP API. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - validate: Check a catalog file against the grid invariants
//   - presets: List presets or export a structure diagram
//   - compose: Render a board to JSON, SVG, PNG, or DOT files
//   - board: Edit a board interactively in the terminal
//   - serve: Run the HTTP API for the browser client
//   - cache: Manage the rendered-board artifact cache
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/buildinfo"
	"github.com/brandsmith/moodgrid/pkg/cache"
	"github.com/brandsmith/moodgrid/pkg/catalog"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "moodgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Output formats for the compose command.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "moodgrid",
		Short:        "Moodgrid arranges brand moodboards on responsive grids",
		Long:         `Moodgrid is a grid engine for brand moodboards: layout presets tile the grid exactly at every breakpoint, and tiles resolve onto placements through bindings, type fallbacks, and user swaps.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.composeCommand())
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Loaders
// =============================================================================

// loadCatalog loads the catalog file at path, or the builtin catalog
// when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

// loadBoard loads the board file at path. With an empty path it falls
// back to the sample brand kit, so every command works out of the box.
// The board file's preset is returned alongside the registry; it may be
// empty when the file does not pin one.
func loadBoard(path string) (string, *board.Registry, error) {
	if path == "" {
		reg, err := board.NewRegistry(sampleTiles()...)
		return "", reg, err
	}
	return board.LoadBoardFile(path)
}

// newArtifactCache builds the artifact cache honoring --no-cache.
func newArtifactCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(cache.DefaultDir())
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{FormatSVG}
	}
	return strings.Split(s, ",")
}
