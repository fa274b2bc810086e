package board

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/brandsmith/moodgrid/pkg/errors"
)

// Source supplies tiles from a backing store. The grid engine treats
// every source as read-only brand content.
type Source interface {
	// Tiles returns all tiles in registry order.
	Tiles(ctx context.Context) ([]Tile, error)
}

// StaticSource serves a fixed tile slice. Useful for tests and for
// boards assembled in memory.
type StaticSource []Tile

// Tiles returns the static tiles.
func (s StaticSource) Tiles(ctx context.Context) ([]Tile, error) {
	out := make([]Tile, len(s))
	copy(out, s)
	return out, nil
}

// boardFile is the TOML authoring format for a board document:
//
//	preset = "editorial"
//
//	[[tile]]
//	id = "brand-hero"
//	type = "image"
//
//	[tile.content]
//	src = "hero.jpg"
type boardFile struct {
	Preset string `toml:"preset"`
	Tiles  []Tile `toml:"tile"`
}

// LoadBoard parses a TOML board document into the active preset name
// and a validated registry. An empty preset name means "use the catalog
// default".
func LoadBoard(data []byte) (string, *Registry, error) {
	var f boardFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse board")
	}

	reg, err := NewRegistry(f.Tiles...)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "board tiles")
	}
	return f.Preset, reg, nil
}

// LoadBoardFile reads and parses a TOML board file.
func LoadBoardFile(path string) (string, *Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return "", nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read board file %s", path)
	}
	return LoadBoard(data)
}

// FileSource serves tiles from a TOML board file, re-reading on each
// call so external edits are picked up.
type FileSource struct {
	Path string
}

// Tiles loads the board file and returns its tiles.
func (s FileSource) Tiles(ctx context.Context) ([]Tile, error) {
	_, reg, err := LoadBoardFile(s.Path)
	if err != nil {
		return nil, err
	}
	return reg.Tiles(), nil
}
