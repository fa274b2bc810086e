package board

import (
	"github.com/brandsmith/moodgrid/pkg/errors"
)

// Tile is a unit of brand content independent of grid position. The
// grid engine reads only ID and Type; Content is opaque payload for the
// presentational layer (colors, text, image references).
type Tile struct {
	ID      string         `json:"id" toml:"id" bson:"id"`
	Type    string         `json:"type" toml:"type" bson:"type"`
	Content map[string]any `json:"content,omitempty" toml:"content" bson:"content,omitempty"`
}

// Validate checks tile identifiers.
func (t Tile) Validate() error {
	if err := errors.ValidateTileID(t.ID); err != nil {
		return err
	}
	return errors.ValidateTileType(t.Type)
}

// Registry is the ordered set of content tiles. Order matters for
// type-based fallback resolution, which returns the first matching tile.
// The registry is read-only to the grid engine.
type Registry struct {
	tiles []Tile
	byID  map[string]int
}

// NewRegistry builds a registry, validating tiles and rejecting
// duplicate ids.
func NewRegistry(tiles ...Tile) (*Registry, error) {
	r := &Registry{
		tiles: make([]Tile, 0, len(tiles)),
		byID:  make(map[string]int, len(tiles)),
	}
	for _, t := range tiles {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidTile, "duplicate tile id %q", t.ID)
		}
		r.byID[t.ID] = len(r.tiles)
		r.tiles = append(r.tiles, t)
	}
	return r, nil
}

// ByID returns the tile with the given id, if present.
func (r *Registry) ByID(id string) (Tile, bool) {
	if i, ok := r.byID[id]; ok {
		return r.tiles[i], true
	}
	return Tile{}, false
}

// FirstOfType returns the first tile whose type matches typ.
func (r *Registry) FirstOfType(typ string) (Tile, bool) {
	for _, t := range r.tiles {
		if t.Type == typ {
			return t, true
		}
	}
	return Tile{}, false
}

// Tiles returns the tiles in registry order.
func (r *Registry) Tiles() []Tile {
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Len returns the number of tiles.
func (r *Registry) Len() int {
	return len(r.tiles)
}
