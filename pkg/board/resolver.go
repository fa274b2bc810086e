package board

import (
	"github.com/brandsmith/moodgrid/pkg/catalog"
)

// Resolution is the tagged result of resolving a placement: either a
// found tile or an empty slot. Empty is a normal terminal state, not an
// error; it renders as a placeholder.
type Resolution struct {
	tile  Tile
	found bool
}

// Found wraps a resolved tile.
func Found(t Tile) Resolution {
	return Resolution{tile: t, found: true}
}

// Empty is the no-tile resolution.
func Empty() Resolution {
	return Resolution{}
}

// Tile returns the resolved tile and whether one was found.
func (r Resolution) Tile() (Tile, bool) {
	return r.tile, r.found
}

// IsEmpty reports whether the resolution found no tile.
func (r Resolution) IsEmpty() bool {
	return !r.found
}

// Strategy resolves an effective placement id to a tile. Strategies are
// tried in order; the first match wins.
type Strategy interface {
	Resolve(effectiveID string, reg *Registry) (Tile, bool)
}

// bindingStrategy looks up the tile whose id the preset statically binds
// to the placement.
type bindingStrategy struct {
	preset catalog.Preset
}

func (s bindingStrategy) Resolve(effectiveID string, reg *Registry) (Tile, bool) {
	tileID, ok := s.preset.BoundTileID(effectiveID)
	if !ok {
		return Tile{}, false
	}
	return reg.ByID(tileID)
}

// typeStrategy falls back to the first registry tile matching the
// preset's expected type for the placement.
type typeStrategy struct {
	preset catalog.Preset
}

func (s typeStrategy) Resolve(effectiveID string, reg *Registry) (Tile, bool) {
	typ, ok := s.preset.ExpectedType(effectiveID)
	if !ok {
		return Tile{}, false
	}
	return reg.FirstOfType(typ)
}

// Resolver turns a placement id into a tile by applying the swap ledger
// and then an ordered strategy list. The fallback order is data, not
// nested conditionals, so it can be inspected and extended.
type Resolver struct {
	ledger     *SwapLedger
	strategies []Strategy
}

// NewResolver builds the standard resolver for a preset: explicit id
// binding first, then type-based fallback.
func NewResolver(p catalog.Preset, ledger *SwapLedger) *Resolver {
	return &Resolver{
		ledger: ledger,
		strategies: []Strategy{
			bindingStrategy{preset: p},
			typeStrategy{preset: p},
		},
	}
}

// EffectiveID returns the swap-resolved placement id.
func (r *Resolver) EffectiveID(placementID string) string {
	return r.ledger.Resolve(placementID)
}

// Resolve produces the tile that should render at placementID, or Empty
// when no strategy matches. Resolution never fails: an unfilled slot is
// an expected state.
func (r *Resolver) Resolve(placementID string, reg *Registry) Resolution {
	effectiveID := r.ledger.Resolve(placementID)
	for _, s := range r.strategies {
		if tile, ok := s.Resolve(effectiveID, reg); ok {
			return Found(tile)
		}
	}
	return Empty()
}
