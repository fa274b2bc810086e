package board

import (
	"time"

	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/observability"
)

// RenderSlot pairs a placement with the tile resolved for it. A nil
// Tile is an empty slot; Label carries the original placement id so the
// placeholder names the slot the user is looking at, even when the swap
// ledger resolved elsewhere.
type RenderSlot struct {
	Placement layout.Placement `json:"placement"`
	Tile      *Tile            `json:"tile,omitempty"`
}

// Empty reports whether the slot has no tile.
func (s RenderSlot) Empty() bool {
	return s.Tile == nil
}

// Label returns the display label for the slot: the tile's id when
// filled, otherwise the original placement id.
func (s RenderSlot) Label() string {
	if s.Tile != nil {
		return s.Tile.ID
	}
	return s.Placement.ID
}

// Composer assembles breakpoint, catalog, and resolver output into the
// render instruction set consumed by the presentational grid. All
// collaborators are explicit parameters so composition is independently
// testable.
type Composer struct {
	catalog *catalog.Catalog
}

// NewComposer creates a composer over a validated catalog.
func NewComposer(c *catalog.Catalog) *Composer {
	return &Composer{catalog: c}
}

// Compose emits one RenderSlot per placement in the geometry resolved
// for (presetName, tier). Slot order equals geometry placement order;
// keyboard navigation treats it as the traversal sequence, so the
// composer never re-sorts.
func (c *Composer) Compose(presetName string, tier layout.Tier, ledger *SwapLedger, reg *Registry) []RenderSlot {
	start := time.Now()

	geo := c.catalog.Lookup(presetName, tier)
	resolver := NewResolver(c.catalog.Resolve(presetName), ledger)

	slots := make([]RenderSlot, 0, len(geo.Placements))
	for _, p := range geo.Placements {
		slot := RenderSlot{Placement: p}
		if tile, ok := resolver.Resolve(p.ID, reg).Tile(); ok {
			t := tile
			slot.Tile = &t
		}
		slots = append(slots, slot)
	}

	observability.Board().OnCompose(presetName, tier.String(), len(slots), time.Since(start))
	return slots
}

// Geometry returns the geometry the composer would use for the pair,
// applying the catalog fallback chain.
func (c *Composer) Geometry(presetName string, tier layout.Tier) layout.Geometry {
	return c.catalog.Lookup(presetName, tier)
}

// PlacementIDs returns the ordered placement ids for (presetName, tier).
// The order is the keyboard navigation sequence.
func (c *Composer) PlacementIDs(presetName string, tier layout.Tier) []string {
	return c.catalog.Lookup(presetName, tier).PlacementIDs()
}
