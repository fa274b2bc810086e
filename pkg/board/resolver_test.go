package board

import (
	"testing"

	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// testPreset defines two placements: hero (bound to brand-hero, type
// image) and palette (type palette, no explicit binding).
func testPreset() catalog.Preset {
	return catalog.Preset{
		Name:     "test",
		Bindings: map[string]string{"hero": "brand-hero"},
		Types:    map[string]string{"hero": "image", "palette": "palette"},
		Geometries: map[layout.Tier]layout.Geometry{
			layout.TierDesktop: {
				Columns: 2, Rows: 1, Gap: 4,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "palette", ColStart: 2, ColSpan: 1, RowStart: 1, RowSpan: 1},
				},
			},
		},
	}
}

func testRegistry(t *testing.T, tiles ...Tile) *Registry {
	t.Helper()
	reg, err := NewRegistry(tiles...)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestResolveExplicitBindingWinsOverType(t *testing.T) {
	// Both an explicit-id-bound tile and a type-matching tile exist;
	// the explicit binding must win.
	reg := testRegistry(t,
		Tile{ID: "other-image", Type: "image"},
		Tile{ID: "brand-hero", Type: "image"},
	)
	r := NewResolver(testPreset(), NewSwapLedger())

	tile, ok := r.Resolve("hero", reg).Tile()
	if !ok {
		t.Fatal("Resolve(hero) = Empty, want Found")
	}
	if tile.ID != "brand-hero" {
		t.Errorf("tile = %q, want brand-hero (explicit binding)", tile.ID)
	}
}

func TestResolveTypeFallback(t *testing.T) {
	// No tile with the bound id exists; type fallback picks the first
	// tile of the expected type.
	reg := testRegistry(t,
		Tile{ID: "swatch-a", Type: "palette"},
		Tile{ID: "swatch-b", Type: "palette"},
	)
	r := NewResolver(testPreset(), NewSwapLedger())

	tile, ok := r.Resolve("palette", reg).Tile()
	if !ok {
		t.Fatal("Resolve(palette) = Empty, want Found")
	}
	if tile.ID != "swatch-a" {
		t.Errorf("tile = %q, want swatch-a (first of type)", tile.ID)
	}
}

func TestResolveEmpty(t *testing.T) {
	reg := testRegistry(t) // no tiles at all
	r := NewResolver(testPreset(), NewSwapLedger())

	res := r.Resolve("hero", reg)
	if !res.IsEmpty() {
		t.Error("Resolve(hero) with empty registry should be Empty")
	}
	if _, ok := res.Tile(); ok {
		t.Error("Tile() on Empty resolution returned ok")
	}
}

func TestResolveAppliesSwapLedger(t *testing.T) {
	reg := testRegistry(t,
		Tile{ID: "brand-hero", Type: "image"},
		Tile{ID: "swatch", Type: "palette"},
	)
	ledger := NewSwapLedger()
	ledger.Swap("hero", "palette")
	r := NewResolver(testPreset(), ledger)

	// hero now resolves through the ledger to palette's binding chain.
	tile, ok := r.Resolve("hero", reg).Tile()
	if !ok || tile.ID != "swatch" {
		t.Errorf("Resolve(hero) after swap = %v/%v, want swatch", tile.ID, ok)
	}

	tile, ok = r.Resolve("palette", reg).Tile()
	if !ok || tile.ID != "brand-hero" {
		t.Errorf("Resolve(palette) after swap = %v/%v, want brand-hero", tile.ID, ok)
	}

	if got := r.EffectiveID("hero"); got != "palette" {
		t.Errorf("EffectiveID(hero) = %q, want palette", got)
	}
}

func TestResolveUnknownPlacementIsEmpty(t *testing.T) {
	reg := testRegistry(t, Tile{ID: "brand-hero", Type: "image"})
	r := NewResolver(testPreset(), NewSwapLedger())

	if res := r.Resolve("ghost", reg); !res.IsEmpty() {
		t.Error("Resolve(ghost) should be Empty, not an error or a tile")
	}
}
