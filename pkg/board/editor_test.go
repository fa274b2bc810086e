package board

import (
	"reflect"
	"testing"

	"github.com/brandsmith/moodgrid/pkg/layout"
)

func testEditor(t *testing.T) *Editor {
	t.Helper()
	reg := testRegistry(t,
		Tile{ID: "brand-hero", Type: "image"},
		Tile{ID: "swatch", Type: "palette"},
	)
	return NewEditor(testCatalog(t), reg, WithPreset("test"), WithViewportWidth(1280))
}

func TestEditorViewportClassification(t *testing.T) {
	e := testEditor(t)

	if e.Tier() != layout.TierDesktop {
		t.Errorf("initial tier = %v, want desktop", e.Tier())
	}

	if got := e.SetViewport(500); got != layout.TierMobile {
		t.Errorf("SetViewport(500) = %v, want mobile", got)
	}
	if got := e.SetViewport(800); got != layout.TierTablet {
		t.Errorf("SetViewport(800) = %v, want tablet", got)
	}
}

func TestEditorSwapValidation(t *testing.T) {
	e := testEditor(t)

	if e.Swap("hero", "hero") {
		t.Error("self swap should be a no-op")
	}
	if e.Swap("hero", "ghost") {
		t.Error("swap with a placement outside the geometry should be a no-op")
	}
	if len(e.Swaps()) != 0 {
		t.Errorf("ledger = %v, want empty after rejected swaps", e.Swaps())
	}

	if !e.Swap("hero", "palette") {
		t.Error("valid swap rejected")
	}
	if got := e.ResolveSwappedID("hero"); got != "palette" {
		t.Errorf("ResolveSwappedID(hero) = %q, want palette", got)
	}
}

func TestEditorPresetSwitchClearsLedger(t *testing.T) {
	e := testEditor(t)
	e.Swap("hero", "palette")
	if len(e.Swaps()) == 0 {
		t.Fatal("setup: swap did not register")
	}

	e.SetPreset("another")

	if len(e.Swaps()) != 0 {
		t.Errorf("ledger after preset switch = %v, want empty", e.Swaps())
	}
	for _, id := range e.PlacementIDs() {
		if got := e.ResolveSwappedID(id); got != id {
			t.Errorf("ResolveSwappedID(%s) = %q, want identity", id, got)
		}
	}
}

func TestEditorSetSamePresetKeepsLedger(t *testing.T) {
	e := testEditor(t)
	e.Swap("hero", "palette")

	e.SetPreset("test")

	if len(e.Swaps()) == 0 {
		t.Error("re-setting the active preset should keep the ledger")
	}
}

func TestEditorDragSwap(t *testing.T) {
	e := testEditor(t)

	if !e.DragStart("hero") {
		t.Fatal("DragStart(hero) rejected")
	}
	if !e.DragHover("palette") {
		t.Fatal("DragHover(palette) rejected")
	}
	if !e.DragDrop() {
		t.Fatal("DragDrop() did not commit")
	}

	if got := e.ResolveSwappedID("hero"); got != "palette" {
		t.Errorf("ResolveSwappedID(hero) = %q, want palette", got)
	}
	if _, ok := e.DragSource(); ok {
		t.Error("drag should be idle after drop")
	}
}

func TestEditorDragCancelLeavesStateUntouched(t *testing.T) {
	e := testEditor(t)
	e.Swap("hero", "palette")

	before := e.Swaps()
	beforeSlots := e.Compose()

	e.DragStart("hero")
	e.DragHover("palette")
	e.DragCancel()

	if !reflect.DeepEqual(e.Swaps(), before) {
		t.Errorf("ledger changed by cancelled drag: %v != %v", e.Swaps(), before)
	}
	if !reflect.DeepEqual(e.Compose(), beforeSlots) {
		t.Error("render output changed by cancelled drag")
	}
}

func TestEditorDragRejectsUnknownPlacements(t *testing.T) {
	e := testEditor(t)

	if e.DragStart("ghost") {
		t.Error("DragStart(ghost) accepted")
	}
	e.DragStart("hero")
	if e.DragHover("ghost") {
		t.Error("DragHover(ghost) accepted")
	}
	if e.DragDrop() {
		t.Error("DragDrop() committed without a valid target")
	}
}

func TestEditorRestoreSwapsFiltersUnknownIDs(t *testing.T) {
	e := testEditor(t)

	e.RestoreSwaps(map[string]string{
		"hero":  "palette",
		"ghost": "hero", // not in any tier of the preset
	})

	if got := e.ResolveSwappedID("hero"); got != "palette" {
		t.Errorf("ResolveSwappedID(hero) = %q, want palette", got)
	}
	if got := e.ResolveSwappedID("ghost"); got != "ghost" {
		t.Errorf("ResolveSwappedID(ghost) = %q, want identity (filtered)", got)
	}
}

func TestEditorComposeUsesActiveTier(t *testing.T) {
	e := testEditor(t)

	e.SetViewport(400) // mobile: 1x2 geometry in testCatalog
	slots := e.Compose()
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if slots[0].Placement.RowStart != 1 || slots[1].Placement.RowStart != 2 {
		t.Error("mobile geometry should stack placements vertically")
	}
}
