package board

import (
	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/observability"
)

// Editor is the single logical owner of one editing session: active
// preset, viewport-derived tier, swap ledger, and drag state. All
// mutation funnels through its methods, serialized by the UI event
// loop; there is no concurrent-writer scenario and no locking.
type Editor struct {
	catalog  *catalog.Catalog
	registry *Registry
	composer *Composer

	preset string
	width  float64
	tier   layout.Tier
	ledger *SwapLedger
	drag   DragState
}

// EditorOption configures a new editor.
type EditorOption func(*Editor)

// WithPreset sets the initial active preset.
func WithPreset(name string) EditorOption {
	return func(e *Editor) { e.preset = name }
}

// WithViewportWidth sets the initial viewport width in pixels.
func WithViewportWidth(px float64) EditorOption {
	return func(e *Editor) { e.width = px }
}

// NewEditor creates an editor over a validated catalog and a tile
// registry. Defaults: the catalog's default preset at desktop width.
func NewEditor(cat *catalog.Catalog, reg *Registry, opts ...EditorOption) *Editor {
	e := &Editor{
		catalog:  cat,
		registry: reg,
		composer: NewComposer(cat),
		preset:   cat.DefaultName(),
		width:    layout.DesktopMinWidth,
		ledger:   NewSwapLedger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	// Unknown or empty preset names resolve to the catalog default.
	e.preset = cat.Resolve(e.preset).Name
	e.tier = layout.Classify(e.width)
	return e
}

// SetViewport re-classifies the viewport width and returns the active
// tier. Classification is pure, so resizing never leaves stale state.
func (e *Editor) SetViewport(widthPx float64) layout.Tier {
	e.width = widthPx
	e.tier = layout.Classify(widthPx)
	return e.tier
}

// Tier returns the active breakpoint tier.
func (e *Editor) Tier() layout.Tier {
	return e.tier
}

// Preset returns the active preset name.
func (e *Editor) Preset() string {
	return e.preset
}

// PresetNames returns all preset names in the catalog, for preset
// cycling in editor surfaces.
func (e *Editor) PresetNames() []string {
	return e.catalog.Names()
}

// SetPreset switches the active preset. Swaps are preset-local, so the
// ledger is cleared and any in-flight drag is cancelled. Setting the
// already-active preset keeps the ledger.
func (e *Editor) SetPreset(name string) {
	if name == e.preset {
		return
	}
	from := e.preset
	e.preset = name
	e.ledger.Clear()
	e.drag.Cancel()
	observability.Board().OnPresetChange(from, name)
}

// Geometry returns the geometry for the active (preset, tier).
func (e *Editor) Geometry() layout.Geometry {
	return e.composer.Geometry(e.preset, e.tier)
}

// Swap exchanges the content bound to two placements. Invalid requests
// (identical ids, or ids not present in the active geometry) are
// ignored, not errors. Returns whether a swap was committed.
func (e *Editor) Swap(a, b string) bool {
	if a == b {
		return false
	}
	geo := e.Geometry()
	if !geo.Has(a) || !geo.Has(b) {
		return false
	}
	e.ledger.Swap(a, b)
	observability.Board().OnSwap(e.preset, a, b)
	return true
}

// ResolveSwappedID returns the effective placement id after applying
// the swap ledger.
func (e *Editor) ResolveSwappedID(id string) string {
	return e.ledger.Resolve(id)
}

// Swaps returns a snapshot of the ledger for persistence.
func (e *Editor) Swaps() map[string]string {
	return e.ledger.Entries()
}

// RestoreSwaps rehydrates the ledger from a persisted session. Entries
// naming placements outside the active preset's geometries are dropped.
func (e *Editor) RestoreSwaps(entries map[string]string) {
	known := make(map[string]bool)
	for _, tier := range layout.Tiers() {
		for _, id := range e.composer.PlacementIDs(e.preset, tier) {
			known[id] = true
		}
	}
	filtered := make(map[string]string, len(entries))
	for k, v := range entries {
		if known[k] && known[v] {
			filtered[k] = v
		}
	}
	e.ledger.Restore(filtered)
}

// Compose emits the render slots for the active (preset, tier).
func (e *Editor) Compose() []RenderSlot {
	return e.composer.Compose(e.preset, e.tier, e.ledger, e.registry)
}

// PlacementIDs returns the ordered placement ids for the active
// (preset, tier), the keyboard navigation sequence.
func (e *Editor) PlacementIDs() []string {
	return e.composer.PlacementIDs(e.preset, e.tier)
}

// Registry exposes the tile registry (read-only by convention).
func (e *Editor) Registry() *Registry {
	return e.registry
}

// =============================================================================
// Drag interaction
// =============================================================================

// DragStart picks up the tile at sourceID. Returns false (and stays
// idle) when the placement is not in the active geometry.
func (e *Editor) DragStart(sourceID string) bool {
	if !e.Geometry().Has(sourceID) {
		return false
	}
	e.drag.Start(sourceID)
	return true
}

// DragHover records a drop target. Hovering the source or an unknown
// placement is ignored.
func (e *Editor) DragHover(targetID string) bool {
	if !e.Geometry().Has(targetID) {
		return false
	}
	e.drag.HoverEnter(targetID)
	_, ok := e.drag.Target()
	return ok
}

// DragHoverLeave clears the current drop target.
func (e *Editor) DragHoverLeave() {
	e.drag.HoverLeave()
}

// DragDrop completes the drag, committing the swap when a valid target
// is hovered. Returns whether a swap was committed.
func (e *Editor) DragDrop() bool {
	source, target, ok := e.drag.Drop()
	if !ok {
		return false
	}
	return e.Swap(source, target)
}

// DragCancel aborts any in-flight drag, leaving the ledger untouched.
func (e *Editor) DragCancel() {
	e.drag.Cancel()
}

// DragSource returns the in-flight drag source, if any.
func (e *Editor) DragSource() (string, bool) {
	return e.drag.Source()
}

// DragTarget returns the hovered drop target, if any.
func (e *Editor) DragTarget() (string, bool) {
	return e.drag.Target()
}
