package layout

import (
	"github.com/brandsmith/moodgrid/pkg/errors"
)

// Placement is a named rectangular region of the grid. Column and row
// coordinates are 1-based, matching CSS grid line numbering. Placements
// are authored statically per (preset, tier) and immutable at runtime.
type Placement struct {
	ID       string `json:"id" toml:"id"`
	ColStart int    `json:"col_start" toml:"col"`
	ColSpan  int    `json:"col_span" toml:"col_span"`
	RowStart int    `json:"row_start" toml:"row"`
	RowSpan  int    `json:"row_span" toml:"row_span"`
}

// Area returns the number of grid cells the placement covers.
func (p Placement) Area() int {
	return p.ColSpan * p.RowSpan
}

// Intersects reports whether two placement rectangles share any cell.
func (p Placement) Intersects(o Placement) bool {
	return p.ColStart < o.ColStart+o.ColSpan &&
		o.ColStart < p.ColStart+p.ColSpan &&
		p.RowStart < o.RowStart+o.RowSpan &&
		o.RowStart < p.RowStart+p.RowSpan
}

// Geometry is a complete grid definition for one (preset, tier) pair.
type Geometry struct {
	Columns    int         `json:"columns" toml:"columns"`
	Rows       int         `json:"rows" toml:"rows"`
	Gap        float64     `json:"gap" toml:"gap"`
	Placements []Placement `json:"placements" toml:"placement"`
}

// Placement returns the placement with the given id, if present.
func (g Geometry) Placement(id string) (Placement, bool) {
	for _, p := range g.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// Has reports whether the geometry defines a placement with the given id.
func (g Geometry) Has(id string) bool {
	_, ok := g.Placement(id)
	return ok
}

// PlacementIDs returns placement ids in authoring order. The order is
// stable and doubles as the keyboard navigation sequence, so it must
// never be re-sorted downstream.
func (g Geometry) PlacementIDs() []string {
	ids := make([]string, len(g.Placements))
	for i, p := range g.Placements {
		ids[i] = p.ID
	}
	return ids
}

// Validate checks the filled-rectangle invariant: every placement lies
// within bounds, no two placements overlap, and the summed cell areas
// equal Columns x Rows. Together these guarantee the placements tile the
// grid exactly, with no gaps and no overlaps.
//
// Validation runs once at catalog construction, never on the render path.
func (g Geometry) Validate() error {
	if g.Columns < 1 || g.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGeometry, "grid must be at least 1x1, got %dx%d", g.Columns, g.Rows)
	}
	if g.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "gap cannot be negative, got %v", g.Gap)
	}
	if len(g.Placements) == 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "geometry has no placements")
	}

	seen := make(map[string]bool, len(g.Placements))
	area := 0
	for _, p := range g.Placements {
		if err := errors.ValidatePlacementID(p.ID); err != nil {
			return err
		}
		if seen[p.ID] {
			return errors.New(errors.ErrCodeInvalidGeometry, "duplicate placement id %q", p.ID)
		}
		seen[p.ID] = true

		if p.ColStart < 1 || p.RowStart < 1 || p.ColSpan < 1 || p.RowSpan < 1 {
			return errors.New(errors.ErrCodeInvalidGeometry,
				"placement %q has invalid extent (col %d span %d, row %d span %d)",
				p.ID, p.ColStart, p.ColSpan, p.RowStart, p.RowSpan)
		}
		if p.ColStart+p.ColSpan-1 > g.Columns || p.RowStart+p.RowSpan-1 > g.Rows {
			return errors.New(errors.ErrCodeInvalidGeometry,
				"placement %q exceeds the %dx%d grid", p.ID, g.Columns, g.Rows)
		}
		area += p.Area()
	}

	for i := 0; i < len(g.Placements); i++ {
		for j := i + 1; j < len(g.Placements); j++ {
			if g.Placements[i].Intersects(g.Placements[j]) {
				return errors.New(errors.ErrCodeInvalidGeometry,
					"placements %q and %q overlap", g.Placements[i].ID, g.Placements[j].ID)
			}
		}
	}

	// With bounds and no overlaps established, an exact area sum means
	// every cell is covered exactly once.
	if total := g.Columns * g.Rows; area != total {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"placements cover %d of %d cells", area, total)
	}

	return nil
}
