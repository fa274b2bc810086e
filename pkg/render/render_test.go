package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

func testGeometry() layout.Geometry {
	return layout.Geometry{
		Columns: 2,
		Rows:    2,
		Gap:     8,
		Placements: []layout.Placement{
			{ID: "hero", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 1},
			{ID: "palette", ColStart: 1, ColSpan: 1, RowStart: 2, RowSpan: 1},
			{ID: "logo", ColStart: 2, ColSpan: 1, RowStart: 2, RowSpan: 1},
		},
	}
}

func testSlots(geom layout.Geometry) []board.RenderSlot {
	hero := board.Tile{ID: "brand-hero", Type: "image"}
	logo := board.Tile{ID: "brand-logo", Type: "logo", Content: map[string]any{"color": "#123abc"}}
	return []board.RenderSlot{
		{Placement: geom.Placements[0], Tile: &hero},
		{Placement: geom.Placements[1]}, // empty
		{Placement: geom.Placements[2], Tile: &logo},
	}
}

func TestBoardJSON(t *testing.T) {
	geom := testGeometry()
	data, err := BoardJSON("editorial", layout.TierDesktop, geom, testSlots(geom))
	if err != nil {
		t.Fatalf("BoardJSON() error = %v", err)
	}

	var out struct {
		Preset  string  `json:"preset"`
		Tier    string  `json:"tier"`
		Columns int     `json:"columns"`
		Gap     float64 `json:"gap"`
		Slots   []struct {
			Placement string `json:"placement"`
			Empty     bool   `json:"empty"`
			Tile      *struct {
				ID   string `json:"id"`
				Type string `json:"type"`
			} `json:"tile"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Preset != "editorial" || out.Tier != "desktop" {
		t.Errorf("preset/tier = %q/%q", out.Preset, out.Tier)
	}
	if out.Columns != 2 || out.Gap != 8 {
		t.Errorf("geometry fields = %d cols, gap %v", out.Columns, out.Gap)
	}
	if len(out.Slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(out.Slots))
	}

	// Order follows geometry order
	if out.Slots[0].Placement != "hero" || out.Slots[1].Placement != "palette" || out.Slots[2].Placement != "logo" {
		t.Errorf("slot order = %v", out.Slots)
	}
	if out.Slots[0].Tile == nil || out.Slots[0].Tile.ID != "brand-hero" {
		t.Error("hero slot should carry its tile")
	}
	if !out.Slots[1].Empty || out.Slots[1].Tile != nil {
		t.Error("palette slot should be empty with no tile")
	}
}

func TestBoardSVG(t *testing.T) {
	geom := testGeometry()
	svg := string(BoardSVG(geom, testSlots(geom)))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Error("output should start with an svg element")
	}
	// 2 cols x 120 + 3 gaps x 8 = 264
	if !strings.Contains(svg, `viewBox="0 0 264.0 264.0"`) {
		t.Errorf("unexpected viewBox in %q", svg[:80])
	}
	for _, id := range []string{"slot-hero", "slot-palette", "slot-logo"} {
		if !strings.Contains(svg, id) {
			t.Errorf("missing rect %s", id)
		}
	}
	// Empty slot keeps the placement id as its label and draws dashed
	if !strings.Contains(svg, ">palette</text>") {
		t.Error("empty slot should be labelled with the placement id")
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("empty slot should render dashed")
	}
	// Tile content color override wins over the type palette
	if !strings.Contains(svg, `fill="#123abc"`) {
		t.Error("tile color override should be used")
	}
	// Type palette used for the hero image tile
	if !strings.Contains(svg, `fill="#b8c4d9"`) {
		t.Error("type palette color should be used")
	}
}

func TestBoardSVGOptions(t *testing.T) {
	geom := testGeometry()
	svg := string(BoardSVG(geom, testSlots(geom), WithCellSize(50), WithoutLabels()))

	// 2 cols x 50 + 3 gaps x 8 = 124
	if !strings.Contains(svg, `viewBox="0 0 124.0 124.0"`) {
		t.Error("cell size option should change the viewBox")
	}
	if strings.Contains(svg, "<text") {
		t.Error("WithoutLabels should omit text elements")
	}
}

func TestToDOT(t *testing.T) {
	geom := testGeometry()
	swaps := map[string]string{"hero": "logo", "logo": "hero"}
	dot := ToDOT("editorial", geom, testSlots(geom), swaps, DOTOptions{})

	if !strings.Contains(dot, "digraph board") {
		t.Error("output should be a digraph")
	}
	if !strings.Contains(dot, `"hero" [label="hero\nbrand-hero"]`) {
		t.Errorf("hero node missing:\n%s", dot)
	}
	if !strings.Contains(dot, "lightgrey") {
		t.Error("empty slot should render as a grey dashed box")
	}
	if !strings.Contains(dot, `"hero" -> "logo" [style=dashed, label="swap"]`) {
		t.Errorf("swap edge missing:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	geom := testGeometry()
	dot := ToDOT("editorial", geom, testSlots(geom), nil, DOTOptions{Detailed: true})

	if !strings.Contains(dot, "type: image") {
		t.Error("detailed labels should include tile type")
	}
	if !strings.Contains(dot, "2x1 at 1,1") {
		t.Error("detailed labels should include spans")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">` + `<g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("normalized svg tag should carry the namespace")
	}

	// Untouched when no viewBox present
	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != "<svg><g/></svg>" {
		t.Error("svg without viewBox should pass through")
	}
}
