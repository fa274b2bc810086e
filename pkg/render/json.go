package render

import (
	"encoding/json"
	"time"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/observability"
)

type jsonTile struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Content map[string]any `json:"content,omitempty"`
}

type jsonSlot struct {
	Placement string    `json:"placement"`
	Col       int       `json:"col"`
	ColSpan   int       `json:"col_span"`
	Row       int       `json:"row"`
	RowSpan   int       `json:"row_span"`
	Empty     bool      `json:"empty,omitempty"`
	Tile      *jsonTile `json:"tile,omitempty"`
}

type jsonBoard struct {
	Preset  string     `json:"preset"`
	Tier    string     `json:"tier"`
	Columns int        `json:"columns"`
	Rows    int        `json:"rows"`
	Gap     float64    `json:"gap"`
	Slots   []jsonSlot `json:"slots"`
}

// BoardJSON serializes a composed board for the browser client.
// Slot order follows the composer's geometry order.
func BoardJSON(preset string, tier layout.Tier, geom layout.Geometry, slots []board.RenderSlot) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart("json")

	out := jsonBoard{
		Preset:  preset,
		Tier:    tier.String(),
		Columns: geom.Columns,
		Rows:    geom.Rows,
		Gap:     geom.Gap,
		Slots:   make([]jsonSlot, 0, len(slots)),
	}
	for _, slot := range slots {
		js := jsonSlot{
			Placement: slot.Placement.ID,
			Col:       slot.Placement.ColStart,
			ColSpan:   slot.Placement.ColSpan,
			Row:       slot.Placement.RowStart,
			RowSpan:   slot.Placement.RowSpan,
			Empty:     slot.Empty(),
		}
		if t := slot.Tile; t != nil {
			js.Tile = &jsonTile{ID: t.ID, Type: t.Type, Content: t.Content}
		}
		out.Slots = append(out.Slots, js)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	observability.Render().OnRenderComplete("json", len(data), time.Since(start), err)
	return data, err
}
