package render

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/observability"
)

// defaultPalette maps tile types to fill colors. A tile can override its
// fill with a "color" entry in its content table.
var defaultPalette = map[string]string{
	"image":      "#b8c4d9",
	"color":      "#e8a0a0",
	"palette":    "#e8c9a0",
	"typography": "#d9d2b8",
	"texture":    "#a8c9b5",
	"logo":       "#c9a8d9",
	"text":       "#d0d0d0",
}

const (
	defaultCellSize = 120.0
	fallbackFill    = "#cccccc"
	emptyFill       = "#f4f4f4"
)

// SVGOption configures board SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize float64
	palette  map[string]string
	labels   bool
}

// WithCellSize sets the pixel size of one grid cell (default 120).
func WithCellSize(px float64) SVGOption {
	return func(r *svgRenderer) { r.cellSize = px }
}

// WithPalette overrides the type-to-fill mapping.
func WithPalette(p map[string]string) SVGOption {
	return func(r *svgRenderer) { r.palette = p }
}

// WithoutLabels omits the tile labels.
func WithoutLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = false }
}

// BoardSVG draws the composed board as an SVG grid. Each placement
// becomes a rect sized by its spans, separated by the geometry's gap.
// Empty slots get a muted placeholder labelled with the placement id,
// so a swapped-away tile is visibly absent rather than silently gone.
func BoardSVG(geom layout.Geometry, slots []board.RenderSlot, opts ...SVGOption) []byte {
	start := time.Now()
	observability.Render().OnRenderStart("svg")

	r := svgRenderer{cellSize: defaultCellSize, palette: defaultPalette, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	gap := geom.Gap
	width := float64(geom.Columns)*r.cellSize + float64(geom.Columns+1)*gap
	height := float64(geom.Rows)*r.cellSize + float64(geom.Rows+1)*gap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", width, height)

	for _, slot := range slots {
		p := slot.Placement
		x := gap + float64(p.ColStart-1)*(r.cellSize+gap)
		y := gap + float64(p.RowStart-1)*(r.cellSize+gap)
		w := float64(p.ColSpan)*r.cellSize + float64(p.ColSpan-1)*gap
		h := float64(p.RowSpan)*r.cellSize + float64(p.RowSpan-1)*gap

		if slot.Empty() {
			fmt.Fprintf(&buf,
				`  <rect id="slot-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="#bbbbbb" stroke-dasharray="6,4"/>`+"\n",
				html.EscapeString(p.ID), x, y, w, h, emptyFill)
		} else {
			fmt.Fprintf(&buf,
				`  <rect id="slot-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" stroke="#666666"/>`+"\n",
				html.EscapeString(p.ID), x, y, w, h, r.fill(slot.Tile))
		}

		if r.labels {
			fmt.Fprintf(&buf,
				`  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="14" fill="#333333">%s</text>`+"\n",
				x+w/2, y+h/2, html.EscapeString(slot.Label()))
		}
	}

	buf.WriteString("</svg>\n")
	out := buf.Bytes()
	observability.Render().OnRenderComplete("svg", len(out), time.Since(start), nil)
	return out
}

func (r *svgRenderer) fill(t *board.Tile) string {
	if t == nil {
		return emptyFill
	}
	if c, ok := t.Content["color"].(string); ok && len(c) > 0 && c[0] == '#' {
		return c
	}
	if c, ok := r.palette[t.Type]; ok {
		return c
	}
	return fallbackFill
}
