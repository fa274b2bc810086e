package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/layout"
	"github.com/brandsmith/moodgrid/pkg/observability"
)

// DOTOptions configures the structure diagram.
type DOTOptions struct {
	// Detailed includes spans and tile types in node labels.
	// When false, only the placement id and tile id are shown.
	Detailed bool
}

// ToDOT converts a composed board to Graphviz DOT format. Placements
// appear as boxes in geometry order, swaps as dashed bidirectional
// edges. Empty slots get dashed grey boxes, mirroring the SVG sink.
// The resulting DOT string can be rendered using [GraphSVG] or [GraphPNG].
func ToDOT(preset string, geom layout.Geometry, slots []board.RenderSlot, swaps map[string]string, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", preset)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, slot := range slots {
		label := dotLabel(slot, opts.Detailed)
		if slot.Empty() {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
				slot.Placement.ID, label)
		} else {
			fmt.Fprintf(&buf, "  %q [label=%q];\n", slot.Placement.ID, label)
		}
	}

	if len(swaps) > 0 {
		buf.WriteString("\n")
		for _, slot := range slots {
			from := slot.Placement.ID
			if to, ok := swaps[from]; ok && geom.Has(to) {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=\"swap\"];\n", from, to)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(slot board.RenderSlot, detailed bool) string {
	p := slot.Placement
	label := p.ID
	if t := slot.Tile; t != nil {
		label += "\n" + t.ID
		if detailed {
			label += fmt.Sprintf("\ntype: %s", t.Type)
		}
	} else {
		label += "\n(empty)"
	}
	if detailed {
		label += fmt.Sprintf("\n%dx%d at %d,%d", p.ColSpan, p.RowSpan, p.ColStart, p.RowStart)
	}
	return label
}

// GraphSVG renders a DOT graph to SVG using Graphviz.
func GraphSVG(dot string) ([]byte, error) {
	return renderGraph(dot, "svg", graphviz.SVG)
}

// GraphPNG renders a DOT graph to PNG using Graphviz.
func GraphPNG(dot string) ([]byte, error) {
	return renderGraph(dot, "png", graphviz.PNG)
}

func renderGraph(dot, name string, format graphviz.Format) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart("dot-" + name)

	out, err := func() ([]byte, error) {
		ctx := context.Background()
		gv, err := graphviz.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("init graphviz: %w", err)
		}
		defer gv.Close()

		g, err := graphviz.ParseBytes([]byte(dot))
		if err != nil {
			return nil, fmt.Errorf("parse DOT: %w", err)
		}
		defer g.Close()

		var buf bytes.Buffer
		if err := gv.Render(ctx, g, format, &buf); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if format == graphviz.SVG {
			return normalizeViewBox(buf.Bytes()), nil
		}
		return buf.Bytes(), nil
	}()

	observability.Render().OnRenderComplete("dot-"+name, len(out), time.Since(start), err)
	return out, err
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
