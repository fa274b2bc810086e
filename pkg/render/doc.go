// Package render turns a composed board into output artifacts.
//
// # Overview
//
// The composer emits slots in geometry order; this package draws them.
// It provides:
//
//   - JSON documents for the browser client (geometry + resolved slots)
//   - Hand-drawn SVG of the grid itself (rects per placement, colored by
//     tile type, empty placeholders labelled with the placement id)
//   - A Graphviz structure diagram (placements as boxes, binding and
//     swap relations as edges) via goccy/go-graphviz
//
// # Format Conversion
//
// [ToPNG] converts any SVG to PNG using the external rsvg-convert tool
// (from librsvg). The structure diagram can also be rasterized directly
// through Graphviz with [GraphPNG].
//
//	svg, err := render.BoardSVG(geom, slots)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// All renderers report to [observability.RenderHooks].
package render
