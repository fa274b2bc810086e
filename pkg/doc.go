// Package pkg provides the core libraries for the moodgrid layout engine.
//
// # Overview
//
// Moodgrid arranges brand moodboards on responsive grids: layout presets
// tile the grid exactly at every breakpoint, and tiles resolve onto
// placements through bindings, type fallbacks, and user swaps. The pkg
// directory is organized into five main areas:
//
//  1. [layout] - Grid geometry: breakpoint tiers and the filled-rectangle invariant
//  2. [catalog] - Layout presets: lookup fallback chain, TOML authoring, builtins
//  3. [board] - The engine: tiles, swap ledger, resolver, composer, drag machine
//  4. [render] - Output sinks: JSON, SVG, Graphviz structure diagrams
//  5. [session]/[cache] - Persistence: editing sessions and rendered artifacts
//
// # Architecture
//
// The typical data flow through moodgrid:
//
//	Viewport width
//	      ↓ classify
//	Tier → Catalog lookup → Geometry
//	                            ↓ compose
//	Tiles + Swap ledger → Resolver → Render slots → JSON/SVG/DOT
//
// Supporting packages: [errors] for structured error codes,
// [observability] for hook interfaces, [buildinfo] for version stamping.
//
// [layout]: github.com/brandsmith/moodgrid/pkg/layout
// [catalog]: github.com/brandsmith/moodgrid/pkg/catalog
// [board]: github.com/brandsmith/moodgrid/pkg/board
// [render]: github.com/brandsmith/moodgrid/pkg/render
// [session]: github.com/brandsmith/moodgrid/pkg/session
// [cache]: github.com/brandsmith/moodgrid/pkg/cache
// [errors]: github.com/brandsmith/moodgrid/pkg/errors
// [observability]: github.com/brandsmith/moodgrid/pkg/observability
// [buildinfo]: github.com/brandsmith/moodgrid/pkg/buildinfo
package pkg
