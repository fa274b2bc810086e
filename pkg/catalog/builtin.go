package catalog

import (
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// Builtin preset names.
const (
	PresetEditorial = "editorial"
	PresetGallery   = "gallery"
	PresetPoster    = "poster"
)

// Builtin returns the catalog of built-in presets with "editorial" as
// the default. The geometries are static and covered by tests, so a
// validation failure here is a programming error.
func Builtin() *Catalog {
	c, err := New(PresetEditorial, editorial(), gallery(), poster())
	if err != nil {
		panic(err)
	}
	return c
}

// editorial is a magazine-style spread: a dominant hero with supporting
// brand tiles trailing below.
func editorial() Preset {
	return Preset{
		Name: PresetEditorial,
		Bindings: map[string]string{
			"hero":       "brand-hero",
			"logo":       "brand-logo",
			"palette":    "brand-palette",
			"typography": "brand-type",
		},
		Types: map[string]string{
			"hero":       "image",
			"logo":       "logo",
			"palette":    "palette",
			"typography": "typography",
			"texture":    "texture",
			"statement":  "statement",
		},
		Geometries: map[layout.Tier]layout.Geometry{
			layout.TierMobile: {
				Columns: 2, Rows: 5, Gap: 8,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 2},
					{ID: "logo", ColStart: 1, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "palette", ColStart: 2, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "typography", ColStart: 1, ColSpan: 2, RowStart: 4, RowSpan: 1},
					{ID: "texture", ColStart: 1, ColSpan: 1, RowStart: 5, RowSpan: 1},
					{ID: "statement", ColStart: 2, ColSpan: 1, RowStart: 5, RowSpan: 1},
				},
			},
			layout.TierTablet: {
				Columns: 4, Rows: 3, Gap: 10,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 2},
					{ID: "logo", ColStart: 3, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "palette", ColStart: 4, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "typography", ColStart: 3, ColSpan: 2, RowStart: 2, RowSpan: 1},
					{ID: "texture", ColStart: 1, ColSpan: 2, RowStart: 3, RowSpan: 1},
					{ID: "statement", ColStart: 3, ColSpan: 2, RowStart: 3, RowSpan: 1},
				},
			},
			layout.TierDesktop: {
				Columns: 6, Rows: 4, Gap: 12,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 4, RowStart: 1, RowSpan: 2},
					{ID: "logo", ColStart: 5, ColSpan: 2, RowStart: 1, RowSpan: 1},
					{ID: "palette", ColStart: 5, ColSpan: 2, RowStart: 2, RowSpan: 1},
					{ID: "typography", ColStart: 1, ColSpan: 2, RowStart: 3, RowSpan: 2},
					{ID: "texture", ColStart: 3, ColSpan: 2, RowStart: 3, RowSpan: 2},
					{ID: "statement", ColStart: 5, ColSpan: 2, RowStart: 3, RowSpan: 2},
				},
			},
		},
	}
}

// gallery is image-forward: one large frame plus a strip of smaller ones.
func gallery() Preset {
	return Preset{
		Name: PresetGallery,
		Bindings: map[string]string{
			"hero": "brand-hero",
		},
		Types: map[string]string{
			"hero":    "image",
			"frame-1": "image",
			"frame-2": "image",
			"frame-3": "image",
			"caption": "statement",
		},
		Geometries: map[layout.Tier]layout.Geometry{
			layout.TierMobile: {
				Columns: 2, Rows: 4, Gap: 8,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 2},
					{ID: "frame-1", ColStart: 1, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "frame-2", ColStart: 2, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "frame-3", ColStart: 1, ColSpan: 1, RowStart: 4, RowSpan: 1},
					{ID: "caption", ColStart: 2, ColSpan: 1, RowStart: 4, RowSpan: 1},
				},
			},
			layout.TierTablet: {
				Columns: 4, Rows: 3, Gap: 10,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 3},
					{ID: "frame-1", ColStart: 3, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "frame-2", ColStart: 4, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "frame-3", ColStart: 3, ColSpan: 2, RowStart: 2, RowSpan: 1},
					{ID: "caption", ColStart: 3, ColSpan: 2, RowStart: 3, RowSpan: 1},
				},
			},
			layout.TierDesktop: {
				Columns: 6, Rows: 3, Gap: 12,
				Placements: []layout.Placement{
					{ID: "hero", ColStart: 1, ColSpan: 3, RowStart: 1, RowSpan: 3},
					{ID: "frame-1", ColStart: 4, ColSpan: 2, RowStart: 1, RowSpan: 2},
					{ID: "frame-2", ColStart: 6, ColSpan: 1, RowStart: 1, RowSpan: 2},
					{ID: "frame-3", ColStart: 4, ColSpan: 2, RowStart: 3, RowSpan: 1},
					{ID: "caption", ColStart: 6, ColSpan: 1, RowStart: 3, RowSpan: 1},
				},
			},
		},
	}
}

// poster is a single oversized statement with minimal brand anchors.
func poster() Preset {
	return Preset{
		Name: PresetPoster,
		Bindings: map[string]string{
			"statement": "brand-statement",
			"logo":      "brand-logo",
			"palette":   "brand-palette",
		},
		Types: map[string]string{
			"statement": "statement",
			"logo":      "logo",
			"palette":   "palette",
		},
		Geometries: map[layout.Tier]layout.Geometry{
			layout.TierMobile: {
				Columns: 2, Rows: 3, Gap: 8,
				Placements: []layout.Placement{
					{ID: "statement", ColStart: 1, ColSpan: 2, RowStart: 1, RowSpan: 2},
					{ID: "logo", ColStart: 1, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "palette", ColStart: 2, ColSpan: 1, RowStart: 3, RowSpan: 1},
				},
			},
			layout.TierTablet: {
				Columns: 3, Rows: 3, Gap: 10,
				Placements: []layout.Placement{
					{ID: "statement", ColStart: 1, ColSpan: 3, RowStart: 1, RowSpan: 2},
					{ID: "logo", ColStart: 1, ColSpan: 1, RowStart: 3, RowSpan: 1},
					{ID: "palette", ColStart: 2, ColSpan: 2, RowStart: 3, RowSpan: 1},
				},
			},
			layout.TierDesktop: {
				Columns: 4, Rows: 3, Gap: 12,
				Placements: []layout.Placement{
					{ID: "statement", ColStart: 1, ColSpan: 3, RowStart: 1, RowSpan: 3},
					{ID: "logo", ColStart: 4, ColSpan: 1, RowStart: 1, RowSpan: 1},
					{ID: "palette", ColStart: 4, ColSpan: 1, RowStart: 2, RowSpan: 2},
				},
			},
		},
	}
}
