// Package catalog manages named layout presets for moodboards.
//
// A preset is a named family of grid geometries, one per breakpoint
// tier, together with the static binding tables that map placement ids
// to tile ids and expected tile types. The catalog is the registry of
// presets plus a designated default preset used for fallback.
//
// # Fallback
//
// [Catalog.Lookup] resolves a (preset, tier) pair to a geometry and
// never fails:
//  1. exact (preset, tier) match
//  2. preset exists but lacks the tier: the default preset's geometry
//     for that tier
//  3. unknown preset: the default preset entirely
//
// The default preset is guaranteed complete at construction, so step 3
// always terminates with a valid geometry. Unknown preset names are not
// errors; they legitimately occur transiently during preset switches.
//
// # Validation
//
// [New] validates every geometry eagerly (filled-rectangle invariant)
// and rejects binding tables that reference placements no tier defines.
// A malformed preset never reaches rendering.
package catalog

import (
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// Preset is a named collection of geometries, one per tier, plus the
// placement binding tables authored alongside them.
type Preset struct {
	Name string

	// Bindings maps placement id to the conventionally bound tile id.
	Bindings map[string]string

	// Types maps placement id to the expected tile type used for
	// type-based fallback resolution.
	Types map[string]string

	// Geometries holds the per-tier grid definitions.
	Geometries map[layout.Tier]layout.Geometry
}

// Geometry returns the preset's geometry for tier, if defined.
func (p Preset) Geometry(tier layout.Tier) (layout.Geometry, bool) {
	g, ok := p.Geometries[tier]
	return g, ok
}

// BoundTileID returns the tile id statically bound to a placement.
func (p Preset) BoundTileID(placementID string) (string, bool) {
	id, ok := p.Bindings[placementID]
	return id, ok
}

// ExpectedType returns the tile type expected for a placement.
func (p Preset) ExpectedType(placementID string) (string, bool) {
	t, ok := p.Types[placementID]
	return t, ok
}

// placementIDSet collects placement ids across all tiers of the preset.
func (p Preset) placementIDSet() map[string]bool {
	ids := make(map[string]bool)
	for _, g := range p.Geometries {
		for _, pl := range g.Placements {
			ids[pl.ID] = true
		}
	}
	return ids
}

// Catalog is a validated registry of presets with a designated default.
type Catalog struct {
	defaultName string
	order       []string
	presets     map[string]Preset
}

// New builds a catalog from presets, validating eagerly. defaultName
// must name one of the presets, and that preset must define a geometry
// for every supported tier so fallback always succeeds.
func New(defaultName string, presets ...Preset) (*Catalog, error) {
	if len(presets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "catalog needs at least one preset")
	}

	c := &Catalog{
		defaultName: defaultName,
		presets:     make(map[string]Preset, len(presets)),
	}

	for _, p := range presets {
		if err := validatePreset(p); err != nil {
			return nil, err
		}
		if _, dup := c.presets[p.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "duplicate preset %q", p.Name)
		}
		c.presets[p.Name] = p
		c.order = append(c.order, p.Name)
	}

	def, ok := c.presets[defaultName]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "default preset %q is not in the catalog", defaultName)
	}
	for _, tier := range layout.Tiers() {
		if _, ok := def.Geometries[tier]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidPreset,
				"default preset %q lacks a %s geometry", defaultName, tier)
		}
	}

	return c, nil
}

// validatePreset checks names, geometries, and binding table keys.
func validatePreset(p Preset) error {
	if err := errors.ValidatePresetName(p.Name); err != nil {
		return err
	}
	if len(p.Geometries) == 0 {
		return errors.New(errors.ErrCodeInvalidPreset, "preset %q defines no geometries", p.Name)
	}

	for tier, g := range p.Geometries {
		if err := g.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGeometry, err,
				"preset %q, tier %s", p.Name, tier)
		}
	}

	known := p.placementIDSet()
	for placementID, tileID := range p.Bindings {
		if !known[placementID] {
			return errors.New(errors.ErrCodeInvalidPreset,
				"preset %q binds unknown placement %q", p.Name, placementID)
		}
		if err := errors.ValidateTileID(tileID); err != nil {
			return err
		}
	}
	for placementID, typ := range p.Types {
		if !known[placementID] {
			return errors.New(errors.ErrCodeInvalidPreset,
				"preset %q types unknown placement %q", p.Name, placementID)
		}
		if err := errors.ValidateTileType(typ); err != nil {
			return err
		}
	}

	return nil
}

// DefaultName returns the name of the designated default preset.
func (c *Catalog) DefaultName() string {
	return c.defaultName
}

// Names returns preset names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Preset returns the preset with the given name, if present.
func (c *Catalog) Preset(name string) (Preset, bool) {
	p, ok := c.presets[name]
	return p, ok
}

// Resolve returns the named preset, or the default preset when the name
// is unknown. Binding tables follow the resolved preset.
func (c *Catalog) Resolve(name string) Preset {
	if p, ok := c.presets[name]; ok {
		return p
	}
	return c.presets[c.defaultName]
}

// Lookup resolves a (preset, tier) pair to a geometry, applying the
// fallback chain. It always returns a geometry satisfying the
// filled-rectangle invariant and never fails.
func (c *Catalog) Lookup(name string, tier layout.Tier) layout.Geometry {
	if p, ok := c.presets[name]; ok {
		if g, ok := p.Geometries[tier]; ok {
			return g
		}
	}
	// Missing tier or unknown preset: the default preset is complete.
	return c.presets[c.defaultName].Geometries[tier]
}
