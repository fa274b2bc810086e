package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/layout"
)

// File format for catalog authoring:
//
//	default = "editorial"
//
//	[[preset]]
//	name = "editorial"
//
//	[preset.bindings]
//	hero = "brand-hero"
//
//	[preset.types]
//	hero = "image"
//
//	[preset.tiers.desktop]
//	columns = 6
//	rows = 4
//	gap = 12
//
//	[[preset.tiers.desktop.placement]]
//	id = "hero"
//	col = 1
//	col_span = 4
//	row = 1
//	row_span = 2
type catalogFile struct {
	Default string       `toml:"default"`
	Presets []presetFile `toml:"preset"`
}

type presetFile struct {
	Name     string                     `toml:"name"`
	Bindings map[string]string          `toml:"bindings"`
	Types    map[string]string          `toml:"types"`
	Tiers    map[string]layout.Geometry `toml:"tiers"`
}

// Load parses a TOML catalog document and validates it eagerly.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse catalog")
	}

	presets := make([]Preset, 0, len(f.Presets))
	for _, pf := range f.Presets {
		p := Preset{
			Name:       pf.Name,
			Bindings:   pf.Bindings,
			Types:      pf.Types,
			Geometries: make(map[layout.Tier]layout.Geometry, len(pf.Tiers)),
		}
		for tierName, g := range pf.Tiers {
			tier, err := layout.ParseTier(tierName)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidTier, err, "preset %q", pf.Name)
			}
			p.Geometries[tier] = g
		}
		presets = append(presets, p)
	}

	return New(f.Default, presets...)
}

// LoadFile reads and parses a TOML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read catalog file %s", path)
	}
	return Load(data)
}
