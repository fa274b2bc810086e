// Package layout defines the responsive grid model for moodboards.
//
// A board is rendered on a column/row grid whose shape depends on the
// viewer's viewport width. The package provides:
//   - Tier: an ordered breakpoint classification (mobile < tablet < desktop)
//   - Classify: a pure viewport-width to tier mapping
//   - Placement: a named rectangular region of the grid
//   - Geometry: a complete per-tier grid (columns, rows, gap, placements)
//
// # Filled-Rectangle Invariant
//
// A Geometry is only valid when its placements tile the columns x rows
// grid exactly: no cell uncovered, no two placements overlapping. The
// invariant is enforced by [Geometry.Validate], which catalog loading
// runs eagerly so a malformed geometry never reaches rendering.
//
// # Breakpoints
//
// Thresholds are fixed and monotonic with no hysteresis band:
//
//	width < 768   -> mobile
//	width < 1024  -> tablet
//	otherwise     -> desktop
//
// Re-classifying the same width always yields the same tier, which keeps
// resize handling a pure recomputation rather than cached mutable state.
package layout

import (
	"github.com/brandsmith/moodgrid/pkg/errors"
)

// Tier is an ordered breakpoint classification. Exactly one tier is
// active at a time, determined solely by viewport width.
type Tier int

// Breakpoint tiers, ordered narrowest to widest.
const (
	TierMobile Tier = iota
	TierTablet
	TierDesktop
)

// Breakpoint thresholds in CSS pixels. A width is classified into the
// widest tier whose threshold it meets.
const (
	// TabletMinWidth is the smallest width classified as tablet.
	TabletMinWidth = 768

	// DesktopMinWidth is the smallest width classified as desktop.
	DesktopMinWidth = 1024
)

// tierNames maps tiers to their canonical names.
var tierNames = map[Tier]string{
	TierMobile:  "mobile",
	TierTablet:  "tablet",
	TierDesktop: "desktop",
}

// String returns the canonical tier name.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Tiers returns all supported tiers in ascending width order.
func Tiers() []Tier {
	return []Tier{TierMobile, TierTablet, TierDesktop}
}

// ParseTier parses a tier name ("mobile", "tablet", "desktop").
func ParseTier(s string) (Tier, error) {
	for tier, name := range tierNames {
		if name == s {
			return tier, nil
		}
	}
	return TierMobile, errors.New(errors.ErrCodeInvalidTier, "unknown tier: %q", s)
}

// Classify maps a viewport width in pixels to a breakpoint tier.
// The mapping is pure and deterministic; the caller owns debouncing of
// resize events and re-invokes Classify on each notification.
func Classify(widthPx float64) Tier {
	switch {
	case widthPx < TabletMinWidth:
		return TierMobile
	case widthPx < DesktopMinWidth:
		return TierTablet
	default:
		return TierDesktop
	}
}
