package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// identRegex matches identifiers used for presets, placements, and tiles:
// lowercase alphanumerics separated by single dashes or underscores.
var identRegex = regexp.MustCompile(`^[a-z0-9]+([_-][a-z0-9]+)*$`)

// validateIdent applies the shared identifier rules with a code and label
// for error reporting.
func validateIdent(code Code, label, id string) error {
	if id == "" {
		return New(code, "%s cannot be empty", label)
	}

	if len(id) > 64 {
		return New(code, "%s too long (max 64 characters)", label)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(code, "%s contains invalid control characters", label)
		}
	}

	if !identRegex.MatchString(id) {
		return New(code, "invalid %s: %q (use lowercase letters, digits, - or _)", label, id)
	}

	return nil
}

// ValidatePresetName validates a layout preset name.
func ValidatePresetName(name string) error {
	return validateIdent(ErrCodeInvalidPreset, "preset name", name)
}

// ValidatePlacementID validates a placement identifier.
func ValidatePlacementID(id string) error {
	return validateIdent(ErrCodeInvalidPlacement, "placement id", id)
}

// ValidateTileID validates a tile identifier.
func ValidateTileID(id string) error {
	return validateIdent(ErrCodeInvalidTile, "tile id", id)
}

// ValidateTileType validates a tile type name.
func ValidateTileType(typ string) error {
	return validateIdent(ErrCodeInvalidTile, "tile type", typ)
}

// ValidateOutputPath validates a file path supplied for rendered output.
// It prevents path traversal into unexpected locations and ensures a
// reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit CSS hex colors with leading #.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string used in tile content.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}

	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", color)
	}

	return nil
}
