package cli

import "github.com/brandsmith/moodgrid/pkg/board"

// sampleTiles is a small brand kit matching the builtin preset
// bindings. Used when no board file is given.
func sampleTiles() []board.Tile {
	return []board.Tile{
		{ID: "brand-hero", Type: "image", Content: map[string]any{
			"src":     "https://example.com/hero.jpg",
			"caption": "Campaign hero",
		}},
		{ID: "brand-logo", Type: "logo", Content: map[string]any{
			"src": "https://example.com/logo.svg",
		}},
		{ID: "brand-palette", Type: "palette", Content: map[string]any{
			"colors": []any{"#1b1b1f", "#e8e4da", "#c96f4a"},
		}},
		{ID: "brand-type", Type: "typography", Content: map[string]any{
			"family": "Canela",
			"sample": "Aa Bb Cc",
		}},
		{ID: "brand-texture", Type: "texture", Content: map[string]any{
			"src": "https://example.com/grain.png",
		}},
		{ID: "brand-statement", Type: "statement", Content: map[string]any{
			"text": "Make it warm.",
		}},
	}
}
