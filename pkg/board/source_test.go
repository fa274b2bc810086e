package board

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandsmith/moodgrid/pkg/errors"
)

const validBoardTOML = `
preset = "editorial"

[[tile]]
id = "brand-hero"
type = "image"

[tile.content]
src = "hero.jpg"
alt = "Rooftop at dusk"

[[tile]]
id = "brand-palette"
type = "palette"

[tile.content]
primary = "#1a2b3c"
accent = "#f4d35e"
`

func TestLoadBoard(t *testing.T) {
	preset, reg, err := LoadBoard([]byte(validBoardTOML))
	if err != nil {
		t.Fatalf("LoadBoard() error: %v", err)
	}

	if preset != "editorial" {
		t.Errorf("preset = %q, want editorial", preset)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	hero, ok := reg.ByID("brand-hero")
	if !ok {
		t.Fatal("brand-hero missing")
	}
	if hero.Type != "image" {
		t.Errorf("type = %q, want image", hero.Type)
	}
	if src, _ := hero.Content["src"].(string); src != "hero.jpg" {
		t.Errorf("content src = %v", hero.Content["src"])
	}
}

func TestLoadBoardErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"malformed toml", "preset = [", errors.ErrCodeInvalidFormat},
		{
			"duplicate tile ids",
			"[[tile]]\nid = \"a\"\ntype = \"image\"\n[[tile]]\nid = \"a\"\ntype = \"image\"\n",
			errors.ErrCodeInvalidBoard,
		},
		{
			"invalid tile id",
			"[[tile]]\nid = \"Bad Id\"\ntype = \"image\"\n",
			errors.ErrCodeInvalidBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadBoard([]byte(tt.input))
			if err == nil {
				t.Fatal("LoadBoard() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")
	if err := os.WriteFile(path, []byte(validBoardTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	tiles, err := FileSource{Path: path}.Tiles(context.Background())
	if err != nil {
		t.Fatalf("Tiles() error: %v", err)
	}
	if len(tiles) != 2 {
		t.Errorf("len(tiles) = %d, want 2", len(tiles))
	}

	_, err = FileSource{Path: filepath.Join(dir, "missing.toml")}.Tiles(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{{ID: "a", Type: "image"}}
	tiles, err := src.Tiles(context.Background())
	if err != nil || len(tiles) != 1 {
		t.Fatalf("Tiles() = %v, %v", tiles, err)
	}

	tiles[0].ID = "mutated"
	again, _ := src.Tiles(context.Background())
	if again[0].ID != "a" {
		t.Error("Tiles() should return a copy")
	}
}
