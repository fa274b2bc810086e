package cache

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the moodgrid cache directory, honoring
// XDG_CACHE_HOME and falling back to ~/.cache.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "moodgrid")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "moodgrid-cache")
	}
	return filepath.Join(home, ".cache", "moodgrid")
}
