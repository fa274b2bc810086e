// Package cache provides artifact caching for rendered boards.
//
// Rendering a board to SVG or PNG is the only expensive step in the
// serving path, so the server caches rendered bytes keyed by everything
// that influences the output: preset, tier, swap ledger and format.
//
// # Backends
//
//   - file: Cache entries as files under the XDG cache dir, for the CLI
//     and single-instance servers
//   - null: No-op cache for tests and --no-cache runs
//
// # Usage
//
//	c, err := cache.NewFileCache(cache.DefaultDir())
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	key := cache.BoardKey("editorial", "desktop", swaps, "svg")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
