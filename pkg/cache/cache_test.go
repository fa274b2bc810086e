package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestBoardKey(t *testing.T) {
	swaps := map[string]string{"hero": "palette", "palette": "hero"}

	// Deterministic regardless of map iteration order
	k1 := BoardKey("editorial", "desktop", swaps, "svg")
	k2 := BoardKey("editorial", "desktop", map[string]string{"palette": "hero", "hero": "palette"}, "svg")
	if k1 != k2 {
		t.Error("BoardKey should be order-independent over swap entries")
	}

	// Every component influences the key
	if BoardKey("gallery", "desktop", swaps, "svg") == k1 {
		t.Error("preset should influence the key")
	}
	if BoardKey("editorial", "mobile", swaps, "svg") == k1 {
		t.Error("tier should influence the key")
	}
	if BoardKey("editorial", "desktop", nil, "svg") == k1 {
		t.Error("swaps should influence the key")
	}
	if BoardKey("editorial", "desktop", swaps, "png") == k1 {
		t.Error("format should influence the key")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss on unknown key
	_, hit, err := c.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("unknown key should miss")
	}

	// Round trip
	if err := c.Set(ctx, "board", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "board")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = %q, %v; want cached value", data, hit)
	}

	// Delete
	if err := c.Delete(ctx, "board"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "board")
	if hit {
		t.Error("deleted key should miss")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	if err := c.Set(ctx, "board", []byte("x"), -time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "board")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheClearAndStats(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	c.Set(ctx, "a", []byte("one"), 0)
	c.Set(ctx, "b", []byte("two"), 0)

	entries, size, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if entries != 2 {
		t.Errorf("Stats entries = %d, want 2", entries)
	}
	if size == 0 {
		t.Error("Stats size should be non-zero")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	entries, _, err = c.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if entries != 0 {
		t.Errorf("Stats entries after Clear = %d, want 0", entries)
	}
}
