// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about board composition, swap
// activity, session storage, and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBoardHooks(&myBoardHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Board().OnSwap(preset, a, b)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Board Hooks
// =============================================================================

// BoardHooks receives events from the grid engine. Board events originate
// in the single-threaded UI loop, so no context is threaded through.
type BoardHooks interface {
	// OnCompose records a completed board composition.
	OnCompose(preset, tier string, slots int, duration time.Duration)

	// OnSwap records a committed placement swap.
	OnSwap(preset, a, b string)

	// OnPresetChange records an active-preset switch.
	OnPresetChange(from, to string)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from session store operations.
type SessionHooks interface {
	// OnLoad records a session read.
	OnLoad(ctx context.Context, sessionID string, hit bool)

	// OnSave records a session write.
	OnSave(ctx context.Context, sessionID string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from render sinks.
type RenderHooks interface {
	// OnRenderStart records the beginning of a render.
	OnRenderStart(format string)

	// OnRenderComplete records a finished render.
	OnRenderComplete(format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBoardHooks is a no-op implementation of BoardHooks.
type NoopBoardHooks struct{}

func (NoopBoardHooks) OnCompose(string, string, int, time.Duration) {}
func (NoopBoardHooks) OnSwap(string, string, string)               {}
func (NoopBoardHooks) OnPresetChange(string, string)               {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnLoad(context.Context, string, bool) {}
func (NoopSessionHooks) OnSave(context.Context, string)       {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string)                                 {}
func (NoopRenderHooks) OnRenderComplete(string, int, time.Duration, error)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	boardHooks   BoardHooks   = NoopBoardHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	hooksMu      sync.RWMutex
)

// SetBoardHooks registers custom board hooks.
// This should be called once at application startup.
func SetBoardHooks(h BoardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		boardHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Board returns the registered board hooks.
func Board() BoardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return boardHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	boardHooks = NoopBoardHooks{}
	sessionHooks = NoopSessionHooks{}
	renderHooks = NoopRenderHooks{}
}
