package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Board hooks
	b := NoopBoardHooks{}
	b.OnCompose("editorial", "desktop", 6, time.Millisecond)
	b.OnSwap("editorial", "hero", "palette")
	b.OnPresetChange("editorial", "gallery")

	// Session hooks
	s := NoopSessionHooks{}
	s.OnLoad(ctx, "abc", true)
	s.OnSave(ctx, "abc")

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart("svg")
	r.OnRenderComplete("svg", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Board().(NoopBoardHooks); !ok {
		t.Error("Board() should return NoopBoardHooks by default")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customBoard := &testBoardHooks{}
	SetBoardHooks(customBoard)
	if Board() != customBoard {
		t.Error("SetBoardHooks should set custom hooks")
	}

	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Board().(NoopBoardHooks); !ok {
		t.Error("Reset() should restore NoopBoardHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testBoardHooks{}
	SetBoardHooks(custom)

	// Setting nil should be ignored
	SetBoardHooks(nil)

	if Board() != custom {
		t.Error("SetBoardHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testBoardHooks struct{ NoopBoardHooks }
type testSessionHooks struct{ NoopSessionHooks }
type testRenderHooks struct{ NoopRenderHooks }
