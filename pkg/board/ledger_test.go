package board

import (
	"reflect"
	"testing"
)

func TestSwapSelfIsNoop(t *testing.T) {
	l := NewSwapLedger()
	l.Swap("hero", "hero")

	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if got := l.Resolve("hero"); got != "hero" {
		t.Errorf("Resolve(hero) = %q, want hero", got)
	}
}

func TestSwapInvolution(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*SwapLedger)
	}{
		{"from empty ledger", func(l *SwapLedger) {}},
		{"with prior unrelated swap", func(l *SwapLedger) { l.Swap("x", "y") }},
		{"with prior swap on a", func(l *SwapLedger) { l.Swap("a", "z") }},
		{"with prior swaps on both", func(l *SwapLedger) {
			l.Swap("a", "x")
			l.Swap("b", "y")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewSwapLedger()
			tt.setup(l)

			before := l.Entries()
			beforeA, beforeB := l.Resolve("a"), l.Resolve("b")

			l.Swap("a", "b")
			l.Swap("a", "b")

			if got := l.Resolve("a"); got != beforeA {
				t.Errorf("Resolve(a) = %q, want %q", got, beforeA)
			}
			if got := l.Resolve("b"); got != beforeB {
				t.Errorf("Resolve(b) = %q, want %q", got, beforeB)
			}
			if !reflect.DeepEqual(l.Entries(), before) {
				t.Errorf("entries = %v, want %v", l.Entries(), before)
			}
		})
	}
}

func TestSwapChainFormsCycle(t *testing.T) {
	l := NewSwapLedger()
	l.Swap("a", "b")
	l.Swap("b", "c")

	// A<->B then B<->C composes into the 3-cycle a->b->c->a.
	want := map[string]string{"a": "b", "b": "c", "c": "a"}
	for id, wantTo := range want {
		if got := l.Resolve(id); got != wantTo {
			t.Errorf("Resolve(%s) = %q, want %q", id, got, wantTo)
		}
	}
}

func TestSwapChainStaysPermutation(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	l := NewSwapLedger()

	pairs := [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"},
		{"a", "e"}, {"b", "d"}, {"a", "b"}, {"c", "e"},
	}
	for _, p := range pairs {
		l.Swap(p[0], p[1])

		// After every swap, resolution over the id universe must be a
		// bijection: no id lost, no two ids colliding.
		seen := make(map[string]string, len(ids))
		for _, id := range ids {
			to := l.Resolve(id)
			if prev, dup := seen[to]; dup {
				t.Fatalf("after %v: %s and %s both resolve to %s", p, prev, id, to)
			}
			seen[to] = id
		}
		for _, id := range ids {
			if _, covered := seen[id]; !covered {
				t.Fatalf("after %v: no id resolves to %s", p, id)
			}
		}
	}
}

func TestSwapBackRemovesEntries(t *testing.T) {
	l := NewSwapLedger()
	l.Swap("a", "b")
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	l.Swap("a", "b")
	if l.Len() != 0 {
		t.Errorf("Len() after swap-back = %d, want 0 (self-mappings removed)", l.Len())
	}
}

func TestClear(t *testing.T) {
	l := NewSwapLedger()
	l.Swap("a", "b")
	l.Swap("b", "c")

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if got := l.Resolve("a"); got != "a" {
		t.Errorf("Resolve(a) = %q, want identity after clear", got)
	}
}

func TestRestoreDropsIdentityMappings(t *testing.T) {
	l := NewSwapLedger()
	l.Restore(map[string]string{"a": "b", "b": "a", "c": "c"})

	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if got := l.Resolve("c"); got != "c" {
		t.Errorf("Resolve(c) = %q, want c", got)
	}
	if got := l.Resolve("a"); got != "b" {
		t.Errorf("Resolve(a) = %q, want b", got)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	l := NewSwapLedger()
	l.Swap("a", "b")

	entries := l.Entries()
	entries["a"] = "z"

	if got := l.Resolve("a"); got != "b" {
		t.Errorf("mutating Entries() leaked into the ledger: Resolve(a) = %q", got)
	}
}
