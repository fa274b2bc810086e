package board

// SwapLedger records user-initiated content swaps between placements.
// It maps placement id to placement id and is symmetric by construction:
// the stored mapping is always a permutation with no fixed points, so
// resolving is never ambiguous and swapping the same pair twice restores
// the original bindings.
//
// The ledger is preset-local. Placement ids are only meaningful within
// one preset's geometry, so the owner clears the ledger on preset change.
type SwapLedger struct {
	m map[string]string
}

// NewSwapLedger creates an empty ledger.
func NewSwapLedger() *SwapLedger {
	return &SwapLedger{m: make(map[string]string)}
}

// Resolve returns the effective placement id for id: the swap target if
// one is recorded, otherwise id itself.
func (l *SwapLedger) Resolve(id string) string {
	if to, ok := l.m[id]; ok {
		return to
	}
	return id
}

// Swap exchanges the current effective bindings of a and b. Swapping a
// placement with itself is a no-op. Because the two written entries take
// their values from the pre-swap resolutions, the ledger stays a
// permutation: repeating a swap is the identity, and chains such as
// A<->B then B<->C compose into a consistent cycle.
func (l *SwapLedger) Swap(a, b string) {
	if a == b {
		return
	}

	ar := l.Resolve(a)
	br := l.Resolve(b)

	l.m[a] = br
	l.m[b] = ar

	// Entries that became identity mappings are dropped rather than stored.
	if l.m[a] == a {
		delete(l.m, a)
	}
	if l.m[b] == b {
		delete(l.m, b)
	}
}

// Clear removes all recorded swaps.
func (l *SwapLedger) Clear() {
	l.m = make(map[string]string)
}

// Len returns the number of recorded mappings.
func (l *SwapLedger) Len() int {
	return len(l.m)
}

// Entries returns a copy of the mapping, suitable for persistence.
func (l *SwapLedger) Entries() map[string]string {
	out := make(map[string]string, len(l.m))
	for k, v := range l.m {
		out[k] = v
	}
	return out
}

// Restore replaces the ledger contents, dropping identity mappings.
// It is used to rehydrate a ledger from a persisted session.
func (l *SwapLedger) Restore(entries map[string]string) {
	l.m = make(map[string]string, len(entries))
	for k, v := range entries {
		if k != v {
			l.m[k] = v
		}
	}
}
