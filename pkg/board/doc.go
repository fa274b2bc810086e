// Package board implements placement-to-tile resolution for moodboards.
//
// The package owns the runtime half of the grid engine: the tile
// registry, the swap ledger recording user-initiated placement swaps,
// the binding resolver that turns an abstract placement into a concrete
// tile, the grid composer that emits render slots, and the drag
// interaction state machine.
//
// # Resolution
//
// Resolving a placement follows an ordered strategy list, first match
// wins:
//  1. the swap ledger maps the placement id to its effective id
//  2. explicit binding: the preset's placement-to-tile-id table
//  3. type fallback: the first registry tile whose type matches the
//     preset's expected type for the placement
//  4. empty: a normal terminal state rendered as a placeholder
//
// An unresolved placement is not an error; the placeholder carries the
// original placement id so the user sees the slot they are looking at.
//
// # Swap Semantics
//
// The ledger is always a permutation of placement ids: swap(a, b)
// exchanges the current resolutions of a and b, so applying the same
// swap twice is the identity and chained swaps compose into cycles
// (A<->B then B<->C yields the 3-cycle A->B->C->A). Entries that become
// self-mappings are removed. Swaps are preset-local; switching presets
// clears the ledger.
//
// # Concurrency
//
// All types in this package are intended for a single event-loop owner.
// They are synchronous, allocation-light, and unlocked; the absence of
// concurrent writers is the correctness argument.
package board
