// Package mapping implements spec.md §4.D: the association between a
// plain graph's vertices and an architecture's domains. A Mapping pairs
// a dense `domain_live` table (grown by 1.5x, at least 16 entries) of live arch.Domain values with
// a per-vertex `part[]` index into that table, and supports splitting a
// domain in two (for recursive bipartition), merging two domains back
// into one, producing a summary view (target/realised loads, edge cut,
// communication load), and validating its own invariants.
//
// Errors use the shared errs taxonomy; ErrInvalidArgument for malformed
// calls (splitting a leaf domain, merging a non-live slot), errs.
// ErrInconsistentState for invariant violations surfaced by Check.
package mapping
