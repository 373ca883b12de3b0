// Package graph implements the compact CSR plain graph: a finite sequence
// of vertices indexed from a caller-chosen base value (0 or 1), with
// optional positive vertex and edge loads, supporting subgraph induction
// and base-value shifting.
//
// A Graph is built through a Builder: vertices and edges accumulate in the
// builder, and Build freezes them into the immutable CSR arrays
// (vertStart/vertEnd/edgeTarget) that every downstream package (coarsen,
// bipart, kway, order) operates on directly for speed.
//
// Errors:
//
//	errs.ErrInvalidArgument   - bad base value, negative load, malformed part array.
//	errs.ErrInconsistentState - Check found an asymmetric or self-looped edge.
//	errs.ErrIoError           - malformed graph text stream.
package graph
