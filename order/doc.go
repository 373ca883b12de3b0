// Package order implements the fill-reducing sparse-matrix reordering
// engine (spec.md §4.H): recursive vertex-separator nested dissection
// over a plain graph, switching at small block sizes to a halo
// approximate-minimum-fill (halo-AMF) base case. A vertex separator is
// obtained by reusing the 2-way bipartition engine (package bipart) and
// reading off its ActiveGraph.Frontier rather than running a dedicated
// separator search; the smaller-sided half of the frontier becomes the
// separator, leaving the rest of each part mutually disconnected.
//
// The separator of every split is carried down to its two children as
// halo context (package halograph): never ordered itself at that level,
// but still counted so the children's halo-AMF pass accounts for fill-in
// across the removed separator. Each split produces three position
// blocks in the final order — A's positions, then B's, then the
// separator's own — so a separator is always ordered strictly after the
// pieces it divides.
package order
