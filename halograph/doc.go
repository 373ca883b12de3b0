// Package halograph implements the halo graph (spec.md §3/§4.C): a plain
// graph whose first nonHaloCount vertices are anchors participating in
// ordering, and whose remaining suffix is halo vertices with asymmetric,
// inbound-only edges representing the fill contribution of vertices that
// were removed from the graph (typically a separator). Used exclusively
// by the ordering engine (package order).
//
// Grounded on gridgraph's boundary-expansion shape (expand outward from a
// frontier, classify newly-touched cells), adapted from grid-neighbor
// expansion to CSR-adjacency expansion with asymmetric halo edges.
package halograph
