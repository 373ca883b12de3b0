// Package coarsen implements spec.md §4.E: heavy-edge matching (with a
// sequential path and a best-effort parallel path over wpool.Context)
// followed by coarse-graph construction via multinode contraction, with
// parallel-edge coalescing through a small open-addressing hash table
// keyed by coarse neighbour index, and the level-termination and
// failure-recovery rules of §4.E.3/§4.E.4.
package coarsen
