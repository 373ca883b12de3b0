// Package meshpart implements a multilevel engine for three related
// combinatorial problems on large sparse graphs (spec.md §1):
//
//   - k-way static mapping of a computation graph onto a weighted
//     target-architecture graph (packages arch, mapping, kway)
//   - k-way graph partitioning, the special case where the target
//     architecture is a complete graph (kway, with arch.NewComplete)
//   - fill-reducing sparse-matrix reordering by nested dissection plus
//     halo approximate minimum fill (package order)
//
// All three share one multilevel framework: coarsen the input graph
// (package coarsen) into a hierarchy, solve the small problem at the
// bottom (package bipart for 2-way splits), then prolong the solution
// back up through the hierarchy with local refinement at every level.
//
// graph holds the plain CSR graph type every other package operates on;
// halograph augments it with the halo-vertex bookkeeping the ordering
// engine needs across a removed separator; config and errs hold the
// engine's shared tuning knobs and error taxonomy; wpool provides the
// deterministic-or-parallel worker pool the coarsener and mapper use.
package meshpart
