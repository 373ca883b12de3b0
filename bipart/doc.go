// Package bipart implements the 2-way bipartition engine (spec.md §4.F):
// an ActiveGraph carrying part/frontier/load bookkeeping, four local
// refiners (Greedy, FM, Diffusion, Exactify) that each take a
// well-formed ActiveGraph and return one with possibly improved balance
// and cut, and a Multilevel driver that coarsens, solves at the bottom,
// then prolongs and refines level by level back to the original graph.
package bipart
