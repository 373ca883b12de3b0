// Package wpool implements the concurrency and resource model of
// spec.md §5: a Context bags together a fixed-size worker Pool, a
// pseudo-random generator, and a resolved config.Values; Pool.Launch
// hands every worker a Descriptor exposing Barrier/Reduce/Scan, the only
// inter-worker synchronisation primitives the coarsener and the
// diffusion refiner need.
//
// Grounded on the teacher's generalized worker-pool shape (fixed worker
// count, per-task channel dispatch, WaitGroup-based join) adapted from
// a fan-out-fan-in model to a repeated-barrier SPMD model, since the
// coarsener and diffusion refiner need several synchronised phases
// inside one parallel region rather than one-shot independent tasks.
package wpool
