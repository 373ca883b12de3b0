// Package config resolves the engine-wide tuning knobs shared by the
// coarsener, bipartitioner, k-way mapper, and ordering engine: coarsening
// ratio threshold, pass counts, recursion cutoffs, and the
// deterministic/seed switch that forces sequential, reproducible execution
// (spec.md §6 "Configuration values").
//
// Values are resolved once, from functional Options, into an immutable
// Values struct — the same two-phase shape as the teacher's
// builder.BuilderOption / builderConfig pair: option constructors validate
// and panic on meaningless input, never the algorithms that later read the
// resolved Values.
package config
