// Package arch implements the target-architecture algebra (spec.md §4.A):
// a tagged union of topology variants — complete, weighted complete,
// hypercube, mesh-xD, torus-xD, tree-leaf, sub-architecture, and
// decomposition-defined — each exposing the same capability set: domain
// iteration from a unique first domain, recursive bipartition,
// domain size/weight, domain-to-domain distance, domain inclusion, and
// canonical domain numbering.
//
// Per Design Note "Function-table polymorphism", variants are modeled as
// an enum (Kind) dispatched on internally by every Arch method, rather
// than a v-table: the variant count is small and branch-predictable.
//
// Errors:
//
//	errs.ErrIoError            - malformed architecture text stream.
//	errs.ErrUnsupportedConfig  - an operation requires a fixed-size
//	                             architecture but received a variable-sized one.
package arch
