package arch

import "github.com/katalvlaran/meshpart/errs"

// NewComplete creates an unweighted complete-graph architecture over n
// terminals (0..n-1). Panics on n<=0, per the teacher's WithX option
// constructor convention: option/constructor validation panics, algorithms
// never do.
// Complexity: O(1).
func NewComplete(n int32) *Arch {
	if n <= 0 {
		panic("arch: NewComplete(n<=0)")
	}
	return &Arch{kind: KindCmplt, size: n}
}

// validateFixedSize rejects operations that require the architecture
// terminal count to be known ahead of time; only Deco (explicit) and
// variable-shaped Sub composites can, in principle, be variable-sized —
// every concrete variant here is fixed-size, but the check is kept as the
// single gate spec.md §4.A.2 describes ("variable-sized architecture used
// where fixed size required -> UnsupportedArch").
func (a *Arch) validateFixedSize(method string) error {
	if a.VariableSized() {
		return archErrorf(method, errs.ErrUnsupportedConfig)
	}
	return nil
}

// VariableSized reports whether sub-domains of this architecture may have
// any size, rather than a size fixed by the topology. All variants
// implemented here are fixed-size.
func (a *Arch) VariableSized() bool { return false }

// PartOnly reports whether domain_distance collapses to a 0/1 cut
// indicator, letting the engine skip distance computation (spec.md §4.A:
// "these flags let the engine skip steps"). Complete-graph variants are
// part-only: every terminal is one hop from every other.
func (a *Arch) PartOnly() bool {
	return a.kind == KindCmplt || a.kind == KindCmpltw
}
