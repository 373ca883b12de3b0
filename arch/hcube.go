package arch

import "math/bits"

// NewHypercube creates a binary hypercube architecture of hdim
// dimensions (2^hdim terminals, numbered 0..2^hdim-1). Panics if
// hdim <= 0. Recursive bipartition always splits a power-of-two-aligned
// range at its midpoint, which is exactly equivalent to fixing one more
// high-order bit of the terminal id — so a domain's Lo representative
// already encodes its fixed bit-prefix, with the free (unfixed) low bits
// zeroed by construction, making popcount(LoA^LoB) the hypercube distance
// with no extra bookkeeping.
// Complexity: O(1).
func NewHypercube(hdim int32) *Arch {
	if hdim <= 0 {
		panic("arch: NewHypercube(hdim<=0)")
	}
	return &Arch{kind: KindHcube, hdim: hdim, size: 1 << uint(hdim)}
}

func hcubeDistance(loA, loB int32) int64 {
	return int64(bits.OnesCount32(uint32(loA ^ loB)))
}
