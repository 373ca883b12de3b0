package arch

import "github.com/katalvlaran/meshpart/errs"

// FirstDomain returns the unique top domain covering every terminal of a.
// Complexity: O(d) for Mesh/Torus, O(1) otherwise.
func (a *Arch) FirstDomain() Domain {
	switch a.kind {
	case KindMesh:
		lo := make([]int32, len(a.dims))
		hi := append([]int32(nil), a.dims...)
		return Domain{BoxLo: lo, BoxHi: hi}
	case KindHcube:
		return Domain{Lo: 0, Hi: a.size}
	case KindSub:
		return Domain{Lo: 0, Hi: int32(len(a.retainedTerminals))}
	default:
		return Domain{Lo: 0, Hi: a.size}
	}
}

// DomainSize returns the terminal count covered by d.
// Complexity: O(d) for Mesh/Torus (box product), O(1) otherwise.
func (a *Arch) DomainSize(d Domain) int32 {
	return d.rangeSize()
}

// DomainWeight returns the total load covered by d: equal to DomainSize
// except for Cmpltw, where it is the sum of per-terminal weight.
// Complexity: O(1) (Cmpltw uses a precomputed prefix sum).
func (a *Arch) DomainWeight(d Domain) int64 {
	if a.kind == KindCmpltw {
		return a.dfsPrefixW[d.Hi] - a.dfsPrefixW[d.Lo]
	}
	return int64(d.rangeSize())
}

// IsLeaf reports whether d covers exactly one terminal.
func (a *Arch) IsLeaf(d Domain) bool { return d.rangeSize() == 1 }

// DomainBipart splits d into two non-empty disjoint sub-domains whose
// union is d, preserving — for complete-graph variants — the invariant
// that the first result carries d's own canonical terminal number.
// Returns ok=false when d is already a leaf (spec.md: "Returns leaf when
// |D|=1").
// Complexity: O(1) for every variant except Cmplt/Cmpltw/Hcube/Tleaf/Sub/
// Deco interval halving (O(1)) and Mesh/Torus box splitting (O(d)).
func (a *Arch) DomainBipart(d Domain) (d0, d1 Domain, ok bool) {
	if a.IsLeaf(d) {
		return Domain{}, Domain{}, false
	}
	switch a.kind {
	case KindCmpltw:
		mid, found := a.splitAt[[2]int32{d.Lo, d.Hi}]
		if !found {
			// Fall back to a balanced midpoint split if this exact range
			// was not produced by the persisted build-time recursion
			// (e.g. a caller reconstructed d from an arbitrary range).
			mid = d.Lo + (d.Hi-d.Lo+1)/2
		}
		return Domain{Lo: d.Lo, Hi: mid}, Domain{Lo: mid, Hi: d.Hi}, true
	case KindMesh:
		return a.meshBipart(d)
	default:
		// Cmplt, Hcube, Tleaf, Sub, Deco: contiguous halving, keeping the
		// first half aligned with d's own Lo so domain_number(d0)==domain_number(d).
		mid := d.Lo + (d.Hi-d.Lo+1)/2
		return Domain{Lo: d.Lo, Hi: mid}, Domain{Lo: mid, Hi: d.Hi}, true
	}
}

// meshBipart splits along the longest dimension (classic recursive
// bisection for grid topologies), to keep each half close to square.
func (a *Arch) meshBipart(d Domain) (Domain, Domain, bool) {
	longest := 0
	for i := 1; i < len(a.dims); i++ {
		if d.BoxHi[i]-d.BoxLo[i] > d.BoxHi[longest]-d.BoxLo[longest] {
			longest = i
		}
	}
	extent := d.BoxHi[longest] - d.BoxLo[longest]
	mid := d.BoxLo[longest] + (extent+1)/2

	lo0 := append([]int32(nil), d.BoxLo...)
	hi0 := append([]int32(nil), d.BoxHi...)
	hi0[longest] = mid

	lo1 := append([]int32(nil), d.BoxLo...)
	lo1[longest] = mid
	hi1 := append([]int32(nil), d.BoxHi...)

	return Domain{BoxLo: lo0, BoxHi: hi0}, Domain{BoxLo: lo1, BoxHi: hi1}, true
}

// lowRepresentative returns a single terminal id standing in for d,
// used by every distance formula (a domain's elements all share the
// fixed coordinates/bit-prefix that make any one of them representative).
func (a *Arch) lowRepresentative(d Domain) int32 {
	if d.BoxLo != nil {
		return a.flattenCoords(d.BoxLo)
	}
	switch a.kind {
	case KindCmpltw:
		return a.dfsOrder[d.Lo]
	case KindSub:
		return a.retainedTerminals[d.Lo]
	case KindDeco:
		return a.decoLeafOrder[d.Lo]
	default:
		return d.Lo
	}
}

func (a *Arch) flattenCoords(coords []int32) int32 {
	var id int32
	for i, c := range coords {
		id = id*a.dims[i] + c
	}
	return id
}

func (a *Arch) unflattenCoords(id int32) []int32 {
	coords := make([]int32, len(a.dims))
	for i := len(a.dims) - 1; i >= 0; i-- {
		coords[i] = id % a.dims[i]
		id /= a.dims[i]
	}
	return coords
}

// DomainDistance returns the non-negative cost of sending a unit of
// traffic from d0 to d1; 0 when d0==d1 in coverage.
// Complexity: O(d) for Mesh/Torus, O(1) otherwise.
func (a *Arch) DomainDistance(d0, d1 Domain) int64 {
	if a.kind == KindSub {
		return a.parent.DomainDistance(
			Domain{Lo: a.lowRepresentative(d0), Hi: a.lowRepresentative(d0) + 1},
			Domain{Lo: a.lowRepresentative(d1), Hi: a.lowRepresentative(d1) + 1},
		)
	}
	r0, r1 := a.lowRepresentative(d0), a.lowRepresentative(d1)
	if r0 == r1 && a.DomainSize(d0) == a.DomainSize(d1) {
		return 0
	}
	switch a.kind {
	case KindCmplt, KindCmpltw:
		if r0 == r1 {
			return 0
		}
		return 1 // part-only: one hop between any two distinct terminals
	case KindMesh:
		return a.meshDistance(a.unflattenCoordsFromLo(d0), a.unflattenCoordsFromLo(d1))
	case KindHcube:
		return hcubeDistance(r0, r1)
	case KindTleaf:
		return a.tleafDistance(r0, r1)
	case KindDeco:
		return a.decoDist[r0][r1]
	}
	return 0
}

func (a *Arch) unflattenCoordsFromLo(d Domain) []int32 {
	if d.BoxLo != nil {
		return d.BoxLo
	}
	return a.unflattenCoords(d.Lo)
}

// DomainInclusion reports whether inner is wholly contained in outer.
// Complexity: O(d) for Mesh/Torus, O(1) otherwise.
func (a *Arch) DomainInclusion(outer, inner Domain) bool {
	if outer.BoxLo != nil {
		for i := range outer.BoxLo {
			if inner.BoxLo[i] < outer.BoxLo[i] || inner.BoxHi[i] > outer.BoxHi[i] {
				return false
			}
		}
		return true
	}
	return inner.Lo >= outer.Lo && inner.Hi <= outer.Hi
}

// DomainNumber returns the canonical integer identifier of the smallest
// terminal inside d: the "part label" exposed to users.
// Complexity: O(size) for Cmpltw (scans the DFS range for the true
// minimum terminal id), O(1)/O(d) otherwise.
func (a *Arch) DomainNumber(d Domain) int32 {
	if a.kind == KindCmpltw {
		min := a.dfsOrder[d.Lo]
		for i := d.Lo + 1; i < d.Hi; i++ {
			if a.dfsOrder[i] < min {
				min = a.dfsOrder[i]
			}
		}
		return min
	}
	return a.lowRepresentative(d)
}

// TerminalDomain returns the leaf (singleton) domain for terminal id t,
// the reverse of DomainNumber for leaf domains; for Sub, t is the
// parent's terminal id, as DomainNumber reports it.
// Complexity: O(d) for Mesh/Torus, O(1) otherwise.
func (a *Arch) TerminalDomain(t int32) Domain {
	switch a.kind {
	case KindMesh:
		coords := a.unflattenCoords(t)
		hi := make([]int32, len(coords))
		for i, c := range coords {
			hi[i] = c + 1
		}
		return Domain{BoxLo: coords, BoxHi: hi}
	case KindCmpltw:
		for i, term := range a.dfsOrder {
			if term == t {
				return Domain{Lo: int32(i), Hi: int32(i) + 1}
			}
		}
		panic("arch: TerminalDomain(unknown terminal)")
	case KindDeco:
		for i, term := range a.decoLeafOrder {
			if term == t {
				return Domain{Lo: int32(i), Hi: int32(i) + 1}
			}
		}
		panic("arch: TerminalDomain(unknown terminal)")
	case KindSub:
		for i, term := range a.retainedTerminals {
			if term == t {
				return Domain{Lo: int32(i), Hi: int32(i) + 1}
			}
		}
		panic("arch: TerminalDomain(unknown terminal)")
	default:
		return Domain{Lo: t, Hi: t + 1}
	}
}

// Check validates a is well-formed: distance non-negativity and
// self-distance of zero for a sample of domains, used by tests
// (Testable Property 7, "Distance properties").
func (a *Arch) Check() error {
	d := a.FirstDomain()
	if a.DomainDistance(d, d) != 0 {
		return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
	}
	return nil
}
