package arch

const pkgName = "arch"

// Kind tags the concrete architecture variant an Arch holds.
type Kind uint8

const (
	// KindCmplt is the unweighted complete graph: every terminal is one
	// hop from every other.
	KindCmplt Kind = iota
	// KindCmpltw is the weighted complete graph: terminals carry a
	// positive weight, and recursive bipartition follows the greedy
	// weight-balanced split of Design Note §9.
	KindCmpltw
	// KindMesh is a d-dimensional mesh (Wrap=false) or torus (Wrap=true).
	KindMesh
	// KindHcube is a binary hypercube of Hdim dimensions.
	KindHcube
	// KindTleaf is a tree whose leaves are the terminals, with a
	// per-level link cost.
	KindTleaf
	// KindSub is a sub-architecture: a parent Arch restricted to a
	// retained subset of its terminals.
	KindSub
	// KindDeco is a decomposition-defined architecture: explicit domain
	// membership and an explicit terminal-by-terminal distance matrix.
	KindDeco
)

// Domain is a non-empty subset of an architecture's terminals. Per the
// GLOSSARY ("contiguous / structured subset"), every variant represents a
// domain as a half-open range in some canonical per-variant ordering:
//   - Cmplt / Cmpltw / Tleaf / Sub / Deco: [Lo,Hi) over a flattened
//     terminal (or, for Cmpltw, DFS-tree-position) space.
//   - Mesh / Hcube: [Lo,Hi) over a bit/box-aligned integer space — for
//     Hcube this is a binary-interval bit prefix; for Mesh/Torus, BoxLo/
//     BoxHi give the per-dimension sub-rectangle directly.
type Domain struct {
	Lo, Hi int32 // half-open terminal/position range; unused (zero) for Mesh/Torus

	BoxLo, BoxHi []int32 // per-dimension range, Mesh/Torus only; nil otherwise
}

// rangeSize returns the number of terminals the domain covers, per the
// variant's own counting (box product for Mesh/Torus, Hi-Lo otherwise).
func (d Domain) rangeSize() int32 {
	if d.BoxLo != nil {
		size := int32(1)
		for i := range d.BoxLo {
			size *= d.BoxHi[i] - d.BoxLo[i]
		}
		return size
	}
	return d.Hi - d.Lo
}

// Arch is the tagged target-architecture value. Only the fields relevant
// to Kind are populated; all others are zero.
type Arch struct {
	kind Kind

	// Cmplt / Cmpltw: size is the terminal count.
	size int32

	// Cmpltw only: weight per terminal in ORIGINAL terminal-id order,
	// the DFS-flattened tree order (position -> terminal id), a
	// prefix sum of weight in that order for O(1) domain_weight, and the
	// precomputed split points for every internal tree range, persisted
	// at build time per §9.
	weight       []int32
	dfsOrder     []int32
	dfsPrefixW   []int64
	splitAt      map[[2]int32]int32

	// Mesh / Torus: per-dimension extent, and whether edges wrap (torus).
	dims []int32
	wrap bool

	// Hcube: number of dimensions; terminal count is 1<<hdim.
	hdim int32

	// Tleaf: branching factor and link cost per level (root = level 0);
	// len(levelSizes) == len(levelCost) == depth.
	levelSizes []int32
	levelCost  []int64
	leafCount  int32
	// blockSize[l] = number of leaves under one level-l node.
	blockSize []int32

	// Sub: parent architecture and the terminals retained from it, in
	// ascending parent-terminal order; the sub-architecture renumbers
	// them 0..len-1.
	parent            *Arch
	retainedTerminals []int32

	// Deco: an explicit terminal order (position -> terminal id, used the
	// same way Cmplt uses the identity order) and an explicit
	// terminal-by-terminal distance matrix, both supplied by the caller.
	decoLeafOrder []int32
	decoDist      [][]int64
}
