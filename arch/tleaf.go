package arch

// NewTreeLeaf creates a tree-leaf architecture: a perfectly regular tree
// whose leaves are the terminals, with levelSizes[l] the branching factor
// at depth l (root is depth 0) and levelCost[l] the per-hop link cost of
// traversing an edge at depth l. Panics if the two slices differ in
// length, are empty, or contain non-positive entries.
// Complexity: O(depth).
func NewTreeLeaf(levelSizes []int32, levelCost []int64) *Arch {
	if len(levelSizes) == 0 || len(levelSizes) != len(levelCost) {
		panic("arch: NewTreeLeaf(mismatched or empty levels)")
	}
	for i, s := range levelSizes {
		if s <= 0 || levelCost[i] < 0 {
			panic("arch: NewTreeLeaf(invalid level parameters)")
		}
	}
	depth := len(levelSizes)
	blockSize := make([]int32, depth+1)
	blockSize[depth] = 1
	for l := depth - 1; l >= 0; l-- {
		blockSize[l] = blockSize[l+1] * levelSizes[l]
	}
	return &Arch{
		kind:       KindTleaf,
		size:       blockSize[0],
		levelSizes: append([]int32(nil), levelSizes...),
		levelCost:  append([]int64(nil), levelCost...),
		leafCount:  blockSize[0],
		blockSize:  blockSize,
	}
}

// tleafDistance returns the cost of a round trip from leaf loA to leaf
// loB: twice the sum of per-level link costs from the leaves up to (and
// including) the level where their ancestor paths first coincide.
func (a *Arch) tleafDistance(loA, loB int32) int64 {
	if loA == loB {
		return 0
	}
	var cost int64
	depth := len(a.levelSizes)
	for l := depth; l >= 1; l-- {
		cost += 2 * a.levelCost[l-1]
		ancestorA := loA / a.blockSize[l-1]
		ancestorB := loB / a.blockSize[l-1]
		if ancestorA == ancestorB {
			break
		}
	}
	return cost
}
