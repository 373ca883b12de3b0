package arch

import "sort"

// NewCompleteWeighted creates a weighted complete-graph architecture from
// a per-terminal weight list (all entries must be > 0; panics otherwise).
// The recursive balanced-greedy split (§9 / Design Note "the
// weighted-complete bipartition sorts loads recursively") is performed
// once, here, and persists in the returned Arch: alternating inserts of
// the descending-weight-sorted terminal list into whichever of two
// sub-groups currently has the smaller sum, then repeating on each half.
// Complexity: O(n log n).
func NewCompleteWeighted(weight []int32) *Arch {
	if len(weight) == 0 {
		panic("arch: NewCompleteWeighted(empty)")
	}
	for _, w := range weight {
		if w <= 0 {
			panic("arch: NewCompleteWeighted(non-positive weight)")
		}
	}
	n := int32(len(weight))
	a := &Arch{kind: KindCmpltw, size: n, weight: append([]int32(nil), weight...)}

	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool { return weight[order[i]] > weight[order[j]] })

	dfsOrder := make([]int32, 0, n)
	splitAt := make(map[[2]int32]int32)
	buildCmpltwNode(order, weight, &dfsOrder, splitAt)

	a.dfsOrder = dfsOrder
	a.splitAt = splitAt
	a.dfsPrefixW = make([]int64, n+1)
	for i, t := range dfsOrder {
		a.dfsPrefixW[i+1] = a.dfsPrefixW[i] + int64(weight[t])
	}
	return a
}

// buildCmpltwNode recursively splits the descending-weight-sorted
// terminal subsequence "order" (a subsequence of the globally sorted
// order, hence itself sorted by descending weight) into two
// greedy-balanced groups, alternating inserts into whichever running sum
// is currently smaller, then recurses on each group. It appends the
// resulting leaves, in DFS (pre-order-by-recursion) order, to *dfsOrder*,
// and records the [lo,hi) split point of every internal range in
// splitAt so DomainBipart can replay it in O(1) without re-deriving the
// greedy grouping.
func buildCmpltwNode(order []int32, weight []int32, dfsOrder *[]int32, splitAt map[[2]int32]int32) {
	if len(order) == 1 {
		*dfsOrder = append(*dfsOrder, order[0])
		return
	}
	var groupA, groupB []int32
	var sumA, sumB int64
	for _, t := range order {
		if sumA <= sumB {
			groupA = append(groupA, t)
			sumA += int64(weight[t])
		} else {
			groupB = append(groupB, t)
			sumB += int64(weight[t])
		}
	}
	lo := int32(len(*dfsOrder))
	buildCmpltwNode(groupA, weight, dfsOrder, splitAt)
	mid := int32(len(*dfsOrder))
	buildCmpltwNode(groupB, weight, dfsOrder, splitAt)
	hi := int32(len(*dfsOrder))
	splitAt[[2]int32{lo, hi}] = mid
}
