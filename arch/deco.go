package arch

// NewDecompositionDefined creates a decomposition-defined architecture: an
// explicit terminal order (positions bipartition exactly as Cmplt's do,
// by contiguous interval split) paired with an explicit, caller-supplied
// terminal-by-terminal distance matrix. Used when the target topology has
// no closed-form distance function — e.g. a measured network latency
// matrix — and the decomposition tree is simply "split the terminal list
// in half, recursively," same as Cmplt.
// Panics if leafOrder is empty, dist is not leafOrder-sized and square, or
// dist is not symmetric with a zero diagonal.
// Complexity: O(n^2) to validate the matrix.
func NewDecompositionDefined(leafOrder []int32, dist [][]int64) *Arch {
	n := len(leafOrder)
	if n == 0 {
		panic("arch: NewDecompositionDefined(empty terminal order)")
	}
	if len(dist) != n {
		panic("arch: NewDecompositionDefined(distance matrix size mismatch)")
	}
	for i, row := range dist {
		if len(row) != n {
			panic("arch: NewDecompositionDefined(distance matrix not square)")
		}
		if row[i] != 0 {
			panic("arch: NewDecompositionDefined(nonzero self-distance)")
		}
		for j, v := range row {
			if v < 0 || v != dist[j][i] {
				panic("arch: NewDecompositionDefined(distance matrix not symmetric/non-negative)")
			}
		}
	}
	return &Arch{
		kind:          KindDeco,
		size:          int32(n),
		decoLeafOrder: append([]int32(nil), leafOrder...),
		decoDist:      dist,
	}
}
