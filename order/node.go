package order

// Node is one block of the separator tree (spec.md §4.H: "separator
// tree (node = block with a parent pointer)"). A leaf node was ordered
// directly by halo-AMF; an internal node recorded only the vertex
// separator it split off — the two halves are its Children.
type Node struct {
	Parent   *Node
	Children [2]*Node // nil on a leaf

	// Vertices holds this node's own block: the full anchor set for a
	// leaf, or just the separator for an internal node (its children
	// carry the A and B halves).
	Vertices []int32

	Leaf bool
}

// Result is everything Order produces for one input graph.
type Result struct {
	// InversePermutation maps an original (base-relative, 0-based)
	// vertex index to its position in the elimination order: a
	// permutation of [0, |V|) (Testable Property 10).
	InversePermutation []int32

	// Perm is InversePermutation's inverse: Perm[position] is the
	// original vertex eliminated at that position.
	Perm []int32

	// ColumnCounts[v] approximates the number of nonzero entries below
	// the diagonal in v's column of the Cholesky factor: the size of the
	// clique v's neighbours were merged into at the moment v was
	// eliminated (spec.md §4.H "column counts for the outputs used by
	// direct solvers").
	ColumnCounts []int64

	Tree *Node
}
