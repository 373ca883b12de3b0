package halograph

// Graph is the halo graph (spec.md §3): a plain-graph-shaped CSR structure
// whose first nonHaloCount vertices are anchors (ordered) and whose
// remaining suffix is halo vertices (never ordered, only accounted for).
// Anchor-to-anchor edges are symmetric like graph.Graph; halo-to-anchor
// edges are stored only on the halo vertex's adjacency (asymmetric).
type Graph struct {
	base int

	vertStart []int32
	vertEnd   []int32
	compact   bool

	edgeTarget []int32
	edgeLoad   []int32 // nil => uniform load 1

	vertLoad []int32 // nil => uniform load 1

	nonHaloCount         int32
	nonHaloLoadTotal     int64
	nonHaloEdgeCount     int32 // arcs among anchors only
	nonHaloEdgeLoadTotal int64
}

// Base returns the graph's base value.
func (g *Graph) Base() int { return g.base }

// VertexCount returns the total vertex count (anchors + halo).
func (g *Graph) VertexCount() int { return len(g.vertStart) - 1 }

// NonHaloCount returns the number of anchor (non-halo) vertices.
func (g *Graph) NonHaloCount() int32 { return g.nonHaloCount }

// NonHaloLoadTotal returns the sum of anchor vertex loads.
func (g *Graph) NonHaloLoadTotal() int64 { return g.nonHaloLoadTotal }

// NonHaloEdgeCount returns the number of anchor-to-anchor arcs.
func (g *Graph) NonHaloEdgeCount() int32 { return g.nonHaloEdgeCount }

// NonHaloEdgeLoadTotal returns the summed load of anchor-to-anchor arcs.
func (g *Graph) NonHaloEdgeLoadTotal() int64 { return g.nonHaloEdgeLoadTotal }

// IsHalo reports whether vertex v (base-shifted index) is a halo vertex.
func (g *Graph) IsHalo(v int) bool { return int32(v-g.base) >= g.nonHaloCount }

// VertLoad returns the load of vertex v.
func (g *Graph) VertLoad(v int) int32 {
	if g.vertLoad == nil {
		return 1
	}
	return g.vertLoad[v-g.base]
}

// EdgeRange returns the half-open arc range for vertex v.
func (g *Graph) EdgeRange(v int) (start, end int32) {
	i := v - g.base
	return g.vertStart[i], g.vertEnd[i]
}

// EdgeTargetAt returns the adjacent vertex at arc index e, in base-relative
// (0-based) form.
func (g *Graph) EdgeTargetAt(e int32) int32 { return g.edgeTarget[e] }

// EdgeLoadAt returns the load of arc e.
func (g *Graph) EdgeLoadAt(e int32) int32 {
	if g.edgeLoad == nil {
		return 1
	}
	return g.edgeLoad[e]
}

// Neighbors calls fn once per arc leaving v with (target vertex, edge load).
func (g *Graph) Neighbors(v int, fn func(w int, load int32)) {
	s, e := g.EdgeRange(v)
	for i := s; i < e; i++ {
		fn(int(g.edgeTarget[i])+g.base, g.EdgeLoadAt(i))
	}
}
