package graph

import "github.com/katalvlaran/meshpart/errs"

// InduceByPart builds the subgraph on {v : part[v-base] == target},
// renumbering densely from the parent's base value and returning an
// injective NumberInParent map back to parent (base-shifted) indices.
// Edges whose other endpoint is not in target are dropped; loads are
// preserved. Grounded on core.InducedSubgraph (drop-then-renumber),
// adapted from string-keyed maps to CSR arrays.
// Complexity: O(V + E).
func (g *Graph) InduceByPart(part []int32, target int32) (sub *Graph, numberInParent []int32, err error) {
	n := g.VertexCount()
	if len(part) != n {
		return nil, nil, errs.Wrap(pkgName, "InduceByPart", errs.ErrInvalidArgument)
	}
	var keep []int
	for v := 0; v < n; v++ {
		if part[v] == target {
			keep = append(keep, v)
		}
	}
	return g.induceList(keep)
}

// InduceByList builds the subgraph on the explicit vertex list (base-
// shifted indices), renumbering densely in list order. Duplicate entries
// are rejected.
// Complexity: O(V + E).
func (g *Graph) InduceByList(list []int32) (sub *Graph, numberInParent []int32, err error) {
	keep := make([]int, len(list))
	for i, v := range list {
		keep[i] = int(v) - g.base
	}
	return g.induceList(keep)
}

func (g *Graph) induceList(keepRel []int) (*Graph, []int32, error) {
	n := g.VertexCount()
	newIndex := make([]int32, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	for newI, relV := range keepRel {
		if relV < 0 || relV >= n {
			return nil, nil, errs.Wrap(pkgName, "induceList", errs.ErrInvalidArgument)
		}
		if newIndex[relV] != -1 {
			return nil, nil, errs.Wrapf(pkgName, "induceList", "duplicate vertex %d", errs.ErrInvalidArgument, relV+g.base)
		}
		newIndex[relV] = int32(newI)
	}

	b := NewBuilder(WithBase(g.base))
	if g.vertLoad != nil {
		b.hasVertLoad = true
	}
	if g.edgeLoad != nil {
		b.hasEdgeLoad = true
	}
	numberInParent := make([]int32, len(keepRel))
	for newI, relV := range keepRel {
		numberInParent[newI] = int32(relV) + int32(g.base)
		if _, err := b.AddVertex(g.VertLoad(relV + g.base)); err != nil {
			return nil, nil, errs.Wrap(pkgName, "induceList", err)
		}
	}
	for newI, relV := range keepRel {
		s, e := g.vertStart[relV], g.vertEnd[relV]
		for i := s; i < e; i++ {
			relW := int(g.edgeTarget[i])
			newW := newIndex[relW]
			if newW == -1 || newW <= int32(newI) {
				continue // other endpoint dropped, or already added from the other side
			}
			if err := b.AddEdge(newI+g.base, int(newW)+g.base, g.EdgeLoadAt(i)); err != nil {
				return nil, nil, errs.Wrap(pkgName, "induceList", err)
			}
		}
	}
	sub, err := b.Build()
	if err != nil {
		return nil, nil, errs.Wrap(pkgName, "induceList", err)
	}
	return sub, numberInParent, nil
}
