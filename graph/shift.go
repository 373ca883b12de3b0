package graph

import "github.com/katalvlaran/meshpart/errs"

// ShiftBase returns a new Graph whose arrays are re-based to newBase (0 or
// 1), per Design Note "Base-value shifting": rather than pointer
// arithmetic, every access adds the base at the boundary, and ShiftBase
// materializes a re-based copy for callers (e.g. file I/O) that need a
// specific base throughout.
// Complexity: O(V + E).
func (g *Graph) ShiftBase(newBase int) (*Graph, error) {
	if newBase != 0 && newBase != 1 {
		return nil, errs.Wrap(pkgName, "ShiftBase", errs.ErrInvalidArgument)
	}
	if newBase == g.base {
		return g.Clone(), nil
	}
	out := g.Clone()
	out.base = newBase
	return out, nil
}

// Clone returns a deep copy of g. Vertex/edge load arrays are always
// duplicated rather than shared, so the result is independently mutable
// (InduceByPart/InduceByList likewise build fresh arrays through a
// Builder).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		base:          g.base,
		compact:       g.compact,
		vertLoadTotal: g.vertLoadTotal,
		edgeLoadTotal: g.edgeLoadTotal,
		maxDegree:     g.maxDegree,
		free:          freeVertLoad | freeEdgeLoad | freeTopology,
	}
	out.vertStart = append([]int32(nil), g.vertStart...)
	if g.compact {
		out.vertEnd = out.vertStart[1:]
	} else {
		out.vertEnd = append([]int32(nil), g.vertEnd...)
	}
	out.edgeTarget = append([]int32(nil), g.edgeTarget...)
	if g.vertLoad != nil {
		out.vertLoad = append([]int32(nil), g.vertLoad...)
	}
	if g.edgeLoad != nil {
		out.edgeLoad = append([]int32(nil), g.edgeLoad...)
	}
	return out
}
