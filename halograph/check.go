package halograph

import "github.com/katalvlaran/meshpart/errs"

const pkgName = "halograph"

// Check validates structural invariants: anchor-anchor edges symmetric,
// halo edges point only into the anchor prefix, no self-loops, loads
// positive, and the cached non-halo sums match the per-entry values.
// Complexity: O(V + E).
func (g *Graph) Check() error {
	n := g.VertexCount()
	nonHalo := int(g.nonHaloCount)
	var nonHaloLoadTotal, nonHaloEdgeLoadTotal int64
	var nonHaloEdgeCount int32

	for v := 0; v < n; v++ {
		load := g.VertLoad(v + g.base)
		if load <= 0 {
			return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
		}
		if v < nonHalo {
			nonHaloLoadTotal += int64(load)
		}
		s, e := g.vertStart[v], g.vertEnd[v]
		for i := s; i < e; i++ {
			w := int(g.edgeTarget[i])
			if w == v {
				return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
			}
			if v >= nonHalo && w >= nonHalo {
				return errs.Wrapf(pkgName, "Check", "halo vertex %d points to another halo vertex", errs.ErrInconsistentState, v+g.base)
			}
			if v < nonHalo {
				if w >= nonHalo {
					return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
				}
				eload := g.EdgeLoadAt(i)
				if !g.hasArc(w, v, eload) {
					return errs.Wrapf(pkgName, "Check", "anchor edge (%d,%d) not symmetric", errs.ErrInconsistentState, v+g.base, w+g.base)
				}
				nonHaloEdgeLoadTotal += int64(eload)
				nonHaloEdgeCount++
			}
		}
	}
	if nonHaloLoadTotal != g.nonHaloLoadTotal || nonHaloEdgeLoadTotal != g.nonHaloEdgeLoadTotal || nonHaloEdgeCount != g.nonHaloEdgeCount {
		return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
	}
	return nil
}

func (g *Graph) hasArc(v, t int, load int32) bool {
	s, e := g.vertStart[v], g.vertEnd[v]
	for i := s; i < e; i++ {
		if int(g.edgeTarget[i]) == t && g.EdgeLoadAt(i) == load {
			return true
		}
	}
	return false
}
