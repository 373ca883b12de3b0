package graph

import "github.com/katalvlaran/meshpart/errs"

// Check validates the structural invariants spec.md §3 demands:
// symmetric edges, no self-loops, no parallel edges, positive loads, and
// totals consistent with per-entry values (Testable Property: "Induction
// preserves invariants" relies on this returning OK for every induced
// subgraph).
// Complexity: O(V + E) expected (adjacency probed via a small linear scan
// per vertex degree, acceptable since degrees are typically small and
// bounded by MaxDegree).
func (g *Graph) Check() error {
	n := g.VertexCount()
	if n < 0 {
		return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
	}
	var vertLoadTotal, edgeLoadTotal int64
	for v := 0; v < n; v++ {
		if g.vertLoad != nil {
			l := g.vertLoad[v]
			if l <= 0 {
				return errs.Wrapf(pkgName, "Check", "vertex %d has non-positive load %d", errs.ErrInconsistentState, v+g.base, l)
			}
			vertLoadTotal += int64(l)
		} else {
			vertLoadTotal++
		}

		s, e := g.vertStart[v], g.vertEnd[v]
		for i := s; i < e; i++ {
			w := g.edgeTarget[i]
			if int(w) == v {
				return errs.Wrapf(pkgName, "Check", "self-loop at vertex %d", errs.ErrInconsistentState, v+g.base)
			}
			load := g.EdgeLoadAt(i)
			if load <= 0 {
				return errs.Wrapf(pkgName, "Check", "edge (%d,%d) has non-positive load", errs.ErrInconsistentState, v+g.base, int(w)+g.base)
			}
			edgeLoadTotal += int64(load)

			// Symmetry: w must list v back with the same load.
			if !g.hasArc(int(w), v, load) {
				return errs.Wrapf(pkgName, "Check", "edge (%d,%d) has no symmetric counterpart", errs.ErrInconsistentState, v+g.base, int(w)+g.base)
			}
		}
		// Parallel-edge check: no target vertex appears twice.
		seen := make(map[int32]struct{}, e-s)
		for i := s; i < e; i++ {
			if _, dup := seen[g.edgeTarget[i]]; dup {
				return errs.Wrapf(pkgName, "Check", "parallel edge at vertex %d", errs.ErrInconsistentState, v+g.base)
			}
			seen[g.edgeTarget[i]] = struct{}{}
		}
	}
	if vertLoadTotal != g.vertLoadTotal {
		return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
	}
	if edgeLoadTotal != g.edgeLoadTotal {
		return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
	}
	return nil
}

// hasArc reports whether vertex v (base-relative) has an arc to target t
// (base-relative) with the given load.
func (g *Graph) hasArc(v, t int, load int32) bool {
	s, e := g.vertStart[v], g.vertEnd[v]
	for i := s; i < e; i++ {
		if int(g.edgeTarget[i]) == t && g.EdgeLoadAt(i) == load {
			return true
		}
	}
	return false
}
