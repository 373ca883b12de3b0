package bipart

import (
	"github.com/katalvlaran/meshpart/coarsen"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
)

// Multilevel solves the 2-way problem on g (spec.md §4.F's "Multilevel"
// refiner): coarsen down to cfg.RecursionCutoffSize, bipartition the
// coarsest graph with Greedy followed by FM, then walk back up,
// prolonging each level's solution onto the next finer graph and
// re-running FM there, finishing with Exactify at the original level.
// Grounded on tsp/solve.go's construct -> improve -> stop-condition
// orchestration, generalized from a single flat pass into one pass per
// coarsening level.
// Complexity: O(sum over levels of (n_i + m_i) log n_i).
func Multilevel(ctx *wpool.Context, g *graph.Graph, cfg config.Values, w0, w1, domainDistance int64) *ActiveGraph {
	levels, fineToCoarseMaps := coarsen.Hierarchy(ctx, g, cfg, 2)
	coarsest := levels[len(levels)-1]

	ag := New(coarsest, AllPart(coarsest.VertexCount(), 0), w0, w1)
	ag.DomainDistance = domainDistance
	Greedy(ag, seedVertex(coarsest))
	FM(ag, cfg.FMPassCount)

	for level := len(levels) - 2; level >= 0; level-- {
		fine := levels[level]
		f2c := fineToCoarseMaps[level]
		finePart := make([]int8, fine.VertexCount())
		for v, c := range f2c {
			finePart[v] = ag.Part[c]
		}
		ag = New(fine, finePart, w0, w1)
		ag.DomainDistance = domainDistance
		FM(ag, cfg.FMPassCount)
	}
	Exactify(ag)
	return ag
}

// seedVertex picks the highest-degree vertex as the greedy-growing seed,
// the cheapest proxy for "most central" on a graph with no geometry.
func seedVertex(g *graph.Graph) int {
	best, bestDeg := 0, int32(-1)
	for v := 0; v < g.VertexCount(); v++ {
		if d := g.Degree(v + g.Base()); d > bestDeg {
			bestDeg, best = d, v
		}
	}
	return best
}
