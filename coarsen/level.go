package coarsen

import (
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
)

const pkgName = "coarsen"

// Level runs one coarsening level (spec.md §4.E): matching, then
// contraction. It enforces the termination rules of §4.E.3 by returning
// ErrTransientFailure when the coarsening ratio (coarse/fine vertex
// count) did not fall under cfg.CoarseningRatioThreshold — callers are
// expected to treat that as a signal to fall back to direct bipartition
// at the current level (§4.E.4: "not fatal"), and ErrResourceExhausted
// is never raised directly here but is propagated unchanged if the
// matching/contraction arrays could not be allocated (Go's allocator
// panics OOM rather than returning an error; this package has nothing
// further to add there).
// Complexity: O(n + m).
func Level(ctx *wpool.Context, g *graph.Graph, cfg config.Values, opts ...MatchOption) (coarse *graph.Graph, fineToCoarse []int32, err error) {
	mate := Match(ctx, g, opts...)
	coarse, fineToCoarse = Contract(g, mate)

	if g.VertexCount() > 0 {
		ratio := float64(coarse.VertexCount()) / float64(g.VertexCount())
		if ratio > cfg.CoarseningRatioThreshold {
			return coarse, fineToCoarse, errs.Wrap(pkgName, "Level", errs.ErrTransientFailure)
		}
	}
	return coarse, fineToCoarse, nil
}

// Hierarchy runs Level repeatedly until one of §4.E.3's stop conditions
// is hit: the target coarse-vertex count is reached, a level's ratio
// fails cfg.CoarseningRatioThreshold (the last successful level is kept,
// per §4.E.4's "not fatal" recovery — the incomplete level is simply not
// appended), or cfg.RecursionCutoffSize (the hard minimum size) is
// reached. Returns every level's graph, coarsest last, plus the
// fine-to-coarse maps needed to prolong a solution back up.
// Complexity: O(sum of n_i + m_i) over the produced levels.
func Hierarchy(ctx *wpool.Context, g *graph.Graph, cfg config.Values, targetCoarseCount int, opts ...MatchOption) (levels []*graph.Graph, fineToCoarseMaps [][]int32) {
	levels = append(levels, g)
	cur := g
	for cur.VertexCount() > cfg.RecursionCutoffSize && cur.VertexCount() > targetCoarseCount {
		next, f2c, err := Level(ctx, cur, cfg, opts...)
		if err != nil {
			break // insufficient reduction or a level-local failure: stop, keep what we have
		}
		if next.VertexCount() == cur.VertexCount() {
			break // matching made no progress at all; avoid an infinite level chain
		}
		levels = append(levels, next)
		fineToCoarseMaps = append(fineToCoarseMaps, f2c)
		cur = next
	}
	return levels, fineToCoarseMaps
}
