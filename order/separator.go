package order

import (
	"github.com/katalvlaran/meshpart/bipart"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
)

// findSeparator balances anchors into two halves with bipart.Multilevel,
// targeted at an even 1:1 load split, then reads a vertex separator off
// the result's Frontier: every crossing edge has both endpoints on the
// frontier (each endpoint has a cross-part neighbour by definition), so
// discarding the smaller side's frontier vertices severs every edge
// between what remains of part 0 and what remains of part 1. ok is false
// when the bipartition degenerated (one side empty, or the separator
// would consume the whole block) and the caller should halo-AMF instead.
// Complexity: O(n + m) beyond Multilevel's own cost.
func findSeparator(ctx *wpool.Context, g *graph.Graph, cfg config.Values, anchors []int32) (a, b, sep []int32, ok bool, err error) {
	sub, numberInParent, indErr := g.InduceByList(anchors)
	if indErr != nil {
		return nil, nil, nil, false, errs.Wrap(pkgName, "findSeparator", indErr)
	}
	if sub.VertexCount() < 2 {
		return nil, nil, nil, false, nil
	}

	ag := bipart.Multilevel(ctx, sub, cfg, 1, 1, 1)

	onFrontier := make([]bool, sub.VertexCount())
	for _, v := range ag.Frontier {
		onFrontier[v] = true
	}

	var frontier0Count, frontier1Count int32
	for v, p := range ag.Part {
		if !onFrontier[v] {
			continue
		}
		if p == 0 {
			frontier0Count++
		} else {
			frontier1Count++
		}
	}

	sepPart := int8(1)
	if frontier0Count < frontier1Count {
		sepPart = 0
	}

	for v, p := range ag.Part {
		originalV := numberInParent[v]
		switch {
		case onFrontier[v] && p == sepPart:
			sep = append(sep, originalV)
		case p == 0:
			a = append(a, originalV)
		default:
			b = append(b, originalV)
		}
	}

	if len(a) == 0 || len(b) == 0 || len(sep) == len(anchors) {
		return nil, nil, nil, false, nil
	}
	return a, b, sep, true, nil
}
