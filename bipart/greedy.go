package bipart

import "github.com/katalvlaran/meshpart/graph"

// Greedy builds an initial bipartition by graph-growing from seed
// (spec.md §4.F): every vertex starts in part 1 except seed; at each
// step the part-1 vertex most strongly connected to the already-grown
// part 0 (summed edge load to current part-0 members) is moved across,
// until part 0's load reaches ag.Load0Avg or no further candidate
// borders part 0. Used as the fast initial solution at the bottom of
// the coarsening hierarchy.
// Complexity: O(n * c * d) for c the candidate-set size (bounded by the
// frontier) and d the maximum degree — every candidate's connection is
// rescanned after each move.
func Greedy(ag *ActiveGraph, seed int) {
	g := ag.G
	base := g.Base()

	for v := range ag.Part {
		ag.Part[v] = 1
	}
	ag.Part[seed] = 0
	load0 := int64(g.VertLoad(seed + base))

	candidates := make(map[int]bool)
	addPart1Neighbors(g, base, seed, ag.Part, candidates)

	for load0 < ag.Load0Avg && len(candidates) > 0 {
		best, bestConn := -1, int64(-1)
		for v := range candidates {
			conn := connectionToPart0(g, base, v, ag.Part)
			if conn > bestConn {
				bestConn, best = conn, v
			}
		}
		if best < 0 {
			break
		}
		ag.Part[best] = 0
		load0 += int64(g.VertLoad(best + base))
		delete(candidates, best)
		addPart1Neighbors(g, base, best, ag.Part, candidates)
	}
	ag.Recompute()
}

func connectionToPart0(g *graph.Graph, base, v int, part []int8) int64 {
	var conn int64
	g.Neighbors(v+base, func(w int, load int32) {
		if part[w-base] == 0 {
			conn += int64(load)
		}
	})
	return conn
}

func addPart1Neighbors(g *graph.Graph, base, v int, part []int8, candidates map[int]bool) {
	g.Neighbors(v+base, func(w int, load int32) {
		wi := w - base
		if part[wi] == 1 {
			candidates[wi] = true
		}
	})
}
