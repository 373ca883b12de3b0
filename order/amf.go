package order

import (
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/halograph"
)

// haloAMF orders anchors directly (spec.md §4.H's base case): build a
// halo graph around anchors using halo as the candidate halo pool, then
// repeatedly eliminate the anchor with the smallest approximate fill —
// the number of new edges its elimination would add among its current
// neighbours — recording each elimination in order and merging the
// eliminated vertex's neighbours into a clique, exactly as a quotient-
// graph minimum-fill heuristic does. Halo vertices are never picked as a
// pivot; they are "accounted for" only by contributing to the fill
// estimate of the anchors that still neighbour them (spec.md §4.H:
// "Halo vertices appear with negative lengths and are never ordered,
// only accounted for") — a pair involving a halo vertex is always
// counted as new fill, since their own adjacency is never tracked.
// colCount is filled in at colCount[v-base] for every ordered v.
// Complexity: O(k^2 * d^2) for a block of k anchors whose live neighbour
// sets (halo included) hold at most d vertices: every step recounts each
// live candidate's neighbour pairs from scratch. Order calls it on
// base-case blocks, on blocks no separator could split, and on every
// separator.
func haloAMF(g *graph.Graph, anchors []int32, halo []int32, colCount []int64) ([]int32, error) {
	base := g.Base()
	if len(anchors) == 0 {
		return nil, nil
	}

	combined := make([]int32, 0, len(anchors)+len(halo))
	seen := make(map[int32]bool, len(anchors)+len(halo))
	for _, v := range anchors {
		seen[v] = true
		combined = append(combined, v)
	}
	for _, v := range halo {
		if !seen[v] {
			seen[v] = true
			combined = append(combined, v)
		}
	}

	sub, _, err := g.InduceByList(combined)
	if err != nil {
		return nil, errs.Wrap(pkgName, "haloAMF", err)
	}
	anchorIdx := make([]int, len(anchors))
	for i := range anchors {
		anchorIdx[i] = i
	}
	hg := halograph.FillBoundaryWithHalo(sub, anchorIdx)

	n := hg.VertexCount()
	nonHalo := int(hg.NonHaloCount())
	hgBase := hg.Base()
	adj := make([]map[int32]bool, n)
	alive := make([]bool, nonHalo)
	for v := 0; v < nonHalo; v++ {
		alive[v] = true
		adj[v] = make(map[int32]bool)
		hg.Neighbors(v+hgBase, func(w int, _ int32) {
			adj[v][int32(w-hgBase)] = true
		})
	}
	// Halo edges are stored only on the halo side; mirror them into the
	// anchors' sets so halo neighbours count toward fill.
	for v := nonHalo; v < n; v++ {
		hg.Neighbors(v+hgBase, func(w int, _ int32) {
			adj[w-hgBase][int32(v)] = true
		})
	}

	// sub's vertex i corresponds to combined[i]; anchors occupy
	// combined[0:len(anchors)] and InduceByList preserves list order, so
	// hg's local index i < nonHalo maps back to anchors[i] directly.
	order := make([]int32, 0, len(anchors))
	remaining := len(anchors)
	for remaining > 0 {
		best, bestFill := -1, -1
		for v := 0; v < nonHalo; v++ {
			if !alive[v] {
				continue
			}
			fill := fillCost(v, adj, alive, nonHalo)
			if best == -1 || fill < bestFill {
				best, bestFill = v, fill
			}
		}
		if best == -1 {
			break
		}

		neighbours := make([]int32, 0, len(adj[best]))
		for w := range adj[best] {
			if int(w) >= nonHalo || alive[w] {
				neighbours = append(neighbours, w)
			}
		}
		for i := 0; i < len(neighbours); i++ {
			x := neighbours[i]
			for j := i + 1; j < len(neighbours); j++ {
				y := neighbours[j]
				xIsAnchor := int(x) < nonHalo
				yIsAnchor := int(y) < nonHalo
				if !xIsAnchor && !yIsAnchor {
					continue // halo-halo fill not tracked; accounted for one level up
				}
				if xIsAnchor {
					adj[x][y] = true
				}
				if yIsAnchor {
					adj[y][x] = true
				}
			}
		}
		for w := range adj[best] {
			if int(w) < nonHalo {
				delete(adj[w], int32(best))
			}
		}
		alive[best] = false
		remaining--

		origVertex := anchors[best]
		order = append(order, origVertex)
		colCount[int(origVertex)-base] = int64(len(neighbours))
	}

	return order, nil
}

// fillCost counts the pairs among v's live neighbours not already
// adjacent: the number of edges eliminating v would add. A pair where
// either side is a halo vertex is always counted as new fill, since
// halo-halo and halo-anchor adjacency among vertices other than v is
// never tracked (an approximation, not an exact recount).
func fillCost(v int, adj []map[int32]bool, alive []bool, nonHalo int) int {
	var live []int32
	for w := range adj[v] {
		if int(w) >= nonHalo || alive[w] {
			live = append(live, w)
		}
	}
	missing := 0
	for i := 0; i < len(live); i++ {
		x := live[i]
		for j := i + 1; j < len(live); j++ {
			y := live[j]
			if int(x) < nonHalo && int(y) < nonHalo && adj[x][y] {
				continue // already adjacent, no new fill
			}
			missing++
		}
	}
	return missing
}
