package halograph

import "github.com/katalvlaran/meshpart/graph"

// FillBoundaryWithHalo builds a halo graph out of a plain graph g and an
// explicit anchor list (base-relative indices, in the order they should
// appear as the graph's non-halo prefix): the anchors are induced exactly
// as graph.InduceByList would, and every vertex adjacent to an anchor but
// not itself an anchor is appended to the tail as a halo vertex, with
// edges stored only in the halo→anchor direction (§4.C "fill boundary
// with halo"). Used by the ordering engine after a bisection: each half
// is ordered with the removed separator appearing as halo, so elimination
// fill-in across the separator is accounted for.
//
// Grounded on gridgraph's frontier-expansion shape, adapted from grid
// cells to CSR adjacency.
// Complexity: O(V + E).
func FillBoundaryWithHalo(g *graph.Graph, anchorsRel []int) *Graph {
	base := g.Base()
	n := g.VertexCount()

	isAnchor := make([]bool, n)
	newIndex := make([]int32, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	for newI, relV := range anchorsRel {
		isAnchor[relV] = true
		newIndex[relV] = int32(newI)
	}

	// Discover halo candidates: neighbors of anchors that are not anchors.
	var haloRel []int
	haloSeen := make(map[int]bool)
	for _, relV := range anchorsRel {
		s, e := g.EdgeRange(relV + base)
		for i := s; i < e; i++ {
			w := int(g.EdgeTargetAt(i))
			if !isAnchor[w] && !haloSeen[w] {
				haloSeen[w] = true
				haloRel = append(haloRel, w)
			}
		}
	}
	for haloI, relV := range haloRel {
		newIndex[relV] = int32(len(anchorsRel) + haloI)
	}

	nAnchor := len(anchorsRel)
	nHalo := len(haloRel)
	total := nAnchor + nHalo

	vertStart := make([]int32, total+1)
	var edgeTarget []int32
	var edgeLoad []int32
	hasEdgeLoad := g.Weighted()
	if hasEdgeLoad {
		edgeLoad = []int32{}
	}
	vertLoad := make([]int32, total)
	hasVertLoad := g.VertWeighted()

	var nonHaloLoadTotal, nonHaloEdgeLoadTotal int64
	var nonHaloEdgeCount int32

	// Anchor blocks: symmetric edges to other anchors only.
	for newI, relV := range anchorsRel {
		vertLoad[newI] = g.VertLoad(relV + base)
		nonHaloLoadTotal += int64(vertLoad[newI])
		vertStart[newI] = int32(len(edgeTarget))
		s, e := g.EdgeRange(relV + base)
		for i := s; i < e; i++ {
			w := int(g.EdgeTargetAt(i))
			if !isAnchor[w] {
				continue
			}
			edgeTarget = append(edgeTarget, newIndex[w])
			load := g.EdgeLoadAt(i)
			if hasEdgeLoad {
				edgeLoad = append(edgeLoad, load)
			}
			nonHaloEdgeLoadTotal += int64(load)
			nonHaloEdgeCount++
		}
	}

	// Halo blocks: asymmetric edges, only into the anchor prefix.
	for haloI, relV := range haloRel {
		newI := nAnchor + haloI
		if hasVertLoad {
			vertLoad[newI] = g.VertLoad(relV + base)
		} else {
			vertLoad[newI] = 1
		}
		vertStart[newI] = int32(len(edgeTarget))
		s, e := g.EdgeRange(relV + base)
		for i := s; i < e; i++ {
			w := int(g.EdgeTargetAt(i))
			if !isAnchor[w] {
				continue
			}
			edgeTarget = append(edgeTarget, newIndex[w])
			if hasEdgeLoad {
				edgeLoad = append(edgeLoad, g.EdgeLoadAt(i))
			}
		}
	}
	vertStart[total] = int32(len(edgeTarget))

	if !hasVertLoad {
		vertLoad = nil
	}

	return &Graph{
		base:                 base,
		vertStart:            vertStart,
		vertEnd:              vertStart[1:],
		compact:              true,
		edgeTarget:           edgeTarget,
		edgeLoad:             edgeLoad,
		vertLoad:             vertLoad,
		nonHaloCount:         int32(nAnchor),
		nonHaloLoadTotal:     nonHaloLoadTotal,
		nonHaloEdgeCount:     nonHaloEdgeCount,
		nonHaloEdgeLoadTotal: nonHaloEdgeLoadTotal,
	}
}
