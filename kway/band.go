package kway

import (
	"sort"

	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/mapping"
)

const pkgName = "kway"

// Band is a k-way band graph (spec.md §4.B/4.G's "Band-graph
// extraction"): the induced subgraph within layers hops of a frontier,
// plus one synthetic anchor vertex per live target domain appended
// after every band vertex.
type Band struct {
	G *graph.Graph

	// BandToParent[i] is the parent (base-shifted) vertex index of band
	// vertex i, for i < NonAnchorCount; anchor vertices have no parent.
	BandToParent []int32

	// AnchorDomainSlot[k] is the live domain slot the k-th anchor vertex
	// (band vertex NonAnchorCount+k) represents.
	AnchorDomainSlot []int32

	NonAnchorCount int
}

// IsAnchor reports whether band-local vertex v (0-based) is a synthetic
// anchor rather than a real graph vertex.
func (b *Band) IsAnchor(v int) bool { return v >= b.NonAnchorCount }

// ExtractBand builds a Band around frontier, reaching layers hops
// outward (spec.md §4.B: "vertices at graph-distance <= L from any
// frontier vertex", L usually 3), then appends one anchor per live
// domain: each anchor connects to every band vertex on the band's outer
// boundary currently mapped to that domain (a synthetic unit edge
// weight — the pack's source material leaves the exact constant
// unspecified), and carries a load equal to that domain's realised load
// outside the band.
// Complexity: O((n + m)) for the BFS and induction.
func ExtractBand(m *mapping.Mapping, frontier []int32, layers int) (*Band, error) {
	g := m.Graph()
	base := g.Base()

	inBand := make(map[int]bool)
	queue := make([]int, 0, len(frontier))
	for _, v := range frontier {
		vi := int(v) - base
		if !inBand[vi] {
			inBand[vi] = true
			queue = append(queue, vi)
		}
	}
	for layer := 0; layer < layers && len(queue) > 0; layer++ {
		var next []int
		for _, v := range queue {
			g.Neighbors(v+base, func(w int, _ int32) {
				wi := w - base
				if !inBand[wi] {
					inBand[wi] = true
					next = append(next, wi)
				}
			})
		}
		queue = next
	}

	bandList := make([]int32, 0, len(inBand))
	for v := range inBand {
		bandList = append(bandList, int32(v+base))
	}
	sort.Slice(bandList, func(i, j int) bool { return bandList[i] < bandList[j] })

	sub, numberInParent, err := g.InduceByList(bandList)
	if err != nil {
		return nil, errs.Wrap(pkgName, "ExtractBand", err)
	}

	// boundary = band vertex with at least one neighbour outside the band
	isBoundary := make([]bool, len(bandList))
	for i, parentV := range numberInParent {
		g.Neighbors(int(parentV), func(w int, _ int32) {
			if !inBand[w-base] {
				isBoundary[i] = true
			}
		})
	}

	subBase := sub.Base()
	view := m.View()
	domainCount := m.DomainLiveCount()
	bandLoadByDomain := make([]int64, domainCount)
	for v := 0; v < sub.VertexCount(); v++ {
		p := m.Part(int(numberInParent[v]))
		if p >= 0 {
			bandLoadByDomain[p] += int64(sub.VertLoad(v + subBase))
		}
	}

	bld := graph.NewBuilder(graph.WithVertexLoads(), graph.WithEdgeLoads())
	for v := 0; v < sub.VertexCount(); v++ {
		if _, err := bld.AddVertex(sub.VertLoad(v + subBase)); err != nil {
			return nil, errs.Wrap(pkgName, "ExtractBand", err)
		}
	}
	for v := 0; v < sub.VertexCount(); v++ {
		var addErr error
		sub.Neighbors(v+subBase, func(w int, load int32) {
			wi := w - subBase
			if wi <= v {
				return
			}
			if err := bld.AddEdge(v, wi, load); err != nil {
				addErr = err
			}
		})
		if addErr != nil {
			return nil, errs.Wrap(pkgName, "ExtractBand", addErr)
		}
	}

	anchorDomainSlot := make([]int32, domainCount)
	anchorBase := sub.VertexCount()
	for d := 0; d < domainCount; d++ {
		anchorDomainSlot[d] = int32(d)
		outside := view.RealisedPartLoads[d] - bandLoadByDomain[d]
		if outside < 0 {
			outside = 0
		}
		if _, err := bld.AddVertex(int32(clampLoad(outside))); err != nil {
			return nil, errs.Wrap(pkgName, "ExtractBand", err)
		}
	}
	const syntheticAnchorEdgeLoad = 1
	for i := range numberInParent {
		if !isBoundary[i] {
			continue
		}
		p := m.Part(int(numberInParent[i]))
		if p < 0 {
			continue
		}
		if err := bld.AddEdge(i, anchorBase+int(p), syntheticAnchorEdgeLoad); err != nil {
			return nil, errs.Wrap(pkgName, "ExtractBand", err)
		}
	}

	band, err := bld.Build()
	if err != nil {
		return nil, errs.Wrap(pkgName, "ExtractBand", err)
	}

	return &Band{
		G:                band,
		BandToParent:     numberInParent,
		AnchorDomainSlot: anchorDomainSlot,
		NonAnchorCount:   sub.VertexCount(),
	}, nil
}

// clampLoad keeps an anchor's load inside int32 AddVertex's valid range
// (> 0) even when a domain's entire realised load already sits inside
// the band.
func clampLoad(x int64) int64 {
	const maxInt32 = 1<<31 - 1
	if x > maxInt32 {
		return maxInt32
	}
	if x < 1 {
		return 1
	}
	return x
}
