package kway

import (
	"github.com/katalvlaran/meshpart/bipart"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/mapping"
	"github.com/katalvlaran/meshpart/wpool"
)

// InitialMapping builds the first k-way solution (spec.md §4.G phase 1):
// walk the architecture's domain-bipart tree breadth-first, starting
// from every vertex mapped to m's single domain-0 slot. For each
// non-leaf split D -> (D0, D1), induce the subgraph currently mapped to
// D, bipartition it with bipart.Multilevel targeted at the w(D0):w(D1)
// load ratio, and write the result back through the two slots
// mapping.Split returns (D's own slot, now holding D0, and a new slot
// for D1). A domain that cannot split (a leaf) stops
// recursion on that branch.
// Complexity: O(sum over splits of (n_i + m_i) log n_i).
func InitialMapping(ctx *wpool.Context, m *mapping.Mapping, cfg config.Values) error {
	queue := []int{0}
	for len(queue) > 0 {
		slot := queue[0]
		queue = queue[1:]

		d := m.Domain(slot)
		d0, d1, ok := m.Arch().DomainBipart(d)
		if !ok {
			continue // leaf: recursion stops on this branch
		}

		part := currentPartVector(m)
		sub, numberInParent, err := m.Graph().InduceByPart(part, int32(slot))
		if err != nil {
			return errs.Wrap(pkgName, "InitialMapping", err)
		}
		if sub.VertexCount() == 0 {
			continue
		}

		w0 := m.Arch().DomainWeight(d0)
		w1 := m.Arch().DomainWeight(d1)
		dist := m.Arch().DomainDistance(d0, d1)
		ag := bipart.Multilevel(ctx, sub, cfg, w0, w1, dist)

		newI, newJ, err := m.Split(slot)
		if err != nil {
			return errs.Wrap(pkgName, "InitialMapping", err)
		}
		for subV, p := range ag.Part {
			parentV := numberInParent[subV]
			if p == 0 {
				m.SetPart(int(parentV), int32(newI))
			} else {
				m.SetPart(int(parentV), int32(newJ))
			}
		}
		queue = append(queue, newI, newJ)
	}
	return nil
}

// currentPartVector materializes m's part[] as a 0-based slice matching
// graph.InduceByPart's expected shape.
func currentPartVector(m *mapping.Mapping) []int32 {
	g := m.Graph()
	base := g.Base()
	n := g.VertexCount()
	part := make([]int32, n)
	for v := 0; v < n; v++ {
		part[v] = m.Part(v + base)
	}
	return part
}
