package coarsen

import "github.com/katalvlaran/meshpart/graph"

// Contract builds the coarse graph from g and a matching mate (spec.md
// §4.E.2): coarse vertex c = {v, mate[v]} for every fine v with v <=
// mate[v] (each pair, and every singleton, counted exactly once), in
// ascending v order. fineToCoarse[v] gives the coarse vertex each fine
// vertex contracted into, for prolongation after refinement.
//
// The coarse graph is always built in the compact CSR layout: this
// package never needs the non-compact layout's parallel-construction
// advantage (spec.md §4.E.2's "allowing parallel construction without a
// prior prefix-scan of degrees") because Contract performs its own
// single pass per coarse vertex using the open-addressing edgeAccum
// table, which already avoids any global prefix-scan.
// Complexity: O(n + m).
func Contract(g *graph.Graph, mate []int32) (coarse *graph.Graph, fineToCoarse []int32) {
	base := g.Base()
	n := g.VertexCount()
	fineToCoarse = make([]int32, n)

	var numCoarse int32
	for v := 0; v < n; v++ {
		if int(mate[v]) >= v {
			fineToCoarse[v] = numCoarse
			fineToCoarse[mate[v]] = numCoarse
			numCoarse++
		}
	}

	vertStart := make([]int32, numCoarse+1)
	vertLoad := make([]int32, numCoarse)
	var edgeTarget []int32
	var edgeLoad []int32

	table := newEdgeAccum(int(g.MaxDegree()) * 2)
	c := int32(0)
	for v := 0; v < n; v++ {
		if int(mate[v]) < v {
			continue // already folded into an earlier coarse vertex
		}
		members := [2]int{v, int(mate[v])}
		numMembers := 1
		if int(mate[v]) != v {
			numMembers = 2
		}
		var load int32
		for i := 0; i < numMembers; i++ {
			load += g.VertLoad(members[i] + base)
		}
		vertLoad[c] = load

		table.Reset()
		for i := 0; i < numMembers; i++ {
			g.Neighbors(members[i]+base, func(w int, ew int32) {
				cw := fineToCoarse[w-base]
				if cw == c {
					return // internal edge between the two contracted members
				}
				table.Add(cw, ew)
			})
		}
		keys, loads := table.Entries()
		for i, k := range keys {
			edgeTarget = append(edgeTarget, k)
			edgeLoad = append(edgeLoad, int32(loads[i]))
		}
		vertStart[c+1] = vertStart[c] + int32(len(keys))
		c++
	}

	coarse = graph.NewFromArrays(0, vertStart, nil, edgeTarget, vertLoad, edgeLoad)
	return coarse, fineToCoarse
}
