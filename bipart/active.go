package bipart

import "github.com/katalvlaran/meshpart/graph"

// ActiveGraph is the 2-way working state every refiner reads and
// mutates in place (spec.md §4.F's "bipartition active graph"): the
// underlying plain graph plus a 0/1 part assignment and the scalar/
// frontier bookkeeping that moves must keep consistent.
type ActiveGraph struct {
	G *graph.Graph

	Part     []int8 // 0 or 1, indexed by 0-based (base-relative) vertex
	Frontier []int32

	Load0Avg   int64 // target load for part 0
	Load0Delta int64 // realised part-0 load minus Load0Avg
	Size0      int32
	CommLoad   int64 // sum of edge loads crossing part 0 / part 1

	// ExtGain optionally carries, per vertex, a fixed external-gain
	// contribution from parts outside this bipartition (spec.md §4.B's
	// "veext"); nil unless a caller sets it. No caller in this module
	// sets it, and the refiners do not read it.
	ExtGain []int64

	DomainDistance int64 // architecture distance between the two target domains
	FixedLoad      [2]int64
}

// New builds an ActiveGraph over g, starting from the supplied initial
// part vector (copied, never aliased, so a refiner can never mutate a
// caller's slice out from under it), targeted at a w0:w1 load ratio
// between part 0 and part 1.
func New(g *graph.Graph, initial []int8, w0, w1 int64) *ActiveGraph {
	part := make([]int8, len(initial))
	copy(part, initial)

	ag := &ActiveGraph{G: g, Part: part}
	total := g.VertLoadTotal()
	if w0+w1 > 0 {
		ag.Load0Avg = total * w0 / (w0 + w1)
	} else {
		ag.Load0Avg = total / 2
	}
	ag.Recompute()
	return ag
}

// AllPart returns an n-vertex part vector uniformly set to p, a
// convenience starting point for refiners (Greedy) that overwrite it
// themselves.
func AllPart(n int, p int8) []int8 {
	part := make([]int8, n)
	for i := range part {
		part[i] = p
	}
	return part
}

// Recompute rebuilds Size0, CommLoad, Load0Delta and Frontier from
// scratch off the current Part assignment. O(n + m); called after
// bulk part changes (construction, prolongation) where an incremental
// update would cost as much as starting over.
func (ag *ActiveGraph) Recompute() {
	g := ag.G
	base := g.Base()
	n := len(ag.Part)

	var size0 int32
	var load0 int64
	var commLoad int64
	onFrontier := make([]bool, n)

	for v := 0; v < n; v++ {
		if ag.Part[v] == 0 {
			size0++
			load0 += int64(g.VertLoad(v + base))
		}
		g.Neighbors(v+base, func(w int, load int32) {
			wi := w - base
			if ag.Part[v] == ag.Part[wi] {
				return
			}
			onFrontier[v] = true
			if wi > v {
				commLoad += int64(load) // count each undirected edge once
			}
		})
	}

	frontier := ag.Frontier[:0]
	for v := 0; v < n; v++ {
		if onFrontier[v] {
			frontier = append(frontier, int32(v))
		}
	}

	ag.Size0 = size0
	ag.CommLoad = commLoad
	ag.Load0Delta = load0 - ag.Load0Avg
	ag.Frontier = frontier
}

// gain returns the change in CommLoad that would result from flipping
// v to the opposite part: positive means flipping reduces the cut.
func gain(ag *ActiveGraph, v int) int64 {
	g := ag.G
	base := g.Base()
	var toOpposite, toSame int64
	g.Neighbors(v+base, func(w int, load int32) {
		wi := w - base
		if ag.Part[wi] != ag.Part[v] {
			toOpposite += int64(load)
		} else if wi != v {
			toSame += int64(load)
		}
	})
	return toOpposite - toSame
}

// applyMove flips v's part and incrementally updates CommLoad/Size0/
// Load0Delta (CommLoad -= gain(v), an exact identity: every edge to the
// opposite part becomes internal and every edge to the same part
// becomes a crossing edge). Frontier is left stale; callers recompute
// it once after a batch of moves via Recompute.
func (ag *ActiveGraph) applyMove(v int) {
	g := gain(ag, v)
	ag.CommLoad -= g
	load := int64(ag.G.VertLoad(v + ag.G.Base()))
	if ag.Part[v] == 0 {
		ag.Part[v] = 1
		ag.Size0--
		ag.Load0Delta -= load
	} else {
		ag.Part[v] = 0
		ag.Size0++
		ag.Load0Delta += load
	}
}

// snapshot captures enough of ActiveGraph to restore it exactly.
type snapshot struct {
	part       []int8
	commLoad   int64
	load0Delta int64
	size0      int32
}

func snapshotOf(ag *ActiveGraph) snapshot {
	part := make([]int8, len(ag.Part))
	copy(part, ag.Part)
	return snapshot{part: part, commLoad: ag.CommLoad, load0Delta: ag.Load0Delta, size0: ag.Size0}
}

func (ag *ActiveGraph) restore(s snapshot) {
	copy(ag.Part, s.part)
	ag.CommLoad = s.commLoad
	ag.Load0Delta = s.load0Delta
	ag.Size0 = s.size0
}
