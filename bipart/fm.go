package bipart

import "container/heap"

// gainItem is one vertex's entry in the FM bucket. Grounded on
// dijkstra.go's nodeItem/nodePQ: a classic container/heap wrapper using
// the same lazy-decrease-key discipline — a stale entry (its stored
// gain no longer matches the vertex's live gain) is detected on pop and
// re-pushed instead of fixed in place, rather than a textbook FM
// doubly-linked bucket array.
type gainItem struct {
	v     int32
	gain  int64
	index int
}

type gainHeap []*gainItem

func (h gainHeap) Len() int { return len(h) }

// Less orders by descending gain: the vertex whose move would shrink
// the cut most pops first.
func (h gainHeap) Less(i, j int) bool { return h[i].gain > h[j].gain }

func (h gainHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *gainHeap) Push(x interface{}) {
	item := x.(*gainItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *gainHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// FM runs up to maxPasses Fiduccia–Mattheyses passes over ag (spec.md
// §4.F): each pass accepts negative-gain moves until every vertex has
// moved once, tracking the best (lowest CommLoad) state seen along the
// walk and restoring it at the end. A pass that makes no move at all
// stops the loop early.
// Complexity: O(passes * (n + m) log n).
func FM(ag *ActiveGraph, maxPasses int) {
	for pass := 0; pass < maxPasses; pass++ {
		if !fmOnePass(ag) {
			return
		}
	}
}

func fmOnePass(ag *ActiveGraph) bool {
	n := len(ag.Part)
	if n == 0 {
		return false
	}
	locked := make([]bool, n)

	h := &gainHeap{}
	heap.Init(h)
	for v := 0; v < n; v++ {
		heap.Push(h, &gainItem{v: int32(v), gain: gain(ag, v)})
	}

	best := snapshotOf(ag)
	bestCommLoad := ag.CommLoad
	moved := false

	for h.Len() > 0 {
		it := heap.Pop(h).(*gainItem)
		v := int(it.v)
		if locked[v] {
			continue
		}
		live := gain(ag, v)
		if live != it.gain {
			it.gain = live
			heap.Push(h, it)
			continue
		}

		ag.applyMove(v)
		locked[v] = true
		moved = true

		if ag.CommLoad < bestCommLoad ||
			(ag.CommLoad == bestCommLoad && abs64(ag.Load0Delta) < abs64(best.load0Delta)) {
			bestCommLoad = ag.CommLoad
			best = snapshotOf(ag)
		}
	}

	ag.restore(best)
	ag.Recompute()
	return moved
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
