package coarsen

import (
	"sync/atomic"

	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
)

const unmated int32 = -1

// MatchOption configures Match.
type MatchOption func(*matchConfig)

type matchConfig struct {
	fixed   []int32 // fixed[v-base], only candidates sharing fixed[v] are eligible
	oldPart []int32 // old_part[v-base], only candidates sharing old_part[v] are eligible
}

// WithFixedVertices restricts matching to same-fixed-group candidates
// (spec.md §4.E.1's `fixed[w] == fixed[v]` clause).
func WithFixedVertices(fixed []int32) MatchOption {
	return func(c *matchConfig) { c.fixed = fixed }
}

// WithOldPart restricts matching to same-old-partition candidates
// (spec.md §4.E.1's `old_part[w] == old_part[v]` clause), used when
// re-coarsening a graph that already carries a previous k-way mapping.
func WithOldPart(oldPart []int32) MatchOption {
	return func(c *matchConfig) { c.oldPart = oldPart }
}

// Match computes a heavy-edge matching of g (spec.md §4.E.1): mate[i] is
// the local (0-based, base-relative) index of vertex i's matched
// partner, or i itself for an unmatched singleton. When ctx is nil or
// ctx.Deterministic() the sequential variant runs; otherwise the
// best-effort parallel variant runs, which always falls back to
// Match's own sequential pass for anything it could not resolve
// (spec.md: "on conflict, the vertex is deferred ... retried in a
// subsequent pass").
// Complexity: O(n + m) sequential; O((n+m)/workers) expected parallel,
// plus the sequential cost of whatever was deferred.
func Match(ctx *wpool.Context, g *graph.Graph, opts ...MatchOption) []int32 {
	cfg := &matchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	n := g.VertexCount()
	mate := make([]int32, n)
	for i := range mate {
		mate[i] = unmated
	}

	if ctx == nil || ctx.Deterministic() || ctx.Pool().Size() == 1 {
		order := identityOrMatchSeed(ctx, n)
		matchSequentialPass(g, cfg, mate, order)
	} else {
		matchParallelPass(ctx, g, cfg, mate)
	}
	pairIsolatedTail(g, mate)
	return mate
}

func identityOrMatchSeed(ctx *wpool.Context, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if ctx != nil && !ctx.Deterministic() {
		ctx.Rand().Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

// matchSequentialPass runs the matching contract over every vertex in
// order, skipping already-matched ones.
func matchSequentialPass(g *graph.Graph, cfg *matchConfig, mate []int32, order []int) {
	base := g.Base()
	for _, v := range order {
		if mate[v] != unmated {
			continue
		}
		w, found := bestCandidate(g, cfg, mate, base, v)
		if !found {
			continue // left unmatched; resolved by pairIsolatedTail
		}
		mate[v] = int32(w)
		mate[w] = int32(v)
	}
}

// bestCandidate implements spec.md §4.E.1's per-vertex candidate rule:
// among unmated neighbours sharing v's fixed/old_part group (when those
// are supplied), the one with the largest edge_load, ties broken by
// first-seen.
func bestCandidate(g *graph.Graph, cfg *matchConfig, mate []int32, base, v int) (w int, found bool) {
	bestLoad := int32(-1)
	g.Neighbors(v+base, func(nb int, load int32) {
		wi := nb - base
		if mate[wi] != unmated {
			return
		}
		if cfg.fixed != nil && cfg.fixed[wi] != cfg.fixed[v] {
			return
		}
		if cfg.oldPart != nil && cfg.oldPart[wi] != cfg.oldPart[v] {
			return
		}
		if load > bestLoad {
			bestLoad = load
			w, found = wi, true
		}
	})
	return w, found
}

// matchParallelPass partitions the vertex range across ctx's worker
// pool; each worker tries a random permutation of its slice, acquiring
// both endpoints' locks in ascending index order (deadlock avoidance).
// A vertex whose lock acquisition fails is deferred to a local queue;
// once Launch has returned, the calling goroutine finishes every deferred
// vertex with one more sequential pass, guaranteeing Match always
// terminates with a complete matching regardless of contention.
func matchParallelPass(ctx *wpool.Context, g *graph.Graph, cfg *matchConfig, mate []int32) {
	n := len(mate)
	locks := make([]int32, n)
	workers := ctx.Pool().Size()
	deferredByWorker := make([][]int, workers)

	ctx.Pool().Launch(func(d *wpool.Descriptor, shared interface{}) {
		lo, hi := sliceBounds(n, d.Index(), d.Size())
		perm := make([]int, hi-lo)
		for i := range perm {
			perm[i] = lo + i
		}
		ctx.Rand().Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		var local []int
		for _, v := range perm {
			if atomic.LoadInt32(&mate[v]) != unmated {
				continue
			}
			w, found := bestCandidateAtomic(g, cfg, mate, g.Base(), v)
			if !found {
				continue
			}
			a, b := v, w
			if a > b {
				a, b = b, a
			}
			if !atomic.CompareAndSwapInt32(&locks[a], 0, 1) {
				local = append(local, v)
				continue
			}
			if !atomic.CompareAndSwapInt32(&locks[b], 0, 1) {
				atomic.StoreInt32(&locks[a], 0)
				local = append(local, v)
				continue
			}
			if atomic.LoadInt32(&mate[v]) == unmated && atomic.LoadInt32(&mate[w]) == unmated {
				atomic.StoreInt32(&mate[v], int32(w))
				atomic.StoreInt32(&mate[w], int32(v))
			} else {
				local = append(local, v)
			}
			atomic.StoreInt32(&locks[b], 0)
			atomic.StoreInt32(&locks[a], 0)
		}
		deferredByWorker[d.Index()] = local
	}, nil)

	var deferred []int
	for _, local := range deferredByWorker {
		deferred = append(deferred, local...)
	}
	matchSequentialPass(g, cfg, mate, deferred)
}

func bestCandidateAtomic(g *graph.Graph, cfg *matchConfig, mate []int32, base, v int) (w int, found bool) {
	bestLoad := int32(-1)
	g.Neighbors(v+base, func(nb int, load int32) {
		wi := nb - base
		if atomic.LoadInt32(&mate[wi]) != unmated {
			return
		}
		if cfg.fixed != nil && cfg.fixed[wi] != cfg.fixed[v] {
			return
		}
		if cfg.oldPart != nil && cfg.oldPart[wi] != cfg.oldPart[v] {
			return
		}
		if load > bestLoad {
			bestLoad = load
			w, found = wi, true
		}
	})
	return w, found
}

func sliceBounds(n, idx, workers int) (lo, hi int) {
	chunk := (n + workers - 1) / workers
	lo = idx * chunk
	hi = lo + chunk
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// pairIsolatedTail greedily pairs degree-0 vertices from the tail of the
// unmatched queue (spec.md §4.E.1: "isolated vertices are left unmatched
// in the matching phase and are greedily paired afterward from the tail
// of the queue, to avoid producing a long chain of singletons"). Only
// vertices with no incident edges qualify: pairing two unmatched but
// non-isolated vertices would fabricate a (v, mate[v]) pair that is not
// an edge of g, violating the matching's invariant. Non-isolated
// leftovers (no eligible candidate under fixed/old_part constraints) stay
// self-singletons. An odd isolated leftover also remains a singleton.
func pairIsolatedTail(g *graph.Graph, mate []int32) {
	base := g.Base()
	var isolated []int32
	for v, m := range mate {
		if m == unmated && g.Degree(v+base) == 0 {
			isolated = append(isolated, int32(v))
		}
	}
	for i := len(isolated) - 1; i > 0; i -= 2 {
		v, w := isolated[i], isolated[i-1]
		mate[v] = w
		mate[w] = v
	}
	if len(isolated)%2 == 1 {
		v := isolated[0]
		mate[v] = v
	}
	for v, m := range mate {
		if m == unmated {
			mate[v] = int32(v)
		}
	}
}
