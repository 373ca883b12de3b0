package arch

import "math/rand"

// MatchState is the iteration cursor used while coarsening the
// architecture itself: terminals are visited pairwise (each pair forming
// one coarse domain) in the order produced by MatchInit, mirroring the
// coarsener's fine-graph matching contract (4.E.1) but over terminals
// instead of graph vertices.
type MatchState struct {
	arch  *Arch
	order []int32
	pos   int
}

// TerminalCount returns the number of leaf terminals a match walks over:
// size for every variant except Tleaf (leafCount) and Sub (len of the
// retained set).
func (a *Arch) TerminalCount() int32 {
	switch a.kind {
	case KindTleaf:
		return a.leafCount
	case KindSub:
		return int32(len(a.retainedTerminals))
	default:
		return a.size
	}
}

// MatchInit begins a coarsening pass over a's terminals. When
// deterministic is true the visiting order is the identity permutation
// (0,1,2,...), so that siblings under the architecture's own recursive
// bipartition (consecutive terminal numbers) are paired together,
// matching spec.md's "two-bit function_variant" sequential path; when
// false, the order is shuffled with rng, mirroring the fine-graph
// matching contract's "visited in a randomised order" (4.E.1).
// Complexity: O(n).
func (a *Arch) MatchInit(deterministic bool, rng *rand.Rand) *MatchState {
	n := a.TerminalCount()
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	if !deterministic {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return &MatchState{arch: a, order: order}
}

// MatchNext returns the next coarsening pair: two terminal ids to be
// merged into one coarse domain, or a single id with paired=false when
// an odd terminal remains unmatched this pass (carried over exactly as
// the fine-graph coarsener greedily pairs leftover singletons from the
// tail of its queue, 4.E.1). ok is false once every terminal has been
// consumed.
func (s *MatchState) MatchNext() (t0, t1 int32, paired, ok bool) {
	if s.pos >= len(s.order) {
		return 0, 0, false, false
	}
	t0 = s.order[s.pos]
	s.pos++
	if s.pos >= len(s.order) {
		return t0, 0, false, true
	}
	t1 = s.order[s.pos]
	s.pos++
	return t0, t1, true, true
}

// MatchExit releases the cursor. Kept as an explicit step, mirroring the
// teacher's init/exit pairing convention, even though the Go garbage
// collector makes it a no-op here.
func (s *MatchState) MatchExit() {
	s.order = nil
}
