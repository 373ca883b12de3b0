package bipart

// Exactify restores an exact load-0 balance after a refiner leaves a
// residual Load0Delta (spec.md §4.F's post-pass): it repeatedly walks
// the frontier for a single-vertex move that strictly shrinks
// |Load0Delta| (a move may carry the delta past zero as long as its
// magnitude still drops), preferring the move with the
// highest gain among those that qualify, and stops once balanced or no
// qualifying move remains. A simplification of the spec's "swapping
// boundary pairs": a single move already restores balance whenever the
// frontier offers one of a fitting size, which in practice it usually
// does once FM has already equalised the two parts approximately.
// Complexity: O(passes * frontier size).
func Exactify(ag *ActiveGraph) {
	for pass := 0; pass < len(ag.Part); pass++ {
		if ag.Load0Delta == 0 {
			return
		}
		if exactifyStep(ag) {
			continue
		}
		return // no qualifying move left; residual imbalance is unavoidable here
	}
}

// exactifyStep tries one balancing move and applies the best candidate
// found, reporting whether it made progress.
func exactifyStep(ag *ActiveGraph) bool {
	g := ag.G
	base := g.Base()

	// overloaded == 0 means part 0 carries too much load and needs a
	// vertex moved out of it (0 -> 1); overloaded == 1 is the converse.
	var overloaded int8
	if ag.Load0Delta > 0 {
		overloaded = 0
	} else {
		overloaded = 1
	}

	best, bestGain := int32(-1), int64(minInt64)
	for _, v := range ag.Frontier {
		if ag.Part[v] != overloaded {
			continue
		}
		load := int64(g.VertLoad(int(v) + base))
		moved := ag.Load0Delta
		if overloaded == 0 {
			moved -= load
		} else {
			moved += load
		}
		if abs64(moved) >= abs64(ag.Load0Delta) {
			continue // this move doesn't bring balance closer
		}
		gv := gain(ag, int(v))
		if gv > bestGain {
			bestGain, best = gv, v
		}
	}
	if best < 0 {
		return false
	}
	ag.applyMove(int(best))
	ag.Recompute()
	return true
}

const minInt64 = -1 << 63
