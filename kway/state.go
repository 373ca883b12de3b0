package kway

import "github.com/katalvlaran/meshpart/mapping"

// State is the k-way active-graph bookkeeping layered on top of a
// mapping.Mapping (spec.md §4.G's "k-way active graph"): the current
// frontier, per-domain load target/delta, aggregate communication load,
// the mapping's original (root) domain number, and the migration-cost
// coefficients the diffusion refiner's bias term reads.
type State struct {
	M *mapping.Mapping

	Frontier   []int32
	LoadTarget []int64
	LoadDelta  []int64 // realised - target, indexed by live domain slot
	CommLoad   int64

	RootDomain int32

	// CoeffRegular scales ordinary edge diffusion; CoeffMigration scales
	// the constant bias added to a vertex's currently-held-domain barrel
	// (spec.md §4.G.1's "preference for staying in a previous part").
	CoeffRegular, CoeffMigration float64

	MigrationLoad []int32 // optional, nil unless the caller wants migration cost tracked
	Fixed         []int32 // optional, nil unless fixed-vertex constraints apply
}

// NewState wraps m with default migration coefficients and an initial
// Recompute.
func NewState(m *mapping.Mapping) *State {
	s := &State{M: m, CoeffRegular: 1.0, CoeffMigration: 0.1}
	s.RootDomain = m.Arch().DomainNumber(m.Arch().FirstDomain())
	s.Recompute()
	return s
}

// Recompute rebuilds Frontier, LoadTarget/LoadDelta and CommLoad from
// the mapping's current part[] assignment (spec.md §4.G phase 2 step 1
// "recompute the mapping's frontier").
// Complexity: O(n + m).
func (s *State) Recompute() {
	m := s.M
	g := m.Graph()
	base := g.Base()
	n := g.VertexCount()

	onFrontier := make([]bool, n)
	for v := 0; v < n; v++ {
		pv := m.Part(v + base)
		if pv < 0 {
			continue
		}
		g.Neighbors(v+base, func(w int, load int32) {
			pw := m.Part(w)
			if pw < 0 || pv == pw {
				return
			}
			onFrontier[v] = true
		})
	}

	frontier := s.Frontier[:0]
	for v := 0; v < n; v++ {
		if onFrontier[v] {
			frontier = append(frontier, int32(v+base))
		}
	}
	s.Frontier = frontier

	// CommLoad is Σ edge_load(e)·domain_distance(...) (spec.md §4.G.2), so
	// it is read from View rather than re-accumulated here unweighted.
	view := m.View()
	s.CommLoad = view.CommLoad
	s.LoadTarget = view.TargetDomainWeights
	s.LoadDelta = make([]int64, len(view.RealisedPartLoads))
	for i := range view.RealisedPartLoads {
		s.LoadDelta[i] = view.RealisedPartLoads[i] - view.TargetDomainWeights[i]
	}
}

// WithinImbalanceBound checks Testable Property 9: for every live
// domain i, |load_delta[i]| <= bound * load_target[i].
func (s *State) WithinImbalanceBound(bound float64) bool {
	for i, delta := range s.LoadDelta {
		if s.LoadTarget[i] == 0 {
			continue
		}
		allowed := bound * float64(s.LoadTarget[i])
		if float64(abs64(delta)) > allowed {
			return false
		}
	}
	return true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
