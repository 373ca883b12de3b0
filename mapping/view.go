package mapping

// View summarizes a Mapping's current state (spec.md §4.D `view`).
type View struct {
	TargetDomainWeights []int64 // target_domain_weights[i], indexed by live slot
	RealisedPartLoads   []int64 // realised part loads, indexed by live slot
	EdgeCut             int64   // count of edges whose endpoints map to different domains
	CommLoad            int64   // Σ over cut edges: edge_load(e) * domain_distance(...), counted once
}

// View computes the Mapping's summary (spec.md §4.D), and is the basis
// for load_delta[i] = realised_load[i] - target_load[i] (§4.G) used by
// the k-way mapper's diffusion refiner.
// Complexity: O(n + m).
func (m *Mapping) View() View {
	v := View{
		TargetDomainWeights: make([]int64, m.domainLiveCount),
		RealisedPartLoads:   make([]int64, m.domainLiveCount),
	}
	for i := 0; i < m.domainLiveCount; i++ {
		v.TargetDomainWeights[i] = m.a.DomainWeight(m.domainLive[i])
	}
	base := m.g.Base()
	for i := range m.part {
		p := m.part[i]
		if p < 0 {
			continue
		}
		v.RealisedPartLoads[p] += int64(m.g.VertLoad(i + base))
	}
	for u := range m.part {
		pu := m.part[u]
		m.g.Neighbors(u+base, func(w int, load int32) {
			if w <= u+base {
				return // count each undirected edge once, from the lower endpoint
			}
			pw := m.part[w-base]
			if pu == pw {
				return
			}
			if pu < 0 || pw < 0 {
				return // an unmapped endpoint contributes to neither cut nor comm_load
			}
			v.EdgeCut++
			v.CommLoad += int64(load) * m.a.DomainDistance(m.domainLive[pu], m.domainLive[pw])
		})
	}
	return v
}
