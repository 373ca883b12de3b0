package kway

import (
	"math"

	"github.com/katalvlaran/meshpart/mapping"
)

// RunDiffusion runs the k-way liquid-diffusion dynamics of spec.md
// §4.G.1 on band, writing the resulting part[] back into m for every
// non-anchor band vertex (non-band vertices retain their part, per
// phase 2 step 3). Anchor vertices pour a constant stream into their
// own domain's barrel each step; every vertex's barrels leak a fixed
// amount per step equal to its own load, the leak stopping at zero (the
// diffusion term applied afterwards is not clamped, so a barrel can end
// a step below zero); edges diffuse liquid from the
// fuller barrel to the emptier one with conductance proportional to
// edge load and inversely proportional to 1+architecture-distance
// between the liquid's domain and the domain the receiving vertex held
// when this pass started (a concrete reading of "distant domains pass
// less liquid" — both endpoints of an edge hold one fixed domain each,
// not a domain-pair, so the distance is taken relative to the liquid's
// own target domain); a migration bias adds a constant flow into each
// vertex's currently-held-domain barrel. Iteration is double-buffered;
// a NaN in any barrel aborts the pass, leaving m unchanged.
// Complexity: O(maxSteps * (n + m) * domainCount).
func RunDiffusion(s *State, band *Band, maxSteps int) {
	m := s.M
	a := m.Arch()
	g := band.G
	n := g.VertexCount()
	domainCount := m.DomainLiveCount()
	if n == 0 || domainCount == 0 {
		return
	}

	curDomain := make([]int32, n)
	for v := 0; v < band.NonAnchorCount; v++ {
		p := m.Part(int(band.BandToParent[v]))
		if p < 0 {
			p = 0 // unmapped vertex: fall back to domain 0 rather than fault
		}
		curDomain[v] = p
	}
	for k, slot := range band.AnchorDomainSlot {
		curDomain[band.NonAnchorCount+k] = slot
	}

	barrels := make([][]float64, n)
	for v := 0; v < n; v++ {
		barrels[v] = make([]float64, domainCount)
		if curDomain[v] >= 0 {
			barrels[v][curDomain[v]] = float64(g.VertLoad(v))
		}
	}

	pourRate := make([]float64, domainCount)
	for k, slot := range band.AnchorDomainSlot {
		anchorV := band.NonAnchorCount + k
		deg := g.Degree(anchorV)
		if deg == 0 {
			continue
		}
		isolatedLoad := float64(g.VertLoad(anchorV))
		targetLoad := float64(s.LoadTarget[slot])
		pourRate[slot] = (targetLoad - isolatedLoad) / float64(deg)
	}

	next := make([][]float64, n)
	for v := range next {
		next[v] = make([]float64, domainCount)
	}

	for step := 0; step < maxSteps; step++ {
		for v := 0; v < n; v++ {
			leak := float64(g.VertLoad(v))
			for d := 0; d < domainCount; d++ {
				lvl := barrels[v][d] - leak
				if lvl < 0 {
					lvl = 0
				}
				next[v][d] = lvl
			}
			if band.IsAnchor(v) {
				slot := curDomain[v]
				next[v][slot] += pourRate[slot]
			} else {
				next[v][curDomain[v]] += s.CoeffMigration * float64(g.VertLoad(v))
			}
		}
		for v := 0; v < n; v++ {
			g.Neighbors(v, func(w int, load int32) {
				if w <= v {
					return
				}
				for d := 0; d < domainCount; d++ {
					recv := curDomain[w]
					if barrels[v][d] < barrels[w][d] {
						recv = curDomain[v]
					}
					dist := a.DomainDistance(m.Domain(d), m.Domain(recv))
					cond := s.CoeffRegular * float64(load) / float64(1+dist)
					delta := cond * (barrels[v][d] - barrels[w][d])
					next[v][d] -= delta
					next[w][d] += delta
				}
			})
		}
		barrels, next = next, barrels

		for v := 0; v < n; v++ {
			for d := 0; d < domainCount; d++ {
				if math.IsNaN(barrels[v][d]) {
					return // abort gracefully; m has not been touched yet
				}
			}
		}
	}

	writeBack(m, band, curDomain, barrels, domainCount)
}

// writeBack assigns each non-anchor band vertex the domain of its
// fullest barrel, the vertex's currently-held domain breaking ties so
// idle vertices don't churn.
func writeBack(m *mapping.Mapping, band *Band, curDomain []int32, barrels [][]float64, domainCount int) {
	for v := 0; v < band.NonAnchorCount; v++ {
		best := curDomain[v]
		if best < 0 {
			best = 0
		}
		bestAmt := barrels[v][best]
		for d := 0; d < domainCount; d++ {
			if int32(d) == best {
				continue
			}
			if barrels[v][d] > bestAmt {
				bestAmt, best = barrels[v][d], int32(d)
			}
		}
		m.SetPart(int(band.BandToParent[v]), best)
	}
}
