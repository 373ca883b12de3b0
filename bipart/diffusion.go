package bipart

import "math"

// Diffusion runs a 2-way specialization of the liquid-diffusion dynamics
// of spec.md §4.G.1: every vertex owns two barrels, one per part. A
// vertex currently holding part p starts with its full load in barrel p
// (every vertex acts as its own anchor, since the 2-way engine has no
// band-graph frontier to anchor from — that concept applies to kway's
// k-way refinement instead). Each step: barrels leak a fixed fraction,
// then each edge moves liquid from the fuller barrel to the emptier one
// per domain, conductance proportional to edge load and inversely
// proportional to 1+ag.DomainDistance. After exactly maxSteps steps
// (there is no early convergence exit), each vertex's part
// follows its fuller barrel, the currently-held part winning ties so
// idle vertices don't churn. A NaN barrel (floating-point overflow on a
// degenerate graph) aborts the pass, leaving ag unchanged.
// Complexity: O(maxSteps * (n + m)).
func Diffusion(ag *ActiveGraph, maxSteps int) {
	const leakRate = 0.15
	const diffuseRate = 0.5

	g := ag.G
	base := g.Base()
	n := len(ag.Part)
	if n == 0 {
		return
	}

	barrels := make([][2]float64, n)
	for v := 0; v < n; v++ {
		barrels[v][ag.Part[v]] = float64(g.VertLoad(v + base))
	}
	conductance := 1.0 / float64(1+ag.DomainDistance)

	next := make([][2]float64, n)
	for step := 0; step < maxSteps; step++ {
		for v := 0; v < n; v++ {
			next[v] = barrels[v]
			next[v][0] *= 1 - leakRate
			next[v][1] *= 1 - leakRate
		}
		for v := 0; v < n; v++ {
			g.Neighbors(v+base, func(w int, load int32) {
				wi := w - base
				if wi <= v {
					return // visit each undirected edge once
				}
				c := conductance * float64(load) * diffuseRate
				for d := 0; d < 2; d++ {
					delta := c * (barrels[v][d] - barrels[wi][d])
					next[v][d] -= delta
					next[wi][d] += delta
				}
			})
		}
		barrels, next = next, barrels

		for v := 0; v < n; v++ {
			if math.IsNaN(barrels[v][0]) || math.IsNaN(barrels[v][1]) {
				return // abort gracefully; ag is untouched so far
			}
		}
	}

	for v := 0; v < n; v++ {
		switch {
		case barrels[v][0] > barrels[v][1]:
			ag.Part[v] = 0
		case barrels[v][1] > barrels[v][0]:
			ag.Part[v] = 1
		default:
			// tie: keep the currently-held part, favouring no movement.
		}
	}
	ag.Recompute()
}
