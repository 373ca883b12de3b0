package config

// Values holds the engine's tuning knobs (spec.md §6 "Configuration
// values"). Zero value is meaningless; always obtain one via Resolve.
type Values struct {
	// DeterministicMode forces every stochastic step (matching order,
	// tie-breaking) down the sequential, fixed-seed path: two runs with
	// identical inputs and configuration produce byte-identical output
	// (Testable Property 8).
	DeterministicMode bool

	// RandomFixedSeed, when true, seeds the root wpool.Context's RNG from
	// Seed rather than from an entropy source, independent of
	// DeterministicMode (a non-deterministic run can still want
	// reproducible seeding for its own random choices).
	RandomFixedSeed bool
	Seed            int64

	// CoarseningRatioThreshold is the largest coarse/fine vertex-count
	// ratio a coarsening level may leave; a level whose ratio exceeds it
	// signals ErrTransientFailure (4.E "Termination").
	CoarseningRatioThreshold float64

	// DiffusionPassCount bounds the k-way diffusion refinement's
	// iteration count per level (4.G "Phase 2").
	DiffusionPassCount int

	// FMPassCount bounds the Fiduccia-Mattheyses bucket-sweep count per
	// level of the 2-way bipartition engine (4.F).
	FMPassCount int

	// BandGraphLayerCount is the number of frontier layers (on each side
	// of the current cut) included when the k-way mapper extracts its
	// band graph for diffusion refinement (4.G).
	BandGraphLayerCount int

	// RecursionCutoffSize is the vertex count below which the multilevel
	// drivers (bipartition, nested dissection) stop recursing and solve
	// directly.
	RecursionCutoffSize int

	// ImbalanceBound is the default fractional tolerance |load_delta[i]|
	// / target_load[i] a k-way mapping run must respect (Testable
	// Property 9: 0.05 by default).
	ImbalanceBound float64
}

// defaultValues are the fixed constants spec.md §6 calls for.
func defaultValues() Values {
	return Values{
		DeterministicMode:        false,
		RandomFixedSeed:          false,
		Seed:                     0,
		CoarseningRatioThreshold: 0.80,
		DiffusionPassCount:       4,
		FMPassCount:              8,
		BandGraphLayerCount:      2,
		RecursionCutoffSize:      100,
		ImbalanceBound:           0.05,
	}
}

// Option mutates a copy of Values; applying N options costs O(N) time,
// O(1) extra space per option (spec.md §6: "a call sets exactly one
// option; values are copy-on-write").
type Option func(Values) Values

// Resolve folds opts over defaultValues(), returning the final immutable
// Values. Complexity: O(len(opts)).
func Resolve(opts ...Option) Values {
	v := defaultValues()
	for _, opt := range opts {
		v = opt(v)
	}
	return v
}

// WithDeterministicMode forces (or releases) the sequential, fixed-seed
// execution path.
func WithDeterministicMode(on bool) Option {
	return func(v Values) Values {
		v.DeterministicMode = on
		return v
	}
}

// WithRandomFixedSeed seeds the engine's root RNG from seed rather than
// an entropy source.
func WithRandomFixedSeed(seed int64) Option {
	return func(v Values) Values {
		v.RandomFixedSeed = true
		v.Seed = seed
		return v
	}
}

// WithCoarseningRatioThreshold overrides the per-level coarse/fine ratio
// ceiling. Panics if ratio is not in (0,1]: a threshold outside that range
// can never be met or is meaningless.
func WithCoarseningRatioThreshold(ratio float64) Option {
	if ratio <= 0 || ratio > 1 {
		panic("config: WithCoarseningRatioThreshold(out of (0,1])")
	}
	return func(v Values) Values {
		v.CoarseningRatioThreshold = ratio
		return v
	}
}

// WithDiffusionPassCount overrides the k-way diffusion iteration bound.
// Panics if n <= 0.
func WithDiffusionPassCount(n int) Option {
	if n <= 0 {
		panic("config: WithDiffusionPassCount(n<=0)")
	}
	return func(v Values) Values {
		v.DiffusionPassCount = n
		return v
	}
}

// WithFMPassCount overrides the Fiduccia-Mattheyses sweep bound. Panics
// if n <= 0.
func WithFMPassCount(n int) Option {
	if n <= 0 {
		panic("config: WithFMPassCount(n<=0)")
	}
	return func(v Values) Values {
		v.FMPassCount = n
		return v
	}
}

// WithBandGraphLayerCount overrides the k-way mapper's frontier width.
// Panics if n <= 0.
func WithBandGraphLayerCount(n int) Option {
	if n <= 0 {
		panic("config: WithBandGraphLayerCount(n<=0)")
	}
	return func(v Values) Values {
		v.BandGraphLayerCount = n
		return v
	}
}

// WithRecursionCutoffSize overrides the direct-solve vertex-count
// threshold. Panics if n <= 0.
func WithRecursionCutoffSize(n int) Option {
	if n <= 0 {
		panic("config: WithRecursionCutoffSize(n<=0)")
	}
	return func(v Values) Values {
		v.RecursionCutoffSize = n
		return v
	}
}

// WithImbalanceBound overrides the default k-way balance tolerance.
// Panics if bound is not in (0,1).
func WithImbalanceBound(bound float64) Option {
	if bound <= 0 || bound >= 1 {
		panic("config: WithImbalanceBound(out of (0,1))")
	}
	return func(v Values) Values {
		v.ImbalanceBound = bound
		return v
	}
}
