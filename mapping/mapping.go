package mapping

import (
	"github.com/katalvlaran/meshpart/arch"
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
)

const pkgName = "mapping"

// unmapped marks a vertex with no live domain assigned (allowed only
// when AllowIncomplete is set).
const unmapped int32 = -1

const domainLiveFloor = 16 // Open Question resolution: growth floor

// Mapping is the live association between g's vertices and a's domains
// (spec.md §3 "Mapping").
type Mapping struct {
	g *graph.Graph
	a *arch.Arch

	part []int32 // part[v-base] in {-1} U [0, domainLiveCount)

	domainLive      []arch.Domain
	domainLiveCount int

	fixed           []int32 // nil, or fixed[v-base] == required domain_number
	allowIncomplete bool
}

// Option configures New.
type Option func(*Mapping)

// WithRootDomain seeds domain_live[0] with an explicit domain instead of
// the architecture's own FirstDomain().
func WithRootDomain(d arch.Domain) Option {
	return func(m *Mapping) { m.domainLive[0] = d }
}

// WithFixedVertices attaches a fixed-vertex constraint array: fixed[i]
// is the required domain_number for graph vertex g.Base()+i. Panics if
// the length does not match the graph's vertex count.
func WithFixedVertices(fixed []int32) Option {
	return func(m *Mapping) {
		if len(fixed) != m.g.VertexCount() {
			panic("mapping: WithFixedVertices(length mismatch)")
		}
		m.fixed = append([]int32(nil), fixed...)
	}
}

// WithAllowIncomplete permits part[v] == -1 (unmapped) vertices to
// survive Check; default is false (every vertex must be mapped).
func WithAllowIncomplete(allow bool) Option {
	return func(m *Mapping) { m.allowIncomplete = allow }
}

// New initializes a Mapping over g targeting a (spec.md's `init`): every
// vertex starts in domain 0, and domain_live[0] seeds to a's FirstDomain
// unless WithRootDomain overrides it.
// Complexity: O(n).
func New(g *graph.Graph, a *arch.Arch, opts ...Option) (*Mapping, error) {
	if g == nil || a == nil {
		return nil, errs.Wrap(pkgName, "New", errs.ErrInvalidArgument)
	}
	m := &Mapping{
		g:          g,
		a:          a,
		part:       make([]int32, g.VertexCount()),
		domainLive: make([]arch.Domain, domainLiveFloor),
	}
	m.domainLive[0] = a.FirstDomain()
	m.domainLiveCount = 1
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Graph returns the mapped graph.
func (m *Mapping) Graph() *graph.Graph { return m.g }

// Arch returns the target architecture.
func (m *Mapping) Arch() *arch.Arch { return m.a }

// DomainLiveCount returns the number of currently live domain slots.
func (m *Mapping) DomainLiveCount() int { return m.domainLiveCount }

// Domain returns the live domain at slot i.
func (m *Mapping) Domain(i int) arch.Domain { return m.domainLive[i] }

// Part returns the domain slot graph vertex v (base-shifted) is mapped
// to, or -1 if unmapped.
func (m *Mapping) Part(v int) int32 { return m.part[v-m.g.Base()] }

// SetPart assigns graph vertex v (base-shifted) to domain slot i (or
// -1 to unmap it). Callers, not Split/Merge, own updating part[] for
// individual vertices (spec.md §4.D: "part[v] entries are NOT touched —
// callers update them").
func (m *Mapping) SetPart(v int, i int32) { m.part[v-m.g.Base()] = i }

// growDomainLive grows domain_live's capacity by 1.5x, with
// a floor of domainLiveFloor entries — the Open Question resolution
// recorded in DESIGN.md.
func (m *Mapping) growDomainLive() {
	newCap := len(m.domainLive) + len(m.domainLive)/2
	if newCap < domainLiveFloor {
		newCap = domainLiveFloor
	}
	grown := make([]arch.Domain, newCap)
	copy(grown, m.domainLive)
	m.domainLive = grown
}

// Split bipartitions domain_live[i] into two domains via the
// architecture's own DomainBipart, replacing slot i with the first half
// and installing the second half in a freshly allocated slot j.
// part[] is left untouched. Returns ErrInvalidArgument if i is out of
// range or domain_live[i] is already a leaf.
// Complexity: O(1) amortized.
func (m *Mapping) Split(i int) (newI, newJ int, err error) {
	if i < 0 || i >= m.domainLiveCount {
		return 0, 0, errs.Wrap(pkgName, "Split", errs.ErrInvalidArgument)
	}
	d0, d1, ok := m.a.DomainBipart(m.domainLive[i])
	if !ok {
		return 0, 0, errs.Wrap(pkgName, "Split", errs.ErrInvalidArgument)
	}
	if m.domainLiveCount == len(m.domainLive) {
		m.growDomainLive()
	}
	j := m.domainLiveCount
	m.domainLiveCount++
	m.domainLive[i] = d0
	m.domainLive[j] = d1
	return i, j, nil
}

// Merge removes domain slot j, reassigning every part[v]==j to i, and
// compacts the domain_live table by moving the last live slot into j's
// place (spec.md §4.D `merge`). Returns ErrInvalidArgument if i or j is
// out of range, or i==j.
// Complexity: O(n + 1).
func (m *Mapping) Merge(i, j int) error {
	if i == j || i < 0 || j < 0 || i >= m.domainLiveCount || j >= m.domainLiveCount {
		return errs.Wrap(pkgName, "Merge", errs.ErrInvalidArgument)
	}
	for v := range m.part {
		if m.part[v] == int32(j) {
			m.part[v] = int32(i)
		}
	}
	last := m.domainLiveCount - 1
	if j != last {
		m.domainLive[j] = m.domainLive[last]
		for v := range m.part {
			if m.part[v] == int32(last) {
				m.part[v] = int32(j)
			}
		}
	}
	m.domainLiveCount--
	return nil
}
