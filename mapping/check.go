package mapping

import "github.com/katalvlaran/meshpart/errs"

// Check validates every invariant spec.md §4.D lists: every live part[v]
// indexes an active domain slot; every active domain is included in the
// architecture's root (first) domain; fixed-vertex constraints, if any,
// are honoured.
// Complexity: O(n).
func (m *Mapping) Check() error {
	root := m.a.FirstDomain()
	for i := 0; i < m.domainLiveCount; i++ {
		if !m.a.DomainInclusion(root, m.domainLive[i]) {
			return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
		}
	}
	for v, p := range m.part {
		if p == unmapped {
			if !m.allowIncomplete {
				return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
			}
			continue
		}
		if p < 0 || int(p) >= m.domainLiveCount {
			return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
		}
		if m.fixed != nil {
			if m.a.DomainNumber(m.domainLive[p]) != m.fixed[v] {
				return errs.Wrap(pkgName, "Check", errs.ErrInconsistentState)
			}
		}
	}
	return nil
}
