package mapping

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/meshpart/errs"
)

// Save writes m's current part assignment in the spec.md §6 mapping/
// ordering text format: an entry count followed by one "vertex_index
// part" pair per line, one line per vertex of the underlying graph.
// Complexity: O(V).
func Save(w io.Writer, m *Mapping) error {
	bw := bufio.NewWriter(w)
	n := m.g.VertexCount()
	base := m.g.Base()
	fmt.Fprintln(bw, n)
	for v := 0; v < n; v++ {
		fmt.Fprintln(bw, v+base, m.part[v])
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(pkgName, "Save", err)
	}
	return nil
}

// Load reads a part assignment in the spec.md §6 text format into an
// already-constructed m (its domain_live table — built by prior Split
// calls — is left untouched; Load only overwrites part[]). Call
// m.Check() afterwards to validate the result against m's architecture.
// Complexity: O(V).
func Load(r io.Reader, m *Mapping) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	sc.Split(bufio.ScanWords)

	next := func() (int64, bool) {
		if !sc.Scan() {
			return 0, false
		}
		var v int64
		if _, err := fmt.Sscan(sc.Text(), &v); err != nil {
			return 0, false
		}
		return v, true
	}

	count, ok := next()
	if !ok {
		return errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	for i := int64(0); i < count; i++ {
		vi, ok1 := next()
		pi, ok2 := next()
		if !ok1 || !ok2 {
			return errs.Wrap(pkgName, "Load", errs.ErrIoError)
		}
		v := int(vi)
		if v < m.g.Base() || v >= m.g.Base()+m.g.VertexCount() {
			return errs.Wrap(pkgName, "Load", errs.ErrIoError)
		}
		if pi != int64(unmapped) && (pi < 0 || int(pi) >= m.domainLiveCount) {
			return errs.Wrap(pkgName, "Load", errs.ErrIoError)
		}
		m.SetPart(v, int32(pi))
	}
	return nil
}
