package order

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/meshpart/errs"
)

// Save writes r's inverse permutation in the spec.md §6 mapping/
// ordering text format: an entry count followed by one "vertex_index
// rank" pair per line, indexed from base.
// Complexity: O(V).
func Save(w io.Writer, r *Result, base int) error {
	bw := bufio.NewWriter(w)
	n := len(r.InversePermutation)
	fmt.Fprintln(bw, n)
	for v := 0; v < n; v++ {
		fmt.Fprintln(bw, v+base, r.InversePermutation[v])
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(pkgName, "Save", err)
	}
	return nil
}

// LoadInversePermutation reads the spec.md §6 text format back into a
// base-relative inverse-permutation slice; it does not recompute Perm,
// ColumnCounts, or Tree (those require re-running Order). Callers that
// only need the permutation for Testable Property 10's check, or for
// feeding a direct solver, can use this without re-ordering.
// Complexity: O(V).
func LoadInversePermutation(r io.Reader, base int) ([]int32, error) {
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
	if !ok || count < 0 {
		return nil, errs.Wrap(pkgName, "LoadInversePermutation", errs.ErrIoError)
	}
	rank := make([]int32, count)
	seen := make([]bool, count)
	for i := int64(0); i < count; i++ {
		vi, ok1 := next()
		ri, ok2 := next()
		if !ok1 || !ok2 {
			return nil, errs.Wrap(pkgName, "LoadInversePermutation", errs.ErrIoError)
		}
		idx := vi - int64(base)
		if idx < 0 || idx >= count || ri < 0 || ri >= count || seen[idx] {
			return nil, errs.Wrap(pkgName, "LoadInversePermutation", errs.ErrIoError)
		}
		seen[idx] = true
		rank[idx] = int32(ri)
	}
	return rank, nil
}
