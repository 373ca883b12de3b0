package halograph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/meshpart/errs"
)

// Save writes g in the spec.md §6 halo graph text format: identical to
// the plain graph format, except a halo vertex's block uses a
// negative-degree sentinel (-degree) to flag "never ordered, only
// accounted for".
// Complexity: O(V + E).
func Save(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	flags := 0
	if g.edgeLoad != nil {
		flags |= 2
	}
	if g.vertLoad != nil {
		flags |= 1
	}
	fmt.Fprintln(bw, 0) // textVersion
	fmt.Fprintln(bw, g.VertexCount(), len(g.edgeTarget))
	fmt.Fprintln(bw, g.base, flags) // grammar identical to the plain graph header
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		if g.vertLoad != nil {
			fmt.Fprint(bw, g.vertLoad[v], " ")
		}
		s, e := g.vertStart[v], g.vertEnd[v]
		deg := e - s
		if int32(v) >= g.nonHaloCount {
			deg = -deg
		}
		fmt.Fprint(bw, deg)
		for i := s; i < e; i++ {
			fmt.Fprint(bw, " ", int(g.edgeTarget[i])+g.base)
			if g.edgeLoad != nil {
				fmt.Fprint(bw, " ", g.edgeLoad[i])
			}
		}
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(pkgName, "Save", err)
	}
	return nil
}

type tokenizer struct {
	sc  *bufio.Scanner
	err error
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) nextInt() int64 {
	if t.err != nil {
		return 0
	}
	if !t.sc.Scan() {
		t.err = io.ErrUnexpectedEOF
		return 0
	}
	var v int64
	_, err := fmt.Sscan(t.sc.Text(), &v)
	if err != nil {
		t.err = err
	}
	return v
}

// Load reads a halo Graph from the spec.md §6 text format.
// Complexity: O(V + E).
func Load(r io.Reader) (*Graph, error) {
	t := newTokenizer(r)
	version := t.nextInt()
	if t.err == nil && version != 0 {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	vertCount := t.nextInt()
	edgeCount := t.nextInt()
	base := int(t.nextInt())
	flags := t.nextInt()
	if t.err != nil || (base != 0 && base != 1) {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	hasVertLoad := flags&1 != 0
	hasEdgeLoad := flags&2 != 0

	var vertLoad []int32
	if hasVertLoad {
		vertLoad = make([]int32, vertCount)
	}
	isHalo := make([]bool, vertCount)
	vertStart := make([]int32, vertCount+1)
	var edgeTarget []int32
	var edgeLoad []int32

	for v := int64(0); v < vertCount; v++ {
		var load int32 = 1
		if hasVertLoad {
			load = int32(t.nextInt())
			vertLoad[v] = load
		}
		vertStart[v] = int32(len(edgeTarget))
		deg := t.nextInt()
		if deg < 0 {
			deg = -deg
			isHalo[v] = true
		}
		for i := int64(0); i < deg; i++ {
			w := t.nextInt()
			var eload int32 = 1
			if hasEdgeLoad {
				eload = int32(t.nextInt())
			}
			edgeTarget = append(edgeTarget, int32(w)-int32(base))
			if hasEdgeLoad {
				edgeLoad = append(edgeLoad, eload)
			}
		}
	}
	vertStart[vertCount] = int32(len(edgeTarget))
	if t.err != nil {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}

	// Halo vertices form the suffix (§4.C): find the first halo index and
	// verify no non-halo vertex follows it.
	var nonHalo int32 = int32(vertCount)
	for v := int64(0); v < vertCount; v++ {
		if isHalo[v] {
			nonHalo = int32(v)
			break
		}
	}
	for v := int64(nonHalo); v < vertCount; v++ {
		if !isHalo[v] {
			return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
		}
	}

	var nonHaloLoadTotal, nonHaloEdgeLoadTotal int64
	var nonHaloEdgeCount int32
	for v := int32(0); v < nonHalo; v++ {
		if vertLoad != nil {
			nonHaloLoadTotal += int64(vertLoad[v])
		} else {
			nonHaloLoadTotal++
		}
		s, e := vertStart[v], vertStart[v+1]
		nonHaloEdgeCount += e - s
		for i := s; i < e; i++ {
			if edgeLoad != nil {
				nonHaloEdgeLoadTotal += int64(edgeLoad[i])
			} else {
				nonHaloEdgeLoadTotal++
			}
		}
	}

	if int64(len(edgeTarget)) != edgeCount {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}

	return &Graph{
		base:                 base,
		vertStart:            vertStart,
		vertEnd:              vertStart[1:],
		compact:              true,
		edgeTarget:           edgeTarget,
		edgeLoad:             edgeLoad,
		vertLoad:             vertLoad,
		nonHaloCount:         nonHalo,
		nonHaloLoadTotal:     nonHaloLoadTotal,
		nonHaloEdgeCount:     nonHaloEdgeCount,
		nonHaloEdgeLoadTotal: nonHaloEdgeLoadTotal,
	}, nil
}
