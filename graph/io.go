package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/meshpart/errs"
)

// textVersion is the only version of the graph file format this package
// emits and accepts (spec.md §6).
const textVersion = 0

// tokenizer reads whitespace-separated tokens from r, used by both
// graph and halograph I/O so the grammar stays in lock-step (spec.md §6
// describes the halo format as "identical" to the plain one).
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

func (t *tokenizer) next() string {
	if t.err != nil {
		return ""
	}
	if !t.sc.Scan() {
		t.err = io.ErrUnexpectedEOF
		return ""
	}
	return t.sc.Text()
}

func (t *tokenizer) nextInt() int64 {
	s := t.next()
	if t.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.err = err
	}
	return v
}

// Save writes g to w in the spec.md §6 graph text format:
//
//	<version=0>
//	<vertex_count> <edge_count>
//	<base_value> <flags>
//	<per-vertex-block> x vertex_count
//
// Each per-vertex block is: (optional vertex load) degree, followed by
// degree pairs of (adjacent vertex index) (optional edge load).
// edge_count counts arcs (2*|E|).
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
	fmt.Fprintln(bw, textVersion)
	fmt.Fprintln(bw, g.VertexCount(), g.EdgeCount())
	fmt.Fprintln(bw, g.base, flags)
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		if g.vertLoad != nil {
			fmt.Fprint(bw, g.vertLoad[v], " ")
		}
		s, e := g.vertStart[v], g.vertEnd[v]
		fmt.Fprint(bw, e-s)
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

// Load reads a Graph from the spec.md §6 text format, round-tripping
// byte-for-byte with Save for any well-formed graph (Testable Property 1).
// Complexity: O(V + E).
func Load(r io.Reader) (*Graph, error) {
	t := newTokenizer(r)
	version := t.nextInt()
	if t.err == nil && version != textVersion {
		return nil, errs.Wrapf(pkgName, "Load", "unsupported version %d", errs.ErrIoError, version)
	}
	vertCount := t.nextInt()
	edgeCount := t.nextInt()
	base := int(t.nextInt())
	flags := t.nextInt()
	if t.err != nil {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	if base != 0 && base != 1 {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	hasVertLoad := flags&1 != 0
	hasEdgeLoad := flags&2 != 0

	opts := []Option{WithBase(base)}
	if hasVertLoad {
		opts = append(opts, WithVertexLoads())
	}
	if hasEdgeLoad {
		opts = append(opts, WithEdgeLoads())
	}
	b := NewBuilder(opts...)
	for v := int64(0); v < vertCount; v++ {
		// Placeholder load; the real one is read with the vertex's block.
		if _, err := b.AddVertex(1); err != nil {
			return nil, errs.Wrap(pkgName, "Load", err)
		}
	}

	var seenArcs int64
	for v := int64(0); v < vertCount; v++ {
		if hasVertLoad {
			load := int32(t.nextInt())
			if t.err == nil && load <= 0 {
				return nil, errs.Wrap(pkgName, "Load", errs.ErrInvalidArgument)
			}
			b.vertLoad[v] = load
		}
		deg := t.nextInt()
		for i := int64(0); i < deg; i++ {
			w := t.nextInt()
			eload := int32(1)
			if hasEdgeLoad {
				eload = int32(t.nextInt())
			}
			seenArcs++
			if w > v+int64(base) {
				if err := b.AddEdge(int(v)+base, int(w), eload); err != nil {
					return nil, errs.Wrap(pkgName, "Load", err)
				}
			}
		}
	}
	if t.err != nil {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	if seenArcs != edgeCount {
		return nil, errs.Wrapf(pkgName, "Load", "edge count mismatch: header %d, read %d", errs.ErrIoError, edgeCount, seenArcs)
	}
	g, err := b.Build()
	if err != nil {
		return nil, errs.Wrap(pkgName, "Load", err)
	}
	return g, nil
}
