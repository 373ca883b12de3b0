package arch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/meshpart/errs"
)

// tokenizer mirrors graph.tokenizer / halograph.tokenizer: a
// whitespace-token reader shared only by convention (spec.md §6 gives
// each file format its own grammar, so the three packages each keep a
// private copy rather than share one across a dependency edge).
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
	v, err := strconv.ParseInt(t.next(), 10, 64)
	if err != nil && t.err == nil {
		t.err = err
	}
	return v
}

var kindKeyword = map[Kind]string{
	KindCmplt:  "cmplt",
	KindCmpltw: "cmpltw",
	KindMesh:   "mesh", // wrap flag is written as a following 0/1 token
	KindHcube:  "hcub",
	KindTleaf:  "tleaf",
	KindSub:    "sub",
	KindDeco:   "deco",
}

// Save writes a in the target-architecture text format (spec.md §6): a
// leading type keyword followed by type-specific parameters.
// Complexity: O(size of a's own parameters).
func Save(w io.Writer, a *Arch) error {
	bw := bufio.NewWriter(w)
	if err := save(bw, a); err != nil {
		return errs.Wrap(pkgName, "Save", err)
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(pkgName, "Save", errs.ErrIoError)
	}
	return nil
}

func save(bw *bufio.Writer, a *Arch) error {
	switch a.kind {
	case KindCmplt:
		fmt.Fprintln(bw, kindKeyword[a.kind], a.size)
	case KindCmpltw:
		fmt.Fprint(bw, kindKeyword[a.kind], " ", a.size)
		for _, w := range a.weight {
			fmt.Fprint(bw, " ", w)
		}
		fmt.Fprintln(bw)
	case KindHcube:
		fmt.Fprintln(bw, kindKeyword[a.kind], a.hdim)
	case KindMesh:
		wrap := 0
		if a.wrap {
			wrap = 1
		}
		fmt.Fprint(bw, kindKeyword[a.kind], " ", wrap, " ", len(a.dims))
		for _, d := range a.dims {
			fmt.Fprint(bw, " ", d)
		}
		fmt.Fprintln(bw)
	case KindTleaf:
		fmt.Fprint(bw, kindKeyword[a.kind], " ", len(a.levelSizes))
		for _, s := range a.levelSizes {
			fmt.Fprint(bw, " ", s)
		}
		for _, c := range a.levelCost {
			fmt.Fprint(bw, " ", c)
		}
		fmt.Fprintln(bw)
	case KindSub:
		fmt.Fprintln(bw, kindKeyword[a.kind], len(a.retainedTerminals))
		for _, t := range a.retainedTerminals {
			fmt.Fprint(bw, t, " ")
		}
		fmt.Fprintln(bw)
		return save(bw, a.parent)
	case KindDeco:
		n := len(a.decoLeafOrder)
		fmt.Fprintln(bw, kindKeyword[a.kind], n)
		for _, t := range a.decoLeafOrder {
			fmt.Fprint(bw, t, " ")
		}
		fmt.Fprintln(bw)
		for _, row := range a.decoDist {
			for _, v := range row {
				fmt.Fprint(bw, v, " ")
			}
			fmt.Fprintln(bw)
		}
	default:
		return errs.ErrUnsupportedConfig
	}
	return nil
}

// Load reads an architecture in the format written by Save.
// Complexity: O(size of the parsed parameters).
func Load(r io.Reader) (a *Arch, err error) {
	defer func() {
		// The per-variant constructors panic on malformed parameters (the
		// teacher's "construction panics, algorithms don't" convention) —
		// translate that into an ordinary I/O error for a parsed file.
		if rec := recover(); rec != nil {
			a, err = nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
		}
	}()
	t := newTokenizer(r)
	a, err = load(t)
	if err != nil {
		return nil, errs.Wrap(pkgName, "Load", err)
	}
	if t.err != nil && t.err != io.ErrUnexpectedEOF {
		return nil, errs.Wrap(pkgName, "Load", errs.ErrIoError)
	}
	return a, nil
}

func load(t *tokenizer) (*Arch, error) {
	keyword := t.next()
	if t.err != nil {
		return nil, errs.ErrIoError
	}
	switch keyword {
	case "cmplt":
		n := int32(t.nextInt())
		return NewComplete(n), checkTok(t)
	case "cmpltw":
		n := t.nextInt()
		weight := make([]int32, n)
		for i := range weight {
			weight[i] = int32(t.nextInt())
		}
		return NewCompleteWeighted(weight), checkTok(t)
	case "hcub":
		hdim := int32(t.nextInt())
		return NewHypercube(hdim), checkTok(t)
	case "mesh":
		wrap := t.nextInt() != 0
		d := t.nextInt()
		dims := make([]int32, d)
		for i := range dims {
			dims[i] = int32(t.nextInt())
		}
		if err := checkTok(t); err != nil {
			return nil, err
		}
		if wrap {
			return NewTorusXD(dims), nil
		}
		return NewMeshXD(dims), nil
	case "tleaf":
		d := t.nextInt()
		sizes := make([]int32, d)
		for i := range sizes {
			sizes[i] = int32(t.nextInt())
		}
		costs := make([]int64, d)
		for i := range costs {
			costs[i] = t.nextInt()
		}
		return NewTreeLeaf(sizes, costs), checkTok(t)
	case "sub":
		k := t.nextInt()
		retained := make([]int32, k)
		for i := range retained {
			retained[i] = int32(t.nextInt())
		}
		parent, err := load(t)
		if err != nil {
			return nil, err
		}
		return NewSubArchitecture(parent, retained), nil
	case "deco":
		n := t.nextInt()
		leafOrder := make([]int32, n)
		for i := range leafOrder {
			leafOrder[i] = int32(t.nextInt())
		}
		dist := make([][]int64, n)
		for i := range dist {
			dist[i] = make([]int64, n)
			for j := range dist[i] {
				dist[i][j] = t.nextInt()
			}
		}
		return NewDecompositionDefined(leafOrder, dist), checkTok(t)
	default:
		return nil, errs.ErrUnsupportedConfig
	}
}

func checkTok(t *tokenizer) error {
	if t.err != nil && t.err != io.ErrUnexpectedEOF {
		return errs.ErrIoError
	}
	return nil
}
