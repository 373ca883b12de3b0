package graph

import "github.com/katalvlaran/meshpart/errs"

const pkgName = "graph"

// Option configures a Builder before any vertex is added, mirroring the
// teacher's functional-option constructors (builder.BuilderOption):
// option constructors validate and panic on meaningless input, algorithms
// themselves never panic.
type Option func(*Builder)

// WithBase sets the base value (0 or 1). Panics on any other value.
// Complexity: O(1).
func WithBase(base int) Option {
	if base != 0 && base != 1 {
		panic("graph: WithBase must be 0 or 1")
	}
	return func(b *Builder) { b.base = base }
}

// WithVertexLoads declares the graph will carry explicit vertex loads.
// Complexity: O(1).
func WithVertexLoads() Option {
	return func(b *Builder) { b.hasVertLoad = true }
}

// WithEdgeLoads declares the graph will carry explicit edge loads.
// Complexity: O(1).
func WithEdgeLoads() Option {
	return func(b *Builder) { b.hasEdgeLoad = true }
}

// Builder accumulates vertices and edges and freezes them into a compact
// CSR Graph on Build. Not safe for concurrent use; callers populate a
// Builder from a single goroutine (the parallel coarsener instead builds
// coarse graphs directly via NewFromArrays, see coarsen/contract.go).
type Builder struct {
	base        int
	hasVertLoad bool
	hasEdgeLoad bool

	vertLoad []int32
	adj      [][]arc // adjacency accumulated per vertex, base-relative
}

type arc struct {
	to   int32 // base-relative
	load int32
}

// NewBuilder creates an empty Builder. Default base is 0, no loads.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddVertex appends a new vertex and returns its base-shifted index.
// load is ignored unless WithVertexLoads was set; load must be > 0 when
// vertex loads are enabled.
// Complexity: amortized O(1).
func (b *Builder) AddVertex(load int32) (int, error) {
	if b.hasVertLoad {
		if load <= 0 {
			return 0, errs.Wrap(pkgName, "AddVertex", errs.ErrInvalidArgument)
		}
		b.vertLoad = append(b.vertLoad, load)
	}
	b.adj = append(b.adj, nil)
	return len(b.adj) - 1 + b.base, nil
}

// AddEdge adds an undirected edge between u and v (base-shifted indices)
// with the given load, storing both arcs (v,u) and (u,v). load is ignored
// unless WithEdgeLoads was set; load must be > 0 when edge loads are
// enabled. Self-loops and parallel edges are rejected.
// Complexity: amortized O(1).
func (b *Builder) AddEdge(u, v int, load int32) error {
	ui, vi := u-b.base, v-b.base
	if ui < 0 || ui >= len(b.adj) || vi < 0 || vi >= len(b.adj) {
		return errs.Wrap(pkgName, "AddEdge", errs.ErrInvalidArgument)
	}
	if ui == vi {
		return errs.Wrapf(pkgName, "AddEdge", "self-loop at %d", errs.ErrInvalidArgument, u)
	}
	if b.hasEdgeLoad && load <= 0 {
		return errs.Wrap(pkgName, "AddEdge", errs.ErrInvalidArgument)
	}
	if !b.hasEdgeLoad {
		load = 1
	}
	for _, a := range b.adj[ui] {
		if int(a.to) == vi {
			return errs.Wrap(pkgName, "AddEdge", errs.ErrInvalidArgument)
		}
	}
	b.adj[ui] = append(b.adj[ui], arc{to: int32(vi), load: load})
	b.adj[vi] = append(b.adj[vi], arc{to: int32(ui), load: load})
	return nil
}

// Build freezes the accumulated vertices/edges into a compact CSR Graph.
// Stage 1 (Validate): none left — AddVertex/AddEdge already validated.
// Stage 2 (Execute): prefix-scan degrees into vertStart, flatten adjacency.
// Stage 3 (Finalize): compute totals and maxDegree.
// Complexity: O(V+E).
func (b *Builder) Build() (*Graph, error) {
	n := len(b.adj)
	vertStart := make([]int32, n+1)
	var total int32
	for i, nbrs := range b.adj {
		vertStart[i] = total
		total += int32(len(nbrs))
	}
	vertStart[n] = total

	edgeTarget := make([]int32, total)
	var edgeLoad []int32
	if b.hasEdgeLoad {
		edgeLoad = make([]int32, total)
	}
	var edgeLoadTotal int64
	var maxDeg int32
	cursor := int32(0)
	for _, nbrs := range b.adj {
		if int32(len(nbrs)) > maxDeg {
			maxDeg = int32(len(nbrs))
		}
		for _, a := range nbrs {
			edgeTarget[cursor] = a.to
			if edgeLoad != nil {
				edgeLoad[cursor] = a.load
			}
			edgeLoadTotal += int64(a.load)
			cursor++
		}
	}

	var vertLoad []int32
	var vertLoadTotal int64
	if b.hasVertLoad {
		vertLoad = b.vertLoad
		for _, l := range vertLoad {
			vertLoadTotal += int64(l)
		}
	} else {
		vertLoadTotal = int64(n)
	}

	g := &Graph{
		base:          b.base,
		vertStart:     vertStart,
		vertEnd:       vertStart[1:],
		compact:       true,
		edgeTarget:    edgeTarget,
		vertLoad:      vertLoad,
		vertLoadTotal: vertLoadTotal,
		edgeLoad:      edgeLoad,
		edgeLoadTotal: edgeLoadTotal,
		maxDegree:     maxDeg,
		free:          freeVertLoad | freeEdgeLoad | freeTopology,
	}
	return g, nil
}

// NewFromArrays builds a Graph directly from already-CSR arrays, used by
// the coarsener (coarsen/contract.go) to install a freshly-contracted
// coarse graph without a rebuild pass. vertEnd may be nil to indicate a
// compact graph sharing vertStart[1:].
func NewFromArrays(base int, vertStart, vertEnd, edgeTarget, vertLoad, edgeLoad []int32) *Graph {
	compact := vertEnd == nil
	if compact {
		vertEnd = vertStart[1:]
	}
	var vertLoadTotal, edgeLoadTotal int64
	var maxDeg int32
	n := len(vertStart) - 1
	for v := 0; v < n; v++ {
		d := vertEnd[v] - vertStart[v]
		if d > maxDeg {
			maxDeg = d
		}
	}
	if vertLoad == nil {
		vertLoadTotal = int64(n)
	} else {
		for _, l := range vertLoad {
			vertLoadTotal += int64(l)
		}
	}
	if edgeLoad == nil {
		edgeLoadTotal = int64(len(edgeTarget))
	} else {
		for _, l := range edgeLoad {
			edgeLoadTotal += int64(l)
		}
	}
	return &Graph{
		base:          base,
		vertStart:     vertStart,
		vertEnd:       vertEnd,
		compact:       compact,
		edgeTarget:    edgeTarget,
		vertLoad:      vertLoad,
		vertLoadTotal: vertLoadTotal,
		edgeLoad:      edgeLoad,
		edgeLoadTotal: edgeLoadTotal,
		maxDegree:     maxDeg,
		free:          freeVertLoad | freeEdgeLoad | freeTopology,
	}
}
