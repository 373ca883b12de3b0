package order

import (
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/errs"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
)

const pkgName = "order"

// Order computes a fill-reducing elimination order for g (spec.md
// §4.H): recursive vertex-separator nested dissection down to
// cfg.RecursionCutoffSize, then a halo-AMF base case. The separator
// found at every split is ordered strictly after the two halves it
// divides, so the final order always lists A's positions, then B's,
// then the separator's own.
// Complexity: O(sum over splits of bipart.Multilevel's cost) plus
// haloAMF's O(k^2 * d^2) per block of k anchors with at most d live
// neighbours each.
func Order(ctx *wpool.Context, g *graph.Graph, cfg config.Values) (*Result, error) {
	n := g.VertexCount()
	base := g.Base()
	anchors := make([]int32, n)
	for v := 0; v < n; v++ {
		anchors[v] = int32(v + base)
	}

	colCount := make([]int64, n)
	root := &Node{}
	full, err := orderRecurse(ctx, g, cfg, anchors, nil, root, colCount)
	if err != nil {
		return nil, errs.Wrap(pkgName, "Order", err)
	}
	if len(full) != n {
		return nil, errs.Wrap(pkgName, "Order", errs.ErrInconsistentState)
	}

	rank := make([]int32, n)
	for pos, v := range full {
		rank[int(v)-base] = int32(pos)
	}

	return &Result{
		InversePermutation: rank,
		Perm:               full,
		ColumnCounts:       colCount,
		Tree:               root,
	}, nil
}

// orderRecurse returns the ordered vertex list (A-then-B-then-separator)
// for the block described by anchors, given halo as ancestor separators
// still adjacent to it. It bottoms out to haloAMF once anchors shrinks
// to cfg.RecursionCutoffSize or findSeparator can't produce a
// non-degenerate split.
func orderRecurse(ctx *wpool.Context, g *graph.Graph, cfg config.Values, anchors []int32, halo []int32, node *Node, colCount []int64) ([]int32, error) {
	if len(anchors) <= cfg.RecursionCutoffSize {
		order, err := haloAMF(g, anchors, halo, colCount)
		if err != nil {
			return nil, errs.Wrap(pkgName, "orderRecurse", err)
		}
		node.Leaf = true
		node.Vertices = order
		return order, nil
	}

	a, b, sep, ok, err := findSeparator(ctx, g, cfg, anchors)
	if err != nil {
		return nil, errs.Wrap(pkgName, "orderRecurse", err)
	}
	if !ok {
		order, err := haloAMF(g, anchors, halo, colCount)
		if err != nil {
			return nil, errs.Wrap(pkgName, "orderRecurse", err)
		}
		node.Leaf = true
		node.Vertices = order
		return order, nil
	}

	childHalo := make([]int32, len(halo)+len(sep))
	copy(childHalo, halo)
	copy(childHalo[len(halo):], sep)

	node.Children[0] = &Node{Parent: node}
	node.Children[1] = &Node{Parent: node}

	orderedA, err := orderRecurse(ctx, g, cfg, a, childHalo, node.Children[0], colCount)
	if err != nil {
		return nil, errs.Wrap(pkgName, "orderRecurse", err)
	}
	orderedB, err := orderRecurse(ctx, g, cfg, b, childHalo, node.Children[1], colCount)
	if err != nil {
		return nil, errs.Wrap(pkgName, "orderRecurse", err)
	}
	orderedSep, err := haloAMF(g, sep, halo, colCount)
	if err != nil {
		return nil, errs.Wrap(pkgName, "orderRecurse", err)
	}
	node.Vertices = orderedSep

	out := make([]int32, 0, len(orderedA)+len(orderedB)+len(orderedSep))
	out = append(out, orderedA...)
	out = append(out, orderedB...)
	out = append(out, orderedSep...)
	return out, nil
}
