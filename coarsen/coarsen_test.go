package coarsen_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/coarsen"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/wpool"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T, n int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		_, err := b.AddVertex(1)
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(i, i+1, 1))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// TestMatchingValiditySequential checks the symmetry half of Testable
// Property 3: after matching(G), mate[mate[v]] == v for all v (the
// star test below also checks that matched pairs are actual edges).
func TestMatchingValiditySequential(t *testing.T) {
	g := buildPath(t, 10)
	mate := coarsen.Match(nil, g)
	require.Len(t, mate, 10)
	for v, m := range mate {
		require.EqualValues(t, v, mate[m])
	}
}

func TestMatchingValidityParallel(t *testing.T) {
	g := buildPath(t, 200)
	ctx := wpool.NewContext(4)
	mate := coarsen.Match(ctx, g)
	for v, m := range mate {
		require.EqualValues(t, v, mate[m])
	}
}

func TestDeterministicMatchingReproducible(t *testing.T) {
	g := buildPath(t, 50)
	ctx1 := wpool.NewContext(4, config.WithDeterministicMode(true))
	ctx2 := wpool.NewContext(4, config.WithDeterministicMode(true))
	m1 := coarsen.Match(ctx1, g)
	m2 := coarsen.Match(ctx2, g)
	require.Equal(t, m1, m2)
}

// isEdge reports whether g stores an arc between base-relative v and w.
func isEdge(g *graph.Graph, v, w int) bool {
	base := g.Base()
	found := false
	g.Neighbors(v+base, func(nb int, _ int32) {
		if nb == w+base {
			found = true
		}
	})
	return found
}

// buildStar builds K_{1,leaves}: vertex 0 is the center, 1..leaves are
// its only neighbours and are otherwise mutually non-adjacent.
func buildStar(t *testing.T, leaves int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	for i := 0; i < leaves+1; i++ {
		_, err := b.AddVertex(1)
		require.NoError(t, err)
	}
	for i := 1; i <= leaves; i++ {
		require.NoError(t, b.AddEdge(0, i, 1))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// TestMatchingLeavesNonIsolatedUnmatchedAsSingletons covers Testable
// Property 3 on K_{1,4}: after the center pairs with one leaf, the
// remaining leaves have degree 1 (not isolated) and no eligible
// candidate, so they must stay self-singletons rather than being
// tail-paired with each other across a non-edge.
func TestMatchingLeavesNonIsolatedUnmatchedAsSingletons(t *testing.T) {
	g := buildStar(t, 4)
	mate := coarsen.Match(nil, g)
	require.Len(t, mate, 5)
	for v, m := range mate {
		if v == m {
			continue // self-singleton: allowed only when (v, mate[v]) would not be an edge
		}
		require.True(t, isEdge(g, v, m), "mate[%d]=%d is not an edge", v, m)
		require.EqualValues(t, v, mate[m])
	}
}

// TestMatchingPairsIsolatedVertices covers the tail-pairing pass itself:
// vertices with no incident edges at all are greedily paired from the
// tail of the unmatched queue.
func TestMatchingPairsIsolatedVertices(t *testing.T) {
	b := graph.NewBuilder()
	for i := 0; i < 4; i++ {
		_, err := b.AddVertex(1)
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	mate := coarsen.Match(nil, g)
	require.Len(t, mate, 4)
	matchedCount := 0
	for v, m := range mate {
		if v != m {
			matchedCount++
			require.EqualValues(t, v, mate[m])
		}
	}
	require.Equal(t, 4, matchedCount, "all four isolated vertices should pair up")
}

func TestContractPreservesLoad(t *testing.T) {
	g := buildPath(t, 8)
	mate := coarsen.Match(nil, g)
	coarse, f2c := coarsen.Contract(g, mate)
	require.LessOrEqual(t, coarse.VertexCount(), g.VertexCount())
	require.Equal(t, g.VertLoadTotal(), coarse.VertLoadTotal())
	require.Len(t, f2c, g.VertexCount())
	require.NoError(t, coarse.Check())
}

func TestHierarchyStopsAtCutoff(t *testing.T) {
	g := buildPath(t, 64)
	cfg := config.Resolve(config.WithRecursionCutoffSize(8))
	levels, maps := coarsen.Hierarchy(nil, g, cfg, 1)
	require.GreaterOrEqual(t, len(levels), 2)
	require.Equal(t, len(levels)-1, len(maps))
	require.LessOrEqual(t, levels[len(levels)-1].VertexCount(), 8)
}
