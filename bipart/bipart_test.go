package bipart_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/bipart"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/stretchr/testify/require"
)

// buildPath builds an n-vertex unweighted path graph 0-1-2-...-(n-1).
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

// TestGreedyPathSplitsInHalf exercises spec.md scenario S3: a 100-vertex
// path bipartitioned 50/50 should cut exactly one edge.
func TestGreedyPathSplitsInHalf(t *testing.T) {
	g := buildPath(t, 100)
	ag := bipart.New(g, bipart.AllPart(100, 1), 1, 1)
	bipart.Greedy(ag, 0)
	require.EqualValues(t, 50, ag.Size0)
	require.EqualValues(t, 1, ag.CommLoad)
}

func TestFMNeverIncreasesCutOnBestState(t *testing.T) {
	g := buildPath(t, 40)
	ag := bipart.New(g, bipart.AllPart(40, 1), 1, 1)
	bipart.Greedy(ag, 0)
	before := ag.CommLoad
	bipart.FM(ag, 4)
	require.LessOrEqual(t, ag.CommLoad, before)
}

func TestExactifyRestoresBalance(t *testing.T) {
	g := buildPath(t, 20)
	part := bipart.AllPart(20, 0)
	for i := 15; i < 20; i++ {
		part[i] = 1
	}
	ag := bipart.New(g, part, 1, 1)
	bipart.Exactify(ag)
	require.InDelta(t, 0, ag.Load0Delta, 1)
}

func TestDiffusionConvergesWithoutNaN(t *testing.T) {
	g := buildPath(t, 30)
	ag := bipart.New(g, bipart.AllPart(30, 1), 1, 1)
	bipart.Greedy(ag, 0)
	bipart.Diffusion(ag, 10)
	for _, p := range ag.Part {
		require.True(t, p == 0 || p == 1)
	}
}

func TestMultilevelProducesValidBipartition(t *testing.T) {
	g := buildPath(t, 64)
	cfg := config.Resolve(config.WithRecursionCutoffSize(8), config.WithFMPassCount(2))
	ag := bipart.Multilevel(nil, g, cfg, 1, 1, 1)
	require.Len(t, ag.Part, 64)
	var size0 int
	for _, p := range ag.Part {
		require.True(t, p == 0 || p == 1)
		if p == 0 {
			size0++
		}
	}
	require.EqualValues(t, ag.Size0, size0)
}
