package graph_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/meshpart/graph"
	"github.com/stretchr/testify/require"
)

// buildPath builds an n-vertex path graph 0-1-2-...-(n-1), base 0, unweighted.
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

func TestBuildAndCheck(t *testing.T) {
	g := buildPath(t, 5)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 8, g.EdgeCount()) // 4 undirected edges * 2 arcs
	require.NoError(t, g.Check())
	require.EqualValues(t, 2, g.Degree(1))
	require.EqualValues(t, 1, g.Degree(0))
}

func TestRejectsSelfLoopAndParallel(t *testing.T) {
	b := graph.NewBuilder()
	_, _ = b.AddVertex(1)
	_, _ = b.AddVertex(1)
	require.Error(t, b.AddEdge(0, 0, 1))
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.Error(t, b.AddEdge(0, 1, 1))
}

func TestInduceByPart(t *testing.T) {
	g := buildPath(t, 6)
	part := []int32{0, 0, 0, 1, 1, 1}
	sub, numberInParent, err := g.InduceByPart(part, 0)
	require.NoError(t, err)
	require.Equal(t, 3, sub.VertexCount())
	require.NoError(t, sub.Check())
	require.Equal(t, []int32{0, 1, 2}, numberInParent)
	// Only the internal 0-1, 1-2 edges survive; the 2-3 cut edge is dropped.
	require.Equal(t, 4, sub.EdgeCount())
}

func TestInduceByList(t *testing.T) {
	g := buildPath(t, 4)
	sub, numberInParent, err := g.InduceByList([]int32{0, 2})
	require.NoError(t, err)
	require.Equal(t, 2, sub.VertexCount())
	require.Equal(t, 0, sub.EdgeCount()) // 0 and 2 are not adjacent in the parent
	require.Equal(t, []int32{0, 2}, numberInParent)
}

func TestIoRoundTrip(t *testing.T) {
	b := graph.NewBuilder(graph.WithBase(1), graph.WithVertexLoads(), graph.WithEdgeLoads())
	_, _ = b.AddVertex(3)
	_, _ = b.AddVertex(5)
	_, _ = b.AddVertex(7)
	require.NoError(t, b.AddEdge(1, 2, 10))
	require.NoError(t, b.AddEdge(2, 3, 20))
	g, err := b.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Save(&buf, g))

	g2, err := graph.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), g2.VertexCount())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	require.Equal(t, g.VertLoadTotal(), g2.VertLoadTotal())
	require.Equal(t, g.EdgeLoadTotal(), g2.EdgeLoadTotal())
	require.NoError(t, g2.Check())
}

func TestShiftBase(t *testing.T) {
	g := buildPath(t, 3)
	shifted, err := g.ShiftBase(1)
	require.NoError(t, err)
	require.Equal(t, 1, shifted.Base())
	require.NoError(t, shifted.Check())
}
