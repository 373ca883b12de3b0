package halograph_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/halograph"
	"github.com/stretchr/testify/require"
)

// buildStar builds a 5-vertex star: center 0 connected to 1,2,3,4.
func buildStar(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	for i := 0; i < 5; i++ {
		_, err := b.AddVertex(1)
		require.NoError(t, err)
	}
	for i := 1; i < 5; i++ {
		require.NoError(t, b.AddEdge(0, i, 1))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestFillBoundaryWithHalo(t *testing.T) {
	g := buildStar(t)
	// Anchor the four leaves; the center becomes a halo vertex.
	hg := halograph.FillBoundaryWithHalo(g, []int{1, 2, 3, 4})
	require.NoError(t, hg.Check())
	require.EqualValues(t, 4, hg.NonHaloCount())
	require.Equal(t, 5, hg.VertexCount())
	require.True(t, hg.IsHalo(4)) // the appended halo vertex
	require.False(t, hg.IsHalo(0))
	// Anchors carry no edges to each other (leaves aren't adjacent).
	require.EqualValues(t, 0, hg.NonHaloEdgeCount())
}

func TestHaloIoRoundTrip(t *testing.T) {
	g := buildStar(t)
	hg := halograph.FillBoundaryWithHalo(g, []int{1, 2, 3, 4})

	var buf bytes.Buffer
	require.NoError(t, halograph.Save(&buf, hg))

	hg2, err := halograph.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, hg.VertexCount(), hg2.VertexCount())
	require.Equal(t, hg.NonHaloCount(), hg2.NonHaloCount())
	require.NoError(t, hg2.Check())
}
