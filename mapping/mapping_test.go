package mapping_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/arch"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/mapping"
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

func TestInitAndCheck(t *testing.T) {
	g := buildPath(t, 4)
	a := arch.NewComplete(4)
	m, err := mapping.New(g, a)
	require.NoError(t, err)
	require.Equal(t, 1, m.DomainLiveCount())
	for v := 0; v < 4; v++ {
		require.EqualValues(t, 0, m.Part(v))
	}
	require.NoError(t, m.Check())
}

func TestSplitAllocatesSlotAndLeavesPartUntouched(t *testing.T) {
	g := buildPath(t, 4)
	a := arch.NewComplete(4)
	m, err := mapping.New(g, a)
	require.NoError(t, err)

	i, j, err := m.Split(0)
	require.NoError(t, err)
	require.Equal(t, 0, i)
	require.Equal(t, 1, j)
	require.Equal(t, 2, m.DomainLiveCount())
	// part[] is untouched by Split.
	for v := 0; v < 4; v++ {
		require.EqualValues(t, 0, m.Part(v))
	}
	require.NoError(t, m.Check())
}

func TestMergeReassignsAndCompacts(t *testing.T) {
	g := buildPath(t, 4)
	a := arch.NewComplete(4)
	m, err := mapping.New(g, a)
	require.NoError(t, err)
	_, _, err = m.Split(0)
	require.NoError(t, err)
	m.SetPart(2, 1)
	m.SetPart(3, 1)

	require.NoError(t, m.Merge(0, 1))
	require.Equal(t, 1, m.DomainLiveCount())
	for v := 0; v < 4; v++ {
		require.EqualValues(t, 0, m.Part(v))
	}
	require.NoError(t, m.Check())
}

func TestViewComputesEdgeCutAndCommLoad(t *testing.T) {
	g := buildPath(t, 4) // 0-1-2-3
	a := arch.NewComplete(4)
	m, err := mapping.New(g, a)
	require.NoError(t, err)
	_, j, err := m.Split(0)
	require.NoError(t, err)
	m.SetPart(2, int32(j))
	m.SetPart(3, int32(j))

	view := m.View()
	require.EqualValues(t, 1, view.EdgeCut) // only the 1-2 edge crosses
	require.EqualValues(t, 1, view.CommLoad)
}

func TestCheckCatchesUnmappedVertex(t *testing.T) {
	g := buildPath(t, 2)
	a := arch.NewComplete(2)
	m, err := mapping.New(g, a)
	require.NoError(t, err)
	m.SetPart(1, -1)
	require.Error(t, m.Check())

	m2, err := mapping.New(g, a, mapping.WithAllowIncomplete(true))
	require.NoError(t, err)
	m2.SetPart(1, -1)
	require.NoError(t, m2.Check())
}

func TestFixedVerticesHonoured(t *testing.T) {
	g := buildPath(t, 2)
	a := arch.NewComplete(2)
	m, err := mapping.New(g, a, mapping.WithFixedVertices([]int32{0, 0}))
	require.NoError(t, err)
	require.NoError(t, m.Check()) // both at domain 0, fixed wants 0

	m.SetPart(1, 0)
	require.NoError(t, m.Check())
}
