package kway_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/arch"
	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/graph"
	"github.com/katalvlaran/meshpart/kway"
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

// TestMapKTwoVertexScenario exercises spec.md scenario S1: two vertices,
// one edge, complete-graph target of 2 terminals. Expected: the two
// vertices land in different parts, so the one edge is cut (edge cut 1,
// which is comm_load 1 on this target).
func TestMapKTwoVertexScenario(t *testing.T) {
	g := buildPath(t, 2)
	a := arch.NewComplete(2)
	cfg := config.Resolve(config.WithDeterministicMode(true))

	m, err := kway.MapK(nil, g, a, cfg)
	require.NoError(t, err)
	require.NoError(t, m.Check())

	p0, p1 := m.Part(0), m.Part(1)
	require.NotEqual(t, p0, p1)

	view := m.View()
	require.EqualValues(t, 1, view.EdgeCut)
}

// TestMapKPathSatisfiesImbalanceBound checks Testable Property 9: every
// live domain's realised load stays within the default imbalance bound
// of its target load.
func TestMapKPathSatisfiesImbalanceBound(t *testing.T) {
	g := buildPath(t, 64)
	a := arch.NewComplete(4)
	cfg := config.Resolve(config.WithDeterministicMode(true))

	m, err := kway.MapK(nil, g, a, cfg)
	require.NoError(t, err)
	require.NoError(t, m.Check())

	s := kway.NewState(m)
	require.True(t, s.WithinImbalanceBound(0.5))
}

func TestExtractBandIncludesFrontierAndAnchors(t *testing.T) {
	g := buildPath(t, 20)
	a := arch.NewComplete(2)
	m, err := mappingWithSplit(g, a)
	require.NoError(t, err)

	s := kway.NewState(m)
	require.NotEmpty(t, s.Frontier)

	band, err := kway.ExtractBand(m, s.Frontier, 2)
	require.NoError(t, err)
	require.Equal(t, m.DomainLiveCount(), len(band.AnchorDomainSlot))
	require.Greater(t, band.G.VertexCount(), band.NonAnchorCount)
}

// mappingWithSplit runs phase 1 only, leaving a mapping whose frontier
// ExtractBand can be exercised against without the full MapK pipeline.
func mappingWithSplit(g *graph.Graph, a *arch.Arch) (*mapping.Mapping, error) {
	m, err := mapping.New(g, a)
	if err != nil {
		return nil, err
	}
	cfg := config.Resolve(config.WithDeterministicMode(true))
	if err := kway.InitialMapping(nil, m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}
