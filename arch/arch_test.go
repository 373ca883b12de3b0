package arch_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/meshpart/arch"
	"github.com/stretchr/testify/require"
)

func TestCompleteBipartAndDistance(t *testing.T) {
	a := arch.NewComplete(8)
	root := a.FirstDomain()
	require.EqualValues(t, 8, a.DomainSize(root))
	d0, d1, ok := a.DomainBipart(root)
	require.True(t, ok)
	require.EqualValues(t, 4, a.DomainSize(d0))
	require.EqualValues(t, 4, a.DomainSize(d1))
	require.True(t, a.DomainInclusion(root, d0))
	require.EqualValues(t, 0, a.DomainDistance(d0, d0))
	require.EqualValues(t, 1, a.DomainDistance(d0, d1))
	require.True(t, a.PartOnly())
}

func TestCompleteWeightedBalancedSplit(t *testing.T) {
	a := arch.NewCompleteWeighted([]int32{10, 1, 1, 1, 1, 1, 1, 1})
	root := a.FirstDomain()
	d0, d1, ok := a.DomainBipart(root)
	require.True(t, ok)
	w0, w1 := a.DomainWeight(d0), a.DomainWeight(d1)
	// The heaviest terminal (weight 10) should end up alone in one group,
	// since greedy insertion always appends to the currently-lighter group.
	require.True(t, w0 == 10 || w1 == 10)
	require.Equal(t, int64(17), w0+w1)
}

func TestMeshDistanceAndTorusWrap(t *testing.T) {
	m := arch.NewMeshXD([]int32{4, 4})
	a := m.TerminalDomain(0)  // (0,0)
	b := m.TerminalDomain(15) // (3,3)
	require.EqualValues(t, 6, m.DomainDistance(a, b))

	tor := arch.NewTorusXD([]int32{4, 4})
	require.EqualValues(t, 2, tor.DomainDistance(a, b)) // wraps: 1+1
}

func TestHypercubeDistance(t *testing.T) {
	h := arch.NewHypercube(3)
	a := h.TerminalDomain(0)
	b := h.TerminalDomain(7)
	require.EqualValues(t, 3, h.DomainDistance(a, b))
	require.EqualValues(t, 0, h.DomainDistance(a, a))
}

func TestTreeLeafDistance(t *testing.T) {
	// Two levels, branching factor 2 each: 4 leaves total.
	tl := arch.NewTreeLeaf([]int32{2, 2}, []int64{10, 1})
	// Leaves 0 and 1 share an immediate parent: one hop up, one down.
	require.EqualValues(t, 2, tl.DomainDistance(tl.TerminalDomain(0), tl.TerminalDomain(1)))
	// Leaves 0 and 2 diverge at the root: charged at both levels.
	require.EqualValues(t, 22, tl.DomainDistance(tl.TerminalDomain(0), tl.TerminalDomain(2)))
	require.EqualValues(t, 0, tl.DomainDistance(tl.TerminalDomain(0), tl.TerminalDomain(0)))
}

func TestSubArchitectureDelegatesToParent(t *testing.T) {
	h := arch.NewHypercube(3)
	sub := arch.NewSubArchitecture(h, []int32{0, 1, 2, 3})
	require.EqualValues(t, 4, sub.DomainSize(sub.FirstDomain()))
	// Sub terminal 0 maps to parent terminal 0, sub terminal 3 to parent 3.
	require.Equal(t, h.DomainDistance(h.TerminalDomain(0), h.TerminalDomain(3)),
		sub.DomainDistance(sub.TerminalDomain(0), sub.TerminalDomain(3)))
}

func TestDecompositionDefined(t *testing.T) {
	dist := [][]int64{
		{0, 5, 9},
		{5, 0, 6},
		{9, 6, 0},
	}
	d := arch.NewDecompositionDefined([]int32{0, 1, 2}, dist)
	require.EqualValues(t, 5, d.DomainDistance(d.TerminalDomain(0), d.TerminalDomain(1)))
	require.EqualValues(t, 0, d.DomainDistance(d.TerminalDomain(2), d.TerminalDomain(2)))
}

func TestDomainBipartCoversProperty(t *testing.T) {
	// Testable Property 6: repeatedly bipartitioning covers every terminal
	// exactly once at each level, down to singletons.
	a := arch.NewComplete(16)
	var walk func(d arch.Domain) []int32
	walk = func(d arch.Domain) []int32 {
		if a.IsLeaf(d) {
			return []int32{a.DomainNumber(d)}
		}
		d0, d1, ok := a.DomainBipart(d)
		require.True(t, ok)
		return append(walk(d0), walk(d1)...)
	}
	leaves := walk(a.FirstDomain())
	require.Len(t, leaves, 16)
	seen := make(map[int32]bool)
	for _, l := range leaves {
		require.False(t, seen[l])
		seen[l] = true
	}
}

func TestDistanceProperties(t *testing.T) {
	// Testable Property 7: distance is non-negative and zero on the
	// diagonal, across the variants listed below.
	variants := []*arch.Arch{
		arch.NewComplete(5),
		arch.NewCompleteWeighted([]int32{3, 1, 4, 1, 5}),
		arch.NewMeshXD([]int32{3, 3}),
		arch.NewHypercube(4),
		arch.NewTreeLeaf([]int32{3, 2}, []int64{2, 1}),
	}
	for _, a := range variants {
		require.NoError(t, a.Check())
		root := a.FirstDomain()
		require.GreaterOrEqual(t, a.DomainDistance(root, root), int64(0))
	}
}

func TestMatchInitDeterministicPairsSiblings(t *testing.T) {
	a := arch.NewComplete(6)
	m := a.MatchInit(true, rand.New(rand.NewSource(1)))
	t0, t1, paired, ok := m.MatchNext()
	require.True(t, ok)
	require.True(t, paired)
	require.EqualValues(t, 0, t0)
	require.EqualValues(t, 1, t1)
	m.MatchExit()
}

func TestArchIoRoundTrip(t *testing.T) {
	cases := []*arch.Arch{
		arch.NewComplete(4),
		arch.NewCompleteWeighted([]int32{3, 1, 4, 1}),
		arch.NewHypercube(2),
		arch.NewMeshXD([]int32{2, 3}),
		arch.NewTorusXD([]int32{2, 3}),
		arch.NewTreeLeaf([]int32{2, 2}, []int64{5, 1}),
	}
	for _, a := range cases {
		var buf bytes.Buffer
		require.NoError(t, arch.Save(&buf, a))
		a2, err := arch.Load(&buf)
		require.NoError(t, err)
		require.Equal(t, a.DomainSize(a.FirstDomain()), a2.DomainSize(a2.FirstDomain()))
		require.Equal(t, a.DomainDistance(a.FirstDomain(), a.FirstDomain()),
			a2.DomainDistance(a2.FirstDomain(), a2.FirstDomain()))
	}
}

func TestSubArchIoRoundTrip(t *testing.T) {
	h := arch.NewHypercube(3)
	sub := arch.NewSubArchitecture(h, []int32{0, 2, 4, 6})
	var buf bytes.Buffer
	require.NoError(t, arch.Save(&buf, sub))
	sub2, err := arch.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, sub.DomainSize(sub.FirstDomain()), sub2.DomainSize(sub2.FirstDomain()))
}

func TestDecompositionDefinedIoRoundTrip(t *testing.T) {
	dist := [][]int64{{0, 2}, {2, 0}}
	d := arch.NewDecompositionDefined([]int32{0, 1}, dist)
	var buf bytes.Buffer
	require.NoError(t, arch.Save(&buf, d))
	d2, err := arch.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, d.DomainDistance(d.TerminalDomain(0), d.TerminalDomain(1)),
		d2.DomainDistance(d2.TerminalDomain(0), d2.TerminalDomain(1)))
}
