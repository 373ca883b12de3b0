package wpool_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/config"
	"github.com/katalvlaran/meshpart/wpool"
	"github.com/stretchr/testify/require"
)

func TestLaunchBarrierOrdering(t *testing.T) {
	p := wpool.NewPool(4)
	var before, after [4]bool
	p.Launch(func(d *wpool.Descriptor, shared interface{}) {
		before[d.Index()] = true
		d.Barrier()
		for i := range before {
			require.True(t, before[i], "every worker must have set 'before' before any proceeds past the barrier")
		}
		after[d.Index()] = true
	}, nil)
	for i := range after {
		require.True(t, after[i])
	}
}

func TestReduceDepositsCombinedSum(t *testing.T) {
	p := wpool.NewPool(4)
	results := make([]int, 4)
	p.Launch(func(d *wpool.Descriptor, shared interface{}) {
		sum := wpool.Reduce(d, d.Index()+1, func(a, b int) int { return a + b })
		results[d.Index()] = sum
	}, nil)
	for _, r := range results {
		require.Equal(t, 10, r) // 1+2+3+4
	}
}

func TestScanExclusivePrefix(t *testing.T) {
	p := wpool.NewPool(4)
	results := make([]int, 4)
	p.Launch(func(d *wpool.Descriptor, shared interface{}) {
		results[d.Index()] = wpool.Scan(d, d.Index()+1, 0, func(a, b int) int { return a + b })
	}, nil)
	require.Equal(t, []int{0, 1, 3, 6}, results)
}

func TestDeterministicSingleWorker(t *testing.T) {
	ctx := wpool.NewContext(8, config.WithDeterministicMode(true))
	require.True(t, ctx.Deterministic())
	require.Equal(t, 1, ctx.Pool().Size())
}

func TestCloneIndependentStream(t *testing.T) {
	ctx := wpool.NewContext(2, config.WithRandomFixedSeed(42))
	clone := ctx.Clone()
	require.Equal(t, ctx.Pool().Size(), clone.Pool().Size())
	require.NotEqual(t, ctx.NextSeed(), clone.NextSeed())
}

func TestAbortFlagVisibleAcrossWorkers(t *testing.T) {
	p := wpool.NewPool(3)
	seen := make([]bool, 3)
	p.Launch(func(d *wpool.Descriptor, shared interface{}) {
		if d.Index() == 0 {
			d.RequestAbort()
		}
		d.Barrier()
		seen[d.Index()] = d.Aborted()
	}, nil)
	for _, s := range seen {
		require.True(t, s)
	}
}
