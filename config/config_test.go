package config_test

import (
	"testing"

	"github.com/katalvlaran/meshpart/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := config.Resolve()
	require.False(t, v.DeterministicMode)
	require.Equal(t, 0.05, v.ImbalanceBound)
	require.Equal(t, 100, v.RecursionCutoffSize)
}

func TestOptionsCopyOnWrite(t *testing.T) {
	base := config.Resolve()
	tuned := config.Resolve(config.WithDeterministicMode(true), config.WithRandomFixedSeed(7))
	require.False(t, base.DeterministicMode)
	require.True(t, tuned.DeterministicMode)
	require.True(t, tuned.RandomFixedSeed)
	require.EqualValues(t, 7, tuned.Seed)
}

func TestInvalidOptionsPanic(t *testing.T) {
	require.Panics(t, func() { config.WithCoarseningRatioThreshold(0) })
	require.Panics(t, func() { config.WithImbalanceBound(1) })
	require.Panics(t, func() { config.WithFMPassCount(0) })
}
