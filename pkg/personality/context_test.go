package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextUnknownMoodFallsBackToPlayful(t *testing.T) {
	ctx := NewContext("not-a-mood")
	assert.Equal(t, "playful", ctx.Profile().Name)
}

func TestNewContextWithSeedUnknownMoodErrors(t *testing.T) {
	_, err := NewContextWithSeed("not-a-mood", 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-mood")
}

func TestSeedIsReproducible(t *testing.T) {
	a, err := NewContextWithSeed("chaotic", 12345)
	require.NoError(t, err)
	b, err := NewContextWithSeed("chaotic", 12345)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeedResetsInstabilityAndCounters(t *testing.T) {
	ctx := NewContext("chaotic")
	ctx.UpdateChaosState("sometimes", true)
	ctx.UpdateChaosState("sometimes", true)
	require.Greater(t, ctx.InstabilityLevel(), 0.0)

	ctx.Seed(1)
	assert.Equal(t, 0.0, ctx.InstabilityLevel())
	assert.Equal(t, uint64(0), ctx.Snapshot().ExecutionCount)
}

func TestSetMoodOrFallback(t *testing.T) {
	ctx := NewContext("reliable")

	active, err := ctx.SetMoodOrFallback("cautious")
	require.NoError(t, err)
	assert.Equal(t, "cautious", active)
	assert.Equal(t, "cautious", ctx.Profile().Name)

	active, err = ctx.SetMoodOrFallback("bogus")
	require.Error(t, err)
	assert.Equal(t, "playful", active)
	assert.Equal(t, "playful", ctx.Profile().Name)
}

func TestUpdateChaosStateClampsToUnitInterval(t *testing.T) {
	ctx := NewContext("chaotic")
	for i := 0; i < 1000; i++ {
		ctx.UpdateChaosState("sometimes", true)
	}
	level := ctx.InstabilityLevel()
	assert.LessOrEqual(t, level, 1.0)
	assert.GreaterOrEqual(t, level, 0.0)
}

func TestSnapshotTracksDrawCounts(t *testing.T) {
	ctx := NewContext("playful")
	ctx.UpdateChaosState("sometimes", false)
	ctx.UpdateChaosState("sometimes", false)
	ctx.UpdateChaosState("maybe", true)

	snap := ctx.Snapshot()
	assert.Equal(t, uint64(2), snap.DrawCounts["sometimes"])
	assert.Equal(t, uint64(1), snap.DrawCounts["maybe"])
	assert.Equal(t, uint64(3), snap.ExecutionCount)
}
