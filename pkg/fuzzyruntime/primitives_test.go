package fuzzyruntime

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(t *testing.T, mood string, seed int64) *personality.Context {
	t.Helper()
	c, err := personality.NewContextWithSeed(mood, seed)
	require.NoError(t, err)
	return c
}

func TestKindaIntStaysWithinFuzzRange(t *testing.T) {
	c := newCtx(t, "chaotic", 1)
	lo, hi := c.ChaosFuzzRange()
	for i := 0; i < 500; i++ {
		v := KindaInt(c, 100)
		assert.GreaterOrEqual(t, v, 100+lo)
		assert.LessOrEqual(t, v, 100+hi)
	}
}

func TestKindaIntIsReproducibleForSameSeed(t *testing.T) {
	c1 := newCtx(t, "playful", 55)
	c2 := newCtx(t, "playful", 55)
	for i := 0; i < 20; i++ {
		assert.Equal(t, KindaInt(c1, 10), KindaInt(c2, 10))
	}
}

func TestKindaBoolFlipRateRespondsToAmplifier(t *testing.T) {
	reliable := newCtx(t, "reliable", 3)
	chaotic := newCtx(t, "chaotic", 3)

	flips := func(c *personality.Context) int {
		n := 0
		for i := 0; i < 2000; i++ {
			if KindaBool(c, true) != true {
				n++
			}
		}
		return n
	}

	assert.Less(t, flips(reliable), flips(chaotic))
}

func TestFuzzyReassignDispatchesByType(t *testing.T) {
	c := newCtx(t, "playful", 9)
	assert.IsType(t, int(0), FuzzyReassign(c, 5))
	assert.IsType(t, float64(0), FuzzyReassign(c, 5.0))
	assert.IsType(t, true, FuzzyReassign(c, true))
	assert.Equal(t, "x", FuzzyReassign(c, "x"))
}

func TestSortaPrintEventuallyWritesAndEventuallyShrugs(t *testing.T) {
	c := newCtx(t, "playful", 2)
	var wrote, shrugged bool
	for i := 0; i < 200 && !(wrote && shrugged); i++ {
		var buf bytes.Buffer
		SortaPrint(c, &buf, "hi")
		if buf.String() == "hi\n" {
			wrote = true
		} else if buf.String() == ShrugMessage+"\n" {
			shrugged = true
		}
	}
	assert.True(t, wrote, "expected at least one normal print over 200 draws")
	assert.True(t, shrugged, "expected at least one shrug fallback over 200 draws")
}

func TestProbabilisticGatesNeverFireOnFalseCondition(t *testing.T) {
	c := newCtx(t, "chaotic", 4)
	for i := 0; i < 200; i++ {
		assert.False(t, Sometimes(c, false))
		assert.False(t, Maybe(c, false))
		assert.False(t, Probably(c, false))
		assert.False(t, Rarely(c, false))
	}
}

func TestRarelyFiresMoreOftenAsInstabilityRises(t *testing.T) {
	c := newCtx(t, "playful", 11)
	before := 0
	for i := 0; i < 500; i++ {
		if Rarely(c, true) {
			before++
		}
	}
	assert.Greater(t, c.InstabilityLevel(), 0.0)
	fresh := newCtx(t, "playful", 11)
	assert.Greater(t, c.ChaosProbability("rarely", true), fresh.ChaosProbability("rarely", true))
}

func TestIshComparisonClampsWithinTolerance(t *testing.T) {
	c := newCtx(t, "reliable", 6)
	closeCount := 0
	for i := 0; i < 200; i++ {
		if IshComparison(c, 10.0, 10.0, 0.001, true) {
			closeCount++
		}
	}
	assert.Greater(t, closeCount, 0)
}

func TestIshValueWithNilTargetIsJitterOnly(t *testing.T) {
	c := newCtx(t, "playful", 21)
	v := IshValue(c, 5.0, nil)
	assert.NotEqual(t, 0.0, v)
}

func TestIshValueWithTargetMovesTowardTarget(t *testing.T) {
	c := newCtx(t, "reliable", 21)
	moved := false
	for i := 0; i < 50; i++ {
		target := 100.0
		v := IshValue(c, 5.0, &target)
		if v > 5.0 {
			moved = true
		}
	}
	assert.True(t, moved)
}

func TestWelpFallbackReturnsValueOnSuccess(t *testing.T) {
	c := newCtx(t, "playful", 8)
	result := WelpFallback(c, func() (interface{}, error) { return 42, nil }, -1)
	assert.Equal(t, 42, result)
}

func TestWelpFallbackReturnsFallbackOnError(t *testing.T) {
	c := newCtx(t, "playful", 8)
	result := WelpFallback(c, func() (interface{}, error) { return nil, errors.New("boom") }, -1)
	assert.Equal(t, -1, result)
}

func TestWelpFallbackReturnsFallbackOnPanic(t *testing.T) {
	c := newCtx(t, "playful", 8)
	result := WelpFallback(c, func() (interface{}, error) {
		panic("kaboom")
	}, "safe")
	assert.Equal(t, "safe", result)
}

func TestWelpFallbackIsIdempotentAcrossRepeatedCalls(t *testing.T) {
	c := newCtx(t, "playful", 8)
	for i := 0; i < 5; i++ {
		result := WelpFallback(c, func() (interface{}, error) { return "ok", nil }, "fallback")
		assert.Equal(t, "ok", result)
	}
}
