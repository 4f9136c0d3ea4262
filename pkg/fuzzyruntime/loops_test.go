package fuzzyruntime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSometimesWhileStopsWhenCondFalse(t *testing.T) {
	c := newCtx(t, "reliable", 30)
	count := 0
	i := 0
	SometimesWhile(c, func() bool { return i < 10 }, func() {
		i++
		count++
	})
	assert.LessOrEqual(t, count, 10)
}

func TestSometimesWhileNeverRunsWhenCondInitiallyFalse(t *testing.T) {
	c := newCtx(t, "chaotic", 31)
	ran := false
	SometimesWhile(c, func() bool { return false }, func() { ran = true })
	assert.False(t, ran)
}

func TestMaybeForVisitsSubsetOfItems(t *testing.T) {
	c := newCtx(t, "playful", 32)
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	visited := 0
	MaybeFor(c, items, func(int) { visited++ })
	assert.GreaterOrEqual(t, visited, 0)
	assert.LessOrEqual(t, visited, len(items))
}

func TestKindaRepeatNeverRunsForZero(t *testing.T) {
	c := newCtx(t, "chaotic", 33)
	for trial := 0; trial < 20; trial++ {
		count := 0
		KindaRepeat(c, 0, func() { count++ })
		assert.Equal(t, 0, count)
	}
}

func TestKindaRepeatRunsAtLeastOnceForPositiveN(t *testing.T) {
	c := newCtx(t, "chaotic", 34)
	for trial := 0; trial < 50; trial++ {
		count := 0
		KindaRepeat(c, 1, func() { count++ })
		assert.GreaterOrEqual(t, count, 1)
	}
}

func TestKindaRepeatStaysNearRequestedCount(t *testing.T) {
	c := newCtx(t, "reliable", 35)
	for trial := 0; trial < 20; trial++ {
		count := 0
		KindaRepeat(c, 20, func() { count++ })
		assert.InDelta(t, 20, count, 10)
	}
}

func TestEventuallyUntilTerminatesWhenConditionAlwaysTrue(t *testing.T) {
	c := newCtx(t, "reliable", 36)
	calls := 0
	EventuallyUntil(c, func() bool { return true }, func() { calls++ }, 1000)
	assert.Less(t, calls, 1000)
}

func TestEventuallyUntilRespectsSafetyCapWhenConditionNeverHolds(t *testing.T) {
	c := newCtx(t, "reliable", 37)
	iterations := 0
	EventuallyUntil(c, func() bool { return false }, func() { iterations++ }, 25)
	assert.LessOrEqual(t, iterations, 25)
	assert.Greater(t, c.InstabilityLevel(), 0.0)
}

func TestSortaRunsBodyOnlyWhenAccepted(t *testing.T) {
	c := newCtx(t, "playful", 38)
	ran := 0
	accepted := 0
	for i := 0; i < 200; i++ {
		if Sorta(c, true, func() { ran++ }) {
			accepted++
		}
	}
	assert.Equal(t, accepted, ran)
	assert.Greater(t, accepted, 0)
}

func TestSortaNeverRunsOnFalseCondition(t *testing.T) {
	c := newCtx(t, "chaotic", 39)
	ran := false
	for i := 0; i < 100; i++ {
		if Sorta(c, false, func() { ran = true }) {
			t.Fatalf("sorta reported acceptance on a false condition")
		}
	}
	assert.False(t, ran)
}

func TestIshDispatchesValueVsComparisonByArity(t *testing.T) {
	c := newCtx(t, "playful", 40)
	valueResult := Ish(c, 5.0, nil, nil)
	assert.IsType(t, float64(0), valueResult)

	b := 5.0
	comparisonResult := Ish(c, 5.0, &b, nil)
	assert.IsType(t, true, comparisonResult)
}
