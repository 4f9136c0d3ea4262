package composition

import (
	"testing"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredCompositionsAreResolvable(t *testing.T) {
	_, ok := Get("sorta")
	assert.True(t, ok)
	_, ok = Get("ish_tolerance")
	assert.True(t, ok)
}

func TestGetUnknownCompositionReturnsFalse(t *testing.T) {
	_, ok := Get("not_a_real_composition")
	assert.False(t, ok)
}

func TestSortaCompositionRunsBodyOnAcceptance(t *testing.T) {
	ctx, err := personality.NewContextWithSeed("playful", 50)
	require.NoError(t, err)
	comp, _ := Get("sorta")

	ran := false
	accepted := false
	for i := 0; i < 200 && !ran; i++ {
		result := comp.Apply(ctx, true, func() { ran = true })
		if result.(bool) {
			accepted = true
		}
	}
	assert.Equal(t, accepted, ran)
}

func TestApplyIshHonorsFeatureFlag(t *testing.T) {
	ctx, err := personality.NewContextWithSeed("reliable", 51)
	require.NoError(t, err)

	USE_COMPOSITION_ISH = false
	defer func() { USE_COMPOSITION_ISH = true }()

	tol := 0.5
	result := ApplyIsh(ctx, 10.0, 10.0, &tol)
	assert.IsType(t, true, result)
}

func TestInvalidateCacheClearsOnlyGivenContext(t *testing.T) {
	ctx1, _ := personality.NewContextWithSeed("playful", 52)
	ctx2, _ := personality.NewContextWithSeed("playful", 53)

	comp, _ := Get("sorta")
	comp.Apply(ctx1, true, func() {})
	comp.Apply(ctx2, true, func() {})

	InvalidateCache(ctx1)

	cacheMu.Lock()
	for k := range cache {
		assert.NotEqual(t, ctx1, k.ctx)
	}
	cacheMu.Unlock()
}
