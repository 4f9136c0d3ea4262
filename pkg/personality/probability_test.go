package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChaosProbabilityStaysInUnitInterval(t *testing.T) {
	for _, name := range []string{"reliable", "cautious", "playful", "chaotic"} {
		ctx := NewContext(name)
		for i := 0; i < 100; i++ {
			ctx.UpdateChaosState("sometimes", i%2 == 0)
			p := ctx.ChaosProbability("sometimes", true)
			assert.GreaterOrEqual(t, p, 0.0, "profile %s", name)
			assert.LessOrEqual(t, p, 1.0, "profile %s", name)
		}
	}
}

func TestChaosProbabilityAmplifierAboveOnePullsTowardHalf(t *testing.T) {
	profile := Profiles["chaotic"]
	p0, _ := profile.BaseProbability("sometimes")
	p := computeChaosProbability(profile, 0, "sometimes", true)
	assert.Less(t, abs(p-0.5), abs(p0-0.5))
}

func TestChaosProbabilityAmplifierBelowOnePullsTowardExtreme(t *testing.T) {
	profile := Profiles["reliable"]
	p0, _ := profile.BaseProbability("sometimes")
	p := computeChaosProbability(profile, 0, "sometimes", true)
	assert.GreaterOrEqual(t, p, p0)
}

func TestChaosProbabilityInstabilityReducesPositiveConstructs(t *testing.T) {
	profile := Profiles["cautious"]
	calm := computeChaosProbability(profile, 0, "probably", true)
	unstable := computeChaosProbability(profile, 1, "probably", true)
	assert.Less(t, unstable, calm)
}

func TestChaosProbabilityInstabilityRaisesRarely(t *testing.T) {
	profile := Profiles["cautious"]
	calm := computeChaosProbability(profile, 0, "rarely", true)
	unstable := computeChaosProbability(profile, 1, "rarely", true)
	assert.Greater(t, unstable, calm)
}

func TestLoopParametersReturnsActiveProfileParams(t *testing.T) {
	ctx := NewContext("reliable")
	lp := ctx.LoopParameters("kinda_repeat")
	assert.Equal(t, Profiles["reliable"].LoopParams["kinda_repeat"], lp)
}

func TestChaosToleranceScalesVariance(t *testing.T) {
	ctx := NewContext("chaotic")
	p := ctx.Profile()
	assert.InDelta(t, p.FloatVariance*p.ToleranceFactor, ctx.ChaosTolerance(), 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
