package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesSplitsKeyValue(t *testing.T) {
	overrides, err := ParseOverrides([]string{"mood=chaotic", "seed=7"})
	require.NoError(t, err)
	assert.Equal(t, "chaotic", overrides["mood"])
	assert.Equal(t, "7", overrides["seed"])
}

func TestParseOverridesRejectsMissingEquals(t *testing.T) {
	_, err := ParseOverrides([]string{"mood"})
	assert.Error(t, err)
}

func TestApplyOverridesSetsMoodAndSeed(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyOverrides(cfg, map[string]string{"mood": "chaotic", "seed": "99"})
	require.NoError(t, err)
	assert.Equal(t, "chaotic", cfg.Personality.DefaultMood)
	assert.Equal(t, int64(99), cfg.Personality.DefaultSeed)
}

func TestApplyOverridesRejectsUnknownKey(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyOverrides(cfg, map[string]string{"not_a_real_key": "x"})
	assert.Error(t, err)
}

func TestApplyOverridesRejectsBadSeed(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyOverrides(cfg, map[string]string{"seed": "not-a-number"})
	assert.Error(t, err)
}

func TestApplyOverridesSetsUseCompositionIsh(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyOverrides(cfg, map[string]string{"composition.use_composition_ish": "false"})
	require.NoError(t, err)
	assert.False(t, cfg.Composition.UseCompositionIsh)
}
