package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Personality.DefaultMood = "chaotic"
	cfg.Personality.DefaultSeed = 7

	path := filepath.Join(t.TempDir(), "kinda.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chaotic", loaded.Personality.DefaultMood)
	assert.Equal(t, int64(7), loaded.Personality.DefaultSeed)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	os.Setenv("KINDA_TEST_MOOD", "reliable")
	defer os.Unsetenv("KINDA_TEST_MOOD")

	path := filepath.Join(t.TempDir(), "kinda.yaml")
	require.NoError(t, os.WriteFile(path, []byte("personality:\n  default_mood: ${KINDA_TEST_MOOD}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reliable", cfg.Personality.DefaultMood)
}

func TestValidateRejectsEmptyMood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Personality.DefaultMood = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroConcurrency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Execution.MaxConcurrentIO = 0
	assert.Error(t, cfg.Validate())
}
