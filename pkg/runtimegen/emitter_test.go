package runtimegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesPreambleAndTransitiveDeps(t *testing.T) {
	out, err := Render([]string{"eventually_until"}, true, 1000)
	require.NoError(t, err)
	assert.Contains(t, out, "class _Personality")
	assert.Contains(t, out, "def wilson_interval")
	assert.Contains(t, out, "def eventually_until")
}

func TestRenderOrdersDependenciesBeforeDependents(t *testing.T) {
	out, err := Render([]string{"eventually_until"}, true, 1000)
	require.NoError(t, err)
	wilsonIdx := indexOf(t, out, "def wilson_interval")
	evUntilIdx := indexOf(t, out, "def eventually_until")
	assert.Less(t, wilsonIdx, evUntilIdx)
}

func TestRenderUnknownHelperErrors(t *testing.T) {
	_, err := Render([]string{"not_a_real_construct"}, true, 1000)
	require.Error(t, err)
}

func TestRenderHonorsCompositionFlagAndIterationCap(t *testing.T) {
	on, err := Render([]string{"sorta"}, true, 250)
	require.NoError(t, err)
	assert.Contains(t, on, "USE_COMPOSITION_ISH = True")
	assert.Contains(t, on, "MAX_EVENTUALLY_ITERATIONS = 250")

	off, err := Render([]string{"sorta"}, false, 250)
	require.NoError(t, err)
	assert.Contains(t, off, "USE_COMPOSITION_ISH = False")
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := Render([]string{"ish", "welp_fallback", "kinda_repeat"}, true, 1000)
	require.NoError(t, err)
	b, err := Render([]string{"ish", "welp_fallback", "kinda_repeat"}, true, 1000)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmitRuntimeWritesAtomicallyAndIsByteIdenticalOnReRun(t *testing.T) {
	dir := t.TempDir()

	path1, err := EmitRuntime([]string{"sometimes", "sorta_print"}, dir, true, 1000)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "kinda_runtime.py"), path1)

	data1, err := os.ReadFile(path1)
	require.NoError(t, err)

	path2, err := EmitRuntime([]string{"sometimes", "sorta_print"}, dir, true, 1000)
	require.NoError(t, err)
	data2, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, data1, data2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestEmitRuntimeCreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := EmitRuntime([]string{"kinda_int"}, dir, true, 1000)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	t.Fatalf("substring %q not found", substr)
	return -1
}
