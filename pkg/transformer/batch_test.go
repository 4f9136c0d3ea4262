package transformer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTransformAllWritesOutputForEachFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	p1 := writeTempSource(t, dir, "a.knda", "~sometimes(true):\n    print(1)\n")
	p2 := writeTempSource(t, dir, "b.knda", "~maybe(true):\n    print(2)\n")

	coord := NewBatchCoordinator(nil, true, 1000)
	results := coord.TransformAll([]string{p1, p2}, outDir, 2, make(chan struct{}))

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success, r.Error)
		_, err := os.Stat(r.OutputPath)
		assert.NoError(t, err)
	}
}

func TestTransformAllWritesRuntimeModuleAlongsideOutput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	p1 := writeTempSource(t, dir, "a.knda", "~sometimes(true):\n    print(1)\n")

	coord := NewBatchCoordinator(nil, true, 1000)
	results := coord.TransformAll([]string{p1}, outDir, 1, make(chan struct{}))

	require.Len(t, results, 1)
	require.True(t, results[0].Success, results[0].Error)

	runtimePath := filepath.Join(outDir, "kinda_runtime.py")
	body, err := os.ReadFile(runtimePath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "def sometimes(")
}

func TestTransformAllRecordsAuditLogAndSummary(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	p1 := writeTempSource(t, dir, "a.knda", "~sometimes(true):\n    print(1)\n")

	coord := NewBatchCoordinator(nil, true, 1000)
	coord.TransformAll([]string{p1}, outDir, 1, make(chan struct{}))

	summary := coord.GetSummary()
	assert.Greater(t, summary.TotalActions, 0)
	assert.Equal(t, 0, summary.Failed)
	assert.NotEmpty(t, coord.AuditLog())
}

func TestTransformAllReportsPreflightFailure(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	p1 := writeTempSource(t, dir, "broken.knda", "~kinda_repeat(-1):\n    do_work()\n")

	coord := NewBatchCoordinator(nil, true, 1000)
	results := coord.TransformAll([]string{p1}, outDir, 1, make(chan struct{}))

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
}

func TestTransformAllStopsQueuedFilesWhenStopAlreadyClosed(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	p1 := writeTempSource(t, dir, "a.knda", "~sometimes(true):\n    print(1)\n")

	stop := make(chan struct{})
	close(stop)

	coord := NewBatchCoordinator(nil, true, 1000)
	results := coord.TransformAll([]string{p1}, outDir, 1, stop)

	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
}
