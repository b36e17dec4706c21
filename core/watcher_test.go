package core

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchDir_CallsOnChangeForTemplates(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w, err := WatchDir(dir, zap.NewNop(), func() { calls.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("b"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestWatchDir_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w, err := WatchDir(dir, zap.NewNop(), func() { calls.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("a"), 0644))

	time.Sleep(3 * watchDebounce)
	assert.Zero(t, calls.Load())
}

func TestWatchDir_MissingDirectory(t *testing.T) {
	_, err := WatchDir(filepath.Join(t.TempDir(), "nope"), zap.NewNop(), func() {})
	assert.Error(t, err)
}

func TestWatcher_NoCallbackAfterClose(t *testing.T) {
	var calls atomic.Int32
	w, err := WatchDir(t.TempDir(), zap.NewNop(), func() { calls.Add(1) })
	require.NoError(t, err)

	w.schedule()
	require.NoError(t, w.Close())
	w.schedule()

	time.Sleep(3 * watchDebounce)
	assert.Zero(t, calls.Load())
}

func TestWatcher_CloseWaitsForRunningCallback(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	w, err := WatchDir(t.TempDir(), zap.NewNop(), func() {
		close(started)
		time.Sleep(2 * watchDebounce)
		finished.Store(true)
	})
	require.NoError(t, err)

	w.schedule()
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("onChange never ran")
	}

	require.NoError(t, w.Close())
	assert.True(t, finished.Load())
}
