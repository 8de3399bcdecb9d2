package integrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnGradleChange(t *testing.T) {
	root := scaffoldGroovyProject(t)

	fired := make(chan struct{}, 1)
	w := NewWatcher(root, "app", 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Give the watcher a moment to establish its watches.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(root, "app", "build.gradle")
	require.NoError(t, os.WriteFile(path, []byte(groovyAppBuild+"\n// touched\n"), 0644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected watcher callback after build.gradle change")
	}
}

func TestWatcher_IgnoresIrrelevantFiles(t *testing.T) {
	root := scaffoldGroovyProject(t)

	fired := make(chan struct{}, 1)
	w := NewWatcher(root, "app", 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("docs"), 0644))

	select {
	case <-fired:
		t.Fatal("watcher should not fire for README.md")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := NewWatcher(t.TempDir(), "app", 0, func() {})
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}

func TestWatcher_StartTwice(t *testing.T) {
	w := NewWatcher(t.TempDir(), "app", 0, func() {})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.NoError(t, w.Start(context.Background()))
}

func TestWatcher_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(t.TempDir(), "app", 0, func() {})
	require.NoError(t, w.Start(ctx))

	cancel()
	// Stop must still be safe after the context shut the loop down.
	time.Sleep(50 * time.Millisecond)
	w.Stop()
}
