package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 5 * time.Second

// start runs Run in the background and returns a channel receiving one value
// per OnChange call.
func start(t *testing.T, root string, opts Options, result error) <-chan struct{} {
	t.Helper()

	calls := make(chan struct{}, 16)
	opts.OnChange = func(context.Context) error {
		calls <- struct{}{}
		return result
	}
	if opts.Debounce == 0 {
		opts.Debounce = 10 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- Run(ctx, root, opts) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(waitFor):
			t.Error("Run did not return after cancel")
		}
	})

	return calls
}

// touchUntil rewrites path until a call arrives or the deadline passes.
func touchUntil(t *testing.T, path string, calls <-chan struct{}) bool {
	t.Helper()

	deadline := time.After(waitFor)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		require.NoError(t, os.WriteFile(path, []byte("datasets: []\n"), 0o644))

		select {
		case <-calls:
			return true
		case <-deadline:
			return false
		case <-tick.C:
		}
	}
}

func TestRun_TriggersOnYAMLWrite(t *testing.T) {
	root := t.TempDir()
	calls := start(t, root, Options{}, nil)

	assert.True(t, touchUntil(t, filepath.Join(root, "collections.yaml"), calls))
}

func TestRun_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	calls := start(t, root, Options{}, nil)

	sub := filepath.Join(root, "teamA", "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	assert.True(t, touchUntil(t, filepath.Join(sub, "monitors.yml"), calls))
}

func TestRun_KeepsWatchingAfterFailure(t *testing.T) {
	root := t.TempDir()
	calls := start(t, root, Options{}, errors.New("boom"))

	path := filepath.Join(root, "m.yaml")
	assert.True(t, touchUntil(t, path, calls))
	assert.True(t, touchUntil(t, path, calls))
}

func TestRun_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "rendered_monitors")
	require.NoError(t, os.MkdirAll(out, 0o755))

	var fired atomic.Bool
	calls := start(t, root, Options{Ignore: []string{out}}, nil)

	go func() {
		for range calls {
			fired.Store(true)
		}
	}()

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		require.NoError(t, os.WriteFile(filepath.Join(out, "teamA.m.yaml"), []byte("id: x\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
		time.Sleep(50 * time.Millisecond)
	}

	assert.False(t, fired.Load())
}

func TestRun_RequiresOnChange(t *testing.T) {
	err := Run(context.Background(), t.TempDir(), Options{})
	require.Error(t, err)
}
