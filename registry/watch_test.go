package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/snippetkit/snippet"
)

func writeTemplates(t *testing.T, path string, keys ...string) {
	t.Helper()
	templates := New()
	for _, key := range keys {
		templates.SetComponent(key, []snippet.Definition{{Title: "React", Language: snippet.LanguageJavaScript, Code: key}})
	}
	require.NoError(t, Save(path, templates))
}

// waitFor reads updates until one holds want components or the deadline
// passes.
func waitFor(t *testing.T, ch <-chan Update, want int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case update, ok := <-ch:
			require.True(t, ok, "watch closed early")
			if update.Err == nil && len(update.Templates.Components) == want {
				return
			}
		case <-deadline:
			t.Fatalf("no update with %d components", want)
		}
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	writeTemplates(t, path, "a")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := Watch(ctx, path)

	first := <-ch
	require.NoError(t, first.Err)
	assert.Equal(t, 1, first.Templates.Len())

	writeTemplates(t, path, "a", "b")
	waitFor(t, ch, 2)

	cancel()
	for range ch {
	}
}

func TestWatch_MissingFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	update := <-Watch(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, update.Err, os.ErrNotExist)
}

func TestWatchPolling(t *testing.T) {
	saved := pollInterval
	pollInterval = 10 * time.Millisecond
	t.Cleanup(func() { pollInterval = saved })

	path := filepath.Join(t.TempDir(), "templates.yaml")
	writeTemplates(t, path, "a")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan Update, 1)
	done := make(chan struct{})
	last := stamp(path)
	go func() {
		defer close(done)
		watchPolling(ctx, ch, path, last)
	}()

	writeTemplates(t, path, "a", "b", "c")
	waitFor(t, ch, 3)

	cancel()
	<-done
}
