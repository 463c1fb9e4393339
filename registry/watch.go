package registry

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the polling fallback checks the file.
var pollInterval = 250 * time.Millisecond

// Update is a reload of a watched registry file. Exactly one of Templates
// and Err is set.
type Update struct {
	Templates *Templates
	Err       error
}

// Watch loads the registry at path and reloads it whenever the file
// changes. The first update carries the current contents. The channel is
// closed when ctx is done.
//
// Uses fsnotify with polling fallback.
func Watch(ctx context.Context, path string) <-chan Update {
	ch := make(chan Update, 1)

	go func() {
		defer close(ch)

		watcher, err := watchDir(path)
		if err != nil {
			last := stamp(path)
			if send(ctx, ch, load(path)) {
				watchPolling(ctx, ch, path, last)
			}
			return
		}
		defer watcher.Close()

		if send(ctx, ch, load(path)) {
			watchEvents(ctx, ch, watcher, path)
		}
	}()

	return ch
}

// watchDir watches the directory holding path, which also sees files
// replaced by rename.
func watchDir(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

func watchEvents(ctx context.Context, ch chan<- Update, watcher *fsnotify.Watcher, path string) {
	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !send(ctx, ch, load(path)) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if !send(ctx, ch, Update{Err: err}) {
				return
			}
		}
	}
}

func watchPolling(ctx context.Context, ch chan<- Update, path string, last fileStamp) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			current := stamp(path)
			if current == last {
				continue
			}
			last = current
			if !send(ctx, ch, load(path)) {
				return
			}
		}
	}
}

// fileStamp identifies a version of a file for the polling fallback.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func stamp(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

func load(path string) Update {
	t, err := Load(path)
	if err != nil {
		return Update{Err: err}
	}
	return Update{Templates: t}
}

func send(ctx context.Context, ch chan<- Update, update Update) bool {
	select {
	case ch <- update:
		return true
	case <-ctx.Done():
		return false
	}
}
