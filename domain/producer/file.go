package producer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileFollower serves the newest content of an image file that another
// process keeps rewriting. Each Frame call returns a version not served
// before, blocking until one exists.
type FileFollower struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	latest  []byte
	version uint64
	served  uint64
	changed chan struct{}
}

// NewFileFollower watches path. The file need not exist yet.
func NewFileFollower(path string, logger *slog.Logger) (*FileFollower, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	f := &FileFollower{path: abs, logger: logger, watcher: w, changed: make(chan struct{}, 1)}
	f.reload()
	return f, nil
}

// Run consumes watcher events until ctx is done or the watcher closes.
func (f *FileFollower) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				f.reload()
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Error("frame file watcher", "error", err)
		}
	}
}

// reload reads the file and publishes it when the content changed. Writers
// that truncate first produce empty reads; those are ignored.
func (f *FileFollower) reload() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("frame file read", "path", f.path, "error", err)
		}
		return
	}
	if len(data) == 0 {
		return
	}
	f.mu.Lock()
	if bytes.Equal(data, f.latest) {
		f.mu.Unlock()
		return
	}
	f.latest = data
	f.version++
	f.mu.Unlock()
	select {
	case f.changed <- struct{}{}:
	default:
	}
}

func (f *FileFollower) Frame(ctx context.Context) ([]byte, error) {
	for {
		f.mu.Lock()
		if f.version > f.served {
			f.served = f.version
			data := f.latest
			f.mu.Unlock()
			return data, nil
		}
		f.mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-f.changed:
		}
	}
}

// Close stops watching the file.
func (f *FileFollower) Close() error { return f.watcher.Close() }
