package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/logger"
)

// DefaultReloadInterval is the minimum gap between two reloads.
const DefaultReloadInterval = 500 * time.Millisecond

// Reload reports the outcome of one reload triggered by a file change.
type Reload struct {
	Documents int
	Err       error
}

// Watcher reloads a ReloadingStore whenever its corpus file changes.
// Bursts of events are collapsed: at most one reload runs per interval.
type Watcher struct {
	store   *ReloadingStore
	path    string
	limiter *rate.Limiter
	fs      *fsnotify.Watcher
}

// NewWatcher watches the corpus file at path for store.
// The parent directory is watched so that atomic replaces are seen.
func NewWatcher(store *ReloadingStore, path string, interval time.Duration) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: the builtin corpus cannot be watched", domain.ErrInvalidInput)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	return &Watcher{
		store:   store,
		path:    abs,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		fs:      fs,
	}, nil
}

// Run reloads the store on every relevant change until ctx is done.
// The returned channel is closed when Run stops.
func (w *Watcher) Run(ctx context.Context) <-chan Reload {
	out := make(chan Reload)

	go func() {
		defer close(out)
		logger.Debug("Watching %s", w.path)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				if err := w.limiter.Wait(ctx); err != nil {
					return
				}
				w.drain()

				result := Reload{Err: w.store.Reload(ctx)}
				result.Documents = w.store.Len()
				if result.Err == nil {
					logger.Info("Reloaded %d documents from %s", result.Documents, w.path)
				}

				select {
				case out <- result:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()

	return out
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards events queued while waiting on the limiter.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
