package docs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period before a change is checked.
const DefaultDebounceInterval = 100 * time.Millisecond

// Watcher follows the API document and logs when it stops or resumes being
// servable. It watches the parent directory so atomic replacements and
// re-creations are seen.
type Watcher struct {
	server   *Server
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce *Debouncer
	healthy  atomic.Bool

	// onChange, when set, runs after every check with the new health.
	onChange func(healthy bool)

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for the server's document.
func NewWatcher(server *Server, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounceInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		server:   server,
		watcher:  fsw,
		logger:   slog.Default().With("component", "docs.watcher"),
		debounce: NewDebouncer(debounce),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Healthy reports whether the most recent check found a servable document.
func (w *Watcher) Healthy() bool {
	return w.healthy.Load()
}

// OnChange registers fn to run after every check.
func (w *Watcher) OnChange(fn func(healthy bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Watch checks the document once and then follows its directory until ctx
// is cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer close(w.doneCh)

	dir := filepath.Dir(w.server.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	if err := w.check(); err != nil {
		w.logger.Warn("api document is not servable", "path", w.server.Path(), "error", err)
	} else {
		w.logger.Info("api document watcher started", "path", w.server.Path())
	}

	target := filepath.Clean(w.server.Path())

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.stopCh:
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target || event.Op == fsnotify.Chmod {
				continue
			}

			w.logger.Debug("api document event", "op", event.Op.String())

			w.debounce.Trigger(func() {
				wasHealthy := w.Healthy()
				err := w.check()
				switch {
				case err != nil && wasHealthy:
					w.logger.Warn("api document is no longer servable",
						"path", w.server.Path(),
						"error", err,
					)
				case err == nil && !wasHealthy:
					w.logger.Info("api document is servable again", "path", w.server.Path())
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("api document watcher error", "error", err)
		}
	}
}

// check reads the document and records the result.
func (w *Watcher) check() error {
	_, err := w.server.Read()
	w.healthy.Store(err == nil)

	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn(err == nil)
	}
	return err
}

// Stop stops the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}
