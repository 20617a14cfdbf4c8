// Package watch reloads files when they change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// FileWatcher watches a single file and calls onChange once its events
// settle. The parent directory is watched so atomic renames are seen.
type FileWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	dir         string
	onChange    func(path string)
	logger      *zap.Logger
	pending     bool
	lastEvent   time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets the settle window.
func WithDebounce(d time.Duration) Option {
	return func(fw *FileWatcher) {
		if d > 0 {
			fw.debounceDur = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(fw *FileWatcher) {
		if l != nil {
			fw.logger = l
		}
	}
}

// New creates a watcher for path. onChange runs on the watcher goroutine.
func New(path string, onChange func(path string), opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:     w,
		path:        abs,
		dir:         filepath.Dir(abs),
		onChange:    onChange,
		logger:      zap.NewNop(),
		debounceDur: DefaultDebounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(fw)
	}
	fw.logger = fw.logger.With(zap.String("path", abs))
	return fw, nil
}

// Start begins watching. It is non-blocking.
func (fw *FileWatcher) Start(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	fw.mu.Unlock()

	if err := fw.watcher.Add(fw.dir); err != nil {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		return fmt.Errorf("watch %s: %w", fw.dir, err)
	}
	fw.logger.Debug("watching")

	go fw.run(ctx)
	return nil
}

// Run starts the watcher and blocks until ctx is done, then stops it. The
// watcher is released on every return path.
func (fw *FileWatcher) Run(ctx context.Context) error {
	if err := fw.Start(ctx); err != nil {
		fw.Stop()
		return err
	}
	<-ctx.Done()
	fw.Stop()
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		fw.watcher.Close()
		return
	}
	fw.running = false
	fw.mu.Unlock()

	close(fw.stopCh)
	<-fw.doneCh

	if err := fw.watcher.Close(); err != nil {
		fw.logger.Warn("close watcher", zap.Error(err))
	}
	fw.logger.Debug("stopped")
}

func (fw *FileWatcher) run(ctx context.Context) {
	defer close(fw.doneCh)

	ticker := time.NewTicker(fw.debounceDur / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watch error", zap.Error(err))
			fw.mu.Lock()
			fw.stats.Errors++
			fw.mu.Unlock()

		case <-ticker.C:
			fw.flush()
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != fw.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	default:
		return
	}

	fw.mu.Lock()
	fw.pending = true
	fw.lastEvent = time.Now()
	fw.stats.Events++
	fw.stats.LastEventTime = fw.lastEvent
	fw.stats.LastEventType = eventType
	fw.mu.Unlock()
}

// flush fires onChange when the last event is older than the debounce window.
func (fw *FileWatcher) flush() {
	fw.mu.Lock()
	if !fw.pending || time.Since(fw.lastEvent) < fw.debounceDur {
		fw.mu.Unlock()
		return
	}
	fw.pending = false
	fw.stats.Reloads++
	fw.mu.Unlock()

	fw.logger.Debug("file settled, reloading")
	if fw.onChange != nil {
		fw.onChange(fw.path)
	}
}

// Stats returns a copy of the current statistics.
func (fw *FileWatcher) Stats() Stats {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	return fw.stats
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.path
}
