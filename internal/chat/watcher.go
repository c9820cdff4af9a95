package chat

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
)

// PromptWatcher serves a prompt file and reloads it when the file changes.
// A reload that fails to parse keeps the last good prompt.
type PromptWatcher struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	current Prompt

	stateMu sync.Mutex
	running bool
	closed  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewPromptWatcher loads path and prepares a watch on its directory. Editors
// that save through a temp file and rename still trigger a reload.
func NewPromptWatcher(path string, logger *slog.Logger) (*PromptWatcher, error) {
	path = filepath.Clean(path)
	p, err := LoadPromptFile(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &PromptWatcher{
		path:    path,
		logger:  logger,
		watcher: fw,
		current: p,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Prompt returns the last successfully loaded prompt.
func (w *PromptWatcher) Prompt() Prompt {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reload re-reads the file now.
func (w *PromptWatcher) Reload() error {
	p, err := LoadPromptFile(w.path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.current = p
	w.mu.Unlock()
	return nil
}

// Start runs the event loop until ctx ends or Close is called.
func (w *PromptWatcher) Start(ctx context.Context) {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	if w.running || w.closed {
		return
	}
	w.running = true
	go w.run(ctx)
}

func (w *PromptWatcher) run(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn(w.logger, "prompt watcher error", "error", err, logging.FieldFile, w.path)
		}
	}
}

func (w *PromptWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if err := w.Reload(); err != nil {
		logging.Warn(w.logger, "prompt reload failed; keeping previous prompt", "error", err, logging.FieldFile, w.path)
		return
	}
	logging.Info(w.logger, "prompt reloaded", logging.FieldFile, w.path)
}

// Close stops the loop, waits for it to exit and releases the watch.
func (w *PromptWatcher) Close() error {
	w.stateMu.Lock()
	if w.closed {
		w.stateMu.Unlock()
		return nil
	}
	w.closed = true
	running := w.running
	w.stateMu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	}
	return w.watcher.Close()
}
