package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"blockpad/internal/logger"
)

// ─────────────────────────────────────────────────────────────
// StoreWatcher — external-change detection for the blob file
// ─────────────────────────────────────────────────────────────

// watchDebounce coalesces the burst of write events most editors and
// atomic-rename saves produce into one notification.
const watchDebounce = 200 * time.Millisecond

// StoreWatcher watches the store blob on disk and emits a
// "store:changed" event when another process rewrites it, so an open
// UI can reload its document list.
type StoreWatcher struct {
	watcher *fsnotify.Watcher
	emitter EventEmitter
	path    string

	mu    sync.Mutex
	timer *time.Timer
}

// NewStoreWatcher starts watching the directory containing path.
// fsnotify watches dirs for file events, so renames over the blob
// (the usual atomic-save pattern) are seen too.
func NewStoreWatcher(path string, emitter EventEmitter) (*StoreWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &StoreWatcher{
		watcher: watcher,
		emitter: emitter,
		path:    absPath,
	}
	go w.watchLoop()
	return w, nil
}

// Close stops the watcher.
func (w *StoreWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *StoreWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			if absPath != w.path {
				continue
			}
			w.scheduleEmit()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Sugar.Warnw("store watcher error", "error", err)
		}
	}
}

func (w *StoreWatcher) scheduleEmit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Reset(watchDebounce)
		return
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		w.timer = nil
		w.mu.Unlock()
		w.emitter.Emit(context.Background(), EventStoreChanged, w.path)
	})
}
