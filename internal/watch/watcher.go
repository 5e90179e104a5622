// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a callback when watched read-mes or their script
// directories change. Events are debounced so a burst of writes (editor
// save, git checkout) triggers one re-validation.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is used when Config.Debounce is unset.
const defaultDebounce = 400 * time.Millisecond

// ErrNoPaths is returned when a Watcher is built without paths.
var ErrNoPaths = errors.New("watch: no paths to watch")

type (
	// Config describes what to watch and what to do on changes.
	Config struct {
		// Paths are the read-me files whose parent directories are
		// monitored. Must not be empty.
		Paths []string

		// Debounce is the quiet window after the last event before
		// OnChange fires. Non-positive values use defaultDebounce.
		Debounce time.Duration

		// OnChange is invoked once per debounce window. A nil callback is
		// a no-op; a returned error is logged, not fatal, so a broken
		// read-me can be fixed while the watcher keeps running.
		OnChange func(ctx context.Context) error
	}

	// Watcher monitors the source directories of a set of read-mes. Run
	// must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		debounce time.Duration
		started  atomic.Bool
	}
)

// New creates a Watcher registered on the parent directory of every path.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, ErrNoPaths
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	seen := map[string]struct{}{}
	for _, path := range cfg.Paths {
		dir := filepath.Dir(path)
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		if err := fsw.Add(dir); err != nil {
			fsw.Close() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("watch: register %s: %w", dir, err)
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Watcher{cfg: cfg, fsw: fsw, debounce: debounce}, nil
}

// Run blocks until ctx is cancelled, coalescing filesystem events and
// firing the OnChange callback once per quiet window. It returns nil on
// clean cancellation. Run must be called exactly once.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}
	defer w.fsw.Close() //nolint:errcheck // best-effort cleanup

	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if w.cfg.OnChange == nil {
			return
		}
		if err := w.cfg.OnChange(ctx); err != nil {
			log.Warn("re-validation failed", "err", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}
