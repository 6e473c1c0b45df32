package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Events arriving within this time are merged into one change.
const watchDebounce = 100 * time.Millisecond

// Watcher calls OnChange (from its own goroutine) when the file is written or replaced.
type Watcher struct {
	filename string
	onChange func()
	logger   *slog.Logger

	w        *fsnotify.Watcher
	mu       sync.Mutex
	timer    *time.Timer
	closeErr error
	done     chan struct{}
}

func NewWatcher(filename string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watcher")
	}
	// editors often replace the file, watch the directory
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		w0.Close()
		return nil, errors.Wrap(err, "watcher")
	}
	w := &Watcher{
		filename: abs,
		onChange: onChange,
		logger:   logger,
		w:        w0,
		done:     make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	return err
}

func (w *Watcher) eventLoop() {
	defer close(w.done)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Warn("options watcher", "err", err)
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("options file event", "op", ev.Op.String())
			w.schedule()
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, w.onChange)
}
