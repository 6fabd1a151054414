package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses bursts of writes into one change signal
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports when the files behind a store change on disk, e.g. when
// the CLI writes to the board while the TUI is open
type Watcher struct {
	watcher  *fsnotify.Watcher
	targets  map[string]bool // watched files; a directory entry matches everything inside it
	changes  chan struct{}
	stop     chan struct{}
	once     sync.Once
	debounce time.Duration
}

// New watches paths. Each path may be a file or a directory; files are
// watched through their parent directory.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		targets:  make(map[string]bool),
		changes:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		debounce: debounce,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.targets[abs] = true
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			dirs[abs] = true
		} else {
			dirs[filepath.Dir(abs)] = true
		}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Changes delivers one signal per debounced burst of changes
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run processes events until ctx is done or Close is called
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Store change detected", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.signal)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Store watcher error", slog.Any("error", err))
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false // scratch files
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.targets[name] || w.targets[filepath.Dir(name)]
}

func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
