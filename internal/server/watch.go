package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 500 * time.Millisecond

// Watcher rebuilds the site when content changes and then notifies the
// livereload hub. Change bursts are debounced so an editor save that
// touches several files triggers one rebuild.
type Watcher struct {
	dir     string
	log     *zap.Logger
	rebuild func() error
	hub     *Hub
}

// NewWatcher watches dir recursively. rebuild runs after each settled
// burst of changes.
func NewWatcher(dir string, hub *Hub, log *zap.Logger, rebuild func() error) *Watcher {
	return &Watcher{dir: dir, hub: hub, log: log, rebuild: rebuild}
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := addRecursive(fw, w.dir); err != nil {
		return err
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				// New directories need their own watch.
				_ = addRecursive(fw, ev.Name)
			}
			if !relevant(ev) {
				continue
			}
			w.log.Debug("content changed", zap.String("path", ev.Name))
			if timer == nil {
				timer = time.AfterFunc(debounceDelay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounceDelay)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-fire:
			timer = nil
			if err := w.rebuild(); err != nil {
				w.log.Error("rebuild failed", zap.Error(err))
				continue
			}
			w.log.Info("site rebuilt")
			w.hub.Broadcast("reload")
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.HasSuffix(base, ".md") || ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return fs.SkipDir
		}
		return fw.Add(path)
	})
}
