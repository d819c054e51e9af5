// Package watch re-runs an action whenever YAML files of a workspace change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"dqac/internal/common"
)

// DefaultDebounce groups bursts of events (editors often write a file in
// several steps) into a single OnChange call.
const DefaultDebounce = 200 * time.Millisecond

// Options configure Run.
type Options struct {
	// OnChange is called after YAML files under the root change. Errors are
	// logged and watching continues.
	OnChange func(ctx context.Context) error

	// Ignore lists directories whose content never triggers OnChange, such
	// as the rendered output folder.
	Ignore []string

	// Debounce overrides DefaultDebounce.
	Debounce time.Duration

	Logger *zap.Logger
}

// Run watches root and its sub-directories until ctx is cancelled.
func Run(ctx context.Context, root string, opts Options) error {
	if opts.OnChange == nil {
		return errors.New("watch: OnChange is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &watcher{root: root, logger: logger}
	for _, dir := range opts.Ignore {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		w.ignore = append(w.ignore, abs)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fsw.Close()
	w.fsw = fsw

	if err := w.addTree(root); err != nil {
		return err
	}

	logger.Info("watching for changes", zap.String("root", root))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !w.handle(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil

			if err := opts.OnChange(ctx); err != nil {
				logger.Error("reload failed", zap.Error(err))
				continue
			}

			logger.Info("reloaded", zap.String("root", root))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			logger.Error("watcher error", zap.Error(err))
		}
	}
}

type watcher struct {
	root   string
	ignore []string
	fsw    *fsnotify.Watcher
	logger *zap.Logger
}

// handle registers new directories and reports whether event should
// trigger a reload.
func (w *watcher) handle(event fsnotify.Event) bool {
	if w.ignored(event.Name) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}

			return false
		}
	}

	if !common.IsYAML(event.Name) {
		return false
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	w.logger.Debug("change detected",
		zap.String("path", event.Name),
		zap.String("op", event.Op.String()),
	)

	return true
}

func (w *watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if (path != dir && strings.HasPrefix(d.Name(), ".")) || w.ignored(path) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}

func (w *watcher) ignored(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, dir := range w.ignore {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
