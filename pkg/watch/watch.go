// Package watch re-runs a sync whenever tracked files appear, move or
// disappear in the source or destination trees.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long Run waits for a burst of events to settle
const DefaultDebounce = 250 * time.Millisecond

// Options configures Run
type Options struct {
	// Debounce defaults to DefaultDebounce
	Debounce time.Duration
}

// Func is called for every settled batch of changes. A returned error is
// logged and watching continues.
type Func func(ctx context.Context) error

type watcher struct {
	fsw     *fsnotify.Watcher
	layout  types.Layout
	watched map[string]bool
	logger  zerolog.Logger
}

// Run calls fn once, then again after every batch of relevant changes,
// until ctx is done. It returns nil when ctx is cancelled.
//
// Watched directories are the source root, the destination root and both
// projects directories. Projects directories that do not exist yet are
// picked up after the next call to fn.
func Run(ctx context.Context, layout types.Layout, opts Options, fn Func) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot start file watcher")
	}
	defer func() { _ = fsw.Close() }()

	w := &watcher{
		fsw:     fsw,
		layout:  layout,
		watched: map[string]bool{},
		logger:  logging.GetLogger("watch"),
	}

	if info, err := os.Stat(layout.SourceDir); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrNotFound, "source directory %s does not exist", layout.SourceDir).
			WithDetail("path", layout.SourceDir)
	}
	if err := w.add(layout.SourceDir); err != nil {
		return err
	}

	w.run(ctx, fn)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("Watch stopped")
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("Change detected")
			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				timer.Reset(opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case <-fire:
			fire = nil
			w.run(ctx, fn)
		}
	}
}

// run calls fn and then starts watching directories it may have created
func (w *watcher) run(ctx context.Context, fn Func) {
	if err := fn(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Sync failed while watching")
	}
	for _, dir := range []string{w.layout.SourceProjects(), w.layout.DestDir, w.layout.DestProjects()} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if err := w.add(dir); err != nil {
				w.logger.Warn().Err(err).Msg("Cannot watch directory")
			}
		}
	}
}

func (w *watcher) add(dir string) error {
	if w.watched[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot watch %s", dir).WithDetail("path", dir)
	}
	w.watched[dir] = true
	w.logger.Debug().Str("path", dir).Msg("Watching directory")
	return nil
}

// relevant reports whether ev can change what a sync would do. Content
// writes are ignored, the links already point at the files.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	if name == w.layout.ProjectsDir {
		return true
	}
	_, ok := w.layout.Matcher.Match(name)
	return ok
}
