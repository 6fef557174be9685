package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
)

// Watcher reloads a theme file whenever it changes on disk and publishes
// the result. A reload that fails keeps the last good theme and reports
// the error through [errors.Report].
type Watcher struct {
	path    string
	current *core.Observable[*Theme]
	fsw     *fsnotify.Watcher
	logger  *slog.Logger

	// Dispatch, when set, runs publication on the host's UI loop.
	Dispatch func(func())
}

// NewWatcher loads path and starts watching its directory. Editors often
// replace files by rename, so the directory is watched rather than the
// file itself.
func NewWatcher(path string) (*Watcher, error) {
	th, err := Load(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.E("theme.NewWatcher", errors.KindTheme, err).WithPath(path)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, errors.E("theme.NewWatcher", errors.KindTheme, err).WithPath(path)
	}
	return &Watcher{
		path:    filepath.Clean(path),
		current: core.NewObservable(th),
		fsw:     fsw,
		logger:  logging.Default().With("component", "theme.watcher"),
	}, nil
}

// Theme returns the published theme.
func (w *Watcher) Theme() *core.Observable[*Theme] {
	return w.current
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

// Reload loads the file now, as if it had changed.
func (w *Watcher) Reload() {
	w.reload()
}

func (w *Watcher) reload() {
	th, err := Load(w.path)
	if err != nil {
		var se *errors.SparkError
		if errors.As(err, &se) {
			errors.Report(se)
		}
		w.logger.Warn("theme reload failed", "path", w.path, "err", err)
		return
	}
	w.logger.Info("theme reloaded", "path", w.path, "name", th.Name)
	publish := func() { w.current.Set(th) }
	if w.Dispatch != nil {
		w.Dispatch(publish)
		return
	}
	publish()
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
