package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watchDebounce collapses the burst of events editors emit on save
const watchDebounce = 200 * time.Millisecond

// sceneWatcher reports changes to a single scene file. It watches the parent
// directory so that editors which save by renaming are still seen.
type sceneWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// newSceneWatcher creates a watcher for path
func newSceneWatcher(path string, debounce time.Duration) (*sceneWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve path %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", absPath)
	}

	return &sceneWatcher{watcher: watcher, path: absPath, debounce: debounce}, nil
}

// Run calls onChange after each debounced burst of writes to the file until ctx is done
func (sw *sceneWatcher) Run(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(sw.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			// Only trigger on write or create events
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(sw.debounce)
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf("watcher error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}

// Close stops the watcher
func (sw *sceneWatcher) Close() error {
	return sw.watcher.Close()
}

// watchAndRender renders the scene file now and again after every change
func watchAndRender(ctx context.Context, opts *renderOptions, stdout io.Writer) error {
	if opts.out == "" {
		return errors.New("--watch requires --out")
	}
	if _, err := os.Stat(opts.scene); err != nil {
		return errors.Wrap(err, "--watch requires a scene file")
	}

	watcher, err := newSceneWatcher(opts.scene, watchDebounce)
	if err != nil {
		return err
	}
	defer watcher.Close()

	render := func() {
		if err := renderToOutput(opts, stdout); err != nil {
			// Keep watching; the file is likely mid-edit
			logger.Errorf("render failed: %v", err)
		}
	}

	render()
	logger.Noticef("watching %s for changes", opts.scene)
	return watcher.Run(ctx, render)
}
