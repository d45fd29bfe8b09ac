package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives the freshly parsed config, or the error that prevented it.
type ReloadFunc func(cfg SnakeConfig, err error)

// Watch re-reads path whenever it is written, created or replaced, and hands
// the result to fn. It returns once the watcher is set up; watching stops when
// ctx is cancelled.
//
// The parent directory is watched rather than the file itself: editors that
// save by renaming a temp file over the original would otherwise drop the watch.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, loadErr := LoadFile(abs)
				fn(cfg, loadErr)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fn(SnakeConfig{}, fmt.Errorf("config: watcher: %w", watchErr))
			}
		}
	}()

	return nil
}
