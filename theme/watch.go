// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch monitors the settings file of the given storage and writes the
// persisted theme to the attribute whenever the file is changed to hold
// a theme different from the current one, such as when another process
// saves a new choice. The directory of the file is watched, not the file
// itself, since the file is replaced on every save. Watch blocks until
// ctx is done, returning nil in that case.
func Watch(ctx context.Context, st *FileStorage, attr *Attribute) error {
	watcher, path, err := newWatcher(st)
	if err != nil {
		return err
	}
	defer watcher.Close()
	return watchLoop(ctx, watcher, path, st, attr)
}

// WatchStarted is like [Watch], except that it returns as soon as the
// watcher is registered, running the watch loop in a new goroutine.
// Errors that happen after that are logged.
func WatchStarted(ctx context.Context, st *FileStorage, attr *Attribute) error {
	watcher, path, err := newWatcher(st)
	if err != nil {
		return err
	}
	go func() {
		defer watcher.Close()
		errors.Log(watchLoop(ctx, watcher, path, st, attr))
	}()
	return nil
}

func newWatcher(st *FileStorage) (*fsnotify.Watcher, string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, "", fmt.Errorf("theme: creating settings file watcher: %w", err)
	}
	path := filepath.Clean(st.Path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		watcher.Close()
		return nil, "", err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, "", fmt.Errorf("theme: watching %q: %w", dir, err)
	}
	return watcher, path, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, st *FileStorage, attr *Attribute) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			v, ok := st.Item(StorageKey)
			if !ok {
				continue
			}
			if th := Parse(v); th != attr.Get() {
				slog.Info("theme changed in settings file", "theme", th, "file", path)
				attr.SetTheme(th)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("theme settings watcher error", "err", err)
		}
	}
}
