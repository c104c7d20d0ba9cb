// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package theme

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	st := NewFileStorage(path)
	attr := NewAttribute("dark")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, WatchStarted(ctx, st, attr))

	// another process saving a new choice
	other := NewFileStorage(path)
	require.NoError(t, other.SetItem(StorageKey, "light"))

	assert.Eventually(t, func() bool {
		return attr.Get() == Light
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatchStopsOnCancel(t *testing.T) {
	st := NewFileStorage(filepath.Join(t.TempDir(), "settings.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, st, NewAttribute(""))
	}()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
