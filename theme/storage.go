// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// StorageKey is the key under which the chosen theme is persisted.
const StorageKey = "theme"

// Storage is a persistent string key-value store, such as
// the local storage of a browser.
type Storage interface {

	// Item returns the value stored under the given key
	// and whether there is one.
	Item(key string) (string, bool)

	// SetItem stores the given value under the given key.
	SetItem(key, value string) error
}

// MemoryStorage is a [Storage] that only lives in memory.
type MemoryStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func (ms *MemoryStorage) Item(key string) (string, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.items[key]
	return v, ok
}

func (ms *MemoryStorage) SetItem(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.items == nil {
		ms.items = map[string]string{}
	}
	ms.items[key] = value
	return nil
}

// FileStorage is a [Storage] backed by a TOML file holding a flat
// table of string values. The file is re-read on every access so
// that changes made by other processes are seen.
type FileStorage struct {

	// Path is the path of the settings file.
	Path string

	mu sync.Mutex
}

// NewFileStorage returns a new [FileStorage] for the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

// Item returns the value under key. Read and parse errors are treated
// as a missing value; use [FileStorage.Items] to see them.
func (st *FileStorage) Item(key string) (string, bool) {
	items, err := st.Items()
	if err != nil {
		return "", false
	}
	v, ok := items[key]
	return v, ok
}

// Items returns all of the values in the file. A missing
// file is not an error and results in an empty map.
func (st *FileStorage) Items() (map[string]string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.read()
}

func (st *FileStorage) read() (map[string]string, error) {
	items := map[string]string{}
	b, err := os.ReadFile(st.Path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("theme: parsing settings file %q: %w", st.Path, err)
	}
	return items, nil
}

// SetItem sets the value under key and rewrites the file. The new
// contents are written to a temporary file that then replaces the
// settings file, so readers never see a partial file.
func (st *FileStorage) SetItem(key, value string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	items, err := st.read()
	if err != nil {
		return err
	}
	items[key] = value
	b, err := toml.Marshal(items)
	if err != nil {
		return err
	}
	dir := filepath.Dir(st.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(st.Path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), st.perm()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), st.Path)
}

func (st *FileStorage) perm() os.FileMode {
	if info, err := os.Stat(st.Path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
