// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Themes
	}{
		{"light", Light},
		{"Light", Light},
		{" light ", Light},
		{"dark", Dark},
		{"", Dark},
		{"auto", Dark},
		{"lightish", Dark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.raw), "raw %q", tt.raw)
	}
}

func TestThemesString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())

	var th Themes
	assert.Equal(t, Dark, th)
	assert.Equal(t, Parse(""), th)
	assert.Equal(t, []Themes{Dark, Light}, ThemesValues())
	require.NoError(t, th.SetString("dark"))
	assert.Equal(t, Dark, th)
	assert.Error(t, th.SetString("sepia"))

	assert.Equal(t, Dark, Light.Other())
	assert.Equal(t, Light, Dark.Other())
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
}

func TestAttributeObserveOrder(t *testing.T) {
	attr := NewAttribute("")
	assert.Equal(t, Dark, attr.Get())

	var got []Themes
	cancel := attr.Observe(func(th Themes) {
		got = append(got, th)
	})
	attr.Set("light")
	attr.Set("dark")
	attr.Set("light")
	attr.Set("light")
	assert.Equal(t, []Themes{Light, Dark, Light, Light}, got)
	assert.Equal(t, "light", attr.Raw())

	cancel()
	cancel()
	attr.Set("dark")
	assert.Len(t, got, 4)
	assert.Equal(t, 0, attr.NumObservers())
}

func TestAttributeObserveCurrent(t *testing.T) {
	attr := NewAttribute("light")
	var got []Themes
	cancel := attr.ObserveCurrent(func(th Themes) {
		got = append(got, th)
	})
	defer cancel()
	attr.Set("dark")
	assert.Equal(t, []Themes{Light, Dark}, got)
	assert.Equal(t, 1, attr.NumObservers())
}

func TestAttributeObserveCurrentConcurrent(t *testing.T) {
	for range 20 {
		attr := NewAttribute("")
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				if i%2 == 0 {
					attr.SetTheme(Light)
				} else {
					attr.SetTheme(Dark)
				}
			}
		}()
		var mu sync.Mutex
		var last Themes
		attr.ObserveCurrent(func(th Themes) {
			mu.Lock()
			last = th
			mu.Unlock()
		})
		wg.Wait()
		mu.Lock()
		assert.Equal(t, attr.Get(), last)
		mu.Unlock()
	}
}

func TestAttributeConcurrentSet(t *testing.T) {
	attr := NewAttribute("dark")
	var mu sync.Mutex
	n := 0
	attr.Observe(func(th Themes) {
		mu.Lock()
		n++
		mu.Unlock()
	})
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				attr.SetTheme(Light)
			} else {
				attr.SetTheme(Dark)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, n)
}

func TestToggle(t *testing.T) {
	attr := NewAttribute("")
	st := &MemoryStorage{}
	tg := NewToggle(attr, st)

	assert.Equal(t, Dark, tg.Restore())

	th, err := tg.Flip()
	require.NoError(t, err)
	assert.Equal(t, Light, th)
	assert.Equal(t, Light, attr.Get())
	v, ok := st.Item(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	// a new page load restores the persisted choice
	attr2 := NewAttribute("")
	assert.Equal(t, Light, NewToggle(attr2, st).Restore())
	assert.Equal(t, Light, attr2.Get())

	th, err = tg.Flip()
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbhero", "settings.toml")
	st := NewFileStorage(path)

	_, ok := st.Item(StorageKey)
	assert.False(t, ok)

	require.NoError(t, st.SetItem(StorageKey, "light"))
	require.NoError(t, st.SetItem("other", "value"))

	st2 := NewFileStorage(path)
	v, ok := st2.Item(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
	items, err := st2.Items()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "light", "other": "value"}, items)
}
