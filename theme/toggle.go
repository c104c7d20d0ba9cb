// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"log/slog"
)

// Toggle is the theme toggle control: the only writer of the theme
// attribute, which also persists the chosen theme across page loads.
type Toggle struct {

	// Attr is the attribute written by the toggle.
	Attr *Attribute

	// Storage is where the chosen theme is persisted under [StorageKey].
	Storage Storage
}

// NewToggle returns a new toggle writing to the given attribute and storage.
func NewToggle(attr *Attribute, st Storage) *Toggle {
	return &Toggle{Attr: attr, Storage: st}
}

// Restore writes the persisted theme, or [Dark] if there is none,
// to the attribute and returns it.
func (tg *Toggle) Restore() Themes {
	th := Dark
	if v, ok := tg.Storage.Item(StorageKey); ok {
		th = Parse(v)
	}
	slog.Debug("restoring theme", "theme", th)
	tg.Attr.SetTheme(th)
	return th
}

// Set writes the given theme to the attribute and persists it.
// The attribute is updated even if persisting fails.
func (tg *Toggle) Set(th Themes) error {
	tg.Attr.SetTheme(th)
	if err := tg.Storage.SetItem(StorageKey, th.String()); err != nil {
		return fmt.Errorf("theme: saving %v theme: %w", th, err)
	}
	return nil
}

// Flip switches to the opposite of the current theme, persists
// it, and returns the new theme.
func (tg *Toggle) Flip() (Themes, error) {
	th := tg.Attr.Get().Other()
	return th, tg.Set(th)
}
