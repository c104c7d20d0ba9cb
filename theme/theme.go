// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the light/dark theme flag shared by the
// page: a typed enum, the document-root attribute holding the live
// value with its mutation observers, persistence of the chosen value,
// and the toggle control that writes it.
package theme

//go:generate core generate

import "strings"

// Themes are the display modes of the page.
type Themes int32 //enums:enum -transform lower

const (
	// Dark is the dark display mode. It is the zero value, and it is
	// also used whenever the attribute is absent or holds any other value.
	Dark Themes = iota

	// Light is the light display mode.
	Light
)

// AttributeName is the name of the attribute on the document root
// that holds the current theme.
const AttributeName = "data-theme"

// Parse returns the theme for the given raw attribute value.
// Only "light" (ignoring case and surrounding space) selects [Light];
// everything else, including the empty string, is [Dark].
func Parse(raw string) Themes {
	if strings.EqualFold(strings.TrimSpace(raw), Light.String()) {
		return Light
	}
	return Dark
}

// IsDark returns whether the theme is [Dark].
func (th Themes) IsDark() bool {
	return th == Dark
}

// Other returns the opposite theme.
func (th Themes) Other() Themes {
	if th == Light {
		return Dark
	}
	return Light
}
