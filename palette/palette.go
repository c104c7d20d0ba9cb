// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the fixed colors and intensities
// of the hero visual for each theme.
package palette

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/digitora/orbhero/theme"
)

// Orb is the material of the orb.
type Orb struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
}

// Ring is the material of the ring.
type Ring struct {
	Color     color.RGBA
	Metalness float32
	Roughness float32
}

// Lights has the intensities of the scene lights.
type Lights struct {
	Ambient float32
	Key     float32
}

// Palette is everything in the scene that depends on the theme.
type Palette struct {
	Orb    Orb
	Ring   Ring
	Lights Lights
}

var (
	// Dark is the palette for [theme.Dark].
	Dark = Palette{
		Orb: Orb{
			Color:             colors.FromRGB(0x0b, 0x15, 0x20),
			Emissive:          colors.FromRGB(0x08, 0x2a, 0x33),
			EmissiveIntensity: 0.2,
			Metalness:         0.7,
			Roughness:         0.25,
		},
		Ring: Ring{
			Color:     colors.FromRGB(0x17, 0xc6, 0xd9),
			Metalness: 0.5,
			Roughness: 0.3,
		},
		Lights: Lights{Ambient: 0.4, Key: 1.2},
	}

	// Light is the palette for [theme.Light].
	Light = Palette{
		Orb: Orb{
			Color:             colors.FromRGB(0xe6, 0xf3, 0xf7),
			Emissive:          colors.FromRGB(0x8f, 0xdc, 0xea),
			EmissiveIntensity: 0.12,
			Metalness:         0.35,
			Roughness:         0.4,
		},
		Ring: Ring{
			Color:     colors.FromRGB(0x0b, 0x8f, 0xa3),
			Metalness: 0.4,
			Roughness: 0.35,
		},
		Lights: Lights{Ambient: 0.9, Key: 0.8},
	}
)

// For returns the palette for the given theme.
func For(th theme.Themes) Palette {
	if th == theme.Light {
		return Light
	}
	return Dark
}

// Hex returns c as a #RRGGBB string, the form taken by CSS,
// three.js and terminal color libraries.
func Hex(c color.RGBA) string {
	return colors.AsHex(c)[:7]
}
