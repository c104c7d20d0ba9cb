// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"strings"
	"testing"

	"github.com/digitora/orbhero/theme"
	"github.com/stretchr/testify/assert"
)

func TestDark(t *testing.T) {
	p := For(theme.Dark)
	assert.Equal(t, color.RGBA{0x0b, 0x15, 0x20, 0xff}, p.Orb.Color)
	assert.Equal(t, color.RGBA{0x08, 0x2a, 0x33, 0xff}, p.Orb.Emissive)
	assert.Equal(t, float32(0.2), p.Orb.EmissiveIntensity)
	assert.Equal(t, float32(0.7), p.Orb.Metalness)
	assert.Equal(t, float32(0.25), p.Orb.Roughness)
	assert.Equal(t, color.RGBA{0x17, 0xc6, 0xd9, 0xff}, p.Ring.Color)
	assert.Equal(t, float32(0.5), p.Ring.Metalness)
	assert.Equal(t, float32(0.3), p.Ring.Roughness)
	assert.Equal(t, Lights{Ambient: 0.4, Key: 1.2}, p.Lights)
}

func TestLight(t *testing.T) {
	p := For(theme.Light)
	assert.Equal(t, color.RGBA{0xe6, 0xf3, 0xf7, 0xff}, p.Orb.Color)
	assert.Equal(t, color.RGBA{0x8f, 0xdc, 0xea, 0xff}, p.Orb.Emissive)
	assert.Equal(t, float32(0.12), p.Orb.EmissiveIntensity)
	assert.Equal(t, color.RGBA{0x0b, 0x8f, 0xa3, 0xff}, p.Ring.Color)
	assert.Equal(t, Lights{Ambient: 0.9, Key: 0.8}, p.Lights)
}

func TestThemesDiffer(t *testing.T) {
	d, l := For(theme.Dark), For(theme.Light)
	assert.NotEqual(t, d.Orb, l.Orb)
	assert.NotEqual(t, d.Ring, l.Ring)
	assert.NotEqual(t, d.Lights, l.Lights)
}

func TestHex(t *testing.T) {
	assert.True(t, strings.EqualFold("#17c6d9", Hex(Dark.Ring.Color)), Hex(Dark.Ring.Color))
	assert.True(t, strings.EqualFold("#0b1520", Hex(Dark.Orb.Color)), Hex(Dark.Orb.Color))
	assert.Equal(t, "#000000", Hex(color.RGBA{}))
}
