// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzhero

import (
	"image/color"
	"testing"

	"cogentcore.org/core/xyz"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/palette"
	"github.com/stretchr/testify/assert"
)

func TestShininess(t *testing.T) {
	assert.Equal(t, float32(128), shininess(0))
	assert.Equal(t, float32(32), shininess(0.5))
	assert.Equal(t, float32(1), shininess(1))
	assert.Equal(t, float32(1), shininess(2))
	assert.Equal(t, float32(128), shininess(-1))
	assert.Greater(t, shininess(0.25), shininess(0.3))
}

func TestScaleColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, scaleColor(c, 0.5))
	assert.Equal(t, c, scaleColor(c, 1))
	assert.Equal(t, c, scaleColor(c, 3))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, scaleColor(c, 0))
}

func TestSetMaterial(t *testing.T) {
	p := palette.Dark
	var mt xyz.Material
	setMaterial(&mt, hero.Material{
		Color:             p.Orb.Color,
		Emissive:          p.Orb.Emissive,
		EmissiveIntensity: p.Orb.EmissiveIntensity,
		Metalness:         p.Orb.Metalness,
		Roughness:         p.Orb.Roughness,
	})
	assert.Equal(t, p.Orb.Color, mt.Color)
	assert.Equal(t, scaleColor(p.Orb.Emissive, p.Orb.EmissiveIntensity), mt.Emissive)
	assert.Equal(t, p.Orb.Metalness, mt.Reflective)
	assert.Equal(t, shininess(p.Orb.Roughness), mt.Shiny)
}

func TestSetLight(t *testing.T) {
	var lb xyz.LightBase
	c := color.RGBA{0x3d, 0xd5, 0xff, 0xff}
	setLight(&lb, hero.Light{Color: c, Intensity: 1.2})
	assert.Equal(t, c, lb.Color)
	assert.Equal(t, float32(1.2), lb.Lumens)
}
