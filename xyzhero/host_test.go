// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzhero

import (
	"image"
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/digitora/orbhero/theme"
	"github.com/stretchr/testify/assert"
)

func newTestHost(w, h float32) *Host {
	sw := xyzcore.NewScene()
	sw.SetName("canvas3d")
	sw.Geom.Size.Actual.Content = math32.Vec2(w, h)
	return NewHost(sw, theme.NewAttribute(""))
}

func setSize(h *Host, w, ht float32) {
	h.Widget.Geom.Size.Actual.Content = math32.Vec2(w, ht)
}

func TestHostContainer(t *testing.T) {
	h := newTestHost(800, 600)
	c, ok := h.Container("canvas3d")
	assert.True(t, ok)
	assert.Equal(t, image.Pt(800, 600), c.Size())
	_, ok = h.Container("other")
	assert.False(t, ok)
}

func TestHostFrames(t *testing.T) {
	h := newTestHost(800, 600)
	n1, n2 := 0, 0
	assert.True(t, h.enqueue(func() { n1++ }))
	assert.False(t, h.enqueue(func() { n2++ }))

	a := &core.Animation{}
	h.animate(a)
	assert.Equal(t, 1, n1)
	assert.Equal(t, 1, n2)
	assert.False(t, a.Done)

	// nothing was requested since the last tick
	h.animate(a)
	assert.Equal(t, 1, n1)
	assert.Equal(t, 1, n2)
	assert.True(t, a.Done)

	// the next request starts a new animation
	assert.True(t, h.enqueue(func() { n1++ }))
}

func TestHostFrameReschedule(t *testing.T) {
	h := newTestHost(800, 600)
	n := 0
	var frame func()
	frame = func() {
		n++
		h.RequestFrame(frame)
	}
	h.enqueue(frame)

	a := &core.Animation{}
	for range 5 {
		h.animate(a)
		assert.False(t, a.Done)
	}
	assert.Equal(t, 5, n)
}

func TestHostResize(t *testing.T) {
	h := newTestHost(800, 600)
	n := 0
	remove := h.OnResize(func() { n++ })

	a := &core.Animation{}
	h.animate(a)
	assert.Equal(t, 1, n)
	h.animate(a)
	assert.Equal(t, 1, n)

	setSize(h, 400, 400)
	h.animate(a)
	assert.Equal(t, 2, n)
	h.animate(a)
	assert.Equal(t, 2, n)

	remove()
	setSize(h, 300, 200)
	h.animate(a)
	assert.Equal(t, 2, n)
}
