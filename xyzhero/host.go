// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzhero runs the hero visual in a native window, drawing it
// with an [xyzcore.Scene] widget that acts as the hero container.
package xyzhero

import (
	"image"
	"sync"

	"cogentcore.org/core/core"
	"cogentcore.org/core/system"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/theme"
)

// Host is a [hero.Host] for a native window. The container is the
// scene widget, frames are driven by a widget animation running at
// the refresh rate of the window, and resizes are detected by
// comparing the widget size between frames.
type Host struct {

	// Widget is the scene widget; its name is the container identifier.
	Widget *xyzcore.Scene

	// Attr is the theme attribute.
	Attr *theme.Attribute

	mu        sync.Mutex
	pending   []func()
	animating bool
	resize    map[int]func()
	nextID    int
	lastSize  image.Point
}

// NewHost returns a new host for the given scene widget and theme attribute.
func NewHost(sw *xyzcore.Scene, attr *theme.Attribute) *Host {
	return &Host{Widget: sw, Attr: attr, resize: map[int]func(){}}
}

// Container returns the scene widget if id is its name.
func (h *Host) Container(id string) (hero.Container, bool) {
	if h.Widget == nil || h.Widget.Name != id {
		return nil, false
	}
	return container{h.Widget}, true
}

func (h *Host) NewRenderer(c hero.Container, opts hero.RendererOptions) (hero.Renderer, error) {
	return newRenderer(c.(container).sw, opts), nil
}

func (h *Host) OnResize(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.resize[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.resize, id)
	}
}

// RequestFrame queues fn for the next animation tick of the widget,
// starting the animation if it is not running. It must be called on
// the UI thread, such as from an event handler or a frame callback;
// use [Host.RequestFrameAsync] from any other goroutine.
func (h *Host) RequestFrame(fn func()) {
	if h.enqueue(fn) {
		h.Widget.Animate(h.animate)
	}
}

// RequestFrameAsync is like [Host.RequestFrame] for callers that may
// run on any goroutine. The frame is requested from a new goroutine
// holding the render lock of the widget.
func (h *Host) RequestFrameAsync(fn func()) {
	go func() {
		h.Widget.AsyncLock()
		defer h.Widget.AsyncUnlock()
		h.RequestFrame(fn)
	}()
}

// enqueue adds fn to the pending callbacks and returns
// whether the animation needs to be started.
func (h *Host) enqueue(fn func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = append(h.pending, fn)
	start := !h.animating
	h.animating = true
	return start
}

func (h *Host) Theme() *theme.Attribute {
	return h.Attr
}

// animate runs once per window refresh. The animation ends when
// nothing requested a frame since the last tick.
func (h *Host) animate(a *core.Animation) {
	size := container{h.Widget}.Size()

	h.mu.Lock()
	var resized []func()
	if size != h.lastSize {
		h.lastSize = size
		for _, fn := range h.resize {
			resized = append(resized, fn)
		}
	}
	fns := h.pending
	h.pending = nil
	if len(fns) == 0 {
		h.animating = false
		a.Done = true
	}
	h.mu.Unlock()

	for _, fn := range resized {
		fn()
	}
	for _, fn := range fns {
		fn()
	}
}

// container is the scene widget as a [hero.Container].
type container struct {
	sw *xyzcore.Scene
}

func (c container) Size() image.Point {
	return c.sw.Geom.Size.Actual.Content.ToPointFloor()
}

func (c container) DevicePixelRatio() float32 {
	if system.TheApp == nil {
		return 1
	}
	scr := system.TheApp.Screen(0)
	if scr == nil || scr.DevicePixelRatio == 0 {
		return 1
	}
	return scr.DevicePixelRatio
}
