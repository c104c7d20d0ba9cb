// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"

	"github.com/digitora/orbhero/theme"
)

// Host is the environment the hero is mounted in: a document with
// elements, a display refresh schedule and a theme attribute. It is
// implemented for the web by package three and for native windows
// by package xyzhero.
type Host interface {

	// Container returns the element with the given identifier,
	// and false if there is no such element.
	Container(id string) (Container, bool)

	// NewRenderer creates a renderer whose output surface
	// is inserted as a child of the given container.
	NewRenderer(c Container, opts RendererOptions) (Renderer, error)

	// OnResize registers fn to be called whenever the viewport
	// changes size, returning a function that unregisters it.
	OnResize(fn func()) (remove func())

	// RequestFrame schedules fn to be called once,
	// before the next display refresh.
	RequestFrame(fn func())

	// Theme returns the theme attribute of the document root.
	Theme() *theme.Attribute
}

// Container is the element hosting the rendering surface.
type Container interface {

	// Size returns the size of the content box.
	Size() image.Point

	// DevicePixelRatio returns the ratio of physical
	// to logical pixels of the display.
	DevicePixelRatio() float32
}

// RendererOptions are the options for creating a [Renderer].
type RendererOptions struct {

	// Antialias enables multisampling.
	Antialias bool

	// Alpha makes the background transparent,
	// so that the page shows through.
	Alpha bool
}

// Renderer draws a [Scene] through a rendering library.
type Renderer interface {

	// SetPixelRatio sets the ratio of output to logical pixels.
	SetPixelRatio(ratio float32)

	// SetSize sets the logical size of the output.
	SetSize(size image.Point)

	// Render draws the scene through its camera.
	Render(sc *Scene) error
}
