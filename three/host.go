// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Package three runs the hero visual in a web page, drawing it with
// the three.js library loaded by the page as the global THREE.
package three

import (
	"fmt"
	"image"
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/theme"
)

// Host is a [hero.Host] for the document of the page.
type Host struct {

	// Attr is the theme attribute, which mirrors the theme
	// attribute of the root element; see [ObserveRoot].
	Attr *theme.Attribute
}

// NewHost returns a new host for the document using the given theme attribute.
func NewHost(attr *theme.Attribute) *Host {
	return &Host{Attr: attr}
}

func document() js.Value {
	return js.Global().Get("document")
}

func (h *Host) Container(id string) (hero.Container, bool) {
	el := document().Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	return element{el}, true
}

func (h *Host) NewRenderer(c hero.Container, opts hero.RendererOptions) (hero.Renderer, error) {
	return newRenderer(c.(element).Value, opts)
}

// OnResize adds fn as a resize listener of the window.
func (h *Host) OnResize(fn func()) func() {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	win := js.Global()
	win.Call("addEventListener", "resize", f)
	return func() {
		win.Call("removeEventListener", "resize", f)
		f.Release()
	}
}

func (h *Host) RequestFrame(fn func()) {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		f.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", f)
}

func (h *Host) Theme() *theme.Attribute {
	return h.Attr
}

// element is a DOM element as a [hero.Container].
type element struct {
	js.Value
}

func (e element) Size() image.Point {
	return image.Pt(e.Get("clientWidth").Int(), e.Get("clientHeight").Int())
}

func (e element) DevicePixelRatio() float32 {
	dpr := js.Global().Get("devicePixelRatio")
	if dpr.Type() != js.TypeNumber || dpr.Float() <= 0 {
		return 1
	}
	return float32(dpr.Float())
}

// catch converts a JavaScript exception thrown inside fn into an error.
func catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if je, ok := r.(js.Error); ok {
			err = errors.New(je.Error())
			return
		}
		err = fmt.Errorf("%v", r)
	}()
	fn()
	return nil
}
