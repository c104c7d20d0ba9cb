// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package three

import (
	"log/slog"
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"github.com/digitora/orbhero/theme"
)

// LocalStorage is a [theme.Storage] backed by window.localStorage.
type LocalStorage struct{}

func (LocalStorage) Item(key string) (string, bool) {
	ls := js.Global().Get("localStorage")
	if !ls.Truthy() {
		return "", false
	}
	v := ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (LocalStorage) SetItem(key, value string) error {
	return catch(func() {
		js.Global().Get("localStorage").Call("setItem", key, value)
	})
}

func root() js.Value {
	return document().Get("documentElement")
}

// rootTheme returns the raw theme attribute of the root element.
func rootTheme() string {
	v := root().Call("getAttribute", theme.AttributeName)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

// ObserveRoot returns a theme attribute that mirrors the theme attribute
// of the root element: every mutation of it, including writes of an
// unchanged value, is set on the returned attribute in order, with the
// value that mutation wrote. The returned function disconnects the
// mutation observer.
func ObserveRoot() (*theme.Attribute, func()) {
	attr := theme.NewAttribute(rootTheme())
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		records := args[0]
		var olds []string
		for i := range records.Length() {
			rec := records.Index(i)
			if rec.Get("attributeName").String() != theme.AttributeName {
				continue
			}
			old := rec.Get("oldValue")
			if old.IsNull() || old.IsUndefined() {
				olds = append(olds, "")
			} else {
				olds = append(olds, old.String())
			}
		}
		for _, v := range mutationValues(olds, rootTheme()) {
			attr.Set(v)
		}
		return nil
	})
	mo := js.Global().Get("MutationObserver").New(f)
	mo.Call("observe", root(), map[string]any{
		"attributes":        true,
		"attributeOldValue": true,
		"attributeFilter":   []any{theme.AttributeName},
	})
	return attr, func() {
		mo.Call("disconnect")
		f.Release()
	}
}

// rootWriter is a [theme.Storage] that writes the theme attribute of the
// root element and persists it in the browser storage. Writing to the
// root element makes the [ObserveRoot] attribute follow.
type rootWriter struct {
	LocalStorage
}

func (rw rootWriter) SetItem(key, value string) error {
	if key == theme.StorageKey {
		root().Call("setAttribute", theme.AttributeName, value)
	}
	return rw.LocalStorage.SetItem(key, value)
}

// BindToggle restores the persisted theme onto the root element and makes
// clicks on the element with the given id switch the theme. It returns
// false if there is no such element; the theme is restored in any case.
func BindToggle(attr *theme.Attribute, id string) (remove func(), ok bool) {
	tg := theme.NewToggle(theme.NewAttribute(rootTheme()), rootWriter{})
	if v, has := tg.Storage.Item(theme.StorageKey); has {
		errors.Log(tg.Set(theme.Parse(v)))
	} else if rootTheme() == "" {
		errors.Log(tg.Set(theme.Dark))
	}

	btn := document().Call("getElementById", id)
	if !btn.Truthy() {
		slog.Debug("theme toggle not found", "id", id)
		return func() {}, false
	}
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		tg.Attr.Set(attr.Raw())
		th, err := tg.Flip()
		errors.Log(err)
		slog.Debug("theme toggled", "theme", th)
		return nil
	})
	btn.Call("addEventListener", "click", f)
	return func() {
		btn.Call("removeEventListener", "click", f)
		f.Release()
	}, true
}
