// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package three

import (
	"log/slog"
	"strings"
	"syscall/js"

	"github.com/digitora/orbhero/theme"
)

// FollowServer connects to the theme WebSocket at the given path of the
// server the page was loaded from, and writes every theme it receives to
// the theme attribute of the root element. Pages that are not served by
// the orbhero serve command fail to connect, which is only logged.
func FollowServer(path string) {
	loc := js.Global().Get("location")
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	url := scheme + "//" + loc.Get("host").String() + "/" + strings.TrimPrefix(path, "/")

	var ws js.Value
	err := catch(func() {
		ws = js.Global().Get("WebSocket").New(url)
	})
	if err != nil {
		slog.Debug("not following server theme", "url", url, "err", err)
		return
	}
	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		th := theme.Parse(args[0].Get("data").String())
		root().Call("setAttribute", theme.AttributeName, th.String())
		return nil
	}))
	ws.Set("onerror", js.FuncOf(func(this js.Value, args []js.Value) any {
		slog.Debug("theme server connection failed", "url", url)
		return nil
	}))
}
