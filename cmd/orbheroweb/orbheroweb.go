// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command orbheroweb mounts the rotating orb hero visual into the
// landing page. It is built with GOOS=js GOARCH=wasm and loaded by
// the page after three.js.
package main

import (
	"context"
	"log/slog"

	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/three"
)

func main() {
	// the page lives as long as the program, so nothing is released
	attr, _ := three.ObserveRoot()
	three.BindToggle(attr, "theme-toggle")
	three.FollowServer("theme")

	h, err := hero.Mount(three.NewHost(attr), hero.DefaultConfig())
	if err != nil {
		slog.Error("mounting hero", "err", err)
	}
	if h != nil {
		h.Start(context.Background())
	}
	select {}
}
