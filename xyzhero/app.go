// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzhero

import (
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/theme"
)

// NewBody returns a window body holding the hero scene widget, named
// after the container of the given config, and a toolbar with the
// theme toggle. The appearance of the window follows the theme
// attribute of the toggle.
func NewBody(cfg *hero.Config, tg *theme.Toggle) (*core.Body, *Host) {
	b := core.NewBody("orbhero").SetTitle("Orb hero")
	sw := xyzcore.NewScene(b)
	sw.SetName(cfg.ContainerID)
	sw.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(func(p *tree.Plan) {
			tree.Add(p, func(w *core.Button) {
				w.SetText("Toggle theme").SetTooltip("switch between the light and dark theme").
					OnClick(func(e events.Event) {
						errors.Log1(tg.Flip())
					})
			})
		})
	})

	host := NewHost(sw, tg.Attr)
	followAppearance(host, tg.Attr)
	return b, host
}

// followAppearance makes the core appearance settings track the theme
// attribute. The attribute may change on any goroutine, so the settings
// and the windows are only updated in a frame of the host.
func followAppearance(host *Host, attr *theme.Attribute) {
	var pending atomic.Bool
	setAppearance(attr.Get())
	attr.Observe(func(theme.Themes) {
		if pending.Swap(true) {
			return
		}
		host.RequestFrameAsync(func() {
			pending.Store(false)
			setAppearance(attr.Get())
			core.UpdateAll()
		})
	})
}

func setAppearance(th theme.Themes) {
	if th == theme.Light {
		core.AppearanceSettings.Theme = core.ThemeLight
	} else {
		core.AppearanceSettings.Theme = core.ThemeDark
	}
	core.AppearanceSettings.Apply()
}
