// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hero provides the rotating orb and ring visual of the landing
// page hero section: a scene built once in a container, kept in sync with
// the theme attribute and the container size, and redrawn every frame by
// a cancellable render loop.
package hero

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/digitora/orbhero/palette"
	"github.com/digitora/orbhero/theme"
)

// Hero holds all of the state of a mounted hero visual. It is created
// by [Mount] and passed to every reactor, so that nothing lives in
// package level variables.
type Hero struct {

	// Config is the configuration the hero was mounted with.
	Config Config

	// Scene is the scene drawn every frame. Use the methods of
	// [Hero] instead of modifying it directly while the loop runs.
	Scene *Scene

	host      Host
	container Container
	renderer  Renderer

	// mu protects the scene, theme and frames. It is held for a whole
	// frame so that theme changes and resizes land between frames.
	mu     sync.Mutex
	theme  theme.Themes
	frames int

	removeResize func()
	removeTheme  func()
	stopOnce     sync.Once

	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// Mount builds the hero visual in the container of the host identified
// by [Config.ContainerID], applies the current theme and registers the
// resize and theme change reactors. The render loop is not started;
// call [Hero.Start] for that. A nil config uses [DefaultConfig].
//
// If there is no such container, Mount does nothing and returns nil
// and no error: no renderer, loop or listener is created. An error is
// only returned if the renderer can not be created.
func Mount(host Host, cfg *Config) (*Hero, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ct, ok := host.Container(cfg.ContainerID)
	if !ok {
		slog.Debug("hero container not found; not mounting", "id", cfg.ContainerID)
		return nil, nil
	}
	rd, err := host.NewRenderer(ct, RendererOptions{Antialias: true, Alpha: true})
	if err != nil {
		return nil, fmt.Errorf("hero: creating renderer in %q: %w", cfg.ContainerID, err)
	}
	size := ct.Size()
	rd.SetPixelRatio(math32.Min(ct.DevicePixelRatio(), cfg.MaxPixelRatio))
	rd.SetSize(size)

	h := &Hero{
		Config:    *cfg,
		Scene:     NewScene(cfg, size),
		host:      host,
		container: ct,
		renderer:  rd,
	}
	h.removeResize = host.OnResize(h.Resize)
	h.removeTheme = host.Theme().ObserveCurrent(h.ApplyTheme)
	slog.Debug("hero mounted", "id", cfg.ContainerID, "size", size, "theme", h.Theme())
	return h, nil
}

// ApplyTheme overwrites all of the theme dependent materials and
// lights of the scene with the palette of the given theme. It is
// called on mount and by the theme change reactor on every change
// of the theme attribute; it does not touch the animation, the
// camera or the geometry.
func (h *Hero) ApplyTheme(th theme.Themes) {
	p := palette.For(th)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Scene.SetPalette(p)
	h.theme = th
}

// Theme returns the theme whose palette was applied last.
func (h *Hero) Theme() theme.Themes {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.theme
}

// Resize updates the renderer size and the camera aspect ratio to
// the current size of the container and commits the projection.
// Calling it again with an unchanged size changes nothing.
func (h *Hero) Resize() {
	size := h.container.Size()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renderer.SetSize(size)
	h.Scene.Camera.SetAspect(size)
	h.Scene.Camera.UpdateProjection()
}

// Size returns the current size of the container.
func (h *Hero) Size() image.Point {
	return h.container.Size()
}

// Step advances the animation by one frame and renders the scene.
func (h *Hero) Step() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Scene.Advance(h.Config.OrbSpeed, h.Config.RingSpeed)
	if err := h.renderer.Render(h.Scene); err != nil {
		return fmt.Errorf("hero: rendering frame %d: %w", h.frames, err)
	}
	h.frames++
	return nil
}

// Frames returns the number of frames rendered so far.
func (h *Hero) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Start starts the render loop, which renders one frame right away
// and then one frame per display refresh, until ctx is done, [Hero.Stop]
// is called, or rendering fails. The loop does not pause for hidden pages
// or theme changes. Calling Start more than once has no effect.
func (h *Hero) Start(ctx context.Context) {
	h.mu.Lock()
	if h.done != nil {
		h.mu.Unlock()
		return
	}
	ctx, h.cancel = context.WithCancel(ctx)
	h.done = make(chan struct{})
	h.mu.Unlock()

	var frame func()
	frame = func() {
		if ctx.Err() != nil {
			h.finish(nil)
			return
		}
		if err := h.Step(); err != nil {
			h.finish(errors.Log(err))
			return
		}
		h.host.RequestFrame(frame)
	}
	frame()
}

// Stop stops the render loop, if it is running, and unregisters the
// resize and theme change reactors. The last rendered frame stays
// on the rendering surface. It is safe to call Stop more than once.
func (h *Hero) Stop() {
	h.stopOnce.Do(func() {
		h.removeResize()
		h.removeTheme()
	})
	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()
	if cancel != nil {
		cancel()
		h.finish(nil)
	}
}

func (h *Hero) finish(err error) {
	h.doneOnce.Do(func() {
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
		close(h.done)
	})
}

// Done returns a channel that is closed when the render loop ends.
// It is nil if the loop was never started.
func (h *Hero) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Err returns the rendering error that ended the loop, if any.
func (h *Hero) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
