// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orbhero shows the rotating orb hero visual in a window
// and manages its persisted theme.
package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/events"
	"cogentcore.org/core/system"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/palette"
	"github.com/digitora/orbhero/theme"
	"github.com/digitora/orbhero/themesync"
	"github.com/digitora/orbhero/xyzhero"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the orbhero cli.
type Config struct {
	hero.Config

	// Theme is the theme saved by the theme command: light or dark.
	// If it is empty, the theme command prints the saved theme.
	Theme string `cmd:"theme" posarg:"0" required:"-"`

	// Settings is the settings file the theme is saved in; ~ is expanded
	// to the home directory. It defaults to orbhero/settings.toml in the
	// app data directory.
	Settings string

	// Dir is the directory of the landing page served by the serve command.
	Dir string `cmd:"serve" default:"web"`

	// Port is the port the serve command listens on.
	Port int `cmd:"serve" default:"8080"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("orbhero", "Orbhero shows the rotating orb hero visual and manages its theme.")
	cli.Run(opts, &Config{}, Run, Theme, Palette, Serve)
}

// Run opens a window with the hero visual and a theme toggle.
// The theme is restored from the settings file, and changes
// made to the file while the window is open are applied.
func Run(c *Config) error { //cli:cmd -root
	st := theme.NewFileStorage(settingsFile(c))
	tg := theme.NewToggle(theme.NewAttribute(""), st)
	tg.Restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errors.Log(theme.WatchStarted(ctx, st, tg.Attr))

	b, host := xyzhero.NewBody(&c.Config, tg)
	h, err := hero.Mount(host, &c.Config)
	if err != nil {
		return err
	}
	if h != nil {
		b.OnShow(func(e events.Event) {
			h.Start(ctx)
		})
		defer h.Stop()
	}
	b.RunMainWindow()
	return nil
}

// Theme saves the given theme in the settings file, which a running
// window switches to right away. Without a theme it prints the saved one.
func Theme(c *Config) error {
	st := theme.NewFileStorage(settingsFile(c))
	if c.Theme == "" {
		v, _ := st.Item(theme.StorageKey)
		fmt.Println(theme.Parse(v))
		return nil
	}
	th := theme.Parse(c.Theme)
	if err := st.SetItem(theme.StorageKey, th.String()); err != nil {
		return err
	}
	slog.Info("saved theme", "theme", th, "file", st.Path)
	return nil
}

// Palette prints color swatches of the palettes of all themes.
func Palette(c *Config) error {
	out := termenv.NewOutput(os.Stdout)
	for _, th := range theme.ThemesValues() {
		p := palette.For(th)
		fmt.Fprintln(out, out.String(th.String()).Bold())
		swatch(out, "orb", p.Orb.Color)
		swatch(out, "emissive", p.Orb.Emissive)
		swatch(out, "ring", p.Ring.Color)
		fmt.Fprintf(out, "  lights    ambient %g, key %g\n", p.Lights.Ambient, p.Lights.Key)
	}
	return nil
}

func swatch(out *termenv.Output, name string, c color.RGBA) {
	hex := palette.Hex(c)
	fmt.Fprintf(out, "  %-9s %s %s\n", name, out.String("      ").Background(out.Color(hex)), hex)
}

// Serve serves the landing page directory, which holds the web
// build of the hero visual, over http. The pages follow the theme
// saved in the settings file through a WebSocket at /theme.
func Serve(c *Config) error {
	st := theme.NewFileStorage(settingsFile(c))
	attr := theme.NewAttribute("")
	theme.NewToggle(attr, st).Restore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errors.Log(theme.WatchStarted(ctx, st, attr))

	hub := themesync.NewHub(attr)
	defer hub.Close()
	mux := http.NewServeMux()
	mux.Handle("/theme", hub)
	mux.Handle("/", http.FileServer(http.Dir(c.Dir)))

	addr := net.JoinHostPort("", strconv.Itoa(c.Port))
	slog.Info("serving landing page", "dir", c.Dir, "url", "http://localhost"+addr)
	return http.ListenAndServe(addr, mux)
}

func settingsFile(c *Config) string {
	if c.Settings != "" {
		return errors.Log1(homedir.Expand(c.Settings))
	}
	return filepath.Join(system.TheApp.DataDir(), "orbhero", "settings.toml")
}
