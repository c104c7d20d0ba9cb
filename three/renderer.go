// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package three

import (
	"image"
	"syscall/js"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/digitora/orbhero/hero"
	"github.com/digitora/orbhero/palette"
)

// Renderer is a [hero.Renderer] backed by a THREE.WebGLRenderer whose
// canvas is appended to the container element. The three.js objects
// are created from the first [hero.Scene] rendered and updated from
// it on every frame after that.
type Renderer struct {
	three js.Value
	gl    js.Value

	scene   js.Value
	camera  js.Value
	ambient js.Value
	key     js.Value
	group   js.Value
	orb     js.Value
	ring    js.Value

	aspect float32
}

func newRenderer(el js.Value, opts hero.RendererOptions) (*Renderer, error) {
	r := &Renderer{three: js.Global().Get("THREE")}
	if !r.three.Truthy() {
		return nil, errors.New("three.js is not loaded")
	}
	err := catch(func() {
		r.gl = r.three.Get("WebGLRenderer").New(map[string]any{
			"antialias": opts.Antialias,
			"alpha":     opts.Alpha,
		})
		el.Call("appendChild", r.gl.Get("domElement"))
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) SetPixelRatio(ratio float32) {
	r.gl.Call("setPixelRatio", ratio)
}

func (r *Renderer) SetSize(size image.Point) {
	r.gl.Call("setSize", size.X, size.Y)
}

func (r *Renderer) Render(sc *hero.Scene) error {
	return catch(func() {
		if r.scene.IsUndefined() {
			r.build(sc)
		}
		r.update(sc)
		r.gl.Call("render", r.scene, r.camera)
	})
}

func (r *Renderer) build(sc *hero.Scene) {
	t := r.three
	r.scene = t.Get("Scene").New()

	cam := sc.Camera
	r.camera = t.Get("PerspectiveCamera").New(cam.FOV, cam.Aspect, cam.Near, cam.Far)
	r.camera.Get("position").Call("set", cam.Pos.X, cam.Pos.Y, cam.Pos.Z)
	r.aspect = cam.Aspect

	r.ambient = t.Get("AmbientLight").New(palette.Hex(sc.Ambient.Color), sc.Ambient.Intensity)
	r.key = t.Get("PointLight").New(palette.Hex(sc.Key.Color), sc.Key.Intensity)
	r.key.Get("position").Call("set", sc.Key.Pos.X, sc.Key.Pos.Y, sc.Key.Pos.Z)
	r.scene.Call("add", r.ambient, r.key)

	g := sc.Group
	sp := g.Orb.Sphere
	r.orb = t.Get("Mesh").New(
		t.Get("SphereGeometry").New(sp.Radius, sp.WidthSegs, sp.HeightSegs),
		t.Get("MeshStandardMaterial").New(),
	)
	tr := g.Ring.Torus
	r.ring = t.Get("Mesh").New(
		t.Get("TorusGeometry").New(tr.Radius, tr.TubeRadius, tr.RadialSegs, tr.TubularSegs),
		t.Get("MeshStandardMaterial").New(),
	)
	r.group = t.Get("Group").New()
	r.group.Call("add", r.orb, r.ring)
	r.scene.Call("add", r.group)
}

func (r *Renderer) update(sc *hero.Scene) {
	if sc.Camera.Aspect != r.aspect {
		r.aspect = sc.Camera.Aspect
		r.camera.Set("aspect", r.aspect)
		r.camera.Call("updateProjectionMatrix")
	}
	setLight(r.ambient, sc.Ambient)
	setLight(r.key, sc.Key.Light)

	g := sc.Group
	setRotation(r.group, g.Rot)
	setRotation(r.ring, g.Ring.Rot)
	setMaterial(r.orb.Get("material"), g.Orb.Material)
	setMaterial(r.ring.Get("material"), g.Ring.Material)
}

func setLight(lt js.Value, l hero.Light) {
	lt.Get("color").Call("set", palette.Hex(l.Color))
	lt.Set("intensity", l.Intensity)
}

func setRotation(obj js.Value, rot math32.Vector3) {
	obj.Get("rotation").Call("set", rot.X, rot.Y, rot.Z)
}

func setMaterial(mt js.Value, m hero.Material) {
	mt.Get("color").Call("set", palette.Hex(m.Color))
	mt.Get("emissive").Call("set", palette.Hex(m.Emissive))
	mt.Set("emissiveIntensity", m.EmissiveIntensity)
	mt.Set("metalness", m.Metalness)
	mt.Set("roughness", m.Roughness)
}
