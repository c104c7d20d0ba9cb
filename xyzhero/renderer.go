// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzhero

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/digitora/orbhero/hero"
)

// Renderer is a [hero.Renderer] drawing into the [xyz.Scene] of a
// scene widget. The xyz nodes are created from the first [hero.Scene]
// rendered and updated from it on every frame after that.
type Renderer struct {
	Widget *xyzcore.Scene

	ratio float32
	size  image.Point

	group   *xyz.Group
	orb     *xyz.Solid
	ring    *xyz.Solid
	ambient *xyz.LightBase
	key     *xyz.LightBase
	lights  [2]hero.Light
}

func newRenderer(sw *xyzcore.Scene, opts hero.RendererOptions) *Renderer {
	sc := sw.XYZ
	sc.MultiSample = 1
	if opts.Antialias {
		sc.MultiSample = 4
	}
	if opts.Alpha {
		sc.Background = colors.Uniform(color.Transparent)
	}
	sc.NoNav = true
	return &Renderer{Widget: sw, ratio: 1}
}

// SetPixelRatio records the ratio; the widget renders at the
// resolution of its window, which already accounts for it.
func (r *Renderer) SetPixelRatio(ratio float32) {
	r.ratio = ratio
}

// SetSize records the size; the widget resizes its render
// frame itself when its layout changes.
func (r *Renderer) SetSize(size image.Point) {
	r.size = size
}

func (r *Renderer) Render(sc *hero.Scene) error {
	xs := r.Widget.XYZ
	if r.group == nil {
		r.build(xs, sc)
	}

	xs.Camera.FOV = sc.Camera.FOV
	xs.Camera.Near = sc.Camera.Near
	xs.Camera.Far = sc.Camera.Far
	xs.Camera.Pose.Pos = sc.Camera.Pos
	xs.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))

	g := sc.Group
	r.group.SetEulerRotation(math32.RadToDeg(g.Rot.X), math32.RadToDeg(g.Rot.Y), math32.RadToDeg(g.Rot.Z))
	r.ring.SetEulerRotation(math32.RadToDeg(g.Ring.Rot.X), math32.RadToDeg(g.Ring.Rot.Y), math32.RadToDeg(g.Ring.Rot.Z))
	setMaterial(&r.orb.Material, g.Orb.Material)
	setMaterial(&r.ring.Material, g.Ring.Material)

	lights := [2]hero.Light{sc.Ambient, sc.Key.Light}
	if lights != r.lights {
		r.lights = lights
		setLight(r.ambient, sc.Ambient)
		setLight(r.key, sc.Key.Light)
		xs.SetNeedsConfig()
	}

	xs.SetNeedsUpdate()
	r.Widget.NeedsRender()
	return nil
}

func (r *Renderer) build(xs *xyz.Scene, sc *hero.Scene) {
	r.ambient = xyz.NewAmbient(xs, "ambient", sc.Ambient.Intensity, xyz.DirectSun).AsLightBase()
	key := xyz.NewPoint(xs, "key", sc.Key.Intensity, xyz.DirectSun)
	key.Pos = sc.Key.Pos
	r.key = key.AsLightBase()

	sp := sc.Group.Orb.Sphere
	orbMesh := xyz.NewSphere(xs, "orb", sp.Radius, sp.WidthSegs)
	orbMesh.HeightSegs = sp.HeightSegs

	// xyz counts torus segments the other way around.
	tr := sc.Group.Ring.Torus
	ringMesh := xyz.NewTorus(xs, "ring", tr.Radius, tr.TubeRadius, tr.TubularSegs)
	ringMesh.TubeSegs = tr.RadialSegs

	r.group = xyz.NewGroup(xs)
	r.group.SetName("hero")
	r.orb = xyz.NewSolid(r.group).SetMesh(orbMesh)
	r.orb.SetName("orb")
	r.ring = xyz.NewSolid(r.group).SetMesh(ringMesh)
	r.ring.SetName("ring")
	xs.SetNeedsConfig()
}

// setMaterial maps a physically inspired material onto the
// phong parameters of xyz: metalness becomes reflectivity,
// smoothness becomes a tighter specular highlight, and the
// emissive intensity scales the emissive color.
func setMaterial(mt *xyz.Material, m hero.Material) {
	mt.Color = m.Color
	mt.Emissive = scaleColor(m.Emissive, m.EmissiveIntensity)
	mt.Reflective = m.Metalness
	mt.Shiny = shininess(m.Roughness)
}

func setLight(lb *xyz.LightBase, l hero.Light) {
	lb.Color = l.Color
	lb.Lumens = l.Intensity
}

// shininess returns the phong specular exponent for a roughness in [0, 1].
func shininess(roughness float32) float32 {
	s := 1 - math32.Clamp(roughness, 0, 1)
	return math32.Max(1, 128*s*s)
}

func scaleColor(c color.RGBA, k float32) color.RGBA {
	k = math32.Clamp(k, 0, 1)
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
