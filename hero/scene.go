// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/digitora/orbhero/palette"
)

// Scene describes everything a [Renderer] draws: the camera, the two
// lights and the group holding the orb and the ring. It is plain data;
// renderers translate it into the objects of their rendering library.
type Scene struct {
	Camera Camera

	// Ambient is the uniform ambient light.
	Ambient Light

	// Key is the point light giving the orb its highlight.
	Key PointLight

	// Group is the transform node owning the orb and the ring.
	Group Group
}

// Light is a light with a color and an intensity.
type Light struct {
	Color     color.RGBA
	Intensity float32
}

// PointLight is a [Light] at a position.
type PointLight struct {
	Light
	Pos math32.Vector3
}

// Material is a physically inspired standard material.
type Material struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
}

// Sphere is the geometry of a UV sphere.
type Sphere struct {
	Radius     float32
	WidthSegs  int
	HeightSegs int
}

// Torus is the geometry of a torus. RadialSegs are the segments
// around the tube cross section, TubularSegs those along the ring.
type Torus struct {
	Radius      float32
	TubeRadius  float32
	RadialSegs  int
	TubularSegs int
}

// Orb is the sphere at the center of the visual.
type Orb struct {
	Sphere   Sphere
	Material Material
}

// Ring is the torus around the orb. Rot is its local
// rotation as XYZ euler angles in radians.
type Ring struct {
	Torus    Torus
	Material Material
	Rot      math32.Vector3
}

// Group is the parent of the orb and the ring. Rot is its
// rotation as XYZ euler angles in radians.
type Group struct {
	Rot  math32.Vector3
	Orb  Orb
	Ring Ring
}

// NewScene returns the scene for the given config and container size,
// with the theme dependent values left at zero.
func NewScene(cfg *Config, size image.Point) *Scene {
	sc := &Scene{}
	sc.Camera = Camera{
		FOV:  cfg.FOV,
		Near: cfg.Near,
		Far:  cfg.Far,
		Pos:  math32.Vec3(0, 0, cfg.CameraZ),
	}
	sc.Camera.SetAspect(size)
	sc.Camera.UpdateProjection()

	sc.Ambient.Color = colors.FromRGB(0xff, 0xff, 0xff)
	sc.Key.Color = colors.FromRGB(0x3d, 0xd5, 0xff)
	sc.Key.Pos = math32.Vec3(3, 2, 4)

	sc.Group.Orb.Sphere = Sphere{Radius: 1.1, WidthSegs: 64, HeightSegs: 64}
	sc.Group.Ring.Torus = Torus{Radius: 1.7, TubeRadius: 0.16, RadialSegs: 80, TubularSegs: 200}
	sc.Group.Ring.Rot.X = math32.Pi * cfg.RingTilt
	return sc
}

// SetPalette overwrites every theme dependent value with
// those of the given palette.
func (sc *Scene) SetPalette(p palette.Palette) {
	orb := &sc.Group.Orb.Material
	orb.Color = p.Orb.Color
	orb.Emissive = p.Orb.Emissive
	orb.EmissiveIntensity = p.Orb.EmissiveIntensity
	orb.Metalness = p.Orb.Metalness
	orb.Roughness = p.Orb.Roughness

	ring := &sc.Group.Ring.Material
	ring.Color = p.Ring.Color
	ring.Emissive = color.RGBA{}
	ring.EmissiveIntensity = 0
	ring.Metalness = p.Ring.Metalness
	ring.Roughness = p.Ring.Roughness

	sc.Ambient.Intensity = p.Lights.Ambient
	sc.Key.Intensity = p.Lights.Key
}

// Advance moves the animation forward by one frame.
func (sc *Scene) Advance(yaw, roll float32) {
	sc.Group.Rot.Y += yaw
	sc.Group.Ring.Rot.Z += roll
}

// Yaw returns the current rotation of the group around its vertical axis.
func (sc *Scene) Yaw() float32 { return sc.Group.Rot.Y }

// Roll returns the current rotation of the ring around its own axis.
func (sc *Scene) Roll() float32 { return sc.Group.Ring.Rot.Z }
