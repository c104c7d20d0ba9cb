// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

// Config has the parameters of the hero visual.
// The zero value is not valid; call [Config.Defaults] first.
type Config struct {

	// ContainerID is the identifier of the element that hosts the
	// rendering surface.
	ContainerID string `default:"canvas3d"`

	// OrbSpeed is the yaw of the whole group added every frame, in radians.
	OrbSpeed float32 `default:"0.007"`

	// RingSpeed is the roll of the ring added every frame, in radians.
	RingSpeed float32 `default:"0.0015"`

	// CameraZ is the distance of the camera from the origin along the view axis.
	CameraZ float32 `default:"4"`

	// FOV is the vertical field of view of the camera in degrees.
	FOV float32 `default:"45"`

	// Near is the distance of the near clipping plane.
	Near float32 `default:"0.1"`

	// Far is the distance of the far clipping plane.
	Far float32 `default:"1000"`

	// MaxPixelRatio caps the device pixel ratio of the output.
	MaxPixelRatio float32 `default:"2"`

	// RingTilt is the initial pitch of the ring, in multiples of π.
	RingTilt float32 `default:"0.22"`
}

// Defaults sets the default values, matching the `default:` tags.
func (c *Config) Defaults() {
	c.ContainerID = "canvas3d"
	c.OrbSpeed = 0.007
	c.RingSpeed = 0.0015
	c.CameraZ = 4
	c.FOV = 45
	c.Near = 0.1
	c.Far = 1000
	c.MaxPixelRatio = 2
	c.RingTilt = 0.22
}

// DefaultConfig returns a new [Config] with default values.
func DefaultConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}
