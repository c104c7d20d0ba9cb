// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hero

import (
	"image"

	"cogentcore.org/core/math32"
)

// Camera is a perspective camera looking down the negative z axis.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width / height ratio of the output.
	Aspect float32

	// Near and Far are the distances of the clipping planes.
	Near, Far float32

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Projection is the projection matrix, committed by
	// [Camera.UpdateProjection].
	Projection math32.Matrix4
}

// SetAspect sets the aspect ratio from the given output size.
// An empty height gives an aspect of 1.
func (cm *Camera) SetAspect(size image.Point) {
	if size.Y <= 0 {
		cm.Aspect = 1
		return
	}
	cm.Aspect = float32(size.X) / float32(size.Y)
}

// UpdateProjection recomputes the projection matrix
// from the current camera parameters.
func (cm *Camera) UpdateProjection() {
	cm.Projection.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
}
