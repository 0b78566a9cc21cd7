// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"math"

	"github.com/quartzengine/phys2d/math2"
)

// Disc is a circular shape of fixed radius.
type Disc struct {
	Radius float64
	center math2.Vec2
}

// NewDisc creates a Disc of the given radius centered at the origin. The
// caller's Body is expected to call UpdatePose before the shape is used in
// detection.
func NewDisc(radius float64) (*Disc, error) {
	if !(radius > 0) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, errors.New("shape: disc radius must be finite and positive")
	}
	return &Disc{Radius: radius}, nil
}

// Kind implements Shape.
func (d *Disc) Kind() Kind { return KindDisc }

// Project implements Shape.
func (d *Disc) Project(axis math2.Vec2) (min, max float64) {
	c := d.center.Dot(axis)
	return c - d.Radius, c + d.Radius
}

// EdgeNormals implements Shape. A disc contributes no edge axes; disc
// contacts are found from the polygon's face normals and, in a corner
// region, the axis from the nearer face vertex to the disc center (see
// collision.collideDiscPolygon).
func (d *Disc) EdgeNormals() []math2.Vec2 { return nil }

// UpdatePose implements Shape.
func (d *Disc) UpdatePose(center math2.Vec2, angle float64) {
	d.center = center
}

// Center implements Shape.
func (d *Disc) Center() math2.Vec2 { return d.center }

// UnitMomentOfInertia implements Shape: ½r² for a uniform disc of unit mass.
func (d *Disc) UnitMomentOfInertia() float64 {
	return 0.5 * d.Radius * d.Radius
}
