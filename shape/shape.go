// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the closed set of 2D collision shapes: discs and
// convex polygons. Shapes are matched at dispatch sites rather than through
// open inheritance, so adding a third shape kind means extending every
// matcher below — that is intentional (see spec §9).
package shape

import "github.com/quartzengine/phys2d/math2"

// Kind tags the two supported shape variants.
type Kind int

const (
	// KindDisc is a circle of fixed radius.
	KindDisc Kind = iota
	// KindPolygon is a convex polygon wound counter-clockwise.
	KindPolygon
)

// Shape is the interface every collision shape implements. It is a closed
// sum type in spirit: the collision package type-switches to *Disc or
// *ConvexPolygon for narrow-phase dispatch, it never relies on Shape
// alone. Kind exists for callers (e.g. scene loaders, renderers) that
// want to branch on variant without importing the shape types directly.
type Shape interface {
	// Kind reports which concrete variant this shape is.
	Kind() Kind

	// Project returns the [min, max] extent of the shape along axis, in
	// world space. axis need not be normalized by the caller's convention,
	// but narrow-phase code always passes unit axes.
	Project(axis math2.Vec2) (min, max float64)

	// EdgeNormals returns the candidate separating axes contributed by
	// this shape's edges. Returns nil for shapes with no edges (Disc).
	EdgeNormals() []math2.Vec2

	// UpdatePose recomputes any world-space cache (vertices, center) from
	// the body's current center of mass and orientation. Called once per
	// integration step by Body.
	UpdatePose(center math2.Vec2, angle float64)

	// Center returns the shape's current world-space centroid.
	Center() math2.Vec2

	// UnitMomentOfInertia returns the moment of inertia this shape would
	// have about its centroid at unit mass and uniform density. Body
	// multiplies this by mass to get the body's actual inertia.
	UnitMomentOfInertia() float64
}
