// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"math"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/shape"
)

// NewDiscBody builds a disc-shaped Body of the given radius, pose, and
// mass. mass == 0 builds a static body, per body.New's convention.
func NewDiscBody(radius float64, pos math2.Vec2, angle, mass float64) (*body.Body, error) {
	s, err := shape.NewDisc(radius)
	if err != nil {
		return nil, err
	}
	return body.New(s, pos, angle, mass)
}

// NewPolygonBody builds a ConvexPolygon-shaped Body from world-space
// vertices, recentered around their own centroid by shape.NewPolygon, at
// the given pose and mass.
func NewPolygonBody(vertices []math2.Vec2, pos math2.Vec2, angle, mass float64) (*body.Body, error) {
	s, err := shape.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}
	return body.New(s, pos, angle, mass)
}

// NewRectangleBody builds an axis-aligned width×height rectangle body
// centered at pos.
func NewRectangleBody(width, height float64, pos math2.Vec2, angle, mass float64) (*body.Body, error) {
	hw, hh := width/2, height/2
	verts := []math2.Vec2{
		math2.New(pos.X-hw, pos.Y-hh),
		math2.New(pos.X+hw, pos.Y-hh),
		math2.New(pos.X+hw, pos.Y+hh),
		math2.New(pos.X-hw, pos.Y+hh),
	}
	return NewPolygonBody(verts, pos, angle, mass)
}

// NewRegularPolygonBody builds a regular n-gon of circumradius radius,
// centered at pos, with its first vertex at angle 0 before the body pose
// rotation is applied. n must be at least 3.
func NewRegularPolygonBody(n int, radius float64, pos math2.Vec2, angle, mass float64) (*body.Body, error) {
	verts := make([]math2.Vec2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = math2.New(pos.X+radius*math.Cos(theta), pos.Y+radius*math.Sin(theta))
	}
	return NewPolygonBody(verts, pos, angle, mass)
}

// Canonical scene builders, per spec §2's "Scene builders" component.
// Each mirrors one of original_source's test_collision_N fixtures
// (src/simulation/mod.rs), translated from per-call body pushes into a
// single slice-returning constructor in this package's idiom.

// NewRotatingStackScene builds the single-box rotating-stack scene: a
// unit square given an initial angular pose of 1 radian, falling onto a
// static unit square below it. Grounded on original_source's
// test_collision_1.
func NewRotatingStackScene() ([]*body.Body, error) {
	dyn, err := NewRectangleBody(1, 1, math2.New(0.5, 0.5), 1, 1)
	if err != nil {
		return nil, err
	}
	static, err := NewRectangleBody(1, 1, math2.New(0.5, 2.5), 0, 0)
	if err != nil {
		return nil, err
	}
	return []*body.Body{dyn, static}, nil
}

// NewPileScene builds a pile of ten regular polygons with increasing side
// counts (triangle, square, pentagon, ...) dropped onto a wide static
// floor. Grounded on original_source's test_collision_2.
func NewPileScene() ([]*body.Body, error) {
	const numPolygons = 10
	bodies := make([]*body.Body, 0, numPolygons+1)
	for i := 0; i < numPolygons; i++ {
		x := 0.1 + float64(i)*0.3
		y := -5.0 + float64(i)*1.3
		b, err := NewRegularPolygonBody(3+i, 0.5, math2.New(x, y), 0, 1)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	floor, err := NewRectangleBody(30, 3, math2.New(0, 10), 0, 0)
	if err != nil {
		return nil, err
	}
	return append(bodies, floor), nil
}

// NewEnclosedPileScene builds a larger pile of twenty regular polygons
// (side counts cycling triangle/square/pentagon) inside a floor and two
// side walls, so the pile settles instead of sliding off either edge.
// Grounded on original_source's test_collision_3.
func NewEnclosedPileScene() ([]*body.Body, error) {
	const numPolygons = 20
	bodies := make([]*body.Body, 0, numPolygons+3)
	for i := 0; i < numPolygons; i++ {
		x := 0.1 + float64(i)*0.1
		y := 0.0 - float64(i)*2.3
		b, err := NewRegularPolygonBody(3+i%3, 1.5, math2.New(x, y), 0, 1)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	floor, err := NewRectangleBody(30, 1, math2.New(0, 10), 0, 0)
	if err != nil {
		return nil, err
	}
	leftWall, err := NewRectangleBody(1, 30, math2.New(-5, 0), 0, 0)
	if err != nil {
		return nil, err
	}
	rightWall, err := NewRectangleBody(1, 30, math2.New(5, 0), 0, 0)
	if err != nil {
		return nil, err
	}
	return append(bodies, floor, leftWall, rightWall), nil
}

// NewBoxStackScene builds a tall stack of twenty falling unit boxes above
// a wide static floor. Grounded on original_source's test_collision_4.
func NewBoxStackScene() ([]*body.Body, error) {
	const numBoxes = 20
	bodies := make([]*body.Body, 0, numBoxes+1)
	for i := 0; i < numBoxes; i++ {
		b, err := NewRectangleBody(1, 1, math2.New(0.5, 0.5-1.4*float64(i)), 0, 1)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	floor, err := NewRectangleBody(5, 5, math2.New(0.5, 4.5), 0, 0)
	if err != nil {
		return nil, err
	}
	return append(bodies, floor), nil
}
