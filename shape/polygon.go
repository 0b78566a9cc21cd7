// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"math"

	"github.com/quartzengine/phys2d/math2"
)

// ConvexPolygon is a convex polygon shape wound counter-clockwise.
//
// The local offsets (vertex minus centroid, taken at construction time) are
// the canonical geometry. World vertices are a derived cache, refreshed on
// every UpdatePose call; detection code must never read the offsets
// directly — always go through WorldVertices/Project/EdgeNormals so the
// cache stays the single source of truth, as spec §4.3 requires.
type ConvexPolygon struct {
	offsets       []math2.Vec2 // local, relative to centroid at creation
	worldVertices []math2.Vec2 // cache: rotate(offset, angle) + center
	centroid      math2.Vec2
	angle         float64
}

// NewPolygon validates and builds a ConvexPolygon from world-space vertices.
//
// Validation: at least 3 vertices, all finite, and convex. Winding is
// normalized to counter-clockwise (reversed if the input was clockwise) so
// EdgeNormals always points outward as spec §4.1/§4.4 assume.
func NewPolygon(vertices []math2.Vec2) (*ConvexPolygon, error) {
	if len(vertices) < 3 {
		return nil, errors.New("shape: polygon needs at least 3 vertices")
	}
	for _, v := range vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return nil, errors.New("shape: polygon vertex coordinates must be finite")
		}
	}

	verts := make([]math2.Vec2, len(vertices))
	copy(verts, vertices)
	if signedArea(verts) < 0 {
		reverse(verts)
	}
	if !isConvex(verts) {
		return nil, errors.New("shape: polygon vertices must describe a convex shape")
	}

	centroid := vertexMean(verts)
	offsets := make([]math2.Vec2, len(verts))
	for i, v := range verts {
		offsets[i] = v.Sub(centroid)
	}

	p := &ConvexPolygon{
		offsets:       offsets,
		worldVertices: make([]math2.Vec2, len(verts)),
		centroid:      centroid,
	}
	p.UpdatePose(centroid, 0)
	return p, nil
}

// Offsets returns the local, centroid-relative vertex offsets.
func (p *ConvexPolygon) Offsets() []math2.Vec2 {
	return p.offsets
}

// WorldVertices returns the current world-space vertex cache.
func (p *ConvexPolygon) WorldVertices() []math2.Vec2 {
	return p.worldVertices
}

// Kind implements Shape.
func (p *ConvexPolygon) Kind() Kind { return KindPolygon }

// Project implements Shape: the [min, max] dot product of all world
// vertices with axis.
func (p *ConvexPolygon) Project(axis math2.Vec2) (min, max float64) {
	min = p.worldVertices[0].Dot(axis)
	max = min
	for _, v := range p.worldVertices[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// EdgeNormals implements Shape: the unit outward perpendicular of every
// edge v[i] - v[i+1] (wrapping), in vertex order.
func (p *ConvexPolygon) EdgeNormals() []math2.Vec2 {
	n := len(p.worldVertices)
	normals := make([]math2.Vec2, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := p.worldVertices[i].Sub(p.worldVertices[j])
		normals[i] = edge.Normalize().Orth()
	}
	return normals
}

// UpdatePose implements Shape: recomputes world vertices from the body's
// pose and stores center as the cached centroid.
func (p *ConvexPolygon) UpdatePose(center math2.Vec2, angle float64) {
	p.angle = angle
	p.centroid = center
	for i, off := range p.offsets {
		p.worldVertices[i] = off.Rotate(angle).Add(center)
	}
}

// Center implements Shape.
func (p *ConvexPolygon) Center() math2.Vec2 { return p.centroid }

// Angle returns the polygon's current world orientation in radians.
func (p *ConvexPolygon) Angle() float64 { return p.angle }

// UnitMomentOfInertia implements Shape, using the Green's-theorem formula
// for a uniform-density, unit-mass polygon about its centroid.
//
// spec §4.2 notes that the original source iterates edges 1..n, skipping
// edge (v0,v1) — an off-by-one. This implementation iterates all n edges
// with modular indexing, which is required for the unit-square ≈ 1/6
// testable property to hold (see DESIGN.md open question #1).
func (p *ConvexPolygon) UnitMomentOfInertia() float64 {
	var numerator, denominator float64
	n := len(p.offsets)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := p.offsets[i], p.offsets[j]
		cross := math.Abs(a.Cross(b))
		numerator += cross * (a.LengthSq() + a.Dot(b) + b.LengthSq())
		denominator += cross
	}
	return numerator / (6 * denominator)
}

func signedArea(vertices []math2.Vec2) float64 {
	var area float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].Cross(vertices[j])
	}
	return area / 2
}

func vertexMean(vertices []math2.Vec2) math2.Vec2 {
	var sum math2.Vec2
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Div(float64(len(vertices)))
}

func reverse(vertices []math2.Vec2) {
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}
}

// isConvex reports whether the (already CCW-wound) vertex loop turns
// consistently left at every vertex, with a small tolerance for collinear
// edges.
func isConvex(vertices []math2.Vec2) bool {
	n := len(vertices)
	sawPositive, sawNegative := false, false
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		c := vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		const eps = 1e-9
		if cross > eps {
			sawPositive = true
		} else if cross < -eps {
			sawNegative = true
		}
		if sawPositive && sawNegative {
			return false
		}
	}
	return true
}
