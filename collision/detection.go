// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"math"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/shape"
)

// narrowPhase dispatches on the pair's shape kinds, exactly mirroring the
// teacher's collider.algorithms[kindA][kindB] dispatch table in spirit
// (physics/collision.go in gazed-vu; g3n's own narrowphase has only one
// polygon-polygon case, but the same table-by-kind idea applies once a
// second shape kind exists).
func (d *Detector) narrowPhase(a, b *body.Body) []Info {
	switch sa := a.Shape().(type) {
	case *shape.ConvexPolygon:
		switch sb := b.Shape().(type) {
		case *shape.ConvexPolygon:
			return d.collidePolygonPolygon(sa, sb)
		case *shape.Disc:
			if info, ok := collideDiscPolygon(sb, sa); ok {
				// discPolygon's normal points from polygon to circle
				// (polygon is "b" there); here polygon is a=body1 so the
				// normal must point from body2(circle) to body1(polygon).
				info.Normal = info.Normal.Negate()
				return []Info{info}
			}
			return nil
		}
	case *shape.Disc:
		switch sb := b.Shape().(type) {
		case *shape.Disc:
			if info, ok := collideDiscDisc(sa, sb); ok {
				return []Info{info}
			}
			return nil
		case *shape.ConvexPolygon:
			if info, ok := collideDiscPolygon(sa, sb); ok {
				return []Info{info}
			}
			return nil
		}
	}
	return nil
}

// collidePolygonPolygon implements the Separating Axis Theorem narrow
// phase of spec §4.4: search both shapes' edge normals for the axis of
// least overlap, orient it, then build a 1- or 2-point manifold from the
// closest features.
func (d *Detector) collidePolygonPolygon(pa, pb *shape.ConvexPolygon) []Info {
	axes := append(append([]math2.Vec2{}, pa.EdgeNormals()...), pb.EdgeNormals()...)

	bestOverlap := math.Inf(1)
	var bestAxis math2.Vec2
	found := false

	for _, axis := range axes {
		aMin, aMax := pa.Project(axis)
		bMin, bMax := pb.Project(axis)

		overlap := math.Min(aMax-bMin, bMax-aMin)
		if overlap < 0 {
			// Separating axis found: shapes are disjoint.
			return nil
		}
		// Strict less-than: ties keep the earlier axis, so a shared flat
		// edge resolves to that edge's own normal (spec §4.4).
		if overlap < bestOverlap {
			bestOverlap = overlap
			bestAxis = axis
			found = true
		}
	}
	if !found {
		return nil
	}

	normal := bestAxis
	if pa.Center().Sub(pb.Center()).Dot(normal) < 0 {
		normal = normal.Negate()
	}

	closestA := closestPoints(pa.WorldVertices(), normal, pb.Center(), d.Margin)
	closestB := closestPoints(pb.WorldVertices(), normal, pa.Center(), d.Margin)

	return buildManifold(closestA, closestB, normal, bestOverlap)
}

// closestPoints returns the vertex of verts whose projection onto n is
// closest to other's projection onto n, plus a second vertex if its
// projected distance is within margin of the closest one (spec §4.4).
func closestPoints(verts []math2.Vec2, n, other math2.Vec2, margin float64) []math2.Vec2 {
	otherProj := other.Dot(n)

	bestIdx := 0
	bestDist := math.Abs(verts[0].Dot(n) - otherProj)
	for i := 1; i < len(verts); i++ {
		dist := math.Abs(verts[i].Dot(n) - otherProj)
		if dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}

	secondIdx := -1
	secondDist := math.Inf(1)
	for i, v := range verts {
		if i == bestIdx {
			continue
		}
		dist := math.Abs(v.Dot(n) - otherProj)
		if dist < secondDist {
			secondDist = dist
			secondIdx = i
		}
	}

	points := []math2.Vec2{verts[bestIdx]}
	if secondIdx >= 0 && secondDist-bestDist <= margin {
		points = append(points, verts[secondIdx])
	}
	return points
}

// buildManifold combines the two closest-feature sets into 0, 1, or 2
// contacts, per the point-point / point-edge / edge-edge cases of spec
// §4.4.
func buildManifold(a, b []math2.Vec2, normal math2.Vec2, depth float64) []Info {
	switch {
	case len(a) == 1 && len(b) == 1:
		// Point-point: single contact at the midpoint.
		mid := a[0].Add(b[0]).Scale(0.5)
		return []Info{{Pos: mid, Depth: depth, Normal: normal}}

	case len(a) == 1:
		// Point-edge: single contact at the singleton vertex.
		return []Info{{Pos: a[0], Depth: depth, Normal: normal}}

	case len(b) == 1:
		return []Info{{Pos: b[0], Depth: depth, Normal: normal}}

	default:
		// Edge-edge: clip both 2-point feature sets against the tangent
		// axis and emit the two world-space endpoints of the overlap.
		tangent := normal.Orth()
		p0, p1, tMin0 := orderByProjection(a[0], a[1], tangent)
		q0, q1, tMin1 := orderByProjection(b[0], b[1], tangent)

		tMaxA := p1.Dot(tangent)
		tMaxB := q1.Dot(tangent)

		clipMin := math.Max(tMin0, tMin1)
		clipMax := math.Min(tMaxA, tMaxB)
		if clipMax < clipMin {
			// Degenerate: fall back to a single midpoint contact rather
			// than emit an inverted segment.
			mid := p0.Add(q0).Scale(0.5)
			return []Info{{Pos: mid, Depth: depth, Normal: normal}}
		}

		point1 := p0.Add(tangent.Scale(clipMin - tMin0))
		point2 := p0.Add(tangent.Scale(clipMax - tMin0))
		return []Info{
			{Pos: point1, Depth: depth, Normal: normal},
			{Pos: point2, Depth: depth, Normal: normal},
		}
	}
}

// orderByProjection returns u, v ordered so u's projection onto axis is <=
// v's, along with that minimum projection value.
func orderByProjection(u, v, axis math2.Vec2) (lo, hi math2.Vec2, loProj float64) {
	pu, pv := u.Dot(axis), v.Dot(axis)
	if pu <= pv {
		return u, v, pu
	}
	return v, u, pv
}
