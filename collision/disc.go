// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"math"

	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/shape"
)

// collideDiscDisc implements spec §4.4's disc-disc case: depth is the
// radius sum minus center distance, the normal points from b toward a, and
// the contact position is the midpoint of the two discs' surface points
// along that normal.
func collideDiscDisc(a, b *shape.Disc) (Info, bool) {
	delta := a.Center().Sub(b.Center())
	dist := delta.Length()
	radiusSum := a.Radius + b.Radius
	if dist >= radiusSum {
		return Info{}, false
	}

	var normal math2.Vec2
	if dist > 1e-9 {
		normal = delta.Div(dist)
	} else {
		// Coincident centers: any axis separates them equally well.
		normal = math2.New(1, 0)
	}

	surfaceA := a.Center().Sub(normal.Scale(a.Radius))
	surfaceB := b.Center().Add(normal.Scale(b.Radius))
	pos := surfaceA.Add(surfaceB).Scale(0.5)

	return Info{Pos: pos, Depth: radiusSum - dist, Normal: normal}, true
}

// collideDiscPolygon implements spec §4.4's disc-polygon case, following
// the teacher's box2d-lite-derived face-separation search: find the
// polygon face of maximum separation from the disc center, then resolve
// against either that face directly or against the nearer of its two
// vertices, depending on which Voronoi region the disc center falls in.
// The returned normal points from the polygon (b) toward the disc (a), as
// narrowPhase's dispatcher expects before any a/b-role renegotiation.
func collideDiscPolygon(a *shape.Disc, b *shape.ConvexPolygon) (Info, bool) {
	verts := b.WorldVertices()
	normals := b.EdgeNormals()
	n := len(verts)

	bestFace := 0
	bestSep := math.Inf(-1)
	for i := 0; i < n; i++ {
		sep := normals[i].Dot(a.Center().Sub(verts[i]))
		if sep > bestSep {
			bestSep = sep
			bestFace = i
		}
	}

	if bestSep > a.Radius {
		// Disc center lies further from the face than its radius: no
		// overlap is possible.
		return Info{}, false
	}

	v1 := verts[bestFace]
	v2 := verts[(bestFace+1)%n]

	if bestSep < 1e-9 {
		// Disc center is inside the polygon: resolve directly along the
		// face normal, with depth the radius plus the center's distance
		// behind that face.
		normal := normals[bestFace]
		pos := a.Center().Sub(normal.Scale(a.Radius))
		return Info{Pos: pos, Depth: a.Radius - bestSep, Normal: normal}, true
	}

	edge := v2.Sub(v1)
	u1 := a.Center().Sub(v1).Dot(edge)
	u2 := a.Center().Sub(v2).Dot(edge.Negate())

	switch {
	case u1 <= 0:
		return discVsVertex(a, v1)
	case u2 <= 0:
		return discVsVertex(a, v2)
	default:
		normal := normals[bestFace]
		depth := a.Radius - bestSep
		if depth < 0 {
			return Info{}, false
		}
		pos := a.Center().Sub(normal.Scale(a.Radius))
		return Info{Pos: pos, Depth: depth, Normal: normal}, true
	}
}

// discVsVertex resolves a disc against a single polygon vertex, the
// "corner" Voronoi-region case of collideDiscPolygon.
func discVsVertex(a *shape.Disc, vertex math2.Vec2) (Info, bool) {
	delta := a.Center().Sub(vertex)
	dist := delta.Length()
	if dist >= a.Radius {
		return Info{}, false
	}

	var normal math2.Vec2
	if dist > 1e-9 {
		normal = delta.Div(dist)
	} else {
		normal = math2.New(1, 0)
	}

	pos := vertex
	return Info{Pos: pos, Depth: a.Radius - dist, Normal: normal}, true
}
