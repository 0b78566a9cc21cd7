// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzengine/phys2d/math2"
)

func unitSquare() []math2.Vec2 {
	return []math2.Vec2{
		math2.New(0, 0),
		math2.New(1, 0),
		math2.New(1, 1),
		math2.New(0, 1),
	}
}

func TestNewPolygon_RejectsTooFewVertices(t *testing.T) {
	_, err := NewPolygon([]math2.Vec2{math2.New(0, 0), math2.New(1, 0)})
	assert.Error(t, err)
}

func TestNewPolygon_RejectsNonConvex(t *testing.T) {
	// A non-convex "dart" shape.
	_, err := NewPolygon([]math2.Vec2{
		math2.New(0, 0),
		math2.New(2, 0),
		math2.New(1, 1),
		math2.New(2, 2),
		math2.New(0, 2),
	})
	assert.Error(t, err)
}

func TestNewPolygon_NormalizesClockwiseWinding(t *testing.T) {
	cw := []math2.Vec2{
		math2.New(0, 0),
		math2.New(0, 1),
		math2.New(1, 1),
		math2.New(1, 0),
	}
	p, err := NewPolygon(cw)
	require.NoError(t, err)

	// Offsets summing to zero holds regardless of winding.
	var sum math2.Vec2
	for _, o := range p.Offsets() {
		sum = sum.Add(o)
	}
	assert.InDelta(t, 0, sum.X, 1e-12)
	assert.InDelta(t, 0, sum.Y, 1e-12)

	// The stored loop is counter-clockwise: positive signed area.
	assert.Greater(t, signedArea(p.WorldVertices()), 0.0)
}

func TestPolygon_OffsetsSumToZero(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	var sum math2.Vec2
	for _, o := range p.Offsets() {
		sum = sum.Add(o)
	}
	assert.InDelta(t, 0, sum.X, 1e-12)
	assert.InDelta(t, 0, sum.Y, 1e-12)
}

func TestPolygon_ProjectOntoAxis(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	min, max := p.Project(math2.New(1, 0))
	assert.InDelta(t, 0, min, 1e-12)
	assert.InDelta(t, 1, max, 1e-12)
}

func TestPolygon_UnitMomentOfInertia_UnitSquare(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, p.UnitMomentOfInertia(), 1e-9)
}

func TestPolygon_UnitMomentOfInertia_ManyGonApproachesDiscLimit(t *testing.T) {
	const n = 10000
	verts := make([]math2.Vec2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = math2.New(math.Cos(theta), math.Sin(theta))
	}
	p, err := NewPolygon(verts)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.UnitMomentOfInertia(), 1e-4)
}

func TestPolygon_UpdatePose_RotationRoundTrip(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	center := p.Center()
	offsets := p.Offsets()

	p.UpdatePose(center, 0.7)
	for i, v := range p.WorldVertices() {
		recovered := v.Sub(center).Rotate(-0.7)
		assert.InDelta(t, offsets[i].X, recovered.X, 1e-12)
		assert.InDelta(t, offsets[i].Y, recovered.Y, 1e-12)
	}
}

func TestPolygon_EdgeNormals_PointOutward(t *testing.T) {
	p, err := NewPolygon(unitSquare())
	require.NoError(t, err)

	normals := p.EdgeNormals()
	require.Len(t, normals, 4)
	verts := p.WorldVertices()
	for i, n := range normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-9)
		// Outward: the edge's first vertex lies on the normal's side of
		// the centroid.
		assert.Greater(t, n.Dot(verts[i].Sub(p.Center())), 0.0)
	}
}
