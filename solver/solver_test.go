// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/collision"
	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/shape"
)

func mustDiscBody(t *testing.T, pos math2.Vec2, vel math2.Vec2, mass float64) *body.Body {
	t.Helper()
	s, err := shape.NewDisc(1)
	require.NoError(t, err)
	b, err := body.New(s, pos, 0, mass)
	require.NoError(t, err)
	b.SetVel(vel)
	return b
}

func TestResolveOne_SeparatingContact_NoImpulse(t *testing.T) {
	a := mustDiscBody(t, math2.New(0, 0), math2.New(-1, 0), 1)
	b := mustDiscBody(t, math2.New(1.5, 0), math2.New(0, 0), 0)

	r := New(DefaultConfig())
	contact := collision.Info{Pos: math2.New(1, 0), Depth: 0, Normal: math2.New(-1, 0)}
	r.resolveOne(a, b, contact)

	assert.Equal(t, math2.New(-1, 0), a.Vel())
}

func TestResolveOne_ApproachingContact_AppliesImpulse(t *testing.T) {
	// a moving toward b along +x; b is a static wall to the right.
	a := mustDiscBody(t, math2.New(0, 0), math2.New(1, 0), 1)
	b := mustDiscBody(t, math2.New(1.5, 0), math2.New(0, 0), 0)

	cfg := DefaultConfig()
	cfg.Baumgarte = 0
	r := New(cfg)
	contact := collision.Info{Pos: math2.New(1, 0), Depth: 0, Normal: math2.New(-1, 0)}
	r.resolveOne(a, b, contact)

	// a's velocity along the normal should be reversed/absorbed: vx should
	// decrease (become <= 0) after the impulse, since it was approaching.
	assert.LessOrEqual(t, a.Vel().X, 0.0)
	assert.Equal(t, math2.Zero, b.Vel())
}

func TestIndexTwice_PanicsOnEqualIndices(t *testing.T) {
	bodies := []*body.Body{
		mustDiscBody(t, math2.New(0, 0), math2.Zero, 1),
		mustDiscBody(t, math2.New(2, 0), math2.Zero, 1),
	}
	assert.Panics(t, func() {
		indexTwice(bodies, 1, 1)
	})
}

func TestIndexTwice_PanicsOutOfRange(t *testing.T) {
	bodies := []*body.Body{
		mustDiscBody(t, math2.New(0, 0), math2.Zero, 1),
	}
	assert.Panics(t, func() {
		indexTwice(bodies, 0, 5)
	})
}

func TestResolve_StaticBodyNeverMoves(t *testing.T) {
	a := mustDiscBody(t, math2.New(0, 0), math2.New(1, 0), 1)
	wall := mustDiscBody(t, math2.New(1.5, 0), math2.Zero, 0)

	r := New(DefaultConfig())
	contacts := []collision.Collision{
		{Info: collision.Info{Pos: math2.New(1, 0), Depth: 0.1, Normal: math2.New(-1, 0)}, BodyA: 0, BodyB: 1},
	}
	r.Resolve([]*body.Body{a, wall}, contacts)

	assert.Equal(t, math2.Zero, wall.Vel())
}
