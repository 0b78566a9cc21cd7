// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/math2"
)

func TestWorld_FreeFall_MatchesSemiImplicitEuler(t *testing.T) {
	b, err := NewRectangleBody(1, 1, math2.New(0, 0), 0, 1)
	require.NoError(t, err)

	cfg := DefaultConfig()
	w, err := New([]*body.Body{b}, cfg)
	require.NoError(t, err)

	const steps = 50
	for i := 0; i < steps; i++ {
		w.Step()
	}

	tTotal := cfg.Dt * steps
	// Semi-implicit Euler's position error relative to continuous ½g·t² is
	// bounded by one step's worth of velocity error; check within a loose
	// tolerance scaled by dt.
	expected := 0.5 * cfg.Gravity.Y * tTotal * tTotal
	assert.InDelta(t, expected, b.Pos().Y, cfg.Gravity.Y*cfg.Dt*tTotal)
}

func TestWorld_Quiescence_ZeroGravityAtRest(t *testing.T) {
	a, err := NewRectangleBody(1, 1, math2.New(0, 0), 0, 1)
	require.NoError(t, err)
	staticB, err := NewRectangleBody(1, 1, math2.New(1, 0), 0, 0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Gravity = math2.Zero
	w, err := New([]*body.Body{a, staticB}, cfg)
	require.NoError(t, err)

	w.Step()

	assert.InDelta(t, 0, a.Vel().Length(), 1e-9)
	assert.InDelta(t, 0, a.AngVel(), 1e-9)
}

func TestWorld_FreeFallingTriangle_RestsOnStaticFloor(t *testing.T) {
	triangle, err := NewRegularPolygonBody(3, 1, math2.New(0, -0.6), 0, 1)
	require.NoError(t, err)
	floor, err := NewRectangleBody(20, 1, math2.New(0, 2), 0, 0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Friction = 0.3
	w, err := New([]*body.Body{triangle, floor}, cfg)
	require.NoError(t, err)

	const steps = 600
	for i := 0; i < steps; i++ {
		w.Step()
	}

	assert.Less(t, math.Abs(triangle.Vel().Y), cfg.Gravity.Y*cfg.Dt+1e-6)
}

func TestWorld_StackingTest_StableOnStaticSupport(t *testing.T) {
	dyn, err := NewRectangleBody(1, 1, math2.New(0.5, 0.5), 1, 1)
	require.NoError(t, err)
	static, err := NewRectangleBody(1, 1, math2.New(0.5, 2.5), 0, 0)
	require.NoError(t, err)

	cfg := DefaultConfig()
	w, err := New([]*body.Body{dyn, static}, cfg)
	require.NoError(t, err)

	const steps = 300
	for i := 0; i < steps; i++ {
		w.Step()
	}

	// Once resting on the static square, the dynamic square's vertical
	// velocity should stay within five steps' worth of gravity.
	assert.Less(t, math.Abs(dyn.Vel().Y), cfg.Gravity.Y*cfg.Dt*5)
}

func TestWorld_SetBodyPose_Teleports(t *testing.T) {
	b, err := NewDiscBody(1, math2.New(0, 0), 0, 1)
	require.NoError(t, err)
	w, err := New([]*body.Body{b}, DefaultConfig())
	require.NoError(t, err)

	w.SetBodyPose(0, math2.New(5, 5), 1.0)

	assert.Equal(t, math2.New(5, 5), w.Bodies()[0].Pos())
	assert.InDelta(t, 1.0, w.Bodies()[0].Angle(), 1e-12)
}

func TestConfig_Validate_RejectsNonPositiveDt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0
	_, err := New(nil, cfg)
	assert.Error(t, err)
}
