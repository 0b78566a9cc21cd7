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

func TestNewDisc_RejectsNonPositiveRadius(t *testing.T) {
	_, err := NewDisc(0)
	assert.Error(t, err)

	_, err = NewDisc(-1)
	assert.Error(t, err)
}

func TestNewDisc_RejectsNaNAndInfRadius(t *testing.T) {
	_, err := NewDisc(math.NaN())
	assert.Error(t, err)

	_, err = NewDisc(math.Inf(1))
	assert.Error(t, err)
}

func TestNewDisc_ZeroCenteredUntilFirstUpdatePose(t *testing.T) {
	d, err := NewDisc(2)
	require.NoError(t, err)

	assert.Equal(t, math2.Zero, d.Center())
}

func TestDisc_UpdatePose_MovesCenterIgnoresAngle(t *testing.T) {
	d, err := NewDisc(1)
	require.NoError(t, err)

	d.UpdatePose(math2.New(3, 4), 1.2)
	assert.Equal(t, math2.New(3, 4), d.Center())

	// A disc's projection is rotation-invariant: re-posing at a different
	// angle but the same center leaves Project unchanged.
	minBefore, maxBefore := d.Project(math2.New(1, 0))
	d.UpdatePose(math2.New(3, 4), -5.6)
	minAfter, maxAfter := d.Project(math2.New(1, 0))
	assert.InDelta(t, minBefore, minAfter, 1e-12)
	assert.InDelta(t, maxBefore, maxAfter, 1e-12)
}

func TestDisc_Project_AlongAxis(t *testing.T) {
	d, err := NewDisc(2)
	require.NoError(t, err)
	d.UpdatePose(math2.New(5, 0), 0)

	min, max := d.Project(math2.New(1, 0))
	assert.InDelta(t, 3, min, 1e-12)
	assert.InDelta(t, 7, max, 1e-12)
}

func TestDisc_EdgeNormals_Empty(t *testing.T) {
	d, err := NewDisc(1)
	require.NoError(t, err)
	assert.Nil(t, d.EdgeNormals())
}

func TestDisc_UnitMomentOfInertia(t *testing.T) {
	d, err := NewDisc(2)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, d.UnitMomentOfInertia(), 1e-12) // 0.5 * r^2 = 0.5*4
}

func TestDisc_Kind(t *testing.T) {
	d, err := NewDisc(1)
	require.NoError(t, err)
	assert.Equal(t, KindDisc, d.Kind())
}
