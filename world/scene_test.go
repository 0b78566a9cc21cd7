// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRotatingStackScene_StepsCleanly(t *testing.T) {
	bodies, err := NewRotatingStackScene()
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.False(t, bodies[0].IsStatic())
	assert.True(t, bodies[1].IsStatic())
	assert.InDelta(t, 1.0, bodies[0].Angle(), 1e-12)

	w, err := New(bodies, DefaultConfig())
	require.NoError(t, err)
	w.Step()
}

func TestNewPileScene_BuildsIncreasingSidedPile(t *testing.T) {
	bodies, err := NewPileScene()
	require.NoError(t, err)
	require.Len(t, bodies, 11)
	for _, b := range bodies[:10] {
		assert.False(t, b.IsStatic())
	}
	assert.True(t, bodies[10].IsStatic())

	w, err := New(bodies, DefaultConfig())
	require.NoError(t, err)
	w.Step()
}

func TestNewEnclosedPileScene_BuildsFloorAndWalls(t *testing.T) {
	bodies, err := NewEnclosedPileScene()
	require.NoError(t, err)
	require.Len(t, bodies, 23)
	for _, b := range bodies[:20] {
		assert.False(t, b.IsStatic())
	}
	for _, b := range bodies[20:] {
		assert.True(t, b.IsStatic())
	}

	w, err := New(bodies, DefaultConfig())
	require.NoError(t, err)
	w.Step()
}

func TestNewBoxStackScene_BuildsTallStack(t *testing.T) {
	bodies, err := NewBoxStackScene()
	require.NoError(t, err)
	require.Len(t, bodies, 21)
	for _, b := range bodies[:20] {
		assert.False(t, b.IsStatic())
	}
	assert.True(t, bodies[20].IsStatic())

	w, err := New(bodies, DefaultConfig())
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		w.Step()
	}
}
