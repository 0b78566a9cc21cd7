package math2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)

	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(-1, -2), a.Negate())
	assert.Equal(t, New(2, 4), a.Scale(2))
	assert.Equal(t, float64(1), a.Dot(b))
}

func TestVec2_Orth(t *testing.T) {
	v := New(1, 0)
	assert.Equal(t, New(0, 1), v.Orth())

	v = New(0, 1)
	assert.Equal(t, New(-1, 0), v.Orth())
}

func TestVec2_Rotate(t *testing.T) {
	v := New(1, 0)
	r := v.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 1, r.Y, 1e-9)
}

func TestVec2_Rotate_RoundTrip(t *testing.T) {
	v := New(3, -4)
	theta := 0.73
	r := v.Rotate(theta).Rotate(-theta)
	assert.InDelta(t, v.X, r.X, 1e-12)
	assert.InDelta(t, v.Y, r.Y, 1e-12)
}

func TestVec2_NormalizeAndLength(t *testing.T) {
	v := New(3, 4)
	assert.Equal(t, float64(5), v.Length())
	assert.Equal(t, float64(25), v.LengthSq())

	n := v.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-12)
}

func TestVec2_Cross(t *testing.T) {
	assert.Equal(t, float64(1), New(1, 0).Cross(New(0, 1)))
	assert.Equal(t, float64(-1), New(0, 1).Cross(New(1, 0)))
}
