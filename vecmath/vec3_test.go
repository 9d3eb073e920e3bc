// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -1, 2}
	assert.Equal(t, Vec3{5, 1, 5}, a.Add(b))
	assert.Equal(t, Vec3{-3, 3, 1}, a.Sub(b))
	assert.Equal(t, float64(1*4+2*-1+3*2), a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-9)
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.Equal(t, Zero, Vec3{}.Normalize())
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}

func TestAABB(t *testing.T) {
	pts := []Vec3{{0, 0, 0}, {1, 2, 3}, {-1, 0, 1}}
	box := ComputeAABB(pts)
	assert.Equal(t, Vec3{-1, 0, 0}, box.Min)
	assert.Equal(t, Vec3{1, 2, 3}, box.Max)
	assert.InDelta(t, 12.0, box.Volume(), 1e-9)
	assert.True(t, box.Contains(Vec3{0, 1, 1}))
	assert.False(t, box.Contains(Vec3{5, 5, 5}))
}

func TestAABBEmpty(t *testing.T) {
	box := ComputeAABB(nil)
	assert.Equal(t, 0.0, box.Volume())
}
