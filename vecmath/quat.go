// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import "math"

// Quat is a unit quaternion (X, Y, Z, W) representing a rigid-body
// orientation. Fragments are always created with the identity orientation
// (§4.2.4); the rewrite does not need general quaternion composition.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat { return Quat{0, 0, 0, 1} }

// Length returns |q|.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// IsUnit reports whether q has unit length within tolerance.
func (q Quat) IsUnit() bool {
	return math.Abs(q.Length()-1) < 1e-6
}
