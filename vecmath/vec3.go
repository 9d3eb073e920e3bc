// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vecmath implements the small 3-vector, quaternion and AABB
// primitives shared by the stress, fracture and debris packages.
package vecmath

import "math"

// Vec3 is a 3-component vector or point, always in world units (meters,
// meters/second, etc. depending on context).
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec3{}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSq returns |v|².
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

// Length returns |v|.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Normalize returns v/|v|, or the zero vector if v is shorter than eps.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Zero
	}
	return v.Scale(1 / l)
}

// IsZero reports whether v is within eps of the zero vector.
func (v Vec3) IsZero() bool {
	const eps = 1e-9
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Component returns the axis-i component (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Min returns the component-wise minimum of v and w.
func Min(v, w Vec3) Vec3 {
	return Vec3{math.Min(v.X, w.X), math.Min(v.Y, w.Y), math.Min(v.Z, w.Z)}
}

// Max returns the component-wise maximum of v and w.
func Max(v, w Vec3) Vec3 {
	return Vec3{math.Max(v.X, w.X), math.Max(v.Y, w.Y), math.Max(v.Z, w.Z)}
}

// Lerp returns the scalar linear interpolation between a and b at t.
// t is not clamped; callers clamp first when spec requires it.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// LerpVec3 returns the component-wise linear interpolation between a and b at t.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
