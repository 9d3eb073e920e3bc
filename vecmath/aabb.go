// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// ComputeAABB returns the bounding box of points, or the zero box if points
// is empty.
func ComputeAABB(points []Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Min(lo, p)
		hi = Max(hi, p)
	}
	return AABB{Min: lo, Max: hi}
}

// Size returns the box's extent along each axis.
func (b AABB) Size() Vec3 { return b.Max.Sub(b.Min) }

// Center returns the box's midpoint.
func (b AABB) Center() Vec3 { return LerpVec3(b.Min, b.Max, 0.5) }

// Volume returns the box's volume; degenerate (zero-size) boxes return 0.
func (b AABB) Volume() float64 {
	s := b.Size()
	if s.X < 0 || s.Y < 0 || s.Z < 0 {
		return 0
	}
	return s.X * s.Y * s.Z
}

// Contains reports whether p lies within the box (inclusive).
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClampPoint restricts p to lie within the box.
func (b AABB) ClampPoint(p Vec3) Vec3 {
	return Vec3{
		Clamp(p.X, b.Min.X, b.Max.X),
		Clamp(p.Y, b.Min.Y, b.Max.Y),
		Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

// Corners returns the 8 vertices of the box, in the fixed order used
// throughout voronoi cell construction (min-z face then max-z face, each
// counter-clockwise starting at Min).
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
	}
}

// MaxCornerDistance returns the largest distance from p to any corner of b.
func (b AABB) MaxCornerDistance(p Vec3) float64 {
	var maxDist float64
	for _, c := range b.Corners() {
		d := c.Sub(p).Length()
		if d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}
