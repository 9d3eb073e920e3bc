// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import "github.com/cpmech/godestruct/vecmath"

const voxelGridSize = 4

// rayTriangleIntersects is the Möller–Trumbore ray-triangle test, used to
// classify voxel centers as inside or outside a fragment (§4.2.5).
func rayTriangleIntersects(origin, dir, v0, v1, v2 vecmath.Vec3) bool {
	const eps = 1e-6
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if a > -eps && a < eps {
		return false
	}
	f := 1 / a
	s := origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}
	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}
	t := f * edge2.Dot(q)
	return t > eps
}

// isPointInsideFragment casts a ray in +X and counts triangle intersections;
// an odd count means the point is inside (§4.2.5).
func isPointInsideFragment(point vecmath.Vec3, verts []vecmath.Vec3, tris [][3]int) bool {
	rayDir := vecmath.Vec3{X: 1, Y: 0, Z: 0}
	count := 0
	for _, tri := range tris {
		if rayTriangleIntersects(point, rayDir, verts[tri[0]], verts[tri[1]], verts[tri[2]]) {
			count++
		}
	}
	return count%2 == 1
}

// generateVoxelApproximation fills a fixed 4x4x4 occupancy grid over f's
// AABB (§4.2.5).
func generateVoxelApproximation(f *Fragment) *[4][4][4]bool {
	var grid [4][4][4]bool
	size := f.AABB.Size()
	step := vecmath.Vec3{X: size.X / voxelGridSize, Y: size.Y / voxelGridSize, Z: size.Z / voxelGridSize}

	for z := 0; z < voxelGridSize; z++ {
		for y := 0; y < voxelGridSize; y++ {
			for x := 0; x < voxelGridSize; x++ {
				center := vecmath.Vec3{
					X: f.AABB.Min.X + (float64(x)+0.5)*step.X,
					Y: f.AABB.Min.Y + (float64(y)+0.5)*step.Y,
					Z: f.AABB.Min.Z + (float64(z)+0.5)*step.Z,
				}
				grid[x][y][z] = isPointInsideFragment(center, f.Vertices, f.Indices)
			}
		}
	}
	return &grid
}
