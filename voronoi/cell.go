// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import "github.com/cpmech/godestruct/vecmath"

const clipTolerance = -1e-6

// computeVoronoiCells builds one bounded, approximate Voronoi cell per
// seed by clipping the mesh AABB against the half-space midway to every
// other seed (§4.2.2). A cell clipped to nothing is reported as an empty
// slice, never an error — this stage never fails.
func computeVoronoiCells(seeds []vecmath.Vec3, box vecmath.AABB) [][]vecmath.Vec3 {
	cells := make([][]vecmath.Vec3, len(seeds))
	corners := box.Corners()
	for i, seed := range seeds {
		verts := corners[:]
		cellVerts := make([]vecmath.Vec3, len(verts))
		copy(cellVerts, verts)

		for j, other := range seeds {
			if i == j {
				continue
			}
			midpoint := vecmath.LerpVec3(seed, other, 0.5)
			normal := seed.Sub(other).Normalize()
			if normal.IsZero() {
				continue
			}

			var clipped []vecmath.Vec3
			for _, v := range cellVerts {
				if v.Sub(midpoint).Dot(normal) >= clipTolerance {
					clipped = append(clipped, v)
				}
			}
			cellVerts = clipped
			if len(cellVerts) == 0 {
				break
			}
		}
		cells[i] = cellVerts
	}
	return cells
}

// fanTriangulate builds the fan/tetrahedron triangulation of a cell's
// vertex set (§4.2.3): a tetrahedron from the first four vertices, then
// one triangle (0, i-1, i) per additional vertex. Cells with fewer than
// four vertices cannot form a solid and are rejected.
func fanTriangulate(verts []vecmath.Vec3) [][3]int {
	if len(verts) < 4 {
		return nil
	}
	tris := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
	for i := 4; i < len(verts); i++ {
		tris = append(tris, [3]int{0, i - 1, i})
	}
	return tris
}
