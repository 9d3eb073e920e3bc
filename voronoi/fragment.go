// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import "github.com/cpmech/godestruct/vecmath"

// Vec3 is re-exported so callers needn't import vecmath directly for the
// common case.
type Vec3 = vecmath.Vec3

// Fragment is a physics-ready debris piece produced by a fracture call
// (§3.5). The world is expected to wrap this into an owned debris entity
// and hand the physics fields to its rigid-body integrator (§6.2).
type Fragment struct {
	Vertices []Vec3
	Indices  [][3]int
	Normals  []Vec3
	UVs      []Vec3 // Z unused

	Centroid      Vec3
	AABB          vecmath.AABB
	Mass          float64
	InertiaTensor Vec3 // diagonal Ixx, Iyy, Izz

	Position        Vec3
	Rotation        vecmath.Quat
	LinearVelocity  Vec3
	AngularVelocity Vec3

	VoxelOccupancy *[4][4][4]bool // nil unless requested
}

const (
	fragmentDensityKgPerM3 = 1000.0
	minFragmentMassKg      = 0.1
)

// computeAttributes fills centroid, AABB, mass and inertia tensor from the
// fragment's vertex set (§4.2.4). Degenerate (empty) input yields the zero
// values — this is a total function.
func computeAttributes(f *Fragment) {
	if len(f.Vertices) == 0 {
		return
	}
	var sum Vec3
	for _, v := range f.Vertices {
		sum = sum.Add(v)
	}
	f.Centroid = sum.Scale(1 / float64(len(f.Vertices)))

	f.AABB = vecmath.ComputeAABB(f.Vertices)
	size := f.AABB.Size()
	volume := size.X * size.Y * size.Z
	if volume < 0 {
		volume = 0
	}
	f.Mass = volume * fragmentDensityKgPerM3
	if f.Mass < minFragmentMassKg {
		f.Mass = minFragmentMassKg
	}

	m := f.Mass
	f.InertiaTensor = Vec3{
		X: (m / 12) * (size.Y*size.Y + size.Z*size.Z),
		Y: (m / 12) * (size.X*size.X + size.Z*size.Z),
		Z: (m / 12) * (size.X*size.X + size.Y*size.Y),
	}
}

// assignPlanarUVs projects each vertex onto the plane perpendicular to the
// fragment AABB's dominant axis (§4.2.3).
func assignPlanarUVs(f *Fragment) {
	size := f.AABB.Size()
	axis := 0
	if size.Y > size.X && size.Y > size.Z {
		axis = 1
	} else if size.Z > size.X && size.Z > size.Y {
		axis = 2
	}

	f.UVs = make([]Vec3, len(f.Vertices))
	for i, v := range f.Vertices {
		var u, w float64
		switch axis {
		case 0:
			u = (v.Y - f.AABB.Min.Y) / max(0.001, size.Y)
			w = (v.Z - f.AABB.Min.Z) / max(0.001, size.Z)
		case 1:
			u = (v.X - f.AABB.Min.X) / max(0.001, size.X)
			w = (v.Z - f.AABB.Min.Z) / max(0.001, size.Z)
		default:
			u = (v.X - f.AABB.Min.X) / max(0.001, size.X)
			w = (v.Y - f.AABB.Min.Y) / max(0.001, size.Y)
		}
		f.UVs[i] = Vec3{X: u, Y: w}
	}
}
