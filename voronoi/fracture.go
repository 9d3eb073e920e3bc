// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/godestruct/fracture"
	"github.com/cpmech/godestruct/mesh"
	"github.com/cpmech/godestruct/vecmath"
)

// FractureMeshAtPoint runs the full pipeline from a source mesh to a set
// of debris fragments, seeding from a single impact point (§4.2). It never
// fails: degenerate input yields a nil slice.
func FractureMeshAtPoint(m *mesh.Mesh, impact fracture.Event, cfg Config) []Fragment {
	cfg.Impact = &impact
	return fractureMesh(m, cfg)
}

// FractureAlongStressLines seeds fracture from a list of failed vertices
// rather than a single impact point (§4.2). When cfg.Impact is nil the
// mean position of the failed vertices stands in for the impact point so
// the same stress-guided sampler can be reused; this is a reasonable
// degenerate case of "impact" rather than a second sampling algorithm.
func FractureAlongStressLines(m *mesh.Mesh, failedVertices []int, cfg Config) []Fragment {
	if len(failedVertices) == 0 || m == nil {
		return nil
	}
	if cfg.Impact == nil {
		var sum vecmath.Vec3
		n := 0
		for _, vi := range failedVertices {
			if vi >= 0 && vi < m.VertexCount() {
				sum = sum.Add(m.Positions[vi])
				n++
			}
		}
		if n == 0 {
			return nil
		}
		cfg.Impact = &fracture.Event{Position: sum.Scale(1 / float64(n)), Type: fracture.Explosion}
	}
	return fractureMesh(m, cfg)
}

func fractureMesh(m *mesh.Mesh, cfg Config) []Fragment {
	if m == nil || len(m.Positions) == 0 || cfg.NumFragments <= 0 {
		return nil
	}
	if b := cfg.FracturePieceBounds; b.MaxFracturePieces > 0 {
		switch {
		case cfg.NumFragments < int(b.MinFracturePieces):
			cfg.NumFragments = int(b.MinFracturePieces)
		case cfg.NumFragments > int(b.MaxFracturePieces):
			cfg.NumFragments = int(b.MaxFracturePieces)
		}
	}

	box := vecmath.ComputeAABB(m.Positions)
	if box.Volume() <= 0 {
		return nil
	}

	var seeds []vecmath.Vec3
	if cfg.Impact != nil {
		seeds = generateStressGuidedSamples(box, cfg.PoissonMinDistance, cfg.NumFragments, *cfg.Impact, cfg.Material, cfg.Seed)
	} else {
		seeds = generatePoissonSamples(box, cfg.PoissonMinDistance, cfg.NumFragments, cfg.Seed)
	}
	if len(seeds) == 0 {
		return nil
	}

	cells := computeVoronoiCells(seeds, box)

	fragments := make([]Fragment, 0, len(cells))
	for i, cellVerts := range cells {
		if len(cellVerts) == 0 {
			continue
		}
		tris := fanTriangulate(cellVerts)
		if tris == nil {
			continue
		}

		f := Fragment{
			Vertices: cellVerts,
			Indices:  tris,
			Normals:  make([]vecmath.Vec3, len(cellVerts)),
			Rotation: vecmath.IdentityQuat(),
		}
		for n := range f.Normals {
			f.Normals[n] = vecmath.Vec3{X: 0, Y: 1, Z: 0}
		}

		computeAttributes(&f)
		assignPlanarUVs(&f)
		f.Position = f.Centroid

		if cfg.Impact != nil {
			applyImpactVelocity(&f, *cfg.Impact, cfg.Seed, i)
		}

		if cfg.GenerateVoxelApproximation {
			f.VoxelOccupancy = generateVoxelApproximation(&f)
		}

		fragments = append(fragments, f)
	}

	return weldTinyFragments(fragments, cfg.WeldMinVolume)
}

// weldTinyFragments merges any fragment whose AABB volume is below
// minVolume into its nearest-centroid neighbor, at generation time
// (§6.5's supplemented WeldMinVolume). Disabled when minVolume <= 0.
func weldTinyFragments(fragments []Fragment, minVolume float64) []Fragment {
	if minVolume <= 0 || len(fragments) < 2 {
		return fragments
	}
	kept := make([]bool, len(fragments))
	for i := range kept {
		kept[i] = true
	}
	for i := range fragments {
		vol := fragments[i].AABB.Volume()
		if vol >= minVolume || !kept[i] {
			continue
		}
		nearest := -1
		nearestDist := 0.0
		for j := range fragments {
			if i == j || !kept[j] {
				continue
			}
			d := fragments[i].Centroid.Sub(fragments[j].Centroid).Length()
			if nearest == -1 || d < nearestDist {
				nearest = j
				nearestDist = d
			}
		}
		if nearest == -1 {
			continue
		}
		// Absorb i's vertices into nearest's attribute calculation; indices
		// are not re-triangulated, matching §4.2.3's own simplification
		// (the cell polytope is the fragment geometry, not a true mesh
		// intersection) one step further.
		fragments[nearest].Vertices = append(fragments[nearest].Vertices, fragments[i].Vertices...)
		computeAttributes(&fragments[nearest])
		kept[i] = false
	}
	out := make([]Fragment, 0, len(fragments))
	for i, f := range fragments {
		if kept[i] {
			out = append(out, f)
		}
	}
	return out
}
