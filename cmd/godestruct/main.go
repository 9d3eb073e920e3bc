// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command godestruct runs a small end-to-end demo tick of the
// destruction pipeline: stress analysis, Voronoi fracturing and debris
// bookkeeping wired together against the in-memory reference world.
package main

import (
	"flag"

	"github.com/cpmech/godestruct/debris"
	"github.com/cpmech/godestruct/fracture"
	"github.com/cpmech/godestruct/internal/ulog"
	"github.com/cpmech/godestruct/material"
	"github.com/cpmech/godestruct/mesh"
	"github.com/cpmech/godestruct/vecmath"
	"github.com/cpmech/godestruct/voronoi"
	"github.com/cpmech/godestruct/world"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			ulog.Error("ERROR: %v\n", err)
		}
	}()

	materialName := flag.String("material", material.Glass, "structural material preset")
	fractureName := flag.String("fracture", fracture.Glass, "fracture behavior preset")
	fragments := flag.Int("fragments", 12, "requested fragment count")
	energy := flag.Float64("energy", 500, "impact kinetic energy (J)")
	seed := flag.Uint64("seed", 42, "deterministic RNG seed")
	verbose := flag.Bool("verbose", true, "print tick-by-tick trace")
	flag.Parse()

	ulog.Verbose = *verbose
	ulog.Banner("Godestruct -- real-time destructible-world demo",
		"Copyright 2024 The Godestruct Authors. All rights reserved.")

	mat := material.Get(*materialName)
	props := fracture.Get(*fractureName)

	m := buildCubeMesh()
	m.Initialize(mat)

	w := world.NewMemWorld()
	w.SetCameraPosition(vecmath.Vec3{X: 0, Y: 0, Z: -5})
	cam := world.MemCamera{W: w}

	impact := fracture.Event{
		Position:        vecmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Direction:       vecmath.Vec3{X: 0, Y: 0, Z: 1},
		KineticEnergy:   *energy,
		Type:            fracture.Point,
		Force:           100,
		ImpulseDuration: 0.01,
	}
	m.ApplyImpact(0, impact.Direction, m.Normals[0], impact.KineticEnergy)

	pieceCount := int(props.GetPieceCount(vecmath.Clamp(*energy/1000, 0, 1)))
	if *fragments > 0 {
		pieceCount = *fragments
	}
	cfg := voronoi.Config{
		NumFragments:        pieceCount,
		PoissonMinDistance:  0.15,
		Seed:                *seed,
		WeldMinVolume:       0.001,
		FracturePieceBounds: props,
	}
	frags := voronoi.FractureMeshAtPoint(m, impact, cfg)
	ulog.Tick("generated %d fragments\n", len(frags))

	mgr := debris.NewManager(debris.Config{
		MaxEntities:     200,
		MaxTriangles:    20000,
		Lifetime:        30,
		MergeDistance:   0.05,
		LODDistanceNear: 5,
		LODDistanceFar:  50,
		LODMultNear:     1.0,
		LODMultFar:      0.1,
	})

	for _, f := range frags {
		id := w.CreateEntity()
		w.SetPosition(id, f.Position)
		w.SpawnRigidBody(id, world.RigidBody{
			Mass:            f.Mass,
			InertiaTensor:   f.InertiaTensor,
			Position:        f.Position,
			Orientation:     f.Rotation,
			LinearVelocity:  f.LinearVelocity,
			AngularVelocity: f.AngularVelocity,
		})
		mgr.Register(id, len(f.Indices)/3, f.Position)
	}

	mgr.Update(w, cam, 1.0/60)
	ulog.Tick("tracked entities after tick: %d, triangles: %d\n", mgr.EntityCount(), mgr.TotalTriangles())
}

// buildCubeMesh returns a unit-cube mesh, the same shape used by the
// package test fixtures, as a simple standalone demo target.
func buildCubeMesh() *mesh.Mesh {
	positions := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	normals := make([]vecmath.Vec3, len(positions))
	return mesh.NewMesh(positions, normals, nil, nil)
}
