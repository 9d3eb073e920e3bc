// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"testing"

	"github.com/cpmech/godestruct/fracture"
	"github.com/cpmech/godestruct/material"
	"github.com/cpmech/godestruct/mesh"
	"github.com/stretchr/testify/assert"
)

func box(t *testing.T) *mesh.Mesh {
	positions := []Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	normals := make([]Vec3, len(positions))
	m := mesh.NewMesh(positions, normals, nil, nil)
	m.Initialize(material.Get(material.Glass))
	return m
}

func TestFractureMeshAtPointProducesFragments(t *testing.T) {
	m := box(t)
	impact := fracture.Event{Position: Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Direction: Vec3{X: 0, Y: 0, Z: 1},
		KineticEnergy: 500, Type: fracture.Point, Force: 100, ImpulseDuration: 0.01}
	cfg := Config{NumFragments: 6, PoissonMinDistance: 0.2, Seed: 42}

	frags := FractureMeshAtPoint(m, impact, cfg)
	assert.NotEmpty(t, frags)
	for _, f := range frags {
		assert.GreaterOrEqual(t, f.Mass, 0.1)
		assert.InDelta(t, 1.0, f.Rotation.Length(), 1e-9)
		assert.GreaterOrEqual(t, f.InertiaTensor.X, 0.0)
		assert.GreaterOrEqual(t, f.InertiaTensor.Y, 0.0)
		assert.GreaterOrEqual(t, f.InertiaTensor.Z, 0.0)
	}
}

func TestFractureDeterministicForSameSeed(t *testing.T) {
	m := box(t)
	impact := fracture.Event{Position: Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Direction: Vec3{X: 1, Y: 0, Z: 0},
		KineticEnergy: 300, Type: fracture.Blunt, Force: 50, ImpulseDuration: 0.02}
	cfg := Config{NumFragments: 5, PoissonMinDistance: 0.25, Seed: 7}

	a := FractureMeshAtPoint(m, impact, cfg)
	b := FractureMeshAtPoint(m, impact, cfg)

	assert.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Centroid, b[i].Centroid)
		assert.Equal(t, a[i].Mass, b[i].Mass)
		assert.Equal(t, a[i].LinearVelocity, b[i].LinearVelocity)
		assert.Equal(t, a[i].AngularVelocity, b[i].AngularVelocity)
	}
}

func TestFractureDegenerateInputReturnsEmpty(t *testing.T) {
	assert.Nil(t, FractureMeshAtPoint(nil, fracture.Event{}, Config{NumFragments: 5, PoissonMinDistance: 0.1}))

	empty := mesh.NewMesh(nil, nil, nil, nil)
	assert.Nil(t, FractureMeshAtPoint(empty, fracture.Event{}, Config{NumFragments: 5, PoissonMinDistance: 0.1}))

	m := box(t)
	assert.Nil(t, FractureMeshAtPoint(m, fracture.Event{}, Config{NumFragments: 0, PoissonMinDistance: 0.1}))
}

func TestFractureAlongStressLinesUsesMeanPosition(t *testing.T) {
	m := box(t)
	frags := FractureAlongStressLines(m, []int{0, 2}, Config{NumFragments: 4, PoissonMinDistance: 0.3, Seed: 1})
	assert.NotEmpty(t, frags)
}

func TestFractureAlongStressLinesEmptyListReturnsEmpty(t *testing.T) {
	m := box(t)
	assert.Nil(t, FractureAlongStressLines(m, nil, Config{NumFragments: 4, PoissonMinDistance: 0.3}))
}

func TestRayTriangleIntersects(t *testing.T) {
	v0 := Vec3{X: 1, Y: -1, Z: -1}
	v1 := Vec3{X: 1, Y: 1, Z: -1}
	v2 := Vec3{X: 1, Y: 0, Z: 1}
	origin := Vec3{X: 0, Y: 0, Z: 0}
	dir := Vec3{X: 1, Y: 0, Z: 0}
	assert.True(t, rayTriangleIntersects(origin, dir, v0, v1, v2))
}

func TestFracturePieceBoundsClampsRequestedCount(t *testing.T) {
	m := box(t)
	impact := fracture.Event{Position: Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Direction: Vec3{X: 0, Y: 0, Z: 1},
		KineticEnergy: 500, Type: fracture.Point}
	props := fracture.Get(fracture.Metal) // min 1, max 3
	cfg := Config{NumFragments: 50, PoissonMinDistance: 0.05, Seed: 1, FracturePieceBounds: props}

	frags := FractureMeshAtPoint(m, impact, cfg)
	assert.LessOrEqual(t, len(frags), int(props.MaxFracturePieces))
}

func TestFanTriangulateRejectsSmallCells(t *testing.T) {
	assert.Nil(t, fanTriangulate([]Vec3{{X: 0}, {X: 1}, {X: 2}}))
	tris := fanTriangulate([]Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}})
	assert.Len(t, tris, 5)
}
