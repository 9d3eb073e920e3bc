// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/godestruct/material"
	"github.com/stretchr/testify/assert"
)

func cube() *Mesh {
	pos := []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	norm := make([]Vec3, len(pos))
	for i := range norm {
		norm[i] = Vec3{0, 0, 1}
	}
	m := NewMesh(pos, norm, [][3]int{{0, 1, 2}, {0, 2, 3}}, nil)
	m.Initialize(material.Get(material.Glass))
	m.AddLoadBearingEdge(0, 1, 1000, true)
	m.AddLoadBearingEdge(1, 2, 1000, false)
	return m
}

func TestInitializeFillsDefaults(t *testing.T) {
	m := cube()
	for _, mass := range m.VertexMasses {
		assert.Equal(t, 1.0, mass)
	}
	assert.Equal(t, float64(len(m.VertexMasses)), m.TotalMass)
	assert.Len(t, m.Materials, 1)
}

func TestCalculateLoadsZeroGravity(t *testing.T) {
	m := cube()
	m.CalculateLoads(Vec3{})
	for _, l := range m.VertexLoads {
		assert.Equal(t, 0.0, l)
	}
}

func TestCalculateLoadsPropagatesAlongEdges(t *testing.T) {
	m := cube()
	m.CalculateLoads(Vec3{0, -10, 0})
	assert.Greater(t, m.VertexLoads[1], m.VertexMasses[1]*10)
}

func TestResetStressPreservesFractured(t *testing.T) {
	m := cube()
	m.VertexStress[0].Fractured = true
	m.VertexStress[0].Tensile = 500
	m.ResetStress()
	assert.True(t, m.VertexStress[0].Fractured)
	assert.Equal(t, 0.0, m.VertexStress[0].Tensile)
	assert.False(t, m.VertexStress[0].Yielding)
}

func TestCalculateStressSkipsZeroArea(t *testing.T) {
	m := cube()
	m.VertexLoads[0] = 100
	m.CalculateStressFromLoads([]float64{0, 1, 1, 1})
	assert.Equal(t, 0.0, m.VertexStress[0].Compressive)
}

func TestCheckStructuralFailureMonotonic(t *testing.T) {
	m := cube()
	m.VertexStress[0].VonMises = 1e12
	m.VertexStress[0].Tensile = 1e12
	failed := m.CheckStructuralFailure()
	assert.Contains(t, failed, 0)
	assert.True(t, m.VertexStress[0].Fractured)
}

func TestApplyImpactOutOfRangeIgnored(t *testing.T) {
	m := cube()
	assert.NotPanics(t, func() {
		m.ApplyImpact(99, Vec3{0, 0, 1}, Vec3{0, 0, 1}, 100)
	})
}

func TestApplyImpactBrittlePropagates(t *testing.T) {
	m := cube()
	m.ApplyImpact(0, Vec3{0, 0, 1}, Vec3{0, 0, 1}, 1e6)
	assert.True(t, m.VertexStress[0].Fractured)
	assert.True(t, m.VertexStress[1].Fractured) // direct neighbor of 0
}

func TestPropagateFractureDepthOne(t *testing.T) {
	m := cube()
	m.VertexStress[0].VonMises = 1e9
	m.PropagateFracture(0)
	assert.Equal(t, 0.0, m.VertexStress[2].VonMises) // not a direct neighbor of 0
}

func TestHasCriticalFailure(t *testing.T) {
	m := cube()
	assert.False(t, m.HasCriticalFailure())
	for _, e := range m.Edges() {
		if e.IsCritical {
			e.CurrentLoad = e.LoadCapacity + 1
		}
	}
	assert.True(t, m.HasCriticalFailure())
}
