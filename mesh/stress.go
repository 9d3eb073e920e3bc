// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/godestruct/material"
	"github.com/cpmech/gosl/la"
)

// impact-stress constants, fixed by contract (§4.1) — preserve exactly.
const (
	impactAreaM2        = 0.001
	penetrationDepthM   = 0.1
	loadTransferRatio   = 0.5
	propagationPasses   = 5
	fractureTransferPct = 0.3
	brittlePropagateMin = 0.5
)

// Initialize fills vertex masses to 1.0 kg, zeros loads and stress, and
// seeds the material table with one entry (§4.1).
func (m *Mesh) Initialize(defaultMaterial material.Material) {
	n := m.VertexCount()
	m.Materials = []material.Material{defaultMaterial}
	m.VertexMasses = make([]float64, n)
	m.VertexLoads = make([]float64, n)
	m.VertexStress = make([]Stress, n)
	m.TotalMass = 0
	for i := range m.VertexMasses {
		m.VertexMasses[i] = 1.0
		m.TotalMass += 1.0
	}
}

// CalculateLoads resets per-vertex load, applies gravity, then performs
// exactly five relaxation passes over load-bearing edges (§4.1). The
// transfer is directional (a → b) and intentionally non-conservative —
// this is the spec's contract, not a bug to be "fixed" into a symmetric
// solver.
func (m *Mesh) CalculateLoads(gravity Vec3) {
	la.VecFill(m.VertexLoads, 0)
	g := gravity.Length()
	for i := range m.VertexLoads {
		m.VertexLoads[i] = m.VertexMasses[i] * g
	}
	edges := m.Edges()
	for pass := 0; pass < propagationPasses; pass++ {
		for _, e := range edges {
			transferred := m.VertexLoads[e.VertexA] * loadTransferRatio
			m.VertexLoads[e.VertexB] += transferred
			e.CurrentLoad = transferred
		}
	}
}

// CalculateStressFromLoads sets compressive/von-Mises stress from load over
// area for every vertex with positive area; vertices with non-positive area
// are skipped without modification (§4.1).
func (m *Mesh) CalculateStressFromLoads(vertexAreas []float64) {
	for i := range m.VertexLoads {
		if i >= len(vertexAreas) || vertexAreas[i] <= 0 {
			continue
		}
		stressPa := m.VertexLoads[i] / vertexAreas[i]
		m.VertexStress[i].Compressive = stressPa
		m.VertexStress[i].VonMises = stressPa
		mat := m.MaterialAt(i)
		m.VertexStress[i].Yielding = stressPa > mat.YieldStrength
	}
}

// CheckStructuralFailure marks and returns every vertex whose stress
// exceeds its material's strength (§4.1). Fractured is monotonic.
func (m *Mesh) CheckStructuralFailure() []int {
	var failed []int
	for i := range m.VertexStress {
		mat := m.MaterialAt(i)
		if m.VertexStress[i].IsOverstressed(mat) {
			m.VertexStress[i].Fractured = true
			failed = append(failed, i)
		}
	}
	return failed
}

// ApplyImpact converts a ballistic kinetic energy into stress at
// vertexIndex and propagates a fracture if the material is brittle and now
// overstressed (§4.1). Out-of-range indices are silently ignored.
func (m *Mesh) ApplyImpact(vertexIndex int, impactDirection, vertexNormal Vec3, kineticEnergy float64) {
	if vertexIndex < 0 || vertexIndex >= len(m.VertexStress) {
		return
	}
	mat := m.MaterialAt(vertexIndex)

	force := kineticEnergy / penetrationDepthM
	stressPa := force / impactAreaM2

	s := &m.VertexStress[vertexIndex]
	if impactDirection.Dot(vertexNormal) > 0 {
		s.Compressive += stressPa
	} else {
		s.Tensile += stressPa
	}
	s.VonMises = math.Sqrt(s.Tensile*s.Tensile + s.Compressive*s.Compressive)

	if s.IsOverstressed(mat) {
		s.Fractured = true
		if mat.Brittle {
			m.PropagateFracture(vertexIndex)
		}
	}
}

// PropagateFracture spreads a crack one edge-hop from originVertex into its
// non-fractured neighbors, when the origin's stress intensity exceeds the
// brittle threshold (§4.1). Propagation is depth-1 per call; multi-hop
// cracks emerge over ticks via re-entry, never recursion.
func (m *Mesh) PropagateFracture(originVertex int) {
	if originVertex < 0 || originVertex >= len(m.VertexStress) {
		return
	}
	mat := m.MaterialAt(originVertex)
	if !mat.Brittle {
		return
	}
	origin := m.VertexStress[originVertex]
	stressIntensity := origin.VonMises / mat.MaxStress
	if stressIntensity <= brittlePropagateMin {
		return
	}
	for _, e := range m.neighborEdges(originVertex) {
		adj := e.VertexB
		if adj == originVertex {
			adj = e.VertexA
		}
		if m.VertexStress[adj].Fractured {
			continue
		}
		m.VertexStress[adj].VonMises += origin.VonMises * fractureTransferPct
		adjMat := m.MaterialAt(adj)
		if m.VertexStress[adj].IsOverstressed(adjMat) {
			m.VertexStress[adj].Fractured = true
		}
	}
}

// ResetStress zeros every vertex's ephemeral stress fields; Fractured is
// preserved (§4.1, §8 invariant).
func (m *Mesh) ResetStress() {
	for i := range m.VertexStress {
		m.VertexStress[i].reset()
	}
}
