// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the structured mesh entity (§3.1) and the Stress
// Analyzer operations that act on it (§4.1).
package mesh

import (
	"strconv"

	"github.com/cpmech/godestruct/material"
	"github.com/cpmech/godestruct/vecmath"
	"github.com/katalvlaran/lvlath/core"
)

// Vec3 alias kept local so mesh's public API reads naturally; identical to
// vecmath.Vec3.
type Vec3 = vecmath.Vec3

// Stress holds the per-vertex stress state (§3.1). `Fractured` is monotonic:
// once true, ResetStress never clears it.
type Stress struct {
	Tensile     float64
	Compressive float64
	Shear       float64
	VonMises    float64
	Yielding    bool
	Fractured   bool
}

// IsOverstressed reports whether s exceeds m's strength limits.
func (s Stress) IsOverstressed(m material.Material) bool {
	return s.Tensile > m.TensileStrength ||
		s.Compressive > m.CompressiveStrength ||
		s.VonMises > m.MaxStress
}

// reset zeros the ephemeral fields; Fractured is left untouched.
func (s *Stress) reset() {
	s.Tensile = 0
	s.Compressive = 0
	s.Shear = 0
	s.VonMises = 0
	s.Yielding = false
}

// LoadBearingEdgePayload is the physical data carried by a load-bearing
// connection. Topology (which vertices an edge connects) lives in the
// lvlath graph; this struct is the parallel payload keyed by the same edge
// ID, since core.Edge.Weight is a single int64 and cannot hold three
// independent fields.
type LoadBearingEdgePayload struct {
	VertexA      int
	VertexB      int
	LoadCapacity float64 // newtons
	CurrentLoad  float64 // newtons, written by CalculateLoads
	IsCritical   bool
}

// IsOverloaded reports whether the edge exceeds its load capacity.
func (e LoadBearingEdgePayload) IsOverloaded() bool {
	return e.CurrentLoad > e.LoadCapacity
}

// LoadRatio returns current/capacity, or 0 if capacity is non-positive
// (supplements the original engine's get_load_ratio; not part of spec.md's
// closed edge-tuple but harmless and useful to callers wanting a normalized
// overload signal).
func (e LoadBearingEdgePayload) LoadRatio() float64 {
	if e.LoadCapacity <= 0 {
		return 0
	}
	return e.CurrentLoad / e.LoadCapacity
}

// Mesh is a structured destructible mesh entity (§3.1).
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   [][3]int
	UVs       []Vec3 // Z unused; kept as Vec3 to reuse vecmath helpers

	Materials []material.Material

	VertexMasses []float64
	VertexLoads  []float64
	VertexStress []Stress

	edges     *core.Graph
	edgeData  map[string]*LoadBearingEdgePayload
	edgeOrder []string
	TotalMass float64
}

// NewMesh builds an empty mesh with the given geometry; call Initialize to
// populate masses/stress/materials.
func NewMesh(positions []Vec3, normals []Vec3, indices [][3]int, uvs []Vec3) *Mesh {
	return &Mesh{
		Positions: positions,
		Normals:   normals,
		Indices:   indices,
		UVs:       uvs,
		edges:     core.NewGraph(core.WithWeighted()),
		edgeData:  make(map[string]*LoadBearingEdgePayload),
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// MaterialAt returns the material for vertex i via the index-mod-length
// rule (§3.1); returns the zero Material if no materials are registered.
func (m *Mesh) MaterialAt(i int) material.Material {
	if len(m.Materials) == 0 {
		return material.Material{}
	}
	return m.Materials[((i%len(m.Materials))+len(m.Materials))%len(m.Materials)]
}

// AddLoadBearingEdge registers a structural connection between vertices a
// and b (§3.1). Invalid endpoints (out of range, or a == b) are silently
// rejected — core operations never panic on bad input (§4.1 failure
// semantics extends to mesh construction).
func (m *Mesh) AddLoadBearingEdge(a, b int, loadCapacity float64, critical bool) {
	if a == b || a < 0 || b < 0 || a >= m.VertexCount() || b >= m.VertexCount() {
		return
	}
	id, err := m.edges.AddEdge(strconv.Itoa(a), strconv.Itoa(b), 0)
	if err != nil {
		return
	}
	m.edgeData[id] = &LoadBearingEdgePayload{VertexA: a, VertexB: b, LoadCapacity: loadCapacity, IsCritical: critical}
	m.edgeOrder = append(m.edgeOrder, id)
}

// Edges returns every registered load-bearing edge payload in insertion
// order. CalculateLoads's relaxation passes read load values as they
// accumulate within a pass (§4.1), so a stable iteration order is required
// for the result to be reproducible across runs — map iteration order is
// not, which is why insertion order is tracked separately from edgeData.
func (m *Mesh) Edges() []*LoadBearingEdgePayload {
	out := make([]*LoadBearingEdgePayload, 0, len(m.edgeOrder))
	for _, id := range m.edgeOrder {
		if e, ok := m.edgeData[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// neighborEdges returns the payloads of edges touching vertex v.
func (m *Mesh) neighborEdges(v int) []*LoadBearingEdgePayload {
	vid := strconv.Itoa(v)
	edges, err := m.edges.Neighbors(vid)
	if err != nil {
		return nil
	}
	out := make([]*LoadBearingEdgePayload, 0, len(edges))
	for _, e := range edges {
		if p, ok := m.edgeData[e.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// HasCriticalFailure reports whether any critical load-bearing edge is
// overloaded — supplemented from the original engine's
// has_critical_failure, exposed here since spec.md's failure model speaks
// only of per-vertex fracture but load-bearing edges carry an IsCritical
// flag that would otherwise be unused.
func (m *Mesh) HasCriticalFailure() bool {
	for _, e := range m.edgeData {
		if e.IsCritical && e.IsOverloaded() {
			return true
		}
	}
	return false
}
