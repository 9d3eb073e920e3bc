// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debris tracks every fragment ever registered with the
// destruction pipeline and runs the per-tick bookkeeping sequence that
// ages, LOD-scores, merges and budget-evicts them (§4.3). It owns no
// geometry of its own — only entity ids and the bookkeeping fields the
// spec enumerates.
package debris

import (
	"github.com/cpmech/godestruct/vecmath"
	"github.com/cpmech/godestruct/world"
)

// Config parameterizes a Manager. Zero values disable the corresponding
// limit except where noted.
type Config struct {
	MaxEntities  int
	MaxTriangles int

	// Lifetime is the maximum age, in seconds, a tracked fragment may
	// reach before age eviction claims it. <= 0 disables age eviction.
	Lifetime float64

	// MergeDistance is the proximity-merge threshold, in meters.
	MergeDistance float64

	LODDistanceNear float64
	LODDistanceFar  float64
	LODMultNear     float64
	LODMultFar      float64

	// UseGPUInstancing is a supplemented advisory flag (§6.5 note):
	// stamped onto every registered fragment and never interpreted by
	// the manager itself — a hint for the out-of-scope renderer.
	UseGPUInstancing bool
}

// record is the per-entity bookkeeping the manager maintains.
type record struct {
	id               world.EntityID
	creationTime     float64
	triangles        int
	lastPosition     vecmath.Vec3
	lastDistance     float64
	merged           bool
	useGPUInstancing bool
	lodFactor        float64
}

// Manager is the Debris Manager (§4.3). It is not safe for concurrent
// use from multiple goroutines without external synchronization, in
// keeping with the single-threaded-per-tick scheduling model (§5).
type Manager struct {
	cfg Config

	clock   float64
	order   []world.EntityID // insertion order, oldest first
	records map[world.EntityID]*record

	entityCount    int
	totalTriangles int
}

// NewManager returns an empty manager governed by cfg.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:     cfg,
		records: make(map[world.EntityID]*record),
	}
}

// Register starts tracking id with triangleCount triangles, stamped
// with the manager's current clock as its creation time. Registration
// happens outside the per-tick sequence and immediately adjusts the
// running totals (§4.3).
func (m *Manager) Register(id world.EntityID, triangleCount int, pos vecmath.Vec3) {
	if _, exists := m.records[id]; exists {
		return
	}
	r := &record{
		id:               id,
		creationTime:     m.clock,
		triangles:        triangleCount,
		lastPosition:     pos,
		useGPUInstancing: m.cfg.UseGPUInstancing,
	}
	m.records[id] = r
	m.order = append(m.order, id)
	m.entityCount++
	m.totalTriangles += triangleCount
}

// Unregister stops tracking id immediately, outside the tick sequence.
// A no-op if id is not tracked.
func (m *Manager) Unregister(id world.EntityID) {
	r, ok := m.records[id]
	if !ok {
		return
	}
	m.removeRecord(id, r)
}

func (m *Manager) removeRecord(id world.EntityID, r *record) {
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.entityCount--
	m.totalTriangles -= r.triangles
}

// EntityCount returns the current tracked-entity total.
func (m *Manager) EntityCount() int { return m.entityCount }

// TotalTriangles returns the current tracked-triangle total.
func (m *Manager) TotalTriangles() int { return m.totalTriangles }

// IsBudgetExceeded reports whether either budget is currently over
// limit. Used by callers that want to check before forcing an update.
func (m *Manager) IsBudgetExceeded() bool {
	return (m.cfg.MaxEntities > 0 && m.entityCount > m.cfg.MaxEntities) ||
		(m.cfg.MaxTriangles > 0 && m.totalTriangles > m.cfg.MaxTriangles)
}

// Update runs the strict six-step per-tick sequence (§4.3). w supplies
// each tracked entity's current position; cam supplies the reference
// viewpoint for distance and LOD. Destroying an already-invalid entity
// and budget-evicting an empty set are both no-ops — Update never
// panics regardless of world/camera state.
func (m *Manager) Update(w world.World, cam world.Camera, dt float64) {
	// 1. Advance clock.
	m.clock += dt

	camPos := cam.Position()

	// 2. Refresh distances.
	for _, id := range m.order {
		r := m.records[id]
		if pos, ok := w.Position(id); ok {
			r.lastPosition = pos
		}
		r.lastDistance = r.lastPosition.Sub(camPos).Length()
	}

	// 3. Age eviction.
	if m.cfg.Lifetime > 0 {
		for _, id := range append([]world.EntityID(nil), m.order...) {
			r, ok := m.records[id]
			if !ok {
				continue
			}
			age := m.clock - r.creationTime
			if age > m.cfg.Lifetime {
				w.DestroyEntity(id)
				m.removeRecord(id, r)
			}
		}
	}

	// 4. LOD update.
	near, far := m.cfg.LODDistanceNear, m.cfg.LODDistanceFar
	for _, id := range m.order {
		r := m.records[id]
		t := 0.0
		if far > near {
			t = vecmath.Clamp((r.lastDistance-near)/(far-near), 0, 1)
		}
		r.lodFactor = vecmath.Lerp(m.cfg.LODMultNear, m.cfg.LODMultFar, t)
	}

	// 5. Proximity merge: O(n^2) pairwise scan over unmerged entities.
	// Triangle counts move from the absorbed entity onto the survivor;
	// the running total is deliberately left unchanged (§4.3).
	if m.cfg.MergeDistance > 0 {
		live := append([]world.EntityID(nil), m.order...)
		for i := 0; i < len(live); i++ {
			a := m.records[live[i]]
			if a == nil || a.merged {
				continue
			}
			for j := i + 1; j < len(live); j++ {
				b := m.records[live[j]]
				if b == nil || b.merged {
					continue
				}
				d := a.lastPosition.Sub(b.lastPosition).Length()
				if d > m.cfg.MergeDistance {
					continue
				}
				a.triangles += b.triangles
				b.merged = true
				w.DestroyEntity(b.id)
				m.removeRecordNoTotalAdjust(b.id)
			}
		}
	}

	// 6. Budget eviction: oldest first, while over either budget.
	for len(m.order) > 0 && m.overBudget() {
		oldest := m.order[0]
		r := m.records[oldest]
		w.DestroyEntity(oldest)
		m.removeRecord(oldest, r)
	}
}

func (m *Manager) overBudget() bool {
	return (m.cfg.MaxEntities > 0 && m.entityCount > m.cfg.MaxEntities) ||
		(m.cfg.MaxTriangles > 0 && m.totalTriangles > m.cfg.MaxTriangles)
}

// removeRecordNoTotalAdjust removes a merged-away entity from tracking
// without touching totalTriangles, since its triangles were already
// transferred onto the surviving entity, not removed from the world.
func (m *Manager) removeRecordNoTotalAdjust(id world.EntityID) {
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.entityCount--
}

// LODFactor returns the most recently computed LOD factor for id, or 0
// if id is not tracked.
func (m *Manager) LODFactor(id world.EntityID) float64 {
	r, ok := m.records[id]
	if !ok {
		return 0
	}
	return r.lodFactor
}

// IsMerged reports whether id is tracked with its merged flag set. The
// merge step of Update removes an absorbed entity from tracking in the
// same step that sets its flag, so once Update has returned an absorbed
// id reports false here, as it does from IsTracked.
func (m *Manager) IsMerged(id world.EntityID) bool {
	r, ok := m.records[id]
	return ok && r.merged
}

// IsTracked reports whether id is currently tracked.
func (m *Manager) IsTracked(id world.EntityID) bool {
	_, ok := m.records[id]
	return ok
}

// TrackedIDs returns the currently tracked entity ids, oldest first.
func (m *Manager) TrackedIDs() []world.EntityID {
	out := make([]world.EntityID, len(m.order))
	copy(out, m.order)
	return out
}

// Triangles returns the triangle count tracked for id.
func (m *Manager) Triangles(id world.EntityID) int {
	r, ok := m.records[id]
	if !ok {
		return 0
	}
	return r.triangles
}
