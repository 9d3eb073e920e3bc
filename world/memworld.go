// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"errors"
	"sync"

	"github.com/cpmech/godestruct/vecmath"
)

// ErrEntityNotFound mirrors lvlath/core's sentinel-error-on-missing-key
// idiom for an unregistered or already-destroyed entity. MemWorld's own
// methods do not return it: they report a missing entity through a false
// result or ignore the call, and never panic.
var ErrEntityNotFound = errors.New("world: entity not found")

// MemWorld is a minimal in-memory World + PhysicsSink whose camera is
// exposed through MemCamera, used only
// by tests and cmd/godestruct — not part of the spec'd deliverable
// surface. It borrows gofem's Domain idiom of an id-keyed map of active
// records for "one stage" (here, one tick) of the simulation.
type MemWorld struct {
	mu        sync.Mutex
	nextID    EntityID
	positions map[EntityID]vecmath.Vec3
	bodies    map[EntityID]RigidBody
	cameraPos vecmath.Vec3
}

// NewMemWorld returns an empty reference world.
func NewMemWorld() *MemWorld {
	return &MemWorld{
		positions: make(map[EntityID]vecmath.Vec3),
		bodies:    make(map[EntityID]RigidBody),
	}
}

// CreateEntity allocates a new entity id.
func (w *MemWorld) CreateEntity() EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	id := w.nextID
	w.positions[id] = vecmath.Zero
	return id
}

// DestroyEntity removes id; destroying a non-existent entity is a no-op
// (§4.3 failure semantics).
func (w *MemWorld) DestroyEntity(id EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.positions, id)
	delete(w.bodies, id)
}

// IsValid reports whether id is currently live.
func (w *MemWorld) IsValid(id EntityID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.positions[id]
	return ok
}

// Position returns id's stored position.
func (w *MemWorld) Position(id EntityID) (vecmath.Vec3, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.positions[id]
	return p, ok
}

// SetPosition updates id's position; ignored if id is not live.
func (w *MemWorld) SetPosition(id EntityID, pos vecmath.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.positions[id]; !ok {
		return
	}
	w.positions[id] = pos
}

// SpawnRigidBody records body for id.
func (w *MemWorld) SpawnRigidBody(id EntityID, body RigidBody) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bodies[id] = body
}

// RigidBodyOf returns the rigid body registered for id, if any.
func (w *MemWorld) RigidBodyOf(id EntityID) (RigidBody, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.bodies[id]
	return b, ok
}

// SetCameraPosition moves the reference camera.
func (w *MemWorld) SetCameraPosition(pos vecmath.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cameraPos = pos
}

// CameraPosition returns the reference camera's position.
func (w *MemWorld) CameraPosition() vecmath.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cameraPos
}

// MemCamera adapts a MemWorld's camera position to the Camera interface;
// kept distinct from MemWorld itself since World.Position(id) and
// Camera.Position() cannot share a method name on one receiver.
type MemCamera struct {
	W *MemWorld
}

// Position implements Camera.
func (c MemCamera) Position() vecmath.Vec3 { return c.W.CameraPosition() }
