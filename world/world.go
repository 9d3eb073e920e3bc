// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world declares the entity-container, physics and camera
// interfaces the destruction core consumes (§6.1-6.3), plus an in-memory
// reference implementation used by tests and the demo command — never
// part of the pipeline itself, exactly as the external ECS/physics/camera
// collaborators the spec treats as out of scope.
package world

import "github.com/cpmech/godestruct/vecmath"

// EntityID identifies an entity in the world. The zero value is never a
// valid live entity.
type EntityID uint64

// World is the entity-container interface the core assumes (§6.1): create/
// destroy/validate entities, and add/query/mutate typed components by
// entity. No specific storage layout is mandated; this interface is
// deliberately narrow — only what the destruction pipeline needs.
type World interface {
	CreateEntity() EntityID
	DestroyEntity(id EntityID)
	IsValid(id EntityID) bool

	// Position returns the entity's current world-space position and
	// whether it has one (false if the entity has no transform or is
	// invalid).
	Position(id EntityID) (vecmath.Vec3, bool)
	SetPosition(id EntityID, pos vecmath.Vec3)
}

// RigidBody is the physics sink interface (§6.2): for every fragment the
// core produces, it hands the world a populated RigidBody. The external
// integrator supplies gravity, contact resolution and damping — the core
// never integrates motion itself.
type RigidBody struct {
	Mass            float64
	InertiaTensor   vecmath.Vec3 // diagonal
	Position        vecmath.Vec3
	Orientation     vecmath.Quat
	LinearVelocity  vecmath.Vec3
	AngularVelocity vecmath.Vec3
}

// PhysicsSink receives rigid bodies for newly created debris fragments.
type PhysicsSink interface {
	SpawnRigidBody(id EntityID, body RigidBody)
}

// Camera is the consumed camera/renderer interface (§6.3): the Debris
// Manager queries the camera position every tick to refresh each
// entity's distance from the camera, which drives LOD.
type Camera interface {
	Position() vecmath.Vec3
}
