// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"testing"

	"github.com/cpmech/godestruct/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestMemWorldLifecycle(t *testing.T) {
	w := NewMemWorld()
	id := w.CreateEntity()
	assert.True(t, w.IsValid(id))

	w.SetPosition(id, vecmath.Vec3{X: 1, Y: 2, Z: 3})
	pos, ok := w.Position(id)
	assert.True(t, ok)
	assert.Equal(t, vecmath.Vec3{X: 1, Y: 2, Z: 3}, pos)

	w.DestroyEntity(id)
	assert.False(t, w.IsValid(id))
	_, ok = w.Position(id)
	assert.False(t, ok)
}

func TestMemWorldDestroyUnknownIsNoop(t *testing.T) {
	w := NewMemWorld()
	assert.NotPanics(t, func() { w.DestroyEntity(999) })
}

func TestMemCamera(t *testing.T) {
	w := NewMemWorld()
	w.SetCameraPosition(vecmath.Vec3{X: 5, Y: 0, Z: 0})
	cam := MemCamera{W: w}
	assert.Equal(t, vecmath.Vec3{X: 5, Y: 0, Z: 0}, cam.Position())
}

func TestMemWorldRigidBody(t *testing.T) {
	w := NewMemWorld()
	id := w.CreateEntity()
	w.SpawnRigidBody(id, RigidBody{Mass: 2})
	body, ok := w.RigidBodyOf(id)
	assert.True(t, ok)
	assert.Equal(t, 2.0, body.Mass)
}
