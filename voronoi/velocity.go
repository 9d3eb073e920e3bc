// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"
	"math/rand"

	"github.com/cpmech/godestruct/fracture"
	"github.com/cpmech/godestruct/vecmath"
)

const minDistFromImpact = 0.5

// applyImpactVelocity sets f's linear and angular velocity from the impact
// that produced it, following the per-impact-type direction blend in
// §4.2.4. fragmentIndex seeds the angular-velocity RNG so a given seed and
// input reproduce the same debris bit-for-bit.
func applyImpactVelocity(f *Fragment, impact fracture.Event, seed uint64, fragmentIndex int) {
	toPiece := f.Centroid.Sub(impact.Position)
	dist := toPiece.Length()
	if dist <= 1e-6 || f.Mass <= 0 {
		return
	}
	toPiece = toPiece.Scale(1 / dist)

	impulse := impact.Force * impact.ImpulseDuration
	speed := (impulse / f.Mass) / math.Max(minDistFromImpact, dist)

	dir := toPiece
	switch impact.Type {
	case fracture.Point:
		if alignment := toPiece.Dot(impact.Direction); alignment > 0 {
			blended := impact.Direction.Scale(0.7).Add(toPiece.Scale(0.3))
			dir = blended.Normalize()
			if dir.IsZero() {
				dir = toPiece
			}
		}
	case fracture.Explosion:
		dir = toPiece
		speed *= 1.5
	case fracture.Blunt:
		blended := impact.Direction.Scale(0.5).Add(toPiece.Scale(0.5))
		if n := blended.Normalize(); !n.IsZero() {
			dir = n
		}
	case fracture.Cutting:
		perp := impact.Direction.Cross(toPiece)
		if n := perp.Normalize(); !n.IsZero() {
			dir = n
		}
		speed *= 0.7
	case fracture.Crushing:
		adjusted := vecmath.Vec3{X: toPiece.X, Y: toPiece.Y * 0.3, Z: toPiece.Z}
		if n := adjusted.Normalize(); !n.IsZero() {
			dir = n
		}
	case fracture.Shearing:
		proj := toPiece.Dot(impact.Direction)
		tangential := toPiece.Sub(impact.Direction.Scale(proj))
		if n := tangential.Normalize(); !n.IsZero() {
			dir = n
		}
	}

	f.LinearVelocity = dir.Scale(speed)

	rng := rand.New(rand.NewSource(int64(seed) + int64(fragmentIndex)))
	tumble := speed * 0.5
	f.AngularVelocity = vecmath.Vec3{
		X: (rng.Float64()*2 - 1) * tumble,
		Y: (rng.Float64()*2 - 1) * tumble,
		Z: (rng.Float64()*2 - 1) * tumble,
	}
}
