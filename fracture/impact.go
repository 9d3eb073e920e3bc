// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracture

import "github.com/cpmech/godestruct/vecmath"

// ImpactType categorizes the shape of the force that triggered a fracture,
// used to bias seed density and fragment velocity (§4.2.1, §4.2.4). The
// Stress Analyzer's impact formula does not depend on it.
type ImpactType uint8

const (
	Point ImpactType = iota
	Blunt
	Explosion
	Cutting
	Crushing
	Shearing
)

// String implements fmt.Stringer.
func (t ImpactType) String() string {
	switch t {
	case Point:
		return "Point"
	case Blunt:
		return "Blunt"
	case Explosion:
		return "Explosion"
	case Cutting:
		return "Cutting"
	case Crushing:
		return "Crushing"
	case Shearing:
		return "Shearing"
	default:
		return "Unknown"
	}
}

// Event describes a single impact, produced by an external ballistics/
// physics collaborator and consumed once by the Stress Analyzer and the
// Fracture Generator.
type Event struct {
	Position         vecmath.Vec3
	Direction        vecmath.Vec3 // unit vector; callers should normalize
	KineticEnergy    float64      // joules
	Type             ImpactType
	Force            float64 // newtons, optional (0 if unknown)
	ImpulseDuration  float64 // seconds, optional (0 if unknown)
}
