// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fracture implements the material fracture-behavior catalog and the
// impact-event vocabulary consumed by the voronoi fracture generator.
package fracture

import (
	"math"

	"github.com/cpmech/godestruct/vecmath"
)

// Behavior is the material-specific breakage pattern.
type Behavior uint8

const (
	Brittle  Behavior = iota // shatters into many pieces (glass)
	Ductile                  // tears/deforms before breaking (metal)
	Fibrous                  // splits along grain (wood)
	Granular                 // crumbles into irregular chunks (brick, stone)
)

// String implements fmt.Stringer.
func (b Behavior) String() string {
	switch b {
	case Brittle:
		return "Brittle"
	case Ductile:
		return "Ductile"
	case Fibrous:
		return "Fibrous"
	case Granular:
		return "Granular"
	default:
		return "Unknown"
	}
}

// Properties controls how a material breaks when stressed beyond its
// limits (§6.4). The field set is closed: eight fields, matching the
// original engine's FractureProperties exactly.
type Properties struct {
	Behavior              Behavior
	MinFracturePieces     uint32
	MaxFracturePieces     uint32
	RadialPatternStrength float64 // 0..1, higher = more radial cracks from impact point
	PlanarTendency        float64 // 0..1, higher = fractures follow planes (metal tearing)
	GrainDirection        vecmath.Vec3
	EdgeSharpness         float64 // 0..1, 1=sharp (glass), 0=rough (concrete)
	SeedRandomness        float64 // 0..1, higher = more irregular fracture patterns
}

// GetPieceCount returns the number of fracture pieces for the given
// impact-energy ratio (0..1, clamped), interpolating linearly between
// MinFracturePieces and MaxFracturePieces and rounding to the nearest
// integer (§6.4).
func (p Properties) GetPieceCount(impactEnergyRatio float64) uint32 {
	e := vecmath.Clamp(impactEnergyRatio, 0, 1)
	f := float64(p.MinFracturePieces) + float64(p.MaxFracturePieces-p.MinFracturePieces)*e
	return uint32(math.Floor(f + 0.5))
}

// preset names.
const (
	Glass    = "glass"
	Concrete = "concrete"
	Metal    = "metal"
	Wood     = "wood"
	Brick    = "brick"
	Stone    = "stone"
)

var grainUp = vecmath.Vec3{X: 0, Y: 1, Z: 0}

var catalog = map[string]func() Properties{
	Glass: func() Properties {
		return Properties{Behavior: Brittle, MinFracturePieces: 8, MaxFracturePieces: 40,
			RadialPatternStrength: 0.9, PlanarTendency: 0.7, GrainDirection: grainUp,
			EdgeSharpness: 1.0, SeedRandomness: 0.3}
	},
	Concrete: func() Properties {
		return Properties{Behavior: Granular, MinFracturePieces: 5, MaxFracturePieces: 15,
			RadialPatternStrength: 0.5, PlanarTendency: 0.2, GrainDirection: grainUp,
			EdgeSharpness: 0.1, SeedRandomness: 0.8}
	},
	Metal: func() Properties {
		return Properties{Behavior: Ductile, MinFracturePieces: 1, MaxFracturePieces: 3,
			RadialPatternStrength: 0.2, PlanarTendency: 0.9, GrainDirection: grainUp,
			EdgeSharpness: 0.3, SeedRandomness: 0.3}
	},
	Wood: func() Properties {
		return Properties{Behavior: Fibrous, MinFracturePieces: 3, MaxFracturePieces: 8,
			RadialPatternStrength: 0.4, PlanarTendency: 0.6, GrainDirection: grainUp,
			EdgeSharpness: 0.6, SeedRandomness: 0.5}
	},
	Brick: func() Properties {
		return Properties{Behavior: Granular, MinFracturePieces: 4, MaxFracturePieces: 10,
			RadialPatternStrength: 0.4, PlanarTendency: 0.3, GrainDirection: grainUp,
			EdgeSharpness: 0.2, SeedRandomness: 0.7}
	},
	Stone: func() Properties {
		return Properties{Behavior: Granular, MinFracturePieces: 3, MaxFracturePieces: 8,
			RadialPatternStrength: 0.3, PlanarTendency: 0.4, GrainDirection: grainUp,
			EdgeSharpness: 0.1, SeedRandomness: 0.6}
	},
}

// Get returns the named preset, falling back to Stone for any unrecognized
// name (mirrors material.Get's degrade-to-conservative-default contract).
func Get(name string) Properties {
	if alloc, ok := catalog[name]; ok {
		return alloc()
	}
	return catalog[Stone]()
}

// Names returns the built-in preset names.
func Names() []string {
	return []string{Glass, Concrete, Metal, Wood, Brick, Stone}
}
