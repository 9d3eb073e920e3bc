// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the structural material catalog: density and
// strength parameters consumed by the stress analyzer and fracture
// generator when no per-mesh override is supplied.
package material

import "github.com/cpmech/gosl/fun"

// Material holds the physical parameters of a structural material.
//
// Invariant: YieldStrength <= TensileStrength and CompressiveStrength <=
// MaxStress; presets below satisfy this by construction, and Validate
// reports any violation introduced by a caller-built Material.
type Material struct {
	Name                 string
	Density              float64 // kg/m^3
	TensileStrength      float64 // Pa
	CompressiveStrength  float64 // Pa
	YieldStrength        float64 // Pa
	MaxStress            float64 // Pa, stress magnitude at total failure
	Brittle              bool
}

// GetPrms gets (an example) of parameters, following the same
// name/value listing convention as the solid models this catalog is
// patterned on.
func (m Material) GetPrms() fun.Prms {
	return []*fun.Prm{
		{N: "density", V: m.Density},
		{N: "tensile", V: m.TensileStrength},
		{N: "compressive", V: m.CompressiveStrength},
		{N: "yield", V: m.YieldStrength},
		{N: "maxStress", V: m.MaxStress},
	}
}

// Validate reports whether m satisfies the catalog's ordering invariants.
func (m Material) Validate() bool {
	return m.YieldStrength <= m.TensileStrength && m.CompressiveStrength <= m.MaxStress
}

// preset names, exported so callers can enumerate the catalog without
// hard-coding strings.
const (
	Concrete = "concrete"
	Wood     = "wood"
	Metal    = "metal"
	Glass    = "glass"
	Brick    = "brick"
	Stone    = "stone"
)

// catalog holds the built-in materials; name => allocator, following
// msolid's allocator-map registry idiom.
var catalog = map[string]func() Material{
	Concrete: func() Material {
		return Material{Name: Concrete, Density: 2400, TensileStrength: 2e6,
			CompressiveStrength: 3e7, YieldStrength: 2e6, MaxStress: 3e7, Brittle: true}
	},
	Wood: func() Material {
		return Material{Name: Wood, Density: 600, TensileStrength: 4e7,
			CompressiveStrength: 3e7, YieldStrength: 3e7, MaxStress: 4e7, Brittle: false}
	},
	Metal: func() Material {
		return Material{Name: Metal, Density: 7800, TensileStrength: 4e8,
			CompressiveStrength: 4e8, YieldStrength: 2.5e8, MaxStress: 4e8, Brittle: false}
	},
	Glass: func() Material {
		return Material{Name: Glass, Density: 2500, TensileStrength: 3.3e7,
			CompressiveStrength: 1e9, YieldStrength: 3.3e7, MaxStress: 1e9, Brittle: true}
	},
	Brick: func() Material {
		return Material{Name: Brick, Density: 1900, TensileStrength: 1e6,
			CompressiveStrength: 2e7, YieldStrength: 1e6, MaxStress: 2e7, Brittle: true}
	},
	Stone: func() Material {
		return Material{Name: Stone, Density: 2700, TensileStrength: 1.5e6,
			CompressiveStrength: 1.2e8, YieldStrength: 1.5e6, MaxStress: 1.2e8, Brittle: true}
	},
}

// Get returns the named preset, falling back to Stone for any name not in
// the catalog (spec §4.4: unknown material names never fail a fracture
// request, they degrade to the most conservative brittle default).
func Get(name string) Material {
	if alloc, ok := catalog[name]; ok {
		return alloc()
	}
	return catalog[Stone]()
}

// Names returns the built-in preset names.
func Names() []string {
	return []string{Concrete, Wood, Metal, Glass, Brick, Stone}
}
