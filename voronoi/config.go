// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voronoi implements the Voronoi Fracture Generator (§4.2): seed
// sampling, bounded-cell construction, mesh clipping/triangulation, and
// per-fragment physics attribute calculation.
package voronoi

import "github.com/cpmech/godestruct/fracture"

// MaterialParams biases seed density and sizing; distinct from the mesh's
// structural Material (§3.2) and fracture.Properties (§3.3) — it is the
// subset of both that the seed sampler actually consumes.
type MaterialParams struct {
	FragmentSizeVariance float64 // 0..1
	GrainDirection       Vec3    // zero vector => isotropic
}

// Config is the per-call fracture configuration (§6.5).
type Config struct {
	NumFragments               int
	PoissonMinDistance         float64
	Seed                       uint64
	Impact                     *fracture.Event // nil => uniform sampling
	Material                   MaterialParams
	GenerateVoxelApproximation bool

	// FracturePieceBounds, when non-zero (MaxFracturePieces > 0), clamps
	// NumFragments into [Min,Max]FracturePieces regardless of the
	// requested count (§8 "Fragment count clamps..."). Typically set from
	// the mesh's fracture.Properties preset; left zero to trust the
	// caller's count verbatim (e.g. when the caller already clamped it
	// via Properties.GetPieceCount).
	FracturePieceBounds fracture.Properties

	// WeldMinVolume supplements §6.5: fragments whose AABB volume falls
	// below this threshold are welded into their nearest neighbor at
	// generation time, rather than surviving to be proximity-merged by
	// the Debris Manager on a later tick (§4.3's merge is for drifting
	// apart debris; this is for cells that were never meaningfully
	// distinct in the first place). Zero disables welding.
	WeldMinVolume float64
}
