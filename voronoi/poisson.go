// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"
	"math/rand"

	"github.com/cpmech/godestruct/fracture"
	"github.com/cpmech/godestruct/vecmath"
	"github.com/cpmech/gosl/gm"
)

const (
	poissonAttempts  = 30
	poissonTwoPi     = 2 * math.Pi
	defaultMaxPoints = 4096 // hard safety cap so a tiny minDistance can never spin forever
)

// samplingRNG is the deterministic, seeded source every seed-sampling and
// velocity-randomization step draws from (§8 determinism: same seed, same
// mesh, same impact ⇒ bit-identical output). math/rand with an explicit
// seeded Source is used rather than a package-level global one — no
// ecosystem deterministic PRNG exists anywhere in the pack, and a
// per-call source is required so a fracture call never depends on
// call order (§5: "no global mutable state").
func samplingRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// pointBins wraps a gm.Bins keyed by point index, giving the Poisson
// sampler an O(1)-ish nearest-accepted-point query instead of the naive
// O(n) scan against every previously accepted point.
type pointBins struct {
	bins   gm.Bins
	points []vecmath.Vec3
}

func newPointBins(box vecmath.AABB, ndiv int) *pointBins {
	pb := &pointBins{}
	xi := []float64{box.Min.X, box.Min.Y, box.Min.Z}
	xf := []float64{box.Max.X, box.Max.Y, box.Max.Z}
	pb.bins.Init(xi, xf, ndiv)
	return pb
}

func (pb *pointBins) add(p vecmath.Vec3) {
	id := len(pb.points)
	pb.points = append(pb.points, p)
	pb.bins.Append([]float64{p.X, p.Y, p.Z}, id)
}

// tooClose reports whether p lies within minDist of any previously
// accepted point, using the bin's nearest-id hint as a candidate and
// falling back to a direct check against it.
func (pb *pointBins) tooClose(p vecmath.Vec3, minDist float64) bool {
	id := pb.bins.Find([]float64{p.X, p.Y, p.Z})
	if id < 0 {
		return false
	}
	if p.Sub(pb.points[id]).Length() < minDist {
		return true
	}
	return false
}

func randomInBox(rng *rand.Rand, box vecmath.AABB) vecmath.Vec3 {
	return vecmath.Vec3{
		X: box.Min.X + rng.Float64()*(box.Max.X-box.Min.X),
		Y: box.Min.Y + rng.Float64()*(box.Max.Y-box.Min.Y),
		Z: box.Min.Z + rng.Float64()*(box.Max.Z-box.Min.Z),
	}
}

func sphericalShellOffset(rng *rand.Rand, minR, maxR float64) vecmath.Vec3 {
	theta := rng.Float64() * poissonTwoPi
	phi := math.Acos(2*rng.Float64() - 1)
	radius := minR + rng.Float64()*(maxR-minR)
	return vecmath.Vec3{
		X: radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Sin(phi) * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}

// generatePoissonSamples runs Bridson's algorithm with a fixed minimum
// inter-point distance over box, capped at maxPoints (§4.2.1).
func generatePoissonSamples(box vecmath.AABB, minDistance float64, maxPoints int, seed uint64) []vecmath.Vec3 {
	if maxPoints <= 0 || minDistance <= 0 {
		return nil
	}
	rng := samplingRNG(seed)
	pb := newPointBins(box, 10)

	first := randomInBox(rng, box)
	pb.add(first)
	active := []int{0}

	for len(active) > 0 && len(pb.points) < maxPoints && len(pb.points) < defaultMaxPoints {
		ai := rng.Intn(len(active))
		center := pb.points[active[ai]]

		found := false
		for attempt := 0; attempt < poissonAttempts; attempt++ {
			candidate := center.Add(sphericalShellOffset(rng, minDistance, 2*minDistance))
			if !box.Contains(candidate) {
				continue
			}
			if pb.tooClose(candidate, minDistance) {
				continue
			}
			pb.add(candidate)
			active = append(active, len(pb.points)-1)
			found = true
			break
		}
		if !found {
			active = append(active[:ai], active[ai+1:]...)
		}
	}
	return pb.points
}

// sizeGradient returns g(d_norm) for the given impact type, following the
// table in §4.2.1.
func sizeGradient(impactType fracture.ImpactType, p, impactPoint, impactDir vecmath.Vec3, maxDist float64) float64 {
	toPoint := p.Sub(impactPoint)
	dist := toPoint.Length()
	dNorm := math.Min(1, dist/math.Max(0.01, maxDist))

	switch impactType {
	case fracture.Point:
		return 0.3 + 0.7*dNorm*dNorm
	case fracture.Blunt:
		return 0.5 + 0.5*dNorm
	case fracture.Explosion:
		return 0.7 + 0.3*dNorm
	case fracture.Cutting:
		alignment := toPoint.Scale(1 / math.Max(0.01, dist)).Dot(impactDir)
		return 0.4 + 0.6*math.Abs(alignment)
	case fracture.Crushing:
		return 0.6 + 0.4*math.Abs(toPoint.Y)/math.Max(0.01, maxDist)
	case fracture.Shearing:
		return 0.5 + 1.0*math.Abs(dNorm-0.5)
	default:
		return 1.0
	}
}

// generateStressGuidedSamples runs Bridson's algorithm with a position-
// dependent minimum distance driven by impact type, material variance and
// grain direction (§4.2.1).
func generateStressGuidedSamples(box vecmath.AABB, baseMinDistance float64, maxPoints int, impact fracture.Event, mat MaterialParams, seed uint64) []vecmath.Vec3 {
	if maxPoints <= 0 || baseMinDistance <= 0 {
		return nil
	}
	rng := samplingRNG(seed)
	pb := newPointBins(box, 10)
	maxDist := box.MaxCornerDistance(impact.Position)

	minDistAt := func(p vecmath.Vec3) float64 {
		g := sizeGradient(impact.Type, p, impact.Position, impact.Direction, maxDist)
		g *= 1 + mat.FragmentSizeVariance*(rng.Float64()-0.5)*0.5
		return baseMinDistance * vecmath.Clamp(g, 0.2, 2.0)
	}

	first := box.ClampPoint(impact.Position)
	pb.add(first)
	active := []int{0}

	for len(active) > 0 && len(pb.points) < maxPoints && len(pb.points) < defaultMaxPoints {
		ai := rng.Intn(len(active))
		center := pb.points[active[ai]]
		centerMinDist := minDistAt(center)

		found := false
		for attempt := 0; attempt < poissonAttempts; attempt++ {
			theta := rng.Float64() * poissonTwoPi
			phi := math.Acos(2*rng.Float64() - 1)
			radius := centerMinDist + rng.Float64()*centerMinDist

			sampleDir := vecmath.Vec3{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Sin(phi) * math.Sin(theta),
				Z: math.Cos(phi),
			}
			if !mat.GrainDirection.IsZero() {
				align := sampleDir.Dot(mat.GrainDirection)
				radius *= 1 + 0.5*math.Abs(align)
			}

			candidate := center.Add(sampleDir.Scale(radius))
			if !box.Contains(candidate) {
				continue
			}

			id := pb.bins.Find([]float64{candidate.X, candidate.Y, candidate.Z})
			tooClose := false
			if id >= 0 {
				nearest := pb.points[id]
				avgMinDist := (minDistAt(candidate) + minDistAt(nearest)) / 2
				if candidate.Sub(nearest).Length() < avgMinDist {
					tooClose = true
				}
			}
			if tooClose {
				continue
			}

			pb.add(candidate)
			active = append(active, len(pb.points)-1)
			found = true
			break
		}
		if !found {
			active = append(active[:ai], active[ai+1:]...)
		}
	}
	return pb.points
}
