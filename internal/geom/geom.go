// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

// Package geom supplies the vector, ray and AABB primitives that a host
// engine would normally provide. The octree core treats these as a required
// external capability set; this package is the in-module stand-in for that
// capability set, kept separate from the tree so the boundary stays visible.
package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D vector with float32 components.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Equal is exact componentwise equality.
func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// ApproxEqual reports whether v and o are within epsilon of each other on
// every axis, for callers comparing values that reached v and o by
// different floating-point paths (e.g. a re-normalized direction versus a
// stored one).
func (v Vec3) ApproxEqual(o Vec3, epsilon float32) bool {
	return math32.Abs(v.X-o.X) <= epsilon &&
		math32.Abs(v.Y-o.Y) <= epsilon &&
		math32.Abs(v.Z-o.Z) <= epsilon
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged, since it has no direction to normalize.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Sign returns +1 for x >= 0 and -1 for x < 0. Zero maps to +1, per the
// octree's growth-direction convention: an ambiguous (zero) growth
// direction always grows toward the positive octant on that axis. Unlike a
// bare sign-bit test, this folds negative zero into the positive case.
func Sign(x float32) float32 {
	if x == 0 || !math32.Signbit(x) {
		return 1
	}
	return -1
}

// Sign returns the componentwise Sign of v.
func (v Vec3) Sign() Vec3 {
	return Vec3{Sign(v.X), Sign(v.Y), Sign(v.Z)}
}

// Ray is a half-line from Origin in direction Dir. Dir is expected to be
// normalized; NewRay does this for callers constructing a ray from two
// points.
type Ray struct {
	Origin, Dir Vec3
}

// NewRay builds the ray from origin toward hit, normalizing the direction.
func NewRay(origin, hit Vec3) Ray {
	return Ray{Origin: origin, Dir: hit.Sub(origin).Normalize()}
}

// AABB is an axis-aligned cube: Center plus an edge length, Extent.
type AABB struct {
	Center Vec3
	Extent float32
}

// Contains reports whether p lies within the cube, closed interval on every
// axis.
func (b AABB) Contains(p Vec3) bool {
	half := b.Extent / 2
	return math32.Abs(p.X-b.Center.X) <= half &&
		math32.Abs(p.Y-b.Center.Y) <= half &&
		math32.Abs(p.Z-b.Center.Z) <= half
}

// IntersectsRay reports whether r hits the cube, using the slab method.
// A ray component of exactly zero is treated as parallel to that pair of
// slabs: the ray only survives if the origin already lies within them.
func (b AABB) IntersectsRay(r Ray) bool {
	half := b.Extent / 2
	tMin := math32.Inf(-1)
	tMax := math32.Inf(1)

	axes := [3]struct{ originC, centerC, dirC float32 }{
		{r.Origin.X, b.Center.X, r.Dir.X},
		{r.Origin.Y, b.Center.Y, r.Dir.Y},
		{r.Origin.Z, b.Center.Z, r.Dir.Z},
	}

	for _, a := range axes {
		lo := a.centerC - half
		hi := a.centerC + half

		if a.dirC == 0 {
			if a.originC < lo || a.originC > hi {
				return false
			}
			continue
		}

		inv := 1 / a.dirC
		t1 := (lo - a.originC) * inv
		t2 := (hi - a.originC) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}

	return tMax >= 0
}
