// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

// Package slot implements the octree's child-slot arithmetic: mapping a
// point or a growth direction to one of the eight child octants of a cube,
// and the inverse, mapping a slot back to a child center.
//
// The bit layout is fixed and shared by every function in this package:
//
//	bit 0 (value 1): +x half (else -x)
//	bit 1 (value 2): +z half (else -z)
//	bit 2 (value 4): -y half (else +y)
//
// Any caller that reimplements one of these functions independently of the
// others (e.g. a decoder reconstructing centers from a serialized slot
// index) must reproduce this exact bit-to-axis mapping or the tree's slot
// addressing silently diverges from its own serialized form.
package slot

import "github.com/spatialtree/octomap/internal/geom"

const (
	bitPosX = 1
	bitPosZ = 2
	bitNegY = 4
)

// ChildIndex returns the slot (0..7) of the child of a node centered at
// center that contains p. Ties at an exact center plane resolve to the
// positive-x / positive-z / negative-y half, a deterministic default that
// keeps ChildIndex and ChildCenter mutually consistent at the boundary.
func ChildIndex(p, center geom.Vec3) int {
	s := 0
	if p.X >= center.X {
		s |= bitPosX
	}
	if p.Z >= center.Z {
		s |= bitPosZ
	}
	if p.Y <= center.Y {
		s |= bitNegY
	}
	return s
}

// ChildCenter returns the center of child slot, given the child's own
// extent and the parent's center.
func ChildCenter(slot int, childExtent float32, parentCenter geom.Vec3) geom.Vec3 {
	half := childExtent / 2
	c := parentCenter

	if slot&bitPosX != 0 {
		c.X += half
	} else {
		c.X -= half
	}

	if slot&bitPosZ != 0 {
		c.Z += half
	} else {
		c.Z -= half
	}

	if slot&bitNegY != 0 {
		c.Y -= half
	} else {
		c.Y += half
	}

	return c
}

// RootSlot returns the slot in a freshly grown root that the old root
// occupies, given the growth direction's per-axis sign (each in {-1, +1},
// per geom.Sign's zero convention).
//
// Growing toward a direction moves the new root's center that way, which
// leaves the old root sitting in the *opposite* octant of the new root.
// RootSlot is therefore exactly ChildIndex evaluated against a point
// reflected through the origin — this is what keeps it the algebraic
// inverse of ChildCenter applied from the new root, as required by the
// growth invariant.
func RootSlot(sx, sy, sz float32) int {
	return ChildIndex(geom.Vec3{X: -sx, Y: -sy, Z: -sz}, geom.Vec3{})
}
