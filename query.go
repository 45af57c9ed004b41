// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import (
	"github.com/spatialtree/octomap/internal/arena"
	"github.com/spatialtree/octomap/internal/geom"
	"github.com/spatialtree/octomap/internal/slot"
)

// RayIntersect walks the tree depth-first in slot order and returns the
// center of the first Occupied leaf the ray hits. This is the smallest
// node the DFS encounters on the ray's path, not necessarily the nearest
// one along the ray's parameter t.
func (t *Tree) RayIntersect(r geom.Ray) (geom.Vec3, bool) {
	return t.rayIntersect(r, t.rootExtent, t.rootCenter, t.root)
}

func (t *Tree) rayIntersect(r geom.Ray, nodeExtent float32, nodeCenter geom.Vec3, h arena.NodeHandle) (geom.Vec3, bool) {
	box := geom.AABB{Center: nodeCenter, Extent: nodeExtent}
	if !box.IntersectsRay(r) {
		return geom.Vec3{}, false
	}

	n := t.arena.Node(h)
	if !n.HasChildren {
		if n.Occupancy == arena.Occupied {
			return nodeCenter, true
		}
		return geom.Vec3{}, false
	}

	children := t.arena.ChildGroup(n.ChildrenHandle)
	childExtent := nodeExtent / 2

	for s := 0; s < 8; s++ {
		childCenter := slot.ChildCenter(s, childExtent, nodeCenter)
		if v, ok := t.rayIntersect(r, childExtent, childCenter, children[s]); ok {
			return v, true
		}
	}

	return geom.Vec3{}, false
}

// Leaves returns the center and extent of every Occupied leaf in the tree.
func (t *Tree) Leaves() []LeafDescriptor {
	var out []LeafDescriptor
	t.collectLeaves(t.rootExtent, t.rootCenter, t.root, &out)
	return out
}

func (t *Tree) collectLeaves(nodeExtent float32, nodeCenter geom.Vec3, h arena.NodeHandle, out *[]LeafDescriptor) {
	n := t.arena.Node(h)

	if !n.HasChildren {
		if n.Occupancy == arena.Occupied {
			*out = append(*out, LeafDescriptor{Center: nodeCenter, Extent: nodeExtent})
		}
		return
	}

	children := t.arena.ChildGroup(n.ChildrenHandle)
	childExtent := nodeExtent / 2

	for s := 0; s < 8; s++ {
		childCenter := slot.ChildCenter(s, childExtent, nodeCenter)
		t.collectLeaves(childExtent, childCenter, children[s], out)
	}
}
