// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import (
	"github.com/spatialtree/octomap/internal/arena"
	"github.com/spatialtree/octomap/internal/geom"
	"github.com/spatialtree/octomap/internal/slot"
)

// maxGrowthIterations bounds AddPoint's root-growth loop. Each growth
// doubles the root extent, so 20 doublings cover a 10^6x span — vastly
// beyond any practical input. More than that indicates numeric pathology
// (e.g. NaN or an astronomically distant point), not a tree that merely
// needs to grow further.
const maxGrowthIterations = 20

// AddPoint marks the leaf containing p Occupied, growing the root and
// generating intermediate nodes as needed. Calling AddPoint(p) twice is
// equivalent to calling it once: the second call finds the leaf already
// Occupied and its descent is a no-op past that point.
func (t *Tree) AddPoint(p geom.Vec3) error {
	for growths := 0; ; growths++ {
		box := geom.AABB{Center: t.rootCenter, Extent: t.rootExtent}
		if box.Contains(p) {
			break
		}

		if growths >= maxGrowthIterations {
			return ErrGrowthLimitExceeded
		}

		if err := t.growRoot(p.Sub(t.rootCenter)); err != nil {
			return mapArenaErr(err)
		}
	}

	return mapArenaErr(t.insert(p, t.rootExtent, t.rootCenter, t.root))
}

// insert descends toward p, leafing the node it bottoms out at Occupied,
// then prunes the node it returns through if all eight of its children
// collapsed to a common state.
func (t *Tree) insert(p geom.Vec3, nodeExtent float32, nodeCenter geom.Vec3, h arena.NodeHandle) error {
	if nodeExtent < t.minLeafExtent {
		n := t.arena.Node(h)
		n.Occupancy = arena.Occupied
		t.arena.SetNode(h, n)
		return nil
	}

	box := geom.AABB{Center: nodeCenter, Extent: nodeExtent}
	if !box.Contains(p) {
		return nil
	}

	n := t.arena.Node(h)
	if !n.HasChildren {
		group, err := t.generateChildren()
		if err != nil {
			return err
		}
		n.ChildrenHandle = group
		n.HasChildren = true
		t.arena.SetNode(h, n)
	}

	children := t.arena.ChildGroup(n.ChildrenHandle)
	childExtent := nodeExtent / 2
	s := slot.ChildIndex(p, nodeCenter)
	childCenter := slot.ChildCenter(s, childExtent, nodeCenter)

	if err := t.insert(p, childExtent, childCenter, children[s]); err != nil {
		return err
	}

	t.pruneNode(h)
	return nil
}

// generateChildren allocates eight fresh Unknown leaves and registers them
// as a child group.
func (t *Tree) generateChildren() (arena.ChildGroupHandle, error) {
	var handles arena.ChildGroup
	for i := range handles {
		h, err := t.arena.NewNode()
		if err != nil {
			return 0, err
		}
		handles[i] = h
	}
	return t.arena.NewChildGroup(handles)
}

// pruneNode collapses h's child group back into a single leaf if all eight
// children are leaves sharing the same Free or Occupied state. Unknown
// groups are never pruned — Unknown is the state fresh leaves are born
// with, so pruning it would immediately undo generateChildren.
func (t *Tree) pruneNode(h arena.NodeHandle) {
	n := t.arena.Node(h)
	if !n.HasChildren {
		return
	}

	children := t.arena.ChildGroup(n.ChildrenHandle)

	var common arena.Occupancy
	for i, ch := range children {
		cn := t.arena.Node(ch)
		if cn.HasChildren || cn.Occupancy == arena.Unknown {
			return
		}
		if i == 0 {
			common = cn.Occupancy
		} else if cn.Occupancy != common {
			return
		}
	}

	for _, ch := range children {
		t.arena.RemoveNode(ch)
	}
	t.arena.RemoveChildGroup(n.ChildrenHandle)

	n.HasChildren = false
	n.ChildrenHandle = 0
	n.Occupancy = common
	t.arena.SetNode(h, n)
}

// growRoot doubles the root extent toward direction, re-parenting the old
// root into whichever slot of the new root contains its center.
func (t *Tree) growRoot(direction geom.Vec3) error {
	sx, sy, sz := geom.Sign(direction.X), geom.Sign(direction.Y), geom.Sign(direction.Z)
	half := t.rootExtent / 2

	newCenter := t.rootCenter.Add(geom.Vec3{X: sx * half, Y: sy * half, Z: sz * half})
	newExtent := t.rootExtent * 2
	oldSlot := slot.RootSlot(sx, sy, sz)

	var handles arena.ChildGroup
	for i := range handles {
		if i == oldSlot {
			handles[i] = t.root
			continue
		}
		h, err := t.arena.NewNode()
		if err != nil {
			return err
		}
		handles[i] = h
	}

	group, err := t.arena.NewChildGroup(handles)
	if err != nil {
		return err
	}

	newRoot, err := t.arena.NewNode()
	if err != nil {
		return err
	}
	t.arena.SetNode(newRoot, arena.Node{HasChildren: true, ChildrenHandle: group})

	t.root = newRoot
	t.rootCenter = newCenter
	t.rootExtent = newExtent
	return nil
}

// AddRay marks Free every leaf that the half-line from origin toward hit
// passes through inside the root, including leaves beyond hit, leaving the
// leaf whose center equals hit untouched. It performs no pruning; a later
// AddPoint prunes only the nodes on its own descent path, so homogeneous
// groups elsewhere stay as AddRay left them.
func (t *Tree) AddRay(origin, hit geom.Vec3) error {
	ray := geom.NewRay(origin, hit)
	return mapArenaErr(t.freeRay(ray, hit, t.rootExtent, t.rootCenter, t.root))
}

func (t *Tree) freeRay(ray geom.Ray, hit geom.Vec3, nodeExtent float32, nodeCenter geom.Vec3, h arena.NodeHandle) error {
	if nodeExtent < t.minLeafExtent {
		if nodeCenter.Equal(hit) {
			return nil
		}
		n := t.arena.Node(h)
		n.Occupancy = arena.Free
		t.arena.SetNode(h, n)
		return nil
	}

	n := t.arena.Node(h)
	if !n.HasChildren {
		group, err := t.generateChildren()
		if err != nil {
			return err
		}
		n.ChildrenHandle = group
		n.HasChildren = true
		t.arena.SetNode(h, n)
	}

	children := t.arena.ChildGroup(n.ChildrenHandle)
	childExtent := nodeExtent / 2

	for s := 0; s < 8; s++ {
		childCenter := slot.ChildCenter(s, childExtent, nodeCenter)
		box := geom.AABB{Center: childCenter, Extent: childExtent}
		if !box.IntersectsRay(ray) {
			continue
		}
		if err := t.freeRay(ray, hit, childExtent, childCenter, children[s]); err != nil {
			return err
		}
	}

	return nil
}
