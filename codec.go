// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import (
	"fmt"

	"github.com/spatialtree/octomap/internal/arena"
	"github.com/spatialtree/octomap/internal/bitio"
	"github.com/spatialtree/octomap/internal/geom"
)

// Encode serializes the tree's topology and leaf occupancy as a pre-order
// DFS bit stream. For each internal node it visits, it emits two bits per
// child in slot order 0..7:
//
//	1 1  child is internal — recurse into it
//	1 0  child is a Free leaf
//	0 1  child is an Occupied leaf
//	0 0  child is an Unknown leaf
//
// The root itself has no descriptor of its own; the stream always starts
// with its eight children's descriptors. A root with no children encodes
// to an empty stream.
func (t *Tree) Encode() []byte {
	n := t.arena.Node(t.root)
	if !n.HasChildren {
		return []byte{}
	}

	w := bitio.NewWriterSize(t.countInternal(t.root) * 16)
	t.encodeChildren(n.ChildrenHandle, w)
	return w.Bytes()
}

// countInternal counts internal nodes reachable from h, inclusive, to size
// the encoder's preallocation: 16 bits per internal node.
func (t *Tree) countInternal(h arena.NodeHandle) int {
	n := t.arena.Node(h)
	if !n.HasChildren {
		return 0
	}

	count := 1
	for _, ch := range t.arena.ChildGroup(n.ChildrenHandle) {
		count += t.countInternal(ch)
	}
	return count
}

func (t *Tree) encodeChildren(g arena.ChildGroupHandle, w *bitio.Writer) {
	children := t.arena.ChildGroup(g)

	for _, ch := range children {
		cn := t.arena.Node(ch)
		switch {
		case cn.HasChildren:
			w.WriteBit(1)
			w.WriteBit(1)
		case cn.Occupancy == arena.Free:
			w.WriteBit(1)
			w.WriteBit(0)
		case cn.Occupancy == arena.Occupied:
			w.WriteBit(0)
			w.WriteBit(1)
		default:
			w.WriteBit(0)
			w.WriteBit(0)
		}
	}

	for _, ch := range children {
		cn := t.arena.Node(ch)
		if cn.HasChildren {
			t.encodeChildren(cn.ChildrenHandle, w)
		}
	}
}

// FromBitstream rebuilds a tree from data previously produced by Encode,
// relative to a caller-supplied root center, extent and minimum leaf
// extent (the format carries no such metadata of its own). Decoding never
// prunes: the stream's shape is authoritative.
func FromBitstream(rootCenter geom.Vec3, rootExtent, minLeafExtent float32, data []byte) (*Tree, error) {
	t := New(rootCenter, rootExtent, minLeafExtent)

	if len(data) == 0 {
		return t, nil
	}

	r := bitio.NewReader(data)
	group, err := t.decodeChildren(r)
	if err != nil {
		return nil, err
	}

	t.arena.SetNode(t.root, arena.Node{HasChildren: true, ChildrenHandle: group})
	return t, nil
}

// decodeChildren reads one node's eight two-bit descriptors, allocating a
// fresh leaf per slot, then recursively expands whichever of those slots
// the descriptors marked internal, in the same slot order they were read.
func (t *Tree) decodeChildren(r *bitio.Reader) (arena.ChildGroupHandle, error) {
	var handles arena.ChildGroup
	var inner [8]bool

	for s := 0; s < 8; s++ {
		h, err := t.arena.NewNode()
		if err != nil {
			return 0, mapArenaErr(err)
		}
		handles[s] = h

		b1, err := r.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("octomap: decode: %w", ErrCorruptBitstream)
		}
		b2, err := r.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("octomap: decode: %w", ErrCorruptBitstream)
		}

		switch {
		case b1 == 1 && b2 == 1:
			inner[s] = true
		case b1 == 1 && b2 == 0:
			t.arena.SetNode(h, arena.Node{Occupancy: arena.Free})
		case b1 == 0 && b2 == 1:
			t.arena.SetNode(h, arena.Node{Occupancy: arena.Occupied})
		default:
			t.arena.SetNode(h, arena.Node{Occupancy: arena.Unknown})
		}
	}

	group, err := t.arena.NewChildGroup(handles)
	if err != nil {
		return 0, mapArenaErr(err)
	}

	for s := 0; s < 8; s++ {
		if !inner[s] {
			continue
		}
		childGroup, err := t.decodeChildren(r)
		if err != nil {
			return 0, err
		}
		t.arena.SetNode(handles[s], arena.Node{HasChildren: true, ChildrenHandle: childGroup})
	}

	return group, nil
}
