// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

// Package arena owns every node and child-group record of an octree and
// hands callers stable, monotonically issued integer handles to them.
//
// Handles are never recycled: once issued, a handle's slot is reserved for
// the lifetime of the Arena. This mirrors the spec's own justification —
// long before a uint32 handle space is exhausted, memory pressure from the
// tree itself dominates — and keeps the hot insert/prune path free of any
// free-list bookkeeping.
package arena

import (
	"errors"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/spatialtree/octomap/internal/xdebug"
)

// ErrAllocatorExhausted is returned when a handle counter would overflow
// its uint32 range.
var ErrAllocatorExhausted = errors.New("arena: allocator exhausted")

// Occupancy is the ternary occupancy state of a leaf node, represented
// numerically so a future log-odds fusion scheme could update it
// additively without a representation change.
type Occupancy int8

const (
	Free     Occupancy = -1
	Unknown  Occupancy = 0
	Occupied Occupancy = 1
)

func (o Occupancy) String() string {
	switch o {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	default:
		return "Unknown"
	}
}

// NodeHandle identifies a Node in an Arena.
type NodeHandle uint32

// ChildGroupHandle identifies a child-group record (an ordered 8-tuple of
// NodeHandles) in an Arena.
type ChildGroupHandle uint32

// Node is a leaf or an internal node, distinguished by HasChildren.
// Internal nodes carry ChildrenHandle; their Occupancy field is never read
// by queries and is overwritten whenever the node is pruned back to a leaf.
type Node struct {
	ChildrenHandle ChildGroupHandle
	HasChildren    bool
	Occupancy      Occupancy
}

// ChildGroup is the ordered 8-tuple of a node's children, indexed by the
// bit-packed slot scheme documented in package slot.
type ChildGroup [8]NodeHandle

// Arena owns all Nodes and ChildGroups for a single Tree.
//
// The zero Arena is not ready to use; construct one with New.
type Arena struct {
	nodes  []Node
	groups []ChildGroup

	// liveNodes/liveGroups back debug-only double-free and use-after-free
	// assertions. They are maintained unconditionally (the bookkeeping is
	// cheap) but only ever consulted when built with -tags debug, the same
	// "auxiliary bitset next to the real hot-path structure" role
	// bits-and-blooms/bitset plays in the teacher this package is grounded
	// on.
	liveNodes  *bitset.BitSet
	liveGroups *bitset.BitSet
}

// New returns an empty, ready-to-use Arena.
func New() *Arena {
	return &Arena{
		liveNodes:  bitset.New(0),
		liveGroups: bitset.New(0),
	}
}

// NewNode allocates a fresh leaf node with Unknown occupancy.
func (a *Arena) NewNode() (NodeHandle, error) {
	if len(a.nodes) >= math.MaxUint32 {
		return 0, ErrAllocatorExhausted
	}

	h := NodeHandle(len(a.nodes))
	a.nodes = append(a.nodes, Node{Occupancy: Unknown})
	a.liveNodes.Set(uint(h))

	return h, nil
}

// NewChildGroup registers an 8-tuple of handles and returns a fresh handle
// for it.
func (a *Arena) NewChildGroup(handles ChildGroup) (ChildGroupHandle, error) {
	if len(a.groups) >= math.MaxUint32 {
		return 0, ErrAllocatorExhausted
	}

	h := ChildGroupHandle(len(a.groups))
	a.groups = append(a.groups, handles)
	a.liveGroups.Set(uint(h))

	return h, nil
}

// Node returns the record for h.
func (a *Arena) Node(h NodeHandle) Node {
	xdebug.Assert(a.liveNodes.Test(uint(h)), "arena: Node(%d) on a dead or unknown handle", h)
	return a.nodes[h]
}

// SetNode overwrites the record for h.
func (a *Arena) SetNode(h NodeHandle, n Node) {
	xdebug.Assert(a.liveNodes.Test(uint(h)), "arena: SetNode(%d) on a dead or unknown handle", h)
	a.nodes[h] = n
}

// ChildGroup returns the 8-tuple for h.
func (a *Arena) ChildGroup(h ChildGroupHandle) ChildGroup {
	xdebug.Assert(a.liveGroups.Test(uint(h)), "arena: ChildGroup(%d) on a dead or unknown handle", h)
	return a.groups[h]
}

// RemoveNode marks h as dead. In debug builds, any later Node/SetNode call
// on h panics; release builds leave the backing slot in place (no
// compaction, no recycling) and simply stop referencing it from any live
// child group.
func (a *Arena) RemoveNode(h NodeHandle) {
	a.liveNodes.Clear(uint(h))
	a.nodes[h] = Node{}
}

// RemoveChildGroup marks h as dead, mirroring RemoveNode.
func (a *Arena) RemoveChildGroup(h ChildGroupHandle) {
	a.liveGroups.Clear(uint(h))
	a.groups[h] = ChildGroup{}
}
