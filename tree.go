// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import (
	"errors"
	"fmt"

	"github.com/spatialtree/octomap/internal/arena"
	"github.com/spatialtree/octomap/internal/geom"
)

// noCopy lets `go vet -copylocks` flag accidental by-value copies of a
// Tree, the same contract the teacher's Table[V] documents for itself.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Tree is a sparse octree occupancy map. The zero Tree is not ready to use;
// construct one with New or FromBitstream.
//
// A Tree must not be copied by value, and is not safe for concurrent
// readers and writers without external locking.
type Tree struct {
	_ noCopy

	arena *arena.Arena

	root          arena.NodeHandle
	rootCenter    geom.Vec3
	rootExtent    float32
	minLeafExtent float32
}

// LeafDescriptor identifies an Occupied leaf's cube.
type LeafDescriptor struct {
	Center geom.Vec3
	Extent float32
}

// New creates an empty Tree rooted at rootCenter with the given root edge
// length and minimum leaf edge length. Every point starts Unknown.
func New(rootCenter geom.Vec3, rootExtent, minLeafExtent float32) *Tree {
	a := arena.New()

	root, err := a.NewNode()
	if err != nil {
		// The very first allocation into an empty arena cannot exhaust a
		// uint32 handle space.
		panic(fmt.Sprintf("octomap: unreachable: %v", err))
	}

	return &Tree{
		arena:         a,
		root:          root,
		rootCenter:    rootCenter,
		rootExtent:    rootExtent,
		minLeafExtent: minLeafExtent,
	}
}

// mapArenaErr translates an internal arena error into the package's public
// sentinel, since the arena only ever reports allocator exhaustion.
func mapArenaErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, arena.ErrAllocatorExhausted) {
		return ErrAllocatorExhausted
	}
	return err
}
