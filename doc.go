// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

// Package octomap implements an in-memory probabilistic 3D occupancy map
// backed by a sparse octree.
//
// A Tree partitions a cubic region of space into octants recursively,
// storing a ternary occupancy state (Free, Unknown, Occupied) per leaf. It
// supports:
//
//   - AddPoint: mark the leaf containing a point Occupied, growing the root
//     and generating intermediate nodes as needed.
//   - AddRay: mark every leaf a ray passes through Free, leaving untouched
//     only a leaf whose center equals the hit point exactly.
//   - RayIntersect: find the first Occupied leaf a ray hits, in octant scan
//     order.
//   - Leaves / Encode / FromBitstream: enumerate Occupied leaves, and
//     serialize/deserialize the tree's topology and leaf states as a
//     compact, bit-packed stream.
//
// AddPoint prunes the nodes along its descent path: whenever all eight
// children of such a node are leaves sharing the same Free or Occupied
// state, they collapse back into a single leaf at the parent. AddRay does
// not prune.
//
// A Tree is single-threaded and non-reentrant. It must not be copied by
// value, and concurrent calls on the same Tree from multiple goroutines are
// undefined; independent Trees share no state and may run in parallel.
package octomap
