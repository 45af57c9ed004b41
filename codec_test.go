// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import (
	"errors"
	"sort"
	"testing"

	"github.com/spatialtree/octomap/internal/geom"
)

func sortLeaves(ls []LeafDescriptor) {
	sort.Slice(ls, func(i, j int) bool {
		a, b := ls[i].Center, ls[j].Center
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}

// TestEncodeDecodeRoundTrip covers scenario 5: a tree built from two
// inserted points survives an encode/decode round trip with an identical
// leaf set, modulo ordering.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	const rootExtent, minLeaf = 8, 1

	src := New(geom.Vec3{}, rootExtent, minLeaf)
	for _, p := range []geom.Vec3{{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: -1}} {
		if err := src.AddPoint(p); err != nil {
			t.Fatalf("AddPoint(%v): %v", p, err)
		}
	}

	data := src.Encode()

	dst, err := FromBitstream(geom.Vec3{}, rootExtent, minLeaf, data)
	if err != nil {
		t.Fatalf("FromBitstream: %v", err)
	}

	want, got := src.Leaves(), dst.Leaves()
	sortLeaves(want)
	sortLeaves(got)

	if len(want) != len(got) {
		t.Fatalf("Leaves() after round trip = %v, want %v", got, want)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEncodeEmptyTreeIsEmptyStream(t *testing.T) {
	t.Parallel()
	tr := New(geom.Vec3{}, 8, 1)
	if data := tr.Encode(); len(data) != 0 {
		t.Errorf("Encode() of an empty tree = %v, want empty", data)
	}
}

func TestFromBitstreamEmptyDataIsEmptyTree(t *testing.T) {
	t.Parallel()
	tr, err := FromBitstream(geom.Vec3{}, 8, 1, nil)
	if err != nil {
		t.Fatalf("FromBitstream(nil): %v", err)
	}
	if len(tr.Leaves()) != 0 {
		t.Errorf("FromBitstream(nil).Leaves() = %v, want none", tr.Leaves())
	}
}

func TestFromBitstreamCorruptDataReturnsError(t *testing.T) {
	t.Parallel()
	// A single byte holds only four of the root's eight two-bit descriptors
	// (here: one internal, 11, then three Unknown, 00), so the stream ends
	// before the root's fifth descriptor can be read.
	data := []byte{0b11000000}

	_, err := FromBitstream(geom.Vec3{}, 8, 1, data)
	if !errors.Is(err, ErrCorruptBitstream) {
		t.Fatalf("FromBitstream(truncated) = %v, want ErrCorruptBitstream", err)
	}
}

func TestEncodeLengthMatchesInternalNodeCount(t *testing.T) {
	t.Parallel()
	tr := New(geom.Vec3{}, 8, 1)
	if err := tr.AddPoint(geom.Vec3{X: 0.1, Y: 0.1, Z: 0.1}); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}

	data := tr.Encode()
	internal := tr.countInternal(tr.root)

	wantBytes := (internal*16 + 7) / 8
	if len(data) != wantBytes {
		t.Errorf("Encode() length = %d bytes, want %d bytes for %d internal nodes", len(data), wantBytes, internal)
	}
}
