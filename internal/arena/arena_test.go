// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package arena

import "testing"

func TestNewNodeStartsUnknown(t *testing.T) {
	t.Parallel()
	a := New()

	h, err := a.NewNode()
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	if got := a.Node(h); got.Occupancy != Unknown || got.HasChildren {
		t.Errorf("NewNode() = %+v, want zero-value leaf with Unknown occupancy", got)
	}
}

func TestSetNodeRoundTrips(t *testing.T) {
	t.Parallel()
	a := New()

	h, _ := a.NewNode()
	a.SetNode(h, Node{Occupancy: Occupied})
	if got := a.Node(h); got.Occupancy != Occupied {
		t.Errorf("Node(h).Occupancy = %v, want Occupied", got.Occupancy)
	}
}

func TestChildGroupRoundTrips(t *testing.T) {
	t.Parallel()
	a := New()

	var handles ChildGroup
	for i := range handles {
		h, err := a.NewNode()
		if err != nil {
			t.Fatalf("NewNode: %v", err)
		}
		handles[i] = h
	}

	g, err := a.NewChildGroup(handles)
	if err != nil {
		t.Fatalf("NewChildGroup: %v", err)
	}
	if got := a.ChildGroup(g); got != handles {
		t.Errorf("ChildGroup(g) = %v, want %v", got, handles)
	}
}

func TestHandlesAreNotRecycled(t *testing.T) {
	t.Parallel()
	a := New()

	h1, _ := a.NewNode()
	a.RemoveNode(h1)
	h2, _ := a.NewNode()

	if h1 == h2 {
		t.Errorf("handle %d reused after RemoveNode, want a fresh handle", h1)
	}
}

func TestOccupancyString(t *testing.T) {
	t.Parallel()
	tests := map[Occupancy]string{
		Free:     "Free",
		Unknown:  "Unknown",
		Occupied: "Occupied",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Occupancy(%d).String() = %q, want %q", o, got, want)
		}
	}
}
