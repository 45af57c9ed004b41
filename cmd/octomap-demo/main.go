// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

// Command octomap-demo drives a Tree through a scan-then-query cycle: it
// fires simulated lidar rays into the map, serializes the result, reloads
// it, and reports what survived the round trip.
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/spatialtree/octomap"
	"github.com/spatialtree/octomap/internal/geom"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	prng := rand.New(rand.NewPCG(42, 42))
	t := octomap.New(geom.Vec3{}, 64, 0.25)

	origin := geom.Vec3{}
	ts := time.Now()
	for i := 0; i < 2_000; i++ {
		hit := randomHit(prng)
		if err := t.AddRay(origin, hit); err != nil {
			log.Fatalf("AddRay: %v", err)
		}
		if err := t.AddPoint(hit); err != nil {
			log.Fatalf("AddPoint: %v", err)
		}
	}
	log.Printf("scanned 2000 rays in %v, %d occupied leaves", time.Since(ts), len(t.Leaves()))

	data := t.Encode()
	log.Printf("encoded tree: %d bytes", len(data))

	reloaded, err := octomap.FromBitstream(geom.Vec3{}, 64, 0.25, data)
	if err != nil {
		log.Fatalf("FromBitstream: %v", err)
	}
	log.Printf("reloaded tree: %d occupied leaves", len(reloaded.Leaves()))

	probe := geom.NewRay(origin, randomHit(prng))
	if center, ok := reloaded.RayIntersect(probe); ok {
		log.Printf("probe ray hit leaf at %+v", center)
	} else {
		log.Printf("probe ray hit nothing")
	}
}

func randomHit(prng *rand.Rand) geom.Vec3 {
	return geom.Vec3{
		X: (prng.Float32()*2 - 1) * 20,
		Y: (prng.Float32()*2 - 1) * 20,
		Z: (prng.Float32()*2 - 1) * 20,
	}
}
