// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision implements broad- and narrow-phase collision detection:
// naive O(n²) pair enumeration plus the Separating Axis Theorem for
// polygon-polygon contact, with closest-feature manifold construction and
// edge-edge clipping. Grounded on the teacher's physics/narrowphase.go
// (FindPenetrationAxis, ClipAgainstHull) and physics/collision/broadphase.go
// (naive pair enumeration).
package collision

import (
	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/math2"
)

// DefaultMargin is the "almost-equal" distance tolerance used when
// classifying closest features during manifold construction (spec §4.4).
// Values this close to the closest vertex are folded into a second contact
// point, turning a box-on-box touch into a two-point edge manifold instead
// of a degenerate single point. The source's tuned value is 0.1 world
// units.
const DefaultMargin = 0.1

// Info is a single contact point: world position, non-negative penetration
// depth, and a unit normal pointing from body2 toward body1.
type Info struct {
	Pos    math2.Vec2
	Depth  float64
	Normal math2.Vec2
}

// Collision pairs an Info with the indices of the two colliding bodies in
// the world's body slice. It lives for one tick only — detection never
// carries contacts across steps (no warm-starting, spec §3).
type Collision struct {
	Info
	BodyA int
	BodyB int
}

// Detector runs broad- then narrow-phase detection over a body slice.
// Margin controls closest-feature classification (see DefaultMargin).
type Detector struct {
	Margin float64
}

// NewDetector creates a Detector using DefaultMargin.
func NewDetector() *Detector {
	return &Detector{Margin: DefaultMargin}
}

// FindPairs enumerates ordered index pairs (i, j) with i < j, skips pairs
// where both bodies are static, and dispatches each remaining pair to the
// matching narrow-phase routine for its pair of shape kinds. It is the
// naive O(n²) broad phase spec §1 accepts in place of an acceleration
// structure.
func (d *Detector) FindPairs(bodies []*body.Body) []Collision {
	var collisions []Collision

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bi, bj := bodies[i], bodies[j]
			if bi.IsStatic() && bj.IsStatic() {
				continue
			}

			infos := d.narrowPhase(bi, bj)
			for _, info := range infos {
				collisions = append(collisions, Collision{Info: info, BodyA: i, BodyB: j})
			}
		}
	}

	return collisions
}
