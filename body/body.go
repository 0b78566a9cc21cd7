// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package body implements rigid-body state: pose, velocity, mass/inertia,
// and the force/impulse application and integration routines that advance
// a body through time. It is grounded on physics/body.go in the teacher
// (g3n-engine), collapsed from 3D (quaternion orientation, Matrix3
// inertia) to 2D (scalar angle, scalar inertia).
package body

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/shape"
)

// Body is a rigid body: one Shape plus linear and angular motion state.
//
// A Body is static iff Mass == 0, by construction convention (spec §3).
// Static bodies ignore every force/impulse application and their
// InverseMass/InverseInertia are always 0, so the solver never needs to
// branch on staticness in the impulse math itself.
type Body struct {
	id uuid.UUID

	pos math2.Vec2
	vel math2.Vec2
	acc math2.Vec2 // accumulated linear acceleration, cleared each Integrate

	angle float64
	avel  float64
	aacc  float64 // accumulated angular acceleration, cleared each Integrate

	mass        float64
	inertia     float64
	invMass     float64
	invInertia  float64
	static      bool

	shape shape.Shape
}

// New creates a Body with the given shape, initial pose, and mass.
//
// mass == 0 constructs a static body: InverseMass/InverseInertia are 0 and all
// force/impulse application is a no-op, matching spec §3's invariant. A
// negative mass is a construction error.
func New(s shape.Shape, pos math2.Vec2, angle float64, mass float64) (*Body, error) {
	if mass < 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, errors.New("body: mass must be a finite value >= 0")
	}

	b := &Body{
		id:     uuid.New(),
		pos:    pos,
		angle:  angle,
		mass:   mass,
		static: mass == 0,
	}

	if b.static {
		b.invMass = 0
		b.inertia = 0
		b.invInertia = 0
	} else {
		b.invMass = 1 / mass
		b.inertia = s.UnitMomentOfInertia() * mass
		if !(b.inertia > 0) {
			return nil, errors.New("body: dynamic body must have positive moment of inertia")
		}
		b.invInertia = 1 / b.inertia
	}

	b.shape = s
	b.shape.UpdatePose(pos, angle)
	return b, nil
}

// ID returns a stable identifier for this body, independent of its index
// in the world's body slice. Useful for debug visualization and renderer
// bookkeeping that must survive the body vector being reordered by a host
// (the core simulation itself never removes or reorders bodies mid-run).
func (b *Body) ID() uuid.UUID { return b.id }

// Pos returns the body's current center-of-mass world position.
func (b *Body) Pos() math2.Vec2 { return b.pos }

// Angle returns the body's current orientation in radians.
func (b *Body) Angle() float64 { return b.angle }

// Vel returns the body's current linear velocity.
func (b *Body) Vel() math2.Vec2 { return b.vel }

// AngVel returns the body's current angular velocity.
func (b *Body) AngVel() float64 { return b.avel }

// Mass returns the body's mass (0 for static bodies).
func (b *Body) Mass() float64 { return b.mass }

// Inertia returns the body's moment of inertia (0 for static bodies).
func (b *Body) Inertia() float64 { return b.inertia }

// Shape returns the body's collision shape.
func (b *Body) Shape() shape.Shape { return b.shape }

// IsStatic reports whether the body is static (infinite mass).
func (b *Body) IsStatic() bool { return b.static }

// InverseMass returns 0 for a static body, 1/mass otherwise.
func (b *Body) InverseMass() float64 { return b.invMass }

// InverseInertia returns 0 for a static body, 1/inertia otherwise.
func (b *Body) InverseInertia() float64 { return b.invInertia }

// SetVel sets the body's linear velocity directly. Exists for scene setup
// and host input handling (e.g. a mouse-drag giving the body a throw
// velocity); the solver itself only ever adds to velocity via impulses.
func (b *Body) SetVel(v math2.Vec2) {
	if b.static {
		return
	}
	b.vel = v
}

// SetAngVel sets the body's angular velocity directly.
func (b *Body) SetAngVel(w float64) {
	if b.static {
		return
	}
	b.avel = w
}

// SetPose teleports the body to the given pose without going through
// integration, and refreshes the shape's world-space cache immediately.
// This is the narrow interface a host uses to reposition a body under
// mouse drag, per spec §6.
func (b *Body) SetPose(pos math2.Vec2, angle float64) {
	b.pos = pos
	b.angle = angle
	b.shape.UpdatePose(pos, angle)
}

// ApplyForce accumulates a world-space force, contributing only to linear
// acceleration. No-op for static bodies.
func (b *Body) ApplyForce(f math2.Vec2) {
	if b.static {
		return
	}
	b.acc = b.acc.Add(f.Scale(b.invMass))
}

// ApplyForceAt accumulates a world-space force applied at lever arm r
// (contact point minus center of mass), contributing to both linear and
// angular acceleration. The torque is the 2D cross product orth(r)·F.
func (b *Body) ApplyForceAt(f, r math2.Vec2) {
	if b.static {
		return
	}
	b.acc = b.acc.Add(f.Scale(b.invMass))
	b.aacc += r.Orth().Dot(f) * b.invInertia
}

// ApplyImpulse adds a world-space impulse directly to linear velocity.
// No-op for static bodies.
func (b *Body) ApplyImpulse(j math2.Vec2) {
	if b.static {
		return
	}
	b.vel = b.vel.Add(j.Scale(b.invMass))
}

// ApplyImpulseAt adds a world-space impulse applied at lever arm r to both
// linear and angular velocity. This is the operation the contact solver
// uses for every normal and friction impulse.
func (b *Body) ApplyImpulseAt(j, r math2.Vec2) {
	if b.static {
		return
	}
	b.vel = b.vel.Add(j.Scale(b.invMass))
	b.avel += r.Orth().Dot(j) * b.invInertia
}

// VelocityAt returns the world-space velocity of the material point at
// lever arm r from the center of mass: v + ω·orth(r).
func (b *Body) VelocityAt(r math2.Vec2) math2.Vec2 {
	return b.vel.Add(r.Orth().Scale(b.avel))
}

// Integrate advances the body one timestep using explicit semi-implicit
// (symplectic) Euler integration, then clears the accumulators and
// refreshes the shape's world-space cache. Static bodies are a complete
// no-op — their pose, velocity, and shape cache never change.
func (b *Body) Integrate(dt float64) {
	if b.static {
		return
	}

	b.vel = b.vel.Add(b.acc.Scale(dt))
	b.pos = b.pos.Add(b.vel.Scale(dt))
	b.acc = math2.Zero

	b.avel += b.aacc * dt
	b.angle += b.avel * dt
	b.aacc = 0

	b.shape.UpdatePose(b.pos, b.angle)
}
