// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/collision"
	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/solver"
	"github.com/quartzengine/phys2d/util/logger"
)

var log = logger.New("WORLD", logger.Default)

// World owns the body collection exclusively (spec §3's shared-resource
// policy) and drives the fixed per-step pipeline: apply gravity, detect
// contacts, run the solver's sweeps, then integrate every body.
//
// World carries no state across steps beyond the bodies themselves: the
// detector and resolver are stateless collaborators reconstructed from
// Config on every World, not per Step.
type World struct {
	cfg      Config
	bodies   []*body.Body
	detector *collision.Detector
	resolver *solver.Resolver

	lastContacts []collision.Collision
}

// New creates a World over the given bodies using cfg. The body slice is
// taken by reference; the World is now its sole owner for the remainder
// of the simulation (callers must not mutate it directly, other than
// through SetBodyPose).
func New(bodies []*body.Body, cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{
		cfg:      cfg,
		bodies:   bodies,
		detector: &collision.Detector{Margin: cfg.CollisionMargin},
		resolver: solver.New(cfg.solverConfig()),
	}, nil
}

// Config returns the World's simulation configuration.
func (w *World) Config() Config { return w.cfg }

// Bodies returns the World's body slice. The slice and its elements must
// not be mutated by callers except through SetBodyPose.
func (w *World) Bodies() []*body.Body { return w.bodies }

// Contacts returns the collision list produced by the most recent Step.
// It is nil before the first Step and is replaced, never appended to, on
// every subsequent Step (spec §4.5: the solver is stateless across
// ticks, no warm start).
func (w *World) Contacts() []collision.Collision { return w.lastContacts }

// SetBodyPose teleports the body at index i to pos/angle, bypassing
// integration. This is the narrow interface a host uses for things like
// mouse-drag repositioning (spec §6); it does not reset velocity.
func (w *World) SetBodyPose(i int, pos math2.Vec2, angle float64) {
	w.bodies[i].SetPose(pos, angle)
}

// Step runs exactly one fixed timestep: apply gravity to every dynamic
// body, detect all contacts once, sweep the solver Config.SolverIterations
// times over that fixed contact list, then integrate every body forward
// by Config.Dt. This is the entry point spec §4.5 calls timestep(bodies).
func (w *World) Step() {
	w.applyGravity()

	w.lastContacts = w.detector.FindPairs(w.bodies)
	if len(w.lastContacts) > 0 {
		log.Debug("world: %d contact(s) this step", len(w.lastContacts))
	}

	w.resolver.Resolve(w.bodies, w.lastContacts)

	for _, b := range w.bodies {
		b.Integrate(w.cfg.Dt)
	}
}

func (w *World) applyGravity() {
	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		b.ApplyForce(w.cfg.Gravity.Scale(b.Mass()))
	}
}
