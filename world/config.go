// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world implements the top-level simulation orchestration: a
// World holding a body slice plus its detection/solver pipeline, a Config
// of named tunables, and scene-builder constructors for the supported
// shapes. Grounded on the teacher's app.Application/core orchestration
// style (one owning struct driving a fixed per-frame pipeline) collapsed
// to a headless, renderer-agnostic simulation loop.
package world

import (
	"errors"

	"github.com/quartzengine/phys2d/collision"
	"github.com/quartzengine/phys2d/math2"
	"github.com/quartzengine/phys2d/solver"
)

// Config holds every tunable named in spec §4.5: the fixed timestep,
// gravity vector, solver iteration count, Baumgarte gain, allowed
// penetration ("slop"), Coulomb friction coefficient, and the collision
// margin used for closest-feature classification.
type Config struct {
	Dt                 float64
	Gravity            math2.Vec2
	SolverIterations   int
	Baumgarte          float64
	AllowedPenetration float64
	Friction           float64
	CollisionMargin    float64
}

// DefaultConfig returns the source's tuned constants: dt=0.01, gravity
// (0, 10) (y-down), 1 solver iteration, Baumgarte=10, zero slop, zero
// friction (callers should set a scene-appropriate value), and the
// default 0.1-unit collision margin.
func DefaultConfig() Config {
	return Config{
		Dt:                 0.01,
		Gravity:            math2.New(0, 10),
		SolverIterations:   1,
		Baumgarte:          10,
		AllowedPenetration: 0,
		Friction:           0,
		CollisionMargin:    collision.DefaultMargin,
	}
}

// Validate reports a construction error for any non-physical value: a
// non-positive timestep, an iteration count below 1, or a negative
// margin/friction coefficient.
func (c Config) Validate() error {
	if c.Dt <= 0 {
		return errors.New("world: Config.Dt must be positive")
	}
	if c.SolverIterations < 1 {
		return errors.New("world: Config.SolverIterations must be at least 1")
	}
	if c.Friction < 0 {
		return errors.New("world: Config.Friction must not be negative")
	}
	if c.CollisionMargin < 0 {
		return errors.New("world: Config.CollisionMargin must not be negative")
	}
	return nil
}

func (c Config) solverConfig() solver.Config {
	return solver.Config{
		Baumgarte:          c.Baumgarte,
		AllowedPenetration: c.AllowedPenetration,
		Friction:           c.Friction,
		Iterations:         c.SolverIterations,
	}
}
