// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/math2"
)

// BodySpec is one body's YAML description within a SceneConfig. Which of
// Radius, Vertices, Width/Height, or Sides+Radius is read depends on
// Shape: "disc" uses Radius, "polygon" uses Vertices, "rectangle" uses
// Width/Height, and "regular_polygon" uses Sides+Radius.
type BodySpec struct {
	Shape    string       `yaml:"shape"`
	Radius   float64      `yaml:"radius,omitempty"`
	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	Width    float64      `yaml:"width,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Sides    int          `yaml:"sides,omitempty"`
	Pos      [2]float64   `yaml:"pos"`
	Angle    float64      `yaml:"angle"`
	Mass     float64      `yaml:"mass"`
}

// SceneConfig is the YAML document shape for a fixture scene: a world
// Config plus the list of bodies to populate it with.
type SceneConfig struct {
	Dt                 float64    `yaml:"dt"`
	GravityX           float64    `yaml:"gravity_x"`
	GravityY           float64    `yaml:"gravity_y"`
	SolverIterations   int        `yaml:"solver_iterations"`
	Baumgarte          float64    `yaml:"baumgarte"`
	AllowedPenetration float64    `yaml:"allowed_penetration"`
	Friction           float64    `yaml:"friction"`
	CollisionMargin    float64    `yaml:"collision_margin"`
	Bodies             []BodySpec `yaml:"bodies"`
}

// LoadSceneConfig parses a YAML scene document from r. It does not build
// bodies or validate the resulting Config; call Config/BuildBodies below, or
// use BuildWorld for the common case of wanting both in one call.
func LoadSceneConfig(r io.Reader) (SceneConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("world: reading scene config: %w", err)
	}

	var sc SceneConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return SceneConfig{}, fmt.Errorf("world: parsing scene config: %w", err)
	}
	return sc, nil
}

// Config converts the scene's top-level fields into a world Config.
func (sc SceneConfig) Config() Config {
	return Config{
		Dt:                 sc.Dt,
		Gravity:            math2.New(sc.GravityX, sc.GravityY),
		SolverIterations:   sc.SolverIterations,
		Baumgarte:          sc.Baumgarte,
		AllowedPenetration: sc.AllowedPenetration,
		Friction:           sc.Friction,
		CollisionMargin:    sc.CollisionMargin,
	}
}

// BuildBodies constructs a Body for every BodySpec in the scene, in order.
func (sc SceneConfig) BuildBodies() ([]*body.Body, error) {
	bodies := make([]*body.Body, 0, len(sc.Bodies))
	for i, spec := range sc.Bodies {
		pos := math2.New(spec.Pos[0], spec.Pos[1])

		var b *body.Body
		var err error
		switch spec.Shape {
		case "disc":
			b, err = NewDiscBody(spec.Radius, pos, spec.Angle, spec.Mass)
		case "polygon":
			verts := make([]math2.Vec2, len(spec.Vertices))
			for j, v := range spec.Vertices {
				verts[j] = math2.New(v[0], v[1])
			}
			b, err = NewPolygonBody(verts, pos, spec.Angle, spec.Mass)
		case "rectangle":
			b, err = NewRectangleBody(spec.Width, spec.Height, pos, spec.Angle, spec.Mass)
		case "regular_polygon":
			b, err = NewRegularPolygonBody(spec.Sides, spec.Radius, pos, spec.Angle, spec.Mass)
		default:
			return nil, fmt.Errorf("world: scene body %d: unknown shape %q", i, spec.Shape)
		}
		if err != nil {
			return nil, fmt.Errorf("world: scene body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// BuildWorld loads a scene document from r and constructs a ready-to-step
// World from it.
func BuildWorld(r io.Reader) (*World, error) {
	sc, err := LoadSceneConfig(r)
	if err != nil {
		return nil, err
	}
	bodies, err := sc.BuildBodies()
	if err != nil {
		return nil, err
	}
	return New(bodies, sc.Config())
}
