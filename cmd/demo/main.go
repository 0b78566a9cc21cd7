// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo is the rendering adapter spec.md §1 treats as an external
// collaborator: a thin glfw/OpenGL window that steps a World on a fixed
// clock and draws each body's outline. It owns no simulation state of its
// own, and the simulation package never imports it.
//
// Grounded on the teacher's hellog3n/main.go for the window/render-loop
// shape (create window, build GL state, loop: clear, render, swap,
// poll), adapted from a 3D scene-graph renderer to direct immediate
// line-loop drawing since the 2D domain has no meshes, materials, or
// lighting. The teacher's window package hardcodes glfw v3.2 and its gls
// package wraps a 3D shader pipeline neither of which this demo needs, so
// this command talks to go-gl/glfw and go-gl/gl directly instead of
// going through them (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/util"
	"github.com/quartzengine/phys2d/world"
)

func init() {
	// GLFW and OpenGL calls must happen on the thread that created the
	// context.
	runtime.LockOSThread()
}

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file (overrides -builtin)")
	builtin := flag.String("builtin", "rotating-stack", "built-in scene: rotating-stack, pile, enclosed-pile, or box-stack")
	flag.Parse()

	w, err := buildWorld(*scenePath, *builtin)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}

	win, err := newWindow(960, 720, "phys2d demo")
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	defer win.Close()

	r, err := newRenderer()
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	defer r.Close()

	hud, err := newHUD()
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	defer hud.Close()

	cfg := w.Config()
	var accumulator float64
	step := 0

	fr := util.NewFrameRater(60)
	for !win.ShouldClose() {
		fr.Start()
		dt := win.frameDelta()
		accumulator += dt

		for accumulator >= cfg.Dt {
			w.Step()
			accumulator -= cfg.Dt
			step++
		}

		r.Begin(win.width, win.height)
		for _, b := range w.Bodies() {
			r.DrawBody(b, win.width, win.height)
		}
		r.End()

		hud.Draw(win.width, win.height, step, len(w.Contacts()))

		win.SwapBuffers()
		win.PollEvents()
		fr.Wait()
	}
}

// buildWorld loads a scene file if one was given, otherwise builds one of
// the package's canonical test worlds by name.
func buildWorld(scenePath, builtin string) (*world.World, error) {
	if scenePath != "" {
		f, err := os.Open(scenePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return world.BuildWorld(f)
	}

	var (
		bodies []*body.Body
		err    error
	)
	switch builtin {
	case "rotating-stack":
		bodies, err = world.NewRotatingStackScene()
	case "pile":
		bodies, err = world.NewPileScene()
	case "enclosed-pile":
		bodies, err = world.NewEnclosedPileScene()
	case "box-stack":
		bodies, err = world.NewBoxStackScene()
	default:
		return nil, fmt.Errorf("demo: unknown builtin scene %q", builtin)
	}
	if err != nil {
		return nil, err
	}

	cfg := world.DefaultConfig()
	cfg.Friction = 0.3
	return world.New(bodies, cfg)
}
