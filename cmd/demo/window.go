// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// appWindow wraps a glfw window and OpenGL context, tracking frame timing
// for the fixed-timestep accumulator in main(). Grounded on the teacher's
// window.New (hellog3n/main.go call site), talking to glfw/gl directly
// instead of through the teacher's version-pinned window package.
type appWindow struct {
	win    *glfw.Window
	width  int
	height int
	last   time.Time
}

func newWindow(width, height int, title string) (*appWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("demo: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("demo: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("demo: init gl: %w", err)
	}
	gl.Viewport(0, 0, int32(width), int32(height))

	return &appWindow{win: win, width: width, height: height, last: time.Now()}, nil
}

func (w *appWindow) ShouldClose() bool { return w.win.ShouldClose() }
func (w *appWindow) SwapBuffers()      { w.win.SwapBuffers() }
func (w *appWindow) PollEvents()       { glfw.PollEvents() }

func (w *appWindow) Close() {
	glfw.Terminate()
}

// frameDelta returns the wall-clock time since the previous call, in
// seconds, clamped to avoid a huge catch-up burst after a debugger pause
// or window drag.
func (w *appWindow) frameDelta() float64 {
	now := time.Now()
	dt := now.Sub(w.last).Seconds()
	w.last = now
	const maxDt = 0.25
	if dt > maxDt {
		dt = maxDt
	}
	return dt
}
