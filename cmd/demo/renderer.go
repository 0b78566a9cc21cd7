// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quartzengine/phys2d/body"
	"github.com/quartzengine/phys2d/shape"
)

const vertexShaderSrc = `
#version 330 core
layout (location = 0) in vec2 aPos;
uniform vec2 uViewport;
void main() {
    vec2 ndc = vec2(
        (aPos.x / uViewport.x) * 2.0 - 1.0,
        1.0 - (aPos.y / uViewport.y) * 2.0
    );
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSrc = `
#version 330 core
out vec4 FragColor;
uniform vec3 uColor;
void main() {
    FragColor = vec4(uColor, 1.0);
}
` + "\x00"

// renderer draws body outlines as line loops. One shared shader program
// and one dynamically-resized vertex buffer, re-uploaded every draw call;
// there is no batching, which is fine at the handful-of-bodies scale this
// demo targets.
type renderer struct {
	program       uint32
	vao, vbo      uint32
	viewportLoc   int32
	colorLoc      int32
}

func newRenderer() (*renderer, error) {
	prog, err := buildProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return &renderer{
		program:     prog,
		vao:         vao,
		vbo:         vbo,
		viewportLoc: gl.GetUniformLocation(prog, gl.Str("uViewport\x00")),
		colorLoc:    gl.GetUniformLocation(prog, gl.Str("uColor\x00")),
	}, nil
}

func (r *renderer) Begin(width, height int) {
	gl.ClearColor(0.08, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.Uniform2f(r.viewportLoc, float32(width), float32(height))
	gl.BindVertexArray(r.vao)
}

func (r *renderer) End() {
	gl.BindVertexArray(0)
}

// DrawBody draws b's outline. Static bodies are drawn in a dimmer color
// than dynamic ones, a cheap visual aid for the stacking/resting scenes
// this demo runs.
func (r *renderer) DrawBody(b *body.Body, winW, winH int) {
	verts := screenOutline(b.Shape(), winW, winH)
	if len(verts) == 0 {
		return
	}

	if b.IsStatic() {
		gl.Uniform3f(r.colorLoc, 0.5, 0.5, 0.55)
	} else {
		gl.Uniform3f(r.colorLoc, 0.3, 0.8, 0.4)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINE_LOOP, 0, int32(len(verts)/2))
}

func (r *renderer) Close() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
}

// screenOutline flattens a shape's world-space outline into screen-space
// [x0, y0, x1, y1, ...] pairs: 40 pixels per world unit, with the world
// origin at the window's horizontal center and a quarter of its height
// down from the top.
func screenOutline(s shape.Shape, winW, winH int) []float32 {
	const scale = 40
	toScreen := func(wx, wy float64) (float32, float32) {
		return float32(wx)*scale + float32(winW)/2, float32(wy)*scale + float32(winH)/4
	}

	switch sh := s.(type) {
	case *shape.ConvexPolygon:
		verts := sh.WorldVertices()
		out := make([]float32, 0, len(verts)*2)
		for _, v := range verts {
			x, y := toScreen(v.X, v.Y)
			out = append(out, x, y)
		}
		return out

	case *shape.Disc:
		const segments = 24
		out := make([]float32, 0, segments*2)
		c := sh.Center()
		for i := 0; i < segments; i++ {
			theta := 2 * math.Pi * float64(i) / segments
			x, y := toScreen(c.X+sh.Radius*math.Cos(theta), c.Y+sh.Radius*math.Sin(theta))
			out = append(out, x, y)
		}
		return out
	}
	return nil
}

func buildProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("demo: link program: %s", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("demo: compile shader: %s", log)
	}
	return shader, nil
}
