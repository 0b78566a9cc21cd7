// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hudWidth  = 220
	hudHeight = 40
)

const hudVertexShaderSrc = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
out vec2 vUV;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
` + "\x00"

const hudFragmentShaderSrc = `
#version 330 core
in vec2 vUV;
out vec4 FragColor;
uniform sampler2D uTex;
void main() {
    FragColor = texture(uTex, vUV);
}
` + "\x00"

// hud draws a small debug overlay (step count, live contact count) as a
// texture-mapped quad in the window's top-left corner. Grounded on the
// teacher's text package's image-then-upload pipeline (text/font.go
// renders glyphs into a Go image before handing it to the GPU); this demo
// substitutes golang.org/x/image/font/basicfont's built-in bitmap face
// for the teacher's golang/freetype truetype path, since no .ttf asset ships with
// this binary (see DESIGN.md).
type hud struct {
	program  uint32
	vao, vbo uint32
	texture  uint32
	img      *image.RGBA
}

func newHUD() (*hud, error) {
	prog, err := buildProgram(hudVertexShaderSrc, hudFragmentShaderSrc)
	if err != nil {
		return nil, err
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	var tex uint32
	gl.GenTextures(1, &tex)

	return &hud{
		program: prog,
		vao:     vao,
		vbo:     vbo,
		texture: tex,
		img:     image.NewRGBA(image.Rect(0, 0, hudWidth, hudHeight)),
	}, nil
}

// Draw rasterizes the debug text into h.img, uploads it, and draws it as
// a quad anchored to the window's top-left corner in NDC space.
func (h *hud) Draw(winW, winH, step, contacts int) {
	draw.Draw(h.img, h.img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  h.img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(fmt.Sprintf("step %d", step))
	d.Dot = fixed.P(6, 32)
	d.DrawString(fmt.Sprintf("contacts %d", contacts))

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(hudWidth), int32(hudHeight), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	marginX := 2 * float32(hudWidth) / float32(winW)
	marginY := 2 * float32(hudHeight) / float32(winH)
	// Two triangles covering x in [-1, -1+marginX], y in [1-marginY, 1] in
	// NDC (the top-left corner; NDC y points up), with the image's first
	// row mapped to the quad's top edge.
	verts := []float32{
		-1, 1 - marginY, 0, 1,
		-1 + marginX, 1 - marginY, 1, 1,
		-1 + marginX, 1, 1, 0,
		-1, 1 - marginY, 0, 1,
		-1 + marginX, 1, 1, 0,
		-1, 1, 0, 0,
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(h.program)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (h *hud) Close() {
	gl.DeleteTextures(1, &h.texture)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteProgram(h.program)
}
