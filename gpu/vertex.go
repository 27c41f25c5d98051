// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/math32"
)

// Vertex is the per-vertex input: a pixel space position
// and an RGBA color, packed without padding.
type Vertex struct {
	Pos   math32.Vector2
	Color math32.Vector4
}

// Uniform is the uniform buffer contents at group 0, binding 0.
type Uniform struct {
	// ViewModel maps pixel space to clip space.
	ViewModel math32.Matrix4
}

const (
	// VertexSize is the size of [Vertex] in bytes, and the
	// vertex buffer stride.
	VertexSize = int(unsafe.Sizeof(Vertex{}))

	// UniformSize is the size of [Uniform] in bytes, and the
	// minimum binding size of the uniform binding.
	UniformSize = int(unsafe.Sizeof(Uniform{}))
)

// QuadVertices are the four corners of the quad, in pixels.
var QuadVertices = []Vertex{
	{Pos: math32.Vec2(25, 25), Color: math32.Vec4(0.3, 0.5, 0.8, 1)},
	{Pos: math32.Vec2(750, 25), Color: math32.Vec4(0.3, 0.3, 0.4, 1)},
	{Pos: math32.Vec2(25, 750), Color: math32.Vec4(0.6, 0.1, 0.8, 1)},
	{Pos: math32.Vec2(750, 750), Color: math32.Vec4(0.3, 0.5, 0.6, 1)},
}

// QuadIndices are the two triangles of the quad.
var QuadIndices = []uint16{0, 1, 2, 2, 1, 3}

// ProjectionMatrix returns the pixel space projection for a
// width by height target: an orthographic projection with the
// origin at the top left, remapped to WebGPU clip depth.
func ProjectionMatrix(width, height int) *math32.Matrix4 {
	return math32.OpenGLToWGPU().Mul(math32.Ortho(0, float32(width), float32(height), 0, -1, 1))
}

// NewUniform returns the uniform for a width by height target.
func NewUniform(width, height int) Uniform {
	return Uniform{ViewModel: *ProjectionMatrix(width, height)}
}

// VertexBufferLayout returns the layout of a buffer of [Vertex]:
// location 0 is the position, location 1 the color.
func VertexBufferLayout() wgpu.VertexBufferLayout {
	var v Vertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(VertexSize),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         uint64(unsafe.Offsetof(v.Pos)),
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         uint64(unsafe.Offsetof(v.Color)),
				ShaderLocation: 1,
			},
		},
	}
}
