// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// StaticGeometry holds the vertex, index and uniform buffers for the
// quad and the bind group for the uniform. Buffers are uploaded once
// at creation and there is no update path.
type StaticGeometry struct {
	// NIndices is the number of indices drawn.
	NIndices int

	vertices  *wgpu.Buffer
	indices   *wgpu.Buffer
	uniform   *wgpu.Buffer
	bindGroup *wgpu.BindGroup
}

// Buffer usages for the static geometry.
const (
	VertexBufferUsage  = wgpu.BufferUsageVertex
	IndexBufferUsage   = wgpu.BufferUsageIndex
	UniformBufferUsage = wgpu.BufferUsageUniform | wgpu.BufferUsageCopySrc
)

// NewStaticGeometry uploads the given vertices, indices and uniform,
// and binds the uniform using the pipeline's group 0 layout.
func NewStaticGeometry(dev *Device, pl *Pipeline, vertices []Vertex, indices []uint16, uniform Uniform) (*StaticGeometry, error) {
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("gpu: geometry needs vertices and indices")
	}
	sg := &StaticGeometry{NIndices: len(indices)}
	var err error
	if sg.vertices, err = dev.NewBufferInit("vertex", wgpu.ToBytes(vertices), VertexBufferUsage); err != nil {
		return nil, err
	}
	if sg.indices, err = dev.NewBufferInit("index", IndexBytes(indices), IndexBufferUsage); err != nil {
		sg.Release()
		return nil, err
	}
	if sg.uniform, err = dev.NewBufferInit("uniform", wgpu.ToBytes([]Uniform{uniform}), UniformBufferUsage); err != nil {
		sg.Release()
		return nil, err
	}
	sg.bindGroup, err = dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "uniform",
		Layout: pl.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  sg.uniform,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		sg.Release()
		return nil, fmt.Errorf("gpu: creating uniform bind group: %w", err)
	}
	return sg, nil
}

// IndexBytes returns indices as bytes, padded with zeros
// to a multiple of 4 bytes as buffer sizes require.
func IndexBytes(indices []uint16) []byte {
	b := wgpu.ToBytes(indices)
	if pad := len(b) % 4; pad != 0 {
		b = append(b[:len(b):len(b)], make([]byte, 4-pad)...)
	}
	return b
}

// Draw records the indexed draw of the geometry with the
// given pipeline into the render pass.
func (sg *StaticGeometry) Draw(rp *wgpu.RenderPassEncoder, pl *Pipeline) {
	pl.Bind(rp)
	rp.SetBindGroup(0, sg.bindGroup, nil)
	rp.SetVertexBuffer(0, sg.vertices, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(sg.indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	rp.DrawIndexed(uint32(sg.NIndices), 1, 0, 0, 0)
}

// Release releases the bind group and buffers.
func (sg *StaticGeometry) Release() {
	if sg.bindGroup != nil {
		sg.bindGroup.Release()
		sg.bindGroup = nil
	}
	for _, b := range []**wgpu.Buffer{&sg.uniform, &sg.indices, &sg.vertices} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}
}
