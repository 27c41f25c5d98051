// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/base/errors"
)

// PipelineOptions are the settable parts of the render pipeline.
type PipelineOptions struct {
	// Format is the color target format, normally the surface format.
	Format wgpu.TextureFormat

	// CullMode is which faces to discard. Front faces wind
	// counter-clockwise.
	CullMode wgpu.CullMode
}

// CullMode returns the WebGPU cull mode for the given config name:
// none, front, or back.
func CullMode(name string) (wgpu.CullMode, error) {
	switch name {
	case "none":
		return wgpu.CullModeNone, nil
	case "front":
		return wgpu.CullModeFront, nil
	case "back":
		return wgpu.CullModeBack, nil
	}
	return wgpu.CullModeBack, fmt.Errorf("gpu: unknown cull mode %q", name)
}

// Pipeline is the single render pipeline, with its uniform bind group
// layout at group 0. It is built once and never recreated.
type Pipeline struct {
	// unique name of this pipeline
	Name string

	// Options it was built with.
	Options PipelineOptions

	bindGroupLayout *wgpu.BindGroupLayout
	layout          *wgpu.PipelineLayout
	renderPipeline  *wgpu.RenderPipeline
}

// UniformBindGroupLayoutDescriptor describes group 0: one uniform
// buffer at binding 0, visible to the vertex stage.
func UniformBindGroupLayoutDescriptor() *wgpu.BindGroupLayoutDescriptor {
	return &wgpu.BindGroupLayoutDescriptor{
		Label: "uniform",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:             wgpu.BufferBindingTypeUniform,
				HasDynamicOffset: false,
				MinBindingSize:   uint64(UniformSize),
			},
		}},
	}
}

// PrimitiveState returns triangle list assembly with counter-clockwise
// front faces and the given cull mode.
func PrimitiveState(cull wgpu.CullMode) wgpu.PrimitiveState {
	return wgpu.PrimitiveState{
		Topology:         wgpu.PrimitiveTopologyTriangleList,
		StripIndexFormat: wgpu.IndexFormatUndefined,
		FrontFace:        wgpu.FrontFaceCCW,
		CullMode:         cull,
	}
}

// RenderPipelineDescriptor returns the descriptor for the quad pipeline
// using the given modules and layout: one sample, no depth or stencil,
// replace blending writing all channels.
func RenderPipelineDescriptor(name string, vs, fs *wgpu.ShaderModule, layout *wgpu.PipelineLayout, opts PipelineOptions) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: EntryPoint,
			Buffers:    []wgpu.VertexBufferLayout{VertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: EntryPoint,
			Targets: []wgpu.ColorTargetState{{
				Format:    opts.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: PrimitiveState(opts.CullMode),
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
		DepthStencil: nil,
	}
}

// NewPipeline builds the bind group layout, pipeline layout and render
// pipeline from the configured shaders.
func NewPipeline(name string, dev *Device, shaders *ShaderSet, opts PipelineOptions) (*Pipeline, error) {
	pl := &Pipeline{Name: name, Options: opts}
	d := dev.Device
	bgl, err := d.CreateBindGroupLayout(UniformBindGroupLayoutDescriptor())
	if errors.Log(err) != nil {
		return nil, err
	}
	pl.bindGroupLayout = bgl
	pl.layout, err = d.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            name,
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if errors.Log(err) != nil {
		pl.Release()
		return nil, err
	}
	pl.renderPipeline, err = d.CreateRenderPipeline(RenderPipelineDescriptor(name, shaders.Vertex.module, shaders.Fragment.module, pl.layout, opts))
	if errors.Log(err) != nil {
		pl.Release()
		return nil, err
	}
	return pl, nil
}

// Bind sets this pipeline on the render pass.
func (pl *Pipeline) Bind(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.renderPipeline)
}

// Release releases the pipeline and its layouts.
func (pl *Pipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.bindGroupLayout != nil {
		pl.bindGroupLayout.Release()
		pl.bindGroupLayout = nil
	}
}
