// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// ContextOptions configure [NewContext].
type ContextOptions struct {
	// PowerPreference for adapter selection.
	PowerPreference wgpu.PowerPreference

	// PresentMode for the swap chain, Fifo by default.
	PresentMode wgpu.PresentMode

	// CullMode for the pipeline.
	CullMode wgpu.CullMode

	// ClearColor is the background color of each frame.
	ClearColor wgpu.Color
}

// DefaultContextOptions returns high performance, vsync'd
// presentation with back face culling and a black background.
func DefaultContextOptions() *ContextOptions {
	return &ContextOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
		PresentMode:     wgpu.PresentModeFifo,
		CullMode:        wgpu.CullModeBack,
		ClearColor:      wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// Context owns every GPU resource used to draw the quad:
// adapter, device, swap chain, pipeline and geometry.
type Context struct {
	GPU      *GPU
	Device   *Device
	Surface  *Surface
	Shaders  *ShaderSet
	Pipeline *Pipeline
	Geometry *StaticGeometry
	Options  ContextOptions
}

// NewContext acquires the adapter and device for the window's surface,
// configures the swap chain at the framebuffer size, and builds the
// pipeline and static geometry. On error, everything created so far
// is released.
func NewContext(inst *wgpu.Instance, win *Window, shaders *ShaderSet, opts *ContextOptions) (*Context, error) {
	if opts == nil {
		opts = DefaultContextOptions()
	}
	c := &Context{Shaders: shaders, Options: *opts}
	surface := win.CreateSurface(inst)
	if err := c.config(inst, surface, win); err != nil {
		if c.Surface == nil {
			surface.Release()
		}
		c.Release()
		return nil, err
	}
	return c, nil
}

func (c *Context) config(inst *wgpu.Instance, surface *wgpu.Surface, win *Window) error {
	var err error
	if c.GPU, err = NewGPU(inst, surface, c.Options.PowerPreference); err != nil {
		return err
	}
	if c.Device, err = NewDevice(c.GPU); err != nil {
		return err
	}
	size := win.FramebufferSize()
	if c.Surface, err = NewSurface(c.GPU, c.Device, surface, size, c.Options.PresentMode); err != nil {
		return err
	}
	if err = c.Shaders.Config(c.Device); err != nil {
		return err
	}
	c.Pipeline, err = NewPipeline("quad", c.Device, c.Shaders, PipelineOptions{
		Format:   c.Surface.Format.Format,
		CullMode: c.Options.CullMode,
	})
	if err != nil {
		return fmt.Errorf("gpu: creating pipeline: %w", err)
	}
	ws := win.Size()
	c.Geometry, err = NewStaticGeometry(c.Device, c.Pipeline, QuadVertices, QuadIndices, NewUniform(ws.X, ws.Y))
	if err != nil {
		return err
	}
	slog.Debug("graphics context ready", "format", c.Surface.Format.String())
	return nil
}

// ClearPassDescriptor returns a render pass that clears the
// given view to color and stores the result.
func ClearPassDescriptor(view *wgpu.TextureView, color wgpu.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		Label: "quad",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: color,
		}},
	}
}

// Draw renders one frame: acquire the swap chain texture, clear it,
// draw the quad, submit and present. If the texture cannot be
// acquired the error wraps [ErrFrameSkipped] and nothing is drawn.
// Errors are returned unlogged; the caller reports them.
func (c *Context) Draw() error {
	view, err := c.Surface.AcquireNextTexture()
	if err != nil {
		return err
	}
	cmd, err := c.Device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return c.Surface.abandonFrame("creating command encoder", err)
	}
	defer cmd.Release()
	rp := cmd.BeginRenderPass(ClearPassDescriptor(view, c.Options.ClearColor))
	c.Geometry.Draw(rp, c.Pipeline)
	err = rp.End()
	rp.Release()
	if err != nil {
		return c.Surface.abandonFrame("ending render pass", err)
	}
	cb, err := cmd.Finish(nil)
	if err != nil {
		return c.Surface.abandonFrame("finishing commands", err)
	}
	defer cb.Release()
	c.Device.Queue.Submit(cb)
	c.Surface.Present()
	return nil
}

// Release tears down all resources in reverse order of creation.
func (c *Context) Release() {
	if c.Geometry != nil {
		c.Geometry.Release()
		c.Geometry = nil
	}
	if c.Pipeline != nil {
		c.Pipeline.Release()
		c.Pipeline = nil
	}
	if c.Shaders != nil {
		c.Shaders.Release()
	}
	if c.Surface != nil {
		c.Surface.Release()
		c.Surface = nil
	}
	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}
	if c.GPU != nil {
		c.GPU.Release()
		c.GPU = nil
	}
}
