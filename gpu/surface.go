// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the swap chain for a window surface: the configured
// surface and the texture acquired for the frame in progress.
type Surface struct {
	// Format has the surface format and framebuffer size.
	Format TextureFormat

	// PresentMode is how frames are queued for display.
	PresentMode wgpu.PresentMode

	surface *wgpu.Surface
	gpu     *GPU
	device  *Device

	curTexture *wgpu.Texture
	curView    *wgpu.TextureView
}

// NewSurface configures the swap chain for the given surface at the
// given framebuffer size, using the surface's preferred format (the
// first one it reports) and RenderAttachment usage.
func NewSurface(gp *GPU, dev *Device, surface *wgpu.Surface, size image.Point, mode wgpu.PresentMode) (*Surface, error) {
	caps := surface.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("gpu: surface is not supported by this adapter")
	}
	sf := &Surface{surface: surface, gpu: gp, device: dev, PresentMode: mode}
	sf.Format.Defaults()
	sf.Format.Format = caps.Formats[0]
	sf.Format.Size = size
	surface.Configure(gp.Adapter, dev.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: mode,
		AlphaMode:   caps.AlphaModes[0],
	})
	return sf, nil
}

// AcquireNextTexture returns a view of the next swap chain texture.
// Any failure is returned wrapping [ErrFrameSkipped].
// [Surface.Present] must be called after rendering to the view.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	}
	sf.curTexture = tex
	sf.curView = view
	return view, nil
}

// Present presents the acquired texture and releases it.
func (sf *Surface) Present() {
	if sf.curTexture == nil {
		return
	}
	sf.surface.Present()
	sf.releaseFrame()
}

// releaseFrame releases the current frame's texture and view
// without presenting, for frames abandoned partway.
func (sf *Surface) releaseFrame() {
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// abandonFrame releases the frame in progress after the given
// operation failed, returning err wrapped with the operation.
func (sf *Surface) abandonFrame(op string, err error) error {
	sf.releaseFrame()
	return fmt.Errorf("gpu: %s: %w", op, err)
}

// Release releases the surface and any frame in progress.
func (sf *Surface) Release() {
	sf.releaseFrame()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
