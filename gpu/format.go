// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a Texture
// or of the surface.
type TextureFormat struct {
	// Size of image
	Size image.Point

	// Texture format: RGBA8UnormSrgb is default
	Format wgpu.TextureFormat

	// number of samples, default 1
	Samples int

	// number of layers, default 1
	Layers int
}

func (im *TextureFormat) Defaults() {
	im.Format = wgpu.TextureFormatRGBA8UnormSrgb
	im.Samples = 1
	im.Layers = 1
}

// String returns human-readable version of format
func (im *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %v  MultiSample: %d  Layers: %d", im.Size, im.Format, im.Samples, im.Layers)
}

// Extent3D returns the size as a WebGPU extent with Layers as depth.
func (im *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(im.Size.X),
		Height:             uint32(im.Size.Y),
		DepthOrArrayLayers: uint32(max(im.Layers, 1)),
	}
}

// Bounds returns the rectangle from the origin to Size.
func (im *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: im.Size}
}

// BytesPerPixel returns number of bytes required to represent
// one Pixel (in Host memory), or 0 for formats not in
// [TextureFormatSizes].
func (im *TextureFormat) BytesPerPixel() int {
	return TextureFormatSizes[im.Format]
}

// TextureFormatSizes gives size of known WebGPU
// TextureFormats in bytes
var TextureFormatSizes = map[wgpu.TextureFormat]int{
	wgpu.TextureFormatR8Unorm:        1,
	wgpu.TextureFormatRG8Unorm:       2,
	wgpu.TextureFormatR16Float:       2,
	wgpu.TextureFormatR32Float:       4,
	wgpu.TextureFormatR32Uint:        4,
	wgpu.TextureFormatRGBA8Unorm:     4,
	wgpu.TextureFormatRGBA8UnormSrgb: 4,
	wgpu.TextureFormatBGRA8Unorm:     4,
	wgpu.TextureFormatBGRA8UnormSrgb: 4,
	wgpu.TextureFormatRG32Float:      8,
	wgpu.TextureFormatRGBA16Float:    8,
	wgpu.TextureFormatRGBA32Float:    16,
	wgpu.TextureFormatDepth32Float:   4,
}
