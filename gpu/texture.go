// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/base/errors"
	"github.com/quaddemo/quaddemo/math32"
)

// Texture represents a WebGPU Texture with a fixed 2D extent,
// which can be written in full or in part from host memory.
type Texture struct {

	// Name of the texture, used as its label.
	// Is auto-set to filename if loaded from a file.
	Name string

	// Format & size of texture
	Format TextureFormat

	// Dimension of the texture, 2D by default.
	Dimension wgpu.TextureDimension

	// Usage flags; CopyDst is always included.
	Usage wgpu.TextureUsage

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// keep track of device for creation
	device *Device

	// queue receives uploads, the device queue by default
	queue textureWriter
}

// textureWriter uploads texel data; [*wgpu.Queue] implements it.
type textureWriter interface {
	WriteTexture(dst *wgpu.ImageCopyTexture, data []byte, layout *wgpu.TextureDataLayout, size *wgpu.Extent3D) error
}

// NewEmptyTexture creates a texture of the given format, dimension,
// usage and size, with undefined contents.
func NewEmptyTexture(dev *Device, format wgpu.TextureFormat, dim wgpu.TextureDimension, usage wgpu.TextureUsage, size image.Point) (*Texture, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("gpu: texture size must be positive, got %v", size)
	}
	tx := &Texture{device: dev, queue: dev.Queue, Dimension: dim, Usage: usage | wgpu.TextureUsageCopyDst}
	tx.Format.Defaults()
	tx.Format.Format = format
	tx.Format.Size = size
	if err := tx.createTexture(); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTextureFromImage creates a texture the size of img and uploads
// its pixels, converted to RGBA. The format must use 4 bytes per pixel.
func NewTextureFromImage(dev *Device, img image.Image, format wgpu.TextureFormat, dim wgpu.TextureDimension, usage wgpu.TextureUsage) (*Texture, error) {
	if TextureFormatSizes[format] != 4 {
		return nil, fmt.Errorf("gpu: format %v cannot hold RGBA8 image data", format)
	}
	rimg := ImageToRGBA(img)
	tx, err := NewEmptyTexture(dev, format, dim, usage, rimg.Rect.Size())
	if err != nil {
		return nil, err
	}
	if err := tx.WriteAll(rimg.Pix); err != nil {
		tx.Release()
		return nil, err
	}
	return tx, nil
}

// createTexture creates the texture based on current settings.
func (tx *Texture) createTexture() error {
	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(max(tx.Format.Samples, 1)),
		Dimension:     tx.Dimension,
		Format:        tx.Format.Format,
		Usage:         tx.Usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	return nil
}

// Size returns the texture extent in texels.
func (tx *Texture) Size() image.Point {
	return tx.Format.Size
}

// TexelSize returns the size of one texel in normalized
// texture coordinates.
func (tx *Texture) TexelSize() math32.Vector2 {
	return TexelSize(tx.Format.Size.X, tx.Format.Size.Y)
}

// TexelSize returns (1/width, 1/height).
func TexelSize(width, height int) math32.Vector2 {
	return math32.Vec2(1/float32(width), 1/float32(height))
}

// CreateView returns a new view of the texture. A nil desc
// gives the default view of the whole texture.
func (tx *Texture) CreateView(desc *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error) {
	return tx.texture.CreateView(desc)
}

// WriteAll uploads data covering the whole extent.
// Rows are tightly packed: data must hold at least
// BytesPerPixel * width * height bytes.
func (tx *Texture) WriteAll(data []byte) error {
	return tx.WritePartially(image.Point{}, tx.Format.Size, data)
}

// WritePartially uploads data to the rectangle at origin with the given
// size. Rows of data are tightly packed to the region width. The region
// must lie within the texture extent ([ErrRegionOutOfBounds]) and data
// must cover it ([ErrShortData]).
func (tx *Texture) WritePartially(origin, size image.Point, data []byte) error {
	bpr, err := tx.checkRegion(origin, size, len(data))
	if err != nil {
		return err
	}
	err = tx.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: uint32(origin.X), Y: uint32(origin.Y), Z: 0},
		},
		data,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(bpr),
			RowsPerImage: uint32(size.Y),
		},
		&wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
	)
	if err != nil {
		return fmt.Errorf("gpu: writing texture %q: %w", tx.Name, err)
	}
	return nil
}

// checkRegion validates a write region against the texture extent and
// the data length, returning the bytes per row of the packed data.
func (tx *Texture) checkRegion(origin, size image.Point, n int) (int, error) {
	bpp := tx.Format.BytesPerPixel()
	if bpp == 0 {
		return 0, fmt.Errorf("gpu: texture %q: unsupported format %v", tx.Name, tx.Format.Format)
	}
	region := image.Rectangle{Min: origin, Max: origin.Add(size)}
	if size.X <= 0 || size.Y <= 0 || origin.X < 0 || origin.Y < 0 || !region.In(tx.Format.Bounds()) {
		return 0, fmt.Errorf("%w: texture %q: region %v within %v", ErrRegionOutOfBounds, tx.Name, region, tx.Format.Size)
	}
	bpr := bpp * size.X
	if need := bpr * size.Y; n < need {
		return 0, fmt.Errorf("%w: texture %q: have %d bytes, need %d", ErrShortData, tx.Name, n, need)
	}
	return bpr, nil
}

// Release frees the device texture.
func (tx *Texture) Release() {
	if tx.texture == nil {
		return
	}
	tx.texture.Release()
	tx.texture = nil
}
