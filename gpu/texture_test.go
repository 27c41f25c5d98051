// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordWriter records texture uploads and returns err.
type recordWriter struct {
	err    error
	dst    []*wgpu.ImageCopyTexture
	layout []*wgpu.TextureDataLayout
	size   []*wgpu.Extent3D
	data   [][]byte
}

func (w *recordWriter) WriteTexture(dst *wgpu.ImageCopyTexture, data []byte, layout *wgpu.TextureDataLayout, size *wgpu.Extent3D) error {
	w.dst = append(w.dst, dst)
	w.data = append(w.data, data)
	w.layout = append(w.layout, layout)
	w.size = append(w.size, size)
	return w.err
}

// testTexture returns a texture with no device, writing to a
// recordWriter, for exercising everything but device creation.
func testTexture(w, h int) *Texture {
	tx := &Texture{Name: "test", queue: &recordWriter{}}
	tx.Format.Defaults()
	tx.Format.Size = image.Pt(w, h)
	return tx
}

func TestTexelSize(t *testing.T) {
	assert.Equal(t, math32.Vec2(0.5, 0.25), TexelSize(2, 4))
	assert.Equal(t, math32.Vec2(1.0/1280, 1.0/720), TexelSize(1280, 720))

	tx := testTexture(16, 8)
	assert.Equal(t, image.Pt(16, 8), tx.Size())
	assert.Equal(t, math32.Vec2(1.0/16, 1.0/8), tx.TexelSize())
}

func TestTextureFormat(t *testing.T) {
	tf := &TextureFormat{}
	tf.Defaults()
	tf.Size = image.Pt(4, 3)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, tf.Format)
	assert.Equal(t, 4, tf.BytesPerPixel())
	assert.Equal(t, wgpu.Extent3D{Width: 4, Height: 3, DepthOrArrayLayers: 1}, tf.Extent3D())
	assert.Equal(t, image.Rect(0, 0, 4, 3), tf.Bounds())

	tf.Format = wgpu.TextureFormatRGBA32Float
	assert.Equal(t, 16, tf.BytesPerPixel())
}

func TestWritePartiallyOutOfBounds(t *testing.T) {
	tx := testTexture(8, 8)
	data := make([]byte, 4*8*8)
	regions := []struct{ origin, size image.Point }{
		{image.Pt(-1, 0), image.Pt(2, 2)},
		{image.Pt(0, -1), image.Pt(2, 2)},
		{image.Pt(7, 0), image.Pt(2, 1)},
		{image.Pt(0, 7), image.Pt(1, 2)},
		{image.Pt(0, 0), image.Pt(9, 8)},
		{image.Pt(0, 0), image.Pt(0, 4)},
		{image.Pt(0, 0), image.Pt(4, -1)},
	}
	for _, r := range regions {
		err := tx.WritePartially(r.origin, r.size, data)
		assert.ErrorIs(t, err, ErrRegionOutOfBounds, "%v %v", r.origin, r.size)
	}
}

func TestWriteShortData(t *testing.T) {
	tx := testTexture(8, 8)
	assert.ErrorIs(t, tx.WriteAll(make([]byte, 4*8*8-1)), ErrShortData)
	assert.ErrorIs(t, tx.WritePartially(image.Pt(2, 2), image.Pt(3, 2), make([]byte, 23)), ErrShortData)
}

func TestWritePartially(t *testing.T) {
	tx := testTexture(8, 8)
	rw := tx.queue.(*recordWriter)
	data := make([]byte, 4*3*2)
	require.NoError(t, tx.WritePartially(image.Pt(5, 6), image.Pt(3, 2), data))
	require.Len(t, rw.dst, 1)
	assert.Equal(t, wgpu.Origin3D{X: 5, Y: 6}, rw.dst[0].Origin)
	assert.Equal(t, uint32(12), rw.layout[0].BytesPerRow)
	assert.Equal(t, uint32(2), rw.layout[0].RowsPerImage)
	assert.Equal(t, wgpu.Extent3D{Width: 3, Height: 2, DepthOrArrayLayers: 1}, *rw.size[0])

	require.NoError(t, tx.WriteAll(make([]byte, 4*8*8)))
	assert.Equal(t, wgpu.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 1}, *rw.size[1])
}

func TestWritePartiallyQueueError(t *testing.T) {
	tx := testTexture(8, 8)
	rw := tx.queue.(*recordWriter)
	rw.err = fmt.Errorf("device lost")
	err := tx.WritePartially(image.Pt(0, 0), image.Pt(1, 1), make([]byte, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, rw.err)
	assert.Contains(t, err.Error(), `writing texture "test"`)

	// rejected regions never reach the queue
	rw.dst = nil
	assert.ErrorIs(t, tx.WriteAll(nil), ErrShortData)
	assert.Empty(t, rw.dst)
}

func TestCheckRegion(t *testing.T) {
	tx := testTexture(8, 8)
	bpr, err := tx.checkRegion(image.Pt(0, 0), image.Pt(8, 8), 256)
	require.NoError(t, err)
	assert.Equal(t, 32, bpr)

	// rows are packed to the region width
	bpr, err = tx.checkRegion(image.Pt(5, 6), image.Pt(3, 2), 24)
	require.NoError(t, err)
	assert.Equal(t, 12, bpr)

	tx.Format.Format = wgpu.TextureFormatUndefined
	_, err = tx.checkRegion(image.Pt(0, 0), image.Pt(1, 1), 4)
	assert.Error(t, err)
}
