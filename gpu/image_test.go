// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(2, 1, color.NRGBA{0, 0, 255, 255})
	return img
}

func TestOpenImage(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(f *os.File) error{
		"png":  func(f *os.File) error { return png.Encode(f, testImage()) },
		"bmp":  func(f *os.File) error { return bmp.Encode(f, testImage()) },
		"tiff": func(f *os.File) error { return tiff.Encode(f, testImage(), nil) },
	}
	for format, enc := range encoders {
		path := filepath.Join(dir, "img."+format)
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, enc(f))
		require.NoError(t, f.Close())

		img, got, err := OpenImage(path)
		require.NoError(t, err, format)
		assert.Equal(t, format, got)
		assert.Equal(t, image.Pt(3, 2), img.Bounds().Size())

		rimg := ImageToRGBA(img)
		assert.Equal(t, color.RGBA{255, 0, 0, 255}, rimg.RGBAAt(0, 0), format)
		assert.Equal(t, color.RGBA{0, 0, 255, 255}, rimg.RGBAAt(2, 1), format)
	}
}

func TestOpenImageErrors(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "shader.wgsl")
	require.NoError(t, os.WriteFile(text, []byte("@fragment fn main() {}"), 0o644))
	_, _, err := OpenImage(text)
	assert.ErrorIs(t, err, ErrNotImage)

	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, _, err = OpenImage(empty)
	assert.ErrorIs(t, err, ErrNotImage)

	_, _, err = OpenImage(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImageToRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, rgba, ImageToRGBA(rgba))

	sub := rgba.SubImage(image.Rect(1, 1, 3, 4)).(*image.RGBA)
	sub.Set(1, 1, color.RGBA{9, 8, 7, 255})
	r := ImageToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 3), r.Rect)
	assert.Equal(t, 8, r.Stride)
	assert.Len(t, r.Pix, 2*3*4)
	assert.Equal(t, color.RGBA{9, 8, 7, 255}, r.RGBAAt(0, 0))

	n := ImageToRGBA(testImage())
	assert.Equal(t, 12, n.Stride)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, n.RGBAAt(0, 0))
}
