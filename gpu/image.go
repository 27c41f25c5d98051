// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// OpenImage opens and decodes the image file at path, returning the
// image and its format name. The file type is sniffed from its header
// first, and files that are not images return [ErrNotImage].
func OpenImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, "", err
	}
	if !filetype.IsImage(head[:n]) {
		return nil, "", fmt.Errorf("%w: %s", ErrNotImage, path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("gpu: decoding %s: %w", path, err)
	}
	return img, format, nil
}

// ImageToRGBA returns img as an *image.RGBA with tightly packed rows
// and its origin at (0, 0), converting or copying as needed.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok && rimg.Rect.Min == (image.Point{}) && rimg.Stride == 4*rimg.Rect.Dx() {
		return rimg
	}
	rimg := clone.AsRGBA(img)
	if rimg.Rect.Min == (image.Point{}) {
		return rimg
	}
	return &image.RGBA{Pix: rimg.Pix, Stride: rimg.Stride, Rect: image.Rectangle{Max: rimg.Rect.Size()}}
}
