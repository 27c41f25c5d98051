// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu renders a fixed, indexed quad to a window surface using
// WebGPU. It provides the graphics context (adapter, device, swap chain),
// WGSL shader compilation to SPIR-V, a single render pipeline, static
// geometry buffers, a texture utility, and a fixed-interval frame loop.
package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/base/errors"
)

var (
	// ErrFrameSkipped is returned when the swap chain could not provide
	// a texture for the current frame. The frame is dropped.
	ErrFrameSkipped = errors.New("gpu: frame skipped")

	// ErrNoAdapter is returned when no adapter compatible with the
	// surface is available.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrRegionOutOfBounds is returned for texture writes whose region
	// does not fit within the texture extent.
	ErrRegionOutOfBounds = errors.New("gpu: region out of bounds")

	// ErrShortData is returned when a texture write is given fewer bytes
	// than the region requires.
	ErrShortData = errors.New("gpu: data too short")

	// ErrNotImage is returned when a file is not a supported image.
	ErrNotImage = errors.New("gpu: not an image")

	// ErrBadSPIRV is returned when compiler output is not a valid
	// SPIR-V module.
	ErrBadSPIRV = errors.New("gpu: invalid SPIR-V")
)

// GPU represents the WebGPU adapter selected for rendering
// to a particular surface.
type GPU struct {
	// Instance is the WebGPU instance the adapter came from.
	Instance *wgpu.Instance

	// Adapter is the physical device.
	Adapter *wgpu.Adapter

	// PowerPreference used when requesting the adapter.
	PowerPreference wgpu.PowerPreference
}

// NewGPU requests an adapter compatible with the given surface,
// using the given power preference. There is no fallback adapter
// policy: failure is returned as [ErrNoAdapter].
func NewGPU(inst *wgpu.Instance, surface *wgpu.Surface, pref wgpu.PowerPreference) (*GPU, error) {
	a, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   pref,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if a == nil {
		return nil, ErrNoAdapter
	}
	return &GPU{Instance: inst, Adapter: a, PowerPreference: pref}, nil
}

// Release releases the adapter.
func (gp *GPU) Release() {
	if gp.Adapter == nil {
		return
	}
	gp.Adapter.Release()
	gp.Adapter = nil
}

// PowerPreference returns the WebGPU power preference for the
// given config name: low-power or high-performance.
func PowerPreference(name string) (wgpu.PowerPreference, error) {
	switch name {
	case "low-power":
		return wgpu.PowerPreferenceLowPower, nil
	case "high-performance":
		return wgpu.PowerPreferenceHighPerformance, nil
	}
	return wgpu.PowerPreferenceHighPerformance, fmt.Errorf("gpu: unknown power preference %q", name)
}
