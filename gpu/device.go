// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical device and its queue.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for device
	Queue *wgpu.Queue
}

// NewDevice returns a new logical device for the given GPU,
// with default limits and no optional features.
func NewDevice(gp *GPU) (*Device, error) {
	d, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "quaddemo device",
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: requesting device: %w", err)
	}
	return &Device{Device: d, Queue: d.GetQueue()}, nil
}

// Release releases the queue and the device.
func (dv *Device) Release() {
	if dv.Queue != nil {
		dv.Queue.Release()
		dv.Queue = nil
	}
	if dv.Device != nil {
		dv.Device.Release()
		dv.Device = nil
	}
}

// NewBufferInit creates a buffer holding a copy of data.
func (dv *Device) NewBufferInit(label string, data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	buf, err := dv.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: data,
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: creating %s buffer: %w", label, err)
	}
	return buf, nil
}
