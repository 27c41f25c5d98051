// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies.
// All of it must run on the main OS thread.

// Window is a fixed size glfw window with no client API,
// rendered to through a WebGPU surface.
type Window struct {
	// Title of the window
	Title string

	size image.Point
	glw  *glfw.Window
}

// NewWindow initializes glfw and opens a non-resizable window of the
// given size. [Window.Destroy] must be called to terminate glfw.
func NewWindow(title string, size image.Point) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gpu: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gpu: creating window: %w", err)
	}
	return &Window{Title: title, size: size, glw: glw}, nil
}

// CreateSurface returns a new WebGPU surface for the window.
func (w *Window) CreateSurface(inst *wgpu.Instance) *wgpu.Surface {
	return inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.glw))
}

// Size returns the window size in screen coordinates, which is
// also the extent of the pixel space the quad is drawn in.
func (w *Window) Size() image.Point {
	return w.size
}

// FramebufferSize returns the size of the window's framebuffer in pixels,
// which can differ from the window size on high DPI displays.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Point{x, y}
}

// ShouldClose reports whether the user has asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// WaitEventsTimeout processes window events, blocking until
// at least one arrives or the timeout passes.
func (w *Window) WaitEventsTimeout(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// Destroy closes the window and terminates glfw.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}
