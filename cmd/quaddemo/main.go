// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quaddemo opens a window and redraws a colored quad
// on a fixed interval until the window is closed.
package main

import (
	"context"
	"flag"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/quaddemo/quaddemo/base/errors"
	"github.com/quaddemo/quaddemo/base/logx"
	"github.com/quaddemo/quaddemo/config"
	"github.com/quaddemo/quaddemo/gpu"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// run is the whole program. Shaders are compiled before any window
// or GPU resource is created, so bad shader paths fail fast.
func run(args []string) error {
	cfg, err := config.Load("quaddemo", args, os.Stderr)
	if err != nil {
		return err
	}
	logx.UserLevel = errors.Must1(logx.ParseLevel(cfg.Log.Level)) // validated by Load
	logx.SetDefaultLogger(os.Stderr)

	cull, err := gpu.CullMode(cfg.Render.Cull)
	if err != nil {
		return err
	}
	pref, err := gpu.PowerPreference(cfg.Render.PowerPreference)
	if err != nil {
		return err
	}

	shaders, err := gpu.CompileShaderSet(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	win, err := gpu.NewWindow(cfg.Window.Title, image.Pt(cfg.Window.Width, cfg.Window.Height))
	if err != nil {
		return err
	}
	defer win.Destroy()

	inst := wgpu.CreateInstance(nil)
	defer inst.Release()

	opts := gpu.DefaultContextOptions()
	opts.CullMode = cull
	opts.PowerPreference = pref
	gc, err := gpu.NewContext(inst, win, shaders, opts)
	if err != nil {
		return err
	}
	defer gc.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fl := gpu.NewFrameLoop(win, gc, cfg.Render.Interval.Std())
	err = fl.Run(ctx)
	fl.LogStats()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
