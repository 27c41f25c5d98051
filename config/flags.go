// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"io"
)

// Load builds a [Config] from defaults, the file named by the -config
// flag (if any), and then the remaining flags in args, which override
// file values. The result is validated. Usage and parse errors are
// written to output.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := New()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	file := fs.String("config", "", "optional TOML or YAML config file")
	vertex := fs.String("vertex", cfg.Shaders.Vertex, "vertex shader WGSL source")
	fragment := fs.String("fragment", cfg.Shaders.Fragment, "fragment shader WGSL source")
	interval := fs.Duration("interval", cfg.Render.Interval.Std(), "time between redraws")
	level := fs.String("log-level", cfg.Log.Level, "log level: debug, info, warn, or error")
	cull := fs.String("cull", cfg.Render.Cull, "face culling: none, front, or back")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *file != "" {
		if err := Open(cfg, *file); err != nil {
			return nil, err
		}
	}

	set := map[string]func(){
		"vertex":    func() { cfg.Shaders.Vertex = *vertex },
		"fragment":  func() { cfg.Shaders.Fragment = *fragment },
		"interval":  func() { cfg.Render.Interval = Duration(*interval) },
		"log-level": func() { cfg.Log.Level = *level },
		"cull":      func() { cfg.Render.Cull = *cull },
	}
	fs.Visit(func(f *flag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
