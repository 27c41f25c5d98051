// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for quaddemo,
// which are filled from `default:` struct tags, an optional TOML or
// YAML file, and command line flags, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/quaddemo/quaddemo/base/errors"
	"github.com/quaddemo/quaddemo/base/logx"
)

// Config is the main config struct that contains all of the
// configuration options for quaddemo.
type Config struct {

	// Window configures the native window.
	Window Window `toml:"window" yaml:"window"`

	// Shaders holds the paths of the WGSL sources.
	Shaders Shaders `toml:"shaders" yaml:"shaders"`

	// Render configures the pipeline and the frame loop.
	Render Render `toml:"render" yaml:"render"`

	// Log configures logging.
	Log Log `toml:"log" yaml:"log"`
}

// Window configures the native window.
type Window struct {

	// the window title
	Title string `toml:"title" yaml:"title" default:"Game"`

	// the window width in screen coordinates
	Width int `toml:"width" yaml:"width" default:"1280"`

	// the window height in screen coordinates
	Height int `toml:"height" yaml:"height" default:"720"`
}

// Shaders holds the paths of the shader sources,
// relative to the working directory.
type Shaders struct {

	// the vertex stage WGSL source
	Vertex string `toml:"vertex" yaml:"vertex" default:"shaders/vertex.wgsl"`

	// the fragment stage WGSL source
	Fragment string `toml:"fragment" yaml:"fragment" default:"shaders/fragment.wgsl"`
}

// Render configures the pipeline and the frame loop.
type Render struct {

	// the time between redraws
	Interval Duration `toml:"interval" yaml:"interval" default:"250ms"`

	// which faces to cull: none, front, or back
	Cull string `toml:"cull" yaml:"cull" default:"back"`

	// the adapter power preference: low-power or high-performance
	PowerPreference string `toml:"power-preference" yaml:"power-preference" default:"high-performance"`
}

// Log configures logging.
type Log struct {

	// the minimum level to log: debug, info, warn, or error
	Level string `toml:"level" yaml:"level" default:"info"`
}

// New returns a new [Config] set from its default tags.
func New() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Validate returns an error describing every invalid setting in cfg.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Shaders.Vertex == "" || cfg.Shaders.Fragment == "" {
		errs = append(errs, errors.New("both shader paths must be set"))
	}
	if cfg.Render.Interval <= 0 {
		errs = append(errs, fmt.Errorf("render interval must be positive, got %v", cfg.Render.Interval))
	}
	switch cfg.Render.Cull {
	case "none", "front", "back":
	default:
		errs = append(errs, fmt.Errorf("unknown cull mode %q", cfg.Render.Cull))
	}
	switch cfg.Render.PowerPreference {
	case "low-power", "high-performance":
	default:
		errs = append(errs, fmt.Errorf("unknown power preference %q", cfg.Render.PowerPreference))
	}
	if _, err := logx.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Duration is a [time.Duration] that reads and writes
// as a string such as "250ms" in config files.
type Duration time.Duration

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	td, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}
