// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the config file at path into cfg, overwriting only the
// fields that the file sets. A leading ~ is expanded to the home
// directory. The format is chosen by extension: .toml, .yaml, or .yml.
// Unknown keys are an error.
func Open(cfg *Config, path string) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: expanding %q: %w", path, err)
	}
	f, err := os.Open(fpath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".toml":
		dec := toml.NewDecoder(f)
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q", filepath.Ext(fpath))
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", fpath, err)
	}
	return nil
}

// Save writes cfg to path in the format chosen by its extension.
func Save(cfg *Config, path string) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: expanding %q: %w", path, err)
	}
	var b []byte
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config: unsupported file type %q", filepath.Ext(fpath))
	}
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	return os.WriteFile(fpath, b, 0o644)
}
