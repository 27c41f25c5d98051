// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These cases all fail before a window is created,
// so they need no display.

func TestRunMissingShader(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wgsl")
	err := run([]string{"-vertex", missing, "-fragment", "../../shaders/fragment.wgsl"})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}

func TestRunBadConfig(t *testing.T) {
	assert.Error(t, run([]string{"-cull", "sideways"}))
	assert.Error(t, run([]string{"-interval", "-1s"}))
	assert.Error(t, run([]string{"-log-level", "chatty"}))
	assert.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "none.toml")}))
}

func TestRunHelp(t *testing.T) {
	assert.ErrorIs(t, run([]string{"-h"}), flag.ErrHelp)
}
