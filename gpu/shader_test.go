// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertexPath   = "../shaders/vertex.wgsl"
	fragmentPath = "../shaders/fragment.wgsl"
)

// skipUnimplemented skips when the compiler reports a feature
// it does not support yet.
func skipUnimplemented(t *testing.T, err error) {
	t.Helper()
	if err != nil && (strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported")) {
		t.Skipf("compiler limitation: %v", err)
	}
}

func spirvBytes(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*4:], w)
	}
	return b
}

func TestSPIRVWords(t *testing.T) {
	words, err := SPIRVWords(spirvBytes(SPIRVMagic, TargetSPIRVVersion, 0, 8, 0))
	require.NoError(t, err)
	assert.Equal(t, []uint32{SPIRVMagic, TargetSPIRVVersion, 0, 8, 0}, words)

	_, err = SPIRVWords(nil)
	assert.ErrorIs(t, err, ErrBadSPIRV)
	_, err = SPIRVWords(make([]byte, 21))
	assert.ErrorIs(t, err, ErrBadSPIRV)
	_, err = SPIRVWords(spirvBytes(SPIRVMagic, 0))
	assert.ErrorIs(t, err, ErrBadSPIRV)
	_, err = SPIRVWords(spirvBytes(0xdeadbeef, TargetSPIRVVersion, 0, 8, 0))
	assert.ErrorIs(t, err, ErrBadSPIRV)
}

func TestSPIRVVersionString(t *testing.T) {
	assert.Equal(t, "1.3", SPIRVVersionString(TargetSPIRVVersion))
	assert.Equal(t, "1.5", SPIRVVersionString(0x00010500))
}

func TestCompileShaderSet(t *testing.T) {
	ss, err := CompileShaderSet(vertexPath, fragmentPath)
	skipUnimplemented(t, err)
	require.NoError(t, err)

	for _, sh := range []*Shader{ss.Vertex, ss.Fragment} {
		assert.Equal(t, "main", sh.Entry)
		assert.Equal(t, SPIRVMagic, sh.SPIRV[0])
		assert.Equal(t, sh.SPIRV[1], sh.Version)
		if sh.Version == TargetSPIRVVersion {
			assert.Empty(t, sh.Warnings)
		} else {
			assert.Len(t, sh.Warnings, 1)
		}
	}
	assert.Equal(t, VertexShader, ss.Vertex.Type)
	assert.Equal(t, FragmentShader, ss.Fragment.Type)
	assert.Equal(t, vertexPath, ss.Vertex.Name)
}

func TestShaderModuleDescriptor(t *testing.T) {
	sh := &Shader{Name: "quad.wgsl", Type: VertexShader, SPIRV: []uint32{SPIRVMagic, TargetSPIRVVersion, 0, 8, 0}}
	desc := sh.ShaderModuleDescriptor()
	assert.Equal(t, "quad.wgsl", desc.Label)
	require.NotNil(t, desc.SPIRVDescriptor)
	code := desc.SPIRVDescriptor.Code
	assert.Len(t, code, 4*len(sh.SPIRV))
	assert.Equal(t, []byte{0x03, 0x02, 0x23, 0x07}, code[:4])
	assert.Equal(t, spirvBytes(sh.SPIRV...), code)

	ss, err := CompileShaderSet(vertexPath, fragmentPath)
	skipUnimplemented(t, err)
	require.NoError(t, err)
	for _, sh := range []*Shader{ss.Vertex, ss.Fragment} {
		desc := sh.ShaderModuleDescriptor()
		assert.Equal(t, sh.Name, desc.Label)
		assert.Len(t, desc.SPIRVDescriptor.Code, 4*len(sh.SPIRV))
		assert.Equal(t, SPIRVMagic, binary.LittleEndian.Uint32(desc.SPIRVDescriptor.Code))
	}
}

func TestCompileShaderErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wgsl")
	_, err := CompileShaderSet(missing, fragmentPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)

	_, err = CompileShaderSet(vertexPath, missing)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.wgsl")
	require.NoError(t, os.WriteFile(bad, []byte("fn main( {"), 0o644))
	_, err = CompileShaderFile(bad, FragmentShader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	inc := filepath.Join(t.TempDir(), "inc.wgsl")
	require.NoError(t, os.WriteFile(inc, []byte("#include \"nowhere.wgsl\"\n"), 0o644))
	_, err = CompileShaderFile(inc, VertexShader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere.wgsl")
}

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "ShaderTypes(7)", ShaderTypes(7).String())
}

func TestIncludeFS(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/common.wgsl": {Data: []byte("const a = 1;\r\nconst b = 2;")},
		"top.wgsl":        {Data: []byte("const c = 3;")},
	}
	code, err := IncludeFS(fsys, "lib", "#include \"common.wgsl\"\n#include \"top.wgsl\"\nfn f() {}")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`// #include "common.wgsl"`,
		"const a = 1;",
		"const b = 2;",
		`// #include "top.wgsl"`,
		"const c = 3;",
		"fn f() {}",
	}, "\n"), code)

	code, err = IncludeFS(fsys, ".", "#include \"gone.wgsl\"\n#include \"bad\nfn f() {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.wgsl")
	assert.Contains(t, err.Error(), "no final quote")
	assert.Equal(t, "#include \"gone.wgsl\"\n#include \"bad\nfn f() {}", code)
}
