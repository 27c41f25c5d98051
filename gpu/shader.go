// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
)

// ShaderTypes is a list of GPU shader types
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

const (
	// SPIRVMagic is the first word of every SPIR-V module.
	SPIRVMagic uint32 = 0x07230203

	// TargetSPIRVVersion is the SPIR-V version shaders are expected
	// to compile to: 1.3. Other versions produce a warning.
	TargetSPIRVVersion uint32 = 0x00010300

	// EntryPoint is the entry function name for every stage.
	EntryPoint = "main"
)

// SPIRVVersionString returns a SPIR-V header version word as "major.minor".
func SPIRVVersionString(v uint32) string {
	return fmt.Sprintf("%d.%d", (v>>16)&0xff, (v>>8)&0xff)
}

// Shader is one compiled shader stage.
type Shader struct {
	// Name is the source path, used as the module label.
	Name string

	// Type is the pipeline stage.
	Type ShaderTypes

	// Entry is the entry function name.
	Entry string

	// SPIRV is the compiled module as little-endian words.
	SPIRV []uint32

	// Version is the SPIR-V version from the module header.
	Version uint32

	// Warnings from compilation, including a version mismatch.
	Warnings []string

	module *wgpu.ShaderModule
}

// CompileShaderFile reads the WGSL file at path, expands includes
// relative to its directory, and compiles it to SPIR-V.
// Warnings and a summary are logged at debug level.
func CompileShaderFile(path string, typ ShaderTypes) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gpu: reading %s shader: %w", typ, err)
	}
	dir := filepath.Dir(path)
	code, err := IncludeFS(os.DirFS(dir), ".", string(src))
	if err != nil {
		return nil, fmt.Errorf("gpu: %s: %w", path, err)
	}
	sh, err := CompileShader(path, typ, code)
	if err != nil {
		return nil, fmt.Errorf("gpu: %s: %w", path, err)
	}
	for _, w := range sh.Warnings {
		slog.Debug("shader compile warning", "file", path, "warning", w)
	}
	slog.Debug("compiled shader", "file", path, "type", typ, "words", len(sh.SPIRV), "spirv", SPIRVVersionString(sh.Version))
	return sh, nil
}

// CompileShader compiles WGSL source code to SPIR-V,
// validating the module header.
func CompileShader(name string, typ ShaderTypes, code string) (*Shader, error) {
	b, err := naga.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("compiling %s shader: %w", typ, err)
	}
	words, err := SPIRVWords(b)
	if err != nil {
		return nil, err
	}
	sh := &Shader{Name: name, Type: typ, Entry: EntryPoint, SPIRV: words, Version: words[1]}
	if sh.Version != TargetSPIRVVersion {
		sh.Warnings = append(sh.Warnings, fmt.Sprintf("SPIR-V version %s differs from target %s",
			SPIRVVersionString(sh.Version), SPIRVVersionString(TargetSPIRVVersion)))
	}
	return sh, nil
}

// SPIRVWords converts a little-endian SPIR-V binary to words,
// checking its length and magic number.
func SPIRVWords(b []byte) ([]uint32, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrBadSPIRV)
	}
	if len(b)%4 != 0 || len(b) < 20 {
		return nil, fmt.Errorf("%w: length %d", ErrBadSPIRV, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	if words[0] != SPIRVMagic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrBadSPIRV, words[0])
	}
	return words, nil
}

// ShaderModuleDescriptor returns the descriptor for a shader module
// holding the SPIR-V binary, labeled with the source name.
func (sh *Shader) ShaderModuleDescriptor() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: sh.Name,
		SPIRVDescriptor: &wgpu.ShaderModuleSPIRVDescriptor{
			Code: wgpu.ToBytes(sh.SPIRV),
		},
	}
}

// Config creates the WebGPU shader module for this shader.
func (sh *Shader) Config(dev *Device) error {
	sh.Release()
	mod, err := dev.Device.CreateShaderModule(sh.ShaderModuleDescriptor())
	if err != nil {
		return fmt.Errorf("gpu: creating %s shader module %s: %w", sh.Type, sh.Name, err)
	}
	sh.module = mod
	return nil
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}

// ShaderSet is the vertex and fragment shader pair for the pipeline.
type ShaderSet struct {
	Vertex   *Shader
	Fragment *Shader
}

// CompileShaderSet compiles the vertex and fragment WGSL files.
// Any error is wrapped with the offending file path.
func CompileShaderSet(vertexPath, fragmentPath string) (*ShaderSet, error) {
	vs, err := CompileShaderFile(vertexPath, VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := CompileShaderFile(fragmentPath, FragmentShader)
	if err != nil {
		return nil, err
	}
	return &ShaderSet{Vertex: vs, Fragment: fs}, nil
}

// Config creates the shader modules for both stages.
func (ss *ShaderSet) Config(dev *Device) error {
	if err := ss.Vertex.Config(dev); err != nil {
		return err
	}
	if err := ss.Fragment.Config(dev); err != nil {
		ss.Vertex.Release()
		return err
	}
	return nil
}

// Release releases both shader modules.
func (ss *ShaderSet) Release() {
	ss.Vertex.Release()
	ss.Fragment.Release()
}
