// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/quad.wgsl
var quadShaderWGSL string

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// QuadShaderSource returns the WGSL source of the quad shader.
func QuadShaderSource() string {
	return quadShaderWGSL
}

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// Shaders holds the compiled quad shader module.
type Shaders struct {
	device hal.Device
	Module hal.ShaderModule
}

// CompileShaders compiles the quad shader and creates its module on dev.
func CompileShaders(dev Device) (*Shaders, error) {
	if dev.Device == nil {
		return nil, ErrNilDevice
	}
	code, err := compileSPIRV(quadShaderWGSL)
	if err != nil {
		return nil, err
	}
	module, err := dev.Device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "ggui_quad_shader",
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create shader module: %w", err)
	}
	slogger().Debug("gpu: quad shader compiled", "words", len(code))
	return &Shaders{device: dev.Device, Module: module}, nil
}

// Destroy releases the shader module. Safe to call twice.
func (s *Shaders) Destroy() {
	if s.Module != nil {
		s.device.DestroyShaderModule(s.Module)
		s.Module = nil
	}
}
