// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package objects

import (
	"fmt"

	"github.com/gogpu/naga"
)

// ShaderStage identifies which pipeline stage a shader object feeds.
type ShaderStage int

// Shader stages.
const (
	StageVertex ShaderStage = iota
	StageFragment
)

// ShaderSource is the metadata of a shader object: the WGSL the
// translation frontend produced from the client's source, and its
// compiled SPIR-V once Compile has run.
type ShaderSource struct {
	stage  ShaderStage
	source string
	spirv  []uint32
}

// NewShaderSource creates shader metadata for the given stage and
// translated WGSL source.
func NewShaderSource(stage ShaderStage, source string) *ShaderSource {
	return &ShaderSource{stage: stage, source: source}
}

// Stage returns the pipeline stage the shader feeds.
func (s *ShaderSource) Stage() ShaderStage { return s.stage }

// Source returns the translated WGSL source.
func (s *ShaderSource) Source() string { return s.source }

// Compile translates the WGSL source to SPIR-V words, caching the result
// so repeated links of the same shader compile once.
func (s *ShaderSource) Compile() ([]uint32, error) {
	if s.spirv != nil {
		return s.spirv, nil
	}

	spirvBytes, err := naga.Compile(s.source)
	if err != nil {
		return nil, fmt.Errorf("objects: shader compile failed: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	s.spirv = spirv
	return spirv, nil
}
