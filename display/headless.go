// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import "github.com/gogpu/gputypes"

// headlessProvider enumerates a fixed capability table without touching
// a GPU device. It backs the "headless" registry entry so a display can
// always initialize, e.g. under tests or in CI.
type headlessProvider struct{}

// EnumerateConfigs returns the built-in capability table.
func (headlessProvider) EnumerateConfigs() ([]*Config, error) {
	return BaseConfigs(), nil
}

// BaseConfigs returns the capability profiles every backend is expected
// to support: RGBA8 and BGRA8 color, with and without depth/stencil, at
// 1x and 4x multisampling. The caller owns the returned records.
func BaseConfigs() []*Config {
	type variant struct {
		depth   int32
		stencil int32
		format  gputypes.TextureFormat
	}
	depths := []variant{
		{0, 0, gputypes.TextureFormatUndefined},
		{24, 8, gputypes.TextureFormatDepth24PlusStencil8},
	}
	colors := []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatBGRA8Unorm,
	}
	samples := []int32{1, 4}

	var configs []*Config
	id := int32(1)
	for _, color := range colors {
		for _, d := range depths {
			for _, s := range samples {
				configs = append(configs, &Config{
					ID:          id,
					BufferSize:  32,
					RedSize:     8,
					GreenSize:   8,
					BlueSize:    8,
					AlphaSize:   8,
					DepthSize:   d.depth,
					StencilSize: d.stencil,
					SampleCount: s,
					SurfaceType: SurfaceTypeWindow | SurfaceTypePbuffer,
					Caveat:      CaveatNone,
					ColorFormat: color,
					DepthFormat: d.format,
				})
				id++
			}
		}
	}
	return configs
}
