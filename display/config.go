// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import "github.com/gogpu/gputypes"

// SurfaceTypeMask is a bitmask of the surface kinds a config can render
// to.
type SurfaceTypeMask uint32

// Surface type bits.
const (
	SurfaceTypeWindow SurfaceTypeMask = 1 << iota
	SurfaceTypePbuffer
	SurfaceTypePixmap
)

// Caveat marks configs with non-obvious performance or conformance
// behavior. Caveat-free configs sort first.
type Caveat int32

// Config caveats, in sort order.
const (
	CaveatNone Caveat = iota
	CaveatSlow
	CaveatNonConformant
)

// DontCare is the Criteria sentinel for attributes the caller does not
// constrain.
const DontCare int32 = -1

// Config is one immutable display capability profile. Configs are
// created by a ConfigProvider during Display.Initialize and never change
// afterwards; the *Config pointer itself is the handle a frontend passes
// around.
type Config struct {
	// ID is the stable config identifier, unique within a display.
	ID int32

	// Color component sizes in bits.
	BufferSize int32
	RedSize    int32
	GreenSize  int32
	BlueSize   int32
	AlphaSize  int32

	// Ancillary buffer sizes in bits.
	DepthSize   int32
	StencilSize int32

	// SampleCount is the number of multisample samples (1 = none).
	SampleCount int32

	// SurfaceType is the set of surface kinds this config supports.
	SurfaceType SurfaceTypeMask

	// NativeRenderable reports whether native APIs can render to
	// surfaces of this config.
	NativeRenderable bool

	// NativeVisualID is the platform visual associated with the config,
	// or 0.
	NativeVisualID int32

	// Caveat marks slow or non-conformant configs.
	Caveat Caveat

	// ColorFormat and DepthFormat are the backend texture formats a
	// surface of this config is realized with.
	ColorFormat gputypes.TextureFormat
	DepthFormat gputypes.TextureFormat
}

// Compare defines the total order configs are reported in: caveat-free
// first, then deeper color buffers, then fewer samples, smaller depth,
// smaller stencil, and finally ascending ID as the tiebreaker. Returns a
// negative value if c sorts before o, positive if after, 0 only for the
// same ID.
func (c *Config) Compare(o *Config) int {
	if c.Caveat != o.Caveat {
		return order(int32(c.Caveat), int32(o.Caveat))
	}
	if c.BufferSize != o.BufferSize {
		return order(o.BufferSize, c.BufferSize)
	}
	if c.SampleCount != o.SampleCount {
		return order(c.SampleCount, o.SampleCount)
	}
	if c.DepthSize != o.DepthSize {
		return order(c.DepthSize, o.DepthSize)
	}
	if c.StencilSize != o.StencilSize {
		return order(c.StencilSize, o.StencilSize)
	}
	return order(c.ID, o.ID)
}

// order is a three-way comparison. Subtraction would overflow int32 on
// extreme attribute values.
func order(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Criteria is a config selection filter. Size attributes are minimums,
// ID and Caveat match exactly, and SurfaceType requires every requested
// bit. Zero values and DontCare leave an attribute unconstrained, so the
// zero Criteria matches every config; NewCriteria spells that out
// explicitly.
type Criteria struct {
	ID          int32
	BufferSize  int32
	RedSize     int32
	GreenSize   int32
	BlueSize    int32
	AlphaSize   int32
	DepthSize   int32
	StencilSize int32
	SampleCount int32
	SurfaceType SurfaceTypeMask
	Caveat      Caveat
}

// NewCriteria returns a filter that matches every config.
func NewCriteria() Criteria {
	return Criteria{
		ID:          DontCare,
		BufferSize:  DontCare,
		RedSize:     DontCare,
		GreenSize:   DontCare,
		BlueSize:    DontCare,
		AlphaSize:   DontCare,
		DepthSize:   DontCare,
		StencilSize: DontCare,
		SampleCount: DontCare,
		Caveat:      Caveat(DontCare),
	}
}

// Matches reports whether the config satisfies the criteria.
func (c *Config) Matches(crit Criteria) bool {
	if crit.ID != DontCare && crit.ID != 0 && crit.ID != c.ID {
		return false
	}
	atLeast := func(want, have int32) bool {
		return want == DontCare || want <= have
	}
	if !atLeast(crit.BufferSize, c.BufferSize) ||
		!atLeast(crit.RedSize, c.RedSize) ||
		!atLeast(crit.GreenSize, c.GreenSize) ||
		!atLeast(crit.BlueSize, c.BlueSize) ||
		!atLeast(crit.AlphaSize, c.AlphaSize) ||
		!atLeast(crit.DepthSize, c.DepthSize) ||
		!atLeast(crit.StencilSize, c.StencilSize) ||
		!atLeast(crit.SampleCount, c.SampleCount) {
		return false
	}
	if crit.SurfaceType != 0 && c.SurfaceType&crit.SurfaceType != crit.SurfaceType {
		return false
	}
	if crit.Caveat > CaveatNone && crit.Caveat != c.Caveat {
		return false
	}
	return true
}
