// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import "sync/atomic"

// SurfaceHandle is the opaque handle of a registered render surface.
type SurfaceHandle uintptr

// ContextHandle is the opaque handle of a registered rendering context.
type ContextHandle uintptr

// ImageHandle is the opaque handle of a registered shareable image.
// Image handles are never 0.
type ImageHandle uint32

// nextObjectHandle issues identity handles for surfaces and contexts.
// The handle is minted once at construction, so registering the same
// object twice always yields the same handle.
var nextObjectHandle atomic.Uint64

func newObjectHandle() uintptr {
	return uintptr(nextObjectHandle.Add(1))
}

// SurfaceKind distinguishes the render surface flavors.
type SurfaceKind int

// Render surface kinds.
const (
	SurfaceWindow SurfaceKind = iota
	SurfacePbuffer
	SurfacePixmap
)

// String returns a human-readable name for the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceWindow:
		return "window"
	case SurfacePbuffer:
		return "pbuffer"
	case SurfacePixmap:
		return "pixmap"
	}
	return "unknown"
}

// Surface is one render surface tracked by a Display. The surface's
// handle derives from its own identity and never changes.
type Surface struct {
	hndl   SurfaceHandle
	kind   SurfaceKind
	config *Config
	width  int
	height int
}

// NewSurface creates a render surface of the given kind and config.
// The surface is not visible to lookups until registered with
// Display.AddSurface.
func NewSurface(kind SurfaceKind, config *Config, width, height int) *Surface {
	return &Surface{
		hndl:   SurfaceHandle(newObjectHandle()),
		kind:   kind,
		config: config,
		width:  width,
		height: height,
	}
}

// Handle returns the surface's identity handle.
func (s *Surface) Handle() SurfaceHandle { return s.hndl }

// Kind returns the surface flavor.
func (s *Surface) Kind() SurfaceKind { return s.kind }

// Config returns the config the surface was created against.
func (s *Surface) Config() *Config { return s.config }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Resize updates the surface dimensions. Window surfaces track their
// native window size between frames.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}
