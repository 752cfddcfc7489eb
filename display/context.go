// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import "github.com/gogpu/glbridge/share"

// Context is one client rendering context tracked by a Display. Like
// surfaces, a context's handle derives from its own identity.
//
// The context records which share group its object names live in; the
// frontend uses the context handle itself as the share group handle, so
// the two stay in lockstep (see share.Registry).
type Context struct {
	hndl    ContextHandle
	config  *Config
	group   share.GroupHandle
	version int

	// Current bindings, owned by the context's single client thread.
	draw *Surface
	read *Surface
}

// NewContext creates a rendering context against the given config.
// group is the handle of the share group the context's names live in,
// and version the client API major version (1 or 2 for GLES).
func NewContext(config *Config, group share.GroupHandle, version int) *Context {
	return &Context{
		hndl:    ContextHandle(newObjectHandle()),
		config:  config,
		group:   group,
		version: version,
	}
}

// Handle returns the context's identity handle.
func (c *Context) Handle() ContextHandle { return c.hndl }

// Config returns the config the context was created against.
func (c *Context) Config() *Config { return c.config }

// ShareGroup returns the handle of the share group the context's object
// names live in.
func (c *Context) ShareGroup() share.GroupHandle { return c.group }

// Version returns the client API major version.
func (c *Context) Version() int { return c.version }

// SetSurfaces records the draw and read surfaces the context is bound
// to. Both nil unbinds the context. Not synchronized: a context is only
// ever current on one client thread.
func (c *Context) SetSurfaces(draw, read *Surface) {
	c.draw = draw
	c.read = read
}

// DrawSurface returns the bound draw surface, or nil.
func (c *Context) DrawSurface() *Surface { return c.draw }

// ReadSurface returns the bound read surface, or nil.
func (c *Context) ReadSurface() *Surface { return c.read }
