// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package attrib holds per-context vertex attribute pointer state.
//
// A Pointer is a plain value holder: it records where one vertex
// attribute's data comes from (a client-side array or a bound buffer
// object) plus its layout. It carries no locking; each rendering context
// owns its pointers and touches them from its single client thread.
package attrib

import (
	"github.com/gogpu/glbridge/objects"
	"github.com/gogpu/gputypes"
)

// Pointer describes the data source of one vertex attribute.
type Pointer struct {
	size    int32
	format  gputypes.VertexFormat
	stride  int32
	enabled bool

	// Exactly one of array / buffer is the live source.
	array      []byte
	buffer     *objects.Buffer
	bufferName uint32
	offset     int
}

// SetArray points the attribute at a client-side array. Any previous
// buffer binding is dropped.
func (p *Pointer) SetArray(size int32, format gputypes.VertexFormat, stride int32, data []byte) {
	p.size = size
	p.format = format
	p.stride = stride
	p.array = data
	p.buffer = nil
	p.bufferName = 0
	p.offset = 0
}

// SetBuffer points the attribute at a buffer object, identified by its
// local name with the group's metadata alongside, at the given byte
// offset. Any previous client array is dropped.
func (p *Pointer) SetBuffer(size int32, format gputypes.VertexFormat, stride int32, name uint32, buf *objects.Buffer, offset int) {
	p.size = size
	p.format = format
	p.stride = stride
	p.array = nil
	p.buffer = buf
	p.bufferName = name
	p.offset = offset
}

// Size returns the component count of the attribute.
func (p *Pointer) Size() int32 { return p.size }

// Format returns the attribute's component format.
func (p *Pointer) Format() gputypes.VertexFormat { return p.format }

// Stride returns the byte stride between consecutive elements.
func (p *Pointer) Stride() int32 { return p.stride }

// Enable sets whether the attribute array is enabled for drawing.
func (p *Pointer) Enable(on bool) { p.enabled = on }

// Enabled reports whether the attribute array is enabled.
func (p *Pointer) Enabled() bool { return p.enabled }

// ArrayData returns the client-side array, or nil when a buffer is
// bound.
func (p *Pointer) ArrayData() []byte { return p.array }

// BufferName returns the local name of the bound buffer, or 0.
func (p *Pointer) BufferName() uint32 { return p.bufferName }

// BufferOffset returns the byte offset into the bound buffer.
func (p *Pointer) BufferOffset() int { return p.offset }

// BufferData returns the bound buffer's contents from the attribute's
// offset onward, or nil when no buffer is bound or the offset is out of
// range.
func (p *Pointer) BufferData() []byte {
	if p.buffer == nil {
		return nil
	}
	data := p.buffer.Data()
	if p.offset < 0 || p.offset > len(data) {
		return nil
	}
	return data[p.offset:]
}

// NeedsConversion reports whether the bound buffer still has ranges the
// backend has not converted.
func (p *Pointer) NeedsConversion() bool {
	return p.buffer != nil && !p.buffer.FullyConverted()
}
