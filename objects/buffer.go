// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package objects

import "github.com/gogpu/gputypes"

// Range is a byte range inside a buffer.
type Range struct {
	Offset int
	Size   int
}

// Buffer holds the client-visible contents of a buffer object. The
// backend owns the GPU copy; this mirror answers reads and supplies data
// for fix-ups that must re-convert buffer contents (e.g. index widening)
// before upload.
//
// Buffer has no locking: it is metadata owned by a share group and is
// only touched under the group's lock.
type Buffer struct {
	usage gputypes.BufferUsage
	data  []byte
	dirty []Range
}

// NewBuffer creates an empty buffer with the given usage.
func NewBuffer(usage gputypes.BufferUsage) *Buffer {
	return &Buffer{usage: usage}
}

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int { return len(b.data) }

// Data returns the buffer contents. The slice is owned by the buffer.
func (b *Buffer) Data() []byte { return b.data }

// SetData replaces the entire buffer contents. The data is copied. The
// whole buffer becomes dirty.
func (b *Buffer) SetData(data []byte, usage gputypes.BufferUsage) {
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.usage = usage
	b.dirty = nil
	if len(data) > 0 {
		b.dirty = []Range{{Offset: 0, Size: len(data)}}
	}
}

// SetSubData overwrites part of the buffer. Returns false without
// writing if the range falls outside the current size. The written
// range is marked dirty.
func (b *Buffer) SetSubData(offset int, data []byte) bool {
	if offset < 0 || offset+len(data) > len(b.data) {
		return false
	}
	copy(b.data[offset:], data)
	if len(data) > 0 {
		b.dirty = append(b.dirty, Range{Offset: offset, Size: len(data)})
	}
	return true
}

// DirtyRanges returns the byte ranges written since the last
// MarkConverted, in write order. The slice is owned by the buffer.
func (b *Buffer) DirtyRanges() []Range { return b.dirty }

// FullyConverted reports whether no dirty ranges remain.
func (b *Buffer) FullyConverted() bool { return len(b.dirty) == 0 }

// MarkConverted clears the dirty ranges after the backend has consumed
// them.
func (b *Buffer) MarkConverted() { b.dirty = nil }
