// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package share

// ObjectType identifies one category of named GL objects.
//
// The set is closed: a Group allocates one name space per type eagerly,
// so types are dense small integers.
type ObjectType int

// Object categories managed by a share group.
const (
	VertexBuffer ObjectType = iota
	Texture
	Renderbuffer
	Framebuffer
	Shader
	Program

	numObjectTypes // must be last
)

// String returns a human-readable name for the object type.
func (t ObjectType) String() string {
	switch t {
	case VertexBuffer:
		return "vertexbuffer"
	case Texture:
		return "texture"
	case Renderbuffer:
		return "renderbuffer"
	case Framebuffer:
		return "framebuffer"
	case Shader:
		return "shader"
	case Program:
		return "program"
	}
	return "unknown"
}

func (t ObjectType) valid() bool {
	return t >= 0 && t < numObjectTypes
}

// ObjectData is arbitrary per-object metadata attached to a named object.
// The owning Group holds the only reference for as long as the name is
// live; deleting the name drops the metadata with it.
//
// Values are opaque to this package. See the objects package for the
// concrete types the translation frontend stores.
type ObjectData = any
