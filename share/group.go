// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package share

import "sync"

// objectKey addresses one named object across a group's categories.
type objectKey struct {
	objType ObjectType
	name    uint32
}

// Group is one share group: the set of GL objects visible to one client
// context, or to several contexts created sharing with each other.
//
// A Group owns one name space per object category plus the metadata
// attached to live names. All methods serialize on a single lock, so a
// name allocation and its metadata write from another goroutine never
// interleave mid-operation. Callers must not call back into the Group
// from code invoked while a Group method is on the stack.
//
// Groups are created through a Registry, never directly.
type Group struct {
	mu     sync.Mutex
	spaces [numObjectTypes]*namespace
	data   map[objectKey]ObjectData
}

func newGroup() *Group {
	g := &Group{data: make(map[objectKey]ObjectData)}
	for i := range g.spaces {
		g.spaces[i] = newNamespace(ObjectType(i))
	}
	return g
}

// GenName creates a new named object of the given type and returns its
// local name. If local is nonzero that name is used (the caller asserts
// it is free); otherwise a fresh name is synthesized. A fresh global name
// is generated and bound either way. Returns 0 for an invalid type.
func (g *Group) GenName(t ObjectType, local uint32) uint32 {
	if !t.valid() {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spaces[t].genName(local, true)
}

// RegisterLocal creates a named object without a global binding. The
// caller is expected to bind it to an existing backend object with
// ReplaceGlobalName, e.g. when creating an image sibling that must alias
// another context's texture. Returns the local name, or 0 for an invalid
// type.
func (g *Group) RegisterLocal(t ObjectType, local uint32) uint32 {
	if !t.valid() {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spaces[t].genName(local, false)
}

// GlobalName returns the backend name of an object, or 0 if the object
// does not exist.
func (g *Group) GlobalName(t ObjectType, local uint32) uint32 {
	if !t.valid() {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spaces[t].globalName(local)
}

// LocalName returns the local name bound to a backend name, or 0 if none
// is. When several local names alias one global the smallest wins.
func (g *Group) LocalName(t ObjectType, global uint32) uint32 {
	if !t.valid() {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spaces[t].localName(global)
}

// DeleteName removes an object from its namespace along with any metadata
// attached to it. Idempotent: deleting an absent name is a no-op.
func (g *Group) DeleteName(t ObjectType, local uint32) {
	if !t.valid() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spaces[t].deleteName(local)
	delete(g.data, objectKey{t, local})
}

// IsObject reports whether local names a live object of the given type.
func (g *Group) IsObject(t ObjectType, local uint32) bool {
	if !t.valid() {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spaces[t].isObject(local)
}

// ReplaceGlobalName rebinds an existing object to a different backend
// name, making two local objects refer to the same backend resource.
// No-op if the local name was never allocated.
func (g *Group) ReplaceGlobalName(t ObjectType, local, global uint32) {
	if !t.valid() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spaces[t].replaceGlobalName(local, global)
}

// SetObjectData attaches metadata to a named object, replacing any
// previous value. The group owns the value until the name is deleted.
// Attaching data to a name that is not live is accepted: name deletion
// and metadata stores are not ordered by this layer.
func (g *Group) SetObjectData(t ObjectType, local uint32, data ObjectData) {
	if !t.valid() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.data[objectKey{t, local}] = data
}

// ObjectData returns the metadata attached to a named object, or nil.
func (g *Group) ObjectData(t ObjectType, local uint32) ObjectData {
	if !t.valid() {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.data[objectKey{t, local}]
}

// release drops every name and metadata value the group holds. Called by
// the registry when the last handle detaches, with no group lock held by
// the caller.
func (g *Group) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.spaces {
		g.spaces[i] = newNamespace(ObjectType(i))
	}
	g.data = make(map[objectKey]ObjectData)
}
