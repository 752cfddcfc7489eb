// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package share

import (
	"errors"
	"sync"
)

// GroupHandle is an opaque key identifying a share group attachment.
// Frontends typically use their client context handle as the value.
// Handle 0 is valid but discouraged; the value returned by
// Registry.GlobalHandle is reserved.
type GroupHandle uintptr

// anchorHandle is the reserved handle of the registry's global anchor
// group. Kept out of the caller handle range a frontend would plausibly
// mint from context identities.
const anchorHandle = ^GroupHandle(0)

// Errors returned by Registry operations.
var (
	// ErrHandleInUse is returned when creating or attaching a group with
	// a handle that is already bound to a group.
	ErrHandleInUse = errors.New("share: handle already bound to a group")

	// ErrGroupNotFound is returned when attaching to a handle that is not
	// bound to any group.
	ErrGroupNotFound = errors.New("share: no group bound to handle")
)

// Registry is the directory of all share groups in a translation layer.
//
// Each handle binds to at most one Group; several handles may bind to the
// same Group (context sharing). A Group lives for exactly as long as at
// least one handle binds to it: DeleteGroup on the last handle releases
// the group's names and metadata.
//
// Registry methods are safe for concurrent use. The registry lock only
// guards the handle directory; group state is guarded by each Group's own
// lock, and the registry never holds its lock while operating on a group.
type Registry struct {
	mu     sync.Mutex
	groups map[GroupHandle]*Group
	refs   map[*Group]int
	anchor *Group
}

// NewRegistry creates an empty share group registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[GroupHandle]*Group),
		refs:   make(map[*Group]int),
	}
}

// CreateGroup creates a new empty share group and binds handle to it.
// Returns ErrHandleInUse if the handle is already bound; rebinding a live
// handle is a caller contract violation, never done implicitly.
func (r *Registry) CreateGroup(handle GroupHandle) (*Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[handle]; ok || handle == anchorHandle {
		return nil, ErrHandleInUse
	}

	g := newGroup()
	r.groups[handle] = g
	r.refs[g] = 1
	return g, nil
}

// AttachGroup binds handle to the group already bound to existing, so
// both handles resolve to the same group. Returns ErrGroupNotFound
// without side effects if existing is not bound, and ErrHandleInUse if
// handle already is.
func (r *Registry) AttachGroup(handle, existing GroupHandle) (*Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[existing]
	if !ok {
		return nil, ErrGroupNotFound
	}
	if _, ok := r.groups[handle]; ok || handle == anchorHandle {
		return nil, ErrHandleInUse
	}

	r.groups[handle] = g
	r.refs[g]++
	return g, nil
}

// Group returns the share group bound to handle, or (nil, false).
func (r *Registry) Group(handle GroupHandle) (*Group, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[handle]
	return g, ok
}

// DeleteGroup unbinds handle from its share group. If this was the last
// handle bound to the group, the group's names and metadata are released.
// Unbinding an unknown handle, or the global anchor handle, is a no-op.
func (r *Registry) DeleteGroup(handle GroupHandle) {
	if handle == anchorHandle {
		return
	}
	r.mu.Lock()
	g, ok := r.groups[handle]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.groups, handle)
	r.refs[g]--
	last := r.refs[g] == 0
	if last {
		delete(r.refs, g)
	}
	r.mu.Unlock()

	// Release outside the registry lock: the group takes its own lock.
	if last {
		g.release()
	}
}

// GlobalHandle returns the handle of the registry's global anchor group,
// creating the group on first use. The anchor is a well-known share group
// a new context can attach to when it has no peer to share with. It is
// never released: DeleteGroup on the returned handle is a no-op.
func (r *Registry) GlobalHandle() GroupHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.anchor == nil {
		r.anchor = newGroup()
		r.groups[anchorHandle] = r.anchor
		r.refs[r.anchor] = 1
	}
	return anchorHandle
}
