// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package share implements object name virtualization for GL translation.
//
// A translation layer exposes many independent client rendering contexts
// on top of a single GPU backend. Every object a client creates (buffer,
// texture, shader, ...) therefore has two names:
//
//   - a local name, meaningful only inside one client context group
//   - a global name, meaningful to the single underlying backend
//
// # Share groups
//
// The unit of sharing is the Group: one Group exists per client context,
// unless contexts are created sharing with each other, in which case they
// resolve to the same Group instance. A Group owns one name space per
// object category plus arbitrary per-object metadata, all guarded by a
// single lock.
//
// # Registry
//
// The Registry maps opaque group handles (typically the frontend's context
// handles) to Groups. Multiple handles may attach to the same Group; the
// Group is released exactly when its last handle is detached.
//
//	reg := share.NewRegistry()
//	grp, _ := reg.CreateGroup(h1)
//	name := grp.GenName(share.Texture, 0)
//
//	// Second context shares with the first.
//	same, _ := reg.AttachGroup(h2, h1)
//
// The registry also holds a global anchor group (see GlobalHandle) that
// new contexts can share with when no peer handle exists yet.
//
// # Concurrency
//
// All Group and Registry methods are safe for concurrent use. The registry
// lock is never held while a group lock is taken from another group:
// handle resolution happens under the registry lock, group operations
// under the group's own lock.
package share
