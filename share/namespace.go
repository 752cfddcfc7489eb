// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package share

import "sync/atomic"

// globalNames generates backend-wide object names. One counter serves all
// object categories in the process, so a global name is never reused while
// any local name in any group still resolves to it (short of the counter
// wrapping through 2^32 live allocations).
var globalNames atomic.Uint32

// nextGlobalName returns a fresh nonzero global name.
func nextGlobalName() uint32 {
	for {
		if g := globalNames.Add(1); g != 0 {
			return g
		}
	}
}

// namespace maps local object names to global names for a single object
// category inside one share group.
//
// A namespace has no locking of its own: it is only ever accessed with the
// owning Group's lock held.
type namespace struct {
	objType  ObjectType
	nextName uint32
	names    map[uint32]uint32 // local -> global (0 = no global binding yet)
}

func newNamespace(t ObjectType) *namespace {
	return &namespace{
		objType: t,
		names:   make(map[uint32]uint32),
	}
}

// genName creates a new object in the namespace and returns its local
// name. If local is nonzero that name is used (the caller asserts it is
// free); otherwise the next unused name is synthesized. Local name 0 is
// never allocated.
//
// If genGlobal is true a fresh global name is bound to the object;
// otherwise the entry is left unbound, to be bound later with
// replaceGlobalName (used when sharing a name minted elsewhere).
func (ns *namespace) genName(local uint32, genGlobal bool) uint32 {
	if local == 0 {
		for {
			ns.nextName++
			if ns.nextName == 0 {
				continue
			}
			if _, exists := ns.names[ns.nextName]; !exists {
				break
			}
		}
		local = ns.nextName
	}

	var global uint32
	if genGlobal {
		global = nextGlobalName()
	}
	ns.names[local] = global
	return local
}

// globalName returns the global name bound to local, or 0 if the object
// does not exist or has no global binding.
func (ns *namespace) globalName(local uint32) uint32 {
	return ns.names[local]
}

// localName returns a local name bound to global, or 0 if none is.
// When several local names alias one global name the smallest local name
// wins, so the result is deterministic regardless of map iteration order.
func (ns *namespace) localName(global uint32) uint32 {
	if global == 0 {
		return 0
	}
	var found uint32
	for l, g := range ns.names {
		if g == global && (found == 0 || l < found) {
			found = l
		}
	}
	return found
}

// deleteName removes the object from the namespace. No-op if absent.
func (ns *namespace) deleteName(local uint32) {
	delete(ns.names, local)
}

// isObject reports whether local names a live object.
func (ns *namespace) isObject(local uint32) bool {
	_, ok := ns.names[local]
	return ok
}

// replaceGlobalName rebinds an existing object to a different global name,
// making it an alias of another object's backend resource. No-op if the
// local name was never allocated: the caller must create it first.
func (ns *namespace) replaceGlobalName(local, global uint32) {
	if _, ok := ns.names[local]; ok {
		ns.names[local] = global
	}
}
