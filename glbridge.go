// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glbridge

import (
	"sync"

	"github.com/gogpu/glbridge/display"
	"github.com/gogpu/glbridge/share"
)

// NativeDisplay is the opaque key of a platform display connection.
type NativeDisplay uintptr

// DefaultDisplay is the key of the platform's default display.
const DefaultDisplay NativeDisplay = 0

// Bridge is the top of a translation layer: the directory of logical
// displays plus the process-wide share group registry. A frontend holds
// exactly one Bridge.
type Bridge struct {
	mu       sync.Mutex
	displays map[NativeDisplay]*display.Display
	objects  *share.Registry
}

// New creates an empty Bridge.
func New() *Bridge {
	return &Bridge{
		displays: make(map[NativeDisplay]*display.Display),
		objects:  share.NewRegistry(),
	}
}

// Display returns the Display for the given native display, creating it
// on first use. The display starts uninitialized.
func (b *Bridge) Display(native NativeDisplay) *display.Display {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.displays[native]
	if !ok {
		d = display.NewDisplay()
		b.displays[native] = d
	}
	return d
}

// LookupDisplay returns the Display for the given native display without
// creating one.
func (b *Bridge) LookupDisplay(native NativeDisplay) (*display.Display, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.displays[native]
	return d, ok
}

// RemoveDisplay drops the Display for the given native display after
// terminating it. Returns whether a display was removed.
func (b *Bridge) RemoveDisplay(native NativeDisplay) bool {
	b.mu.Lock()
	d, ok := b.displays[native]
	if ok {
		delete(b.displays, native)
	}
	b.mu.Unlock()

	if ok {
		d.Terminate()
	}
	return ok
}

// Objects returns the process-wide share group registry.
func (b *Bridge) Objects() *share.Registry {
	return b.objects
}
