// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glbridge

import (
	"testing"

	"github.com/gogpu/glbridge/share"
)

// TestDisplayCreation tests lazy display creation and identity.
func TestDisplayCreation(t *testing.T) {
	br := New()

	if _, ok := br.LookupDisplay(DefaultDisplay); ok {
		t.Error("LookupDisplay should not create displays")
	}

	d1 := br.Display(DefaultDisplay)
	d2 := br.Display(DefaultDisplay)
	if d1 != d2 {
		t.Error("same native display should yield the same Display")
	}

	other := br.Display(NativeDisplay(1))
	if other == d1 {
		t.Error("distinct native displays should yield distinct Displays")
	}

	if _, ok := br.LookupDisplay(DefaultDisplay); !ok {
		t.Error("LookupDisplay should find a created display")
	}
}

// TestRemoveDisplay tests removal and termination.
func TestRemoveDisplay(t *testing.T) {
	br := New()

	d := br.Display(DefaultDisplay)
	if err := d.Initialize(nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if !br.RemoveDisplay(DefaultDisplay) {
		t.Fatal("RemoveDisplay = false, want true")
	}
	if d.Initialized() {
		t.Error("removed display should be terminated")
	}
	if br.RemoveDisplay(DefaultDisplay) {
		t.Error("second RemoveDisplay = true, want false")
	}
}

// TestObjectsRegistry tests that the bridge exposes one shared registry.
func TestObjectsRegistry(t *testing.T) {
	br := New()

	reg := br.Objects()
	if reg == nil {
		t.Fatal("Objects returned nil")
	}
	if br.Objects() != reg {
		t.Error("Objects should return the same registry")
	}

	grp, err := reg.CreateGroup(share.GroupHandle(1))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if name := grp.GenName(share.Texture, 0); name == 0 {
		t.Error("GenName returned 0")
	}
}
