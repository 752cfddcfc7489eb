// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display tracks the display-scoped resources of a GL translation
// layer: capability configs, render surfaces, rendering contexts, and
// shareable images, each addressed by an opaque handle.
//
// # Display
//
// One Display exists per logical display. It is initialized once per
// frontend session and can be terminated and re-initialized; the config
// list is computed on the first initialization only and never changes
// afterwards.
//
//	d := display.NewDisplay()
//	if err := d.Initialize(nil); err != nil { // nil = best registered provider
//	    ...
//	}
//
//	cfgs := make([]*display.Config, d.ConfigCount())
//	n := d.ChooseConfigs(display.Criteria{RedSize: 8, DepthSize: 16}, cfgs)
//
// # Providers
//
// Config enumeration is delegated to a ConfigProvider. Providers register
// themselves by name and priority, so GPU-backed providers (see
// backend/native) take precedence over the built-in headless one:
//
//	func init() {
//	    display.Register("native", 100, nativeFactory, nativeAvailable)
//	}
//
// # Concurrency
//
// All Display methods are safe for concurrent use; the display serializes
// on a single lock. Surfaces, contexts, and images are shared values:
// the Display holds one reference, callers may hold others, and removal
// from the Display only ends the Display's interest in the object.
package display
