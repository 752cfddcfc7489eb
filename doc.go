// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glbridge is the resource-virtualization core of a GL
// command-translation layer.
//
// # Overview
//
// A translation layer lets many independent client rendering contexts run
// against one GPU backend. glbridge provides the bookkeeping that makes
// that possible, and nothing else: it does not translate draw calls and
// it does not talk to the GPU.
//
//   - share: two-level object naming. Every client object has a local
//     name scoped to its share group and a global name scoped to the
//     backend; groups are reference-counted and attach to opaque handles.
//   - display: per-display resource tracking. Capability configs,
//     render surfaces, rendering contexts, and shareable images, each
//     addressed by an opaque handle.
//   - objects, attrib: the value types a translation frontend hangs off
//     the two registries (buffer mirrors, shader sources, vertex
//     attribute pointers).
//   - backend/native: a display config provider over the Pure Go WebGPU
//     HAL (gogpu/wgpu).
//
// # Quick start
//
//	br := glbridge.New()
//
//	d := br.Display(glbridge.DefaultDisplay)
//	if err := d.Initialize(nil); err != nil {
//	    ...
//	}
//
//	// One share group per context; the context handle doubles as the
//	// group handle.
//	ctxHandle := share.GroupHandle(0x1)
//	grp, _ := br.Objects().CreateGroup(ctxHandle)
//	tex := grp.GenName(share.Texture, 0)
//
// # Concurrency
//
// Every type in glbridge is safe for concurrent use unless its
// documentation says otherwise. The expected caller pattern is one
// goroutine per client-facing execution context.
package glbridge
