// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package objects provides the concrete per-object metadata values a GL
// translation frontend attaches to named objects through
// share.Group.SetObjectData.
//
// The share package treats metadata as opaque; the types here carry the
// client-visible state the backend cannot answer queries about on its
// own: buffer contents that must stay readable after upload, and the
// translated shader source for a shader object.
package objects
