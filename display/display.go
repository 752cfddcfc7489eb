// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"sort"
	"sync"
)

// Display tracks the resources of one logical display: its capability
// configs and the surfaces, contexts, and images created on it. All
// methods serialize on a single lock.
//
// Lifecycle: a Display starts uninitialized, Initialize makes it ready,
// Terminate drops the live surfaces and contexts and returns it to the
// uninitialized state. The config list is computed on the first
// Initialize only; subsequent initializations reuse it.
type Display struct {
	mu sync.Mutex

	initialized  bool
	configsReady bool
	configs      []*Config

	surfaces map[SurfaceHandle]*Surface
	contexts map[ContextHandle]*Context
	images   map[ImageHandle]*Image

	nextImageID uint32
}

// NewDisplay creates an uninitialized display.
func NewDisplay() *Display {
	return &Display{
		surfaces: make(map[SurfaceHandle]*Surface),
		contexts: make(map[ContextHandle]*Context),
		images:   make(map[ImageHandle]*Image),
	}
}

// Initialize makes the display ready. On the first call the config list
// is enumerated through the provider and sorted; later calls are
// idempotent and skip enumeration. A nil provider selects the best
// registered one (see NewProvider).
func (d *Display) Initialize(p ConfigProvider) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.configsReady {
		if p == nil {
			var err error
			p, err = NewProvider(nil)
			if err != nil {
				return err
			}
		}
		configs, err := p.EnumerateConfigs()
		if err != nil {
			return err
		}
		sort.Slice(configs, func(i, j int) bool {
			return configs[i].Compare(configs[j]) < 0
		})
		d.configs = configs
		d.configsReady = true
	}

	d.initialized = true
	return nil
}

// Initialized reports whether the display is ready.
func (d *Display) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// Terminate drops every live surface and context and returns the display
// to the uninitialized state. The config list is kept: a later
// Initialize is cheap and reports the same configs. Images are display
// lifetime resources and survive termination.
func (d *Display) Terminate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.surfaces = make(map[SurfaceHandle]*Surface)
	d.contexts = make(map[ContextHandle]*Context)
	d.initialized = false
}

// ConfigCount returns the number of configs the display exposes.
func (d *Display) ConfigCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.configs)
}

// CopyConfigs fills out with the display's configs in sort order, up to
// len(out), and returns the number written.
func (d *Display) CopyConfigs(out []*Config) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := copy(out, d.configs)
	return n
}

// ChooseConfigs fills out with the configs matching crit, preserving the
// sort order, up to len(out). Returns the number written.
func (d *Display) ChooseConfigs(crit Criteria, out []*Config) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, c := range d.configs {
		if n >= len(out) {
			break
		}
		if c.Matches(crit) {
			out[n] = c
			n++
		}
	}
	return n
}

// ConfigByID returns the config with the given ID, or (nil, false).
func (d *Display) ConfigByID(id int32) (*Config, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.configs {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// ConfigByHandle validates a caller-supplied config handle (the *Config
// pointer itself) against the display's config list. Returns (nil,
// false) for a config that does not belong to this display.
func (d *Display) ConfigByHandle(h *Config) (*Config, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.configs {
		if c == h {
			return c, true
		}
	}
	return nil, false
}

// AddSurface registers a surface and returns its handle. Registration is
// idempotent: adding a surface that is already registered returns the
// existing handle without duplicating the entry.
func (d *Display) AddSurface(s *Surface) SurfaceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	hndl := s.Handle()
	if _, ok := d.surfaces[hndl]; ok {
		return hndl
	}
	d.surfaces[hndl] = s
	return hndl
}

// GetSurface returns the surface registered under hndl, or (nil, false).
func (d *Display) GetSurface(hndl SurfaceHandle) (*Surface, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.surfaces[hndl]
	return s, ok
}

// RemoveSurface unregisters the surface with the given handle. Returns
// whether a surface was removed.
func (d *Display) RemoveSurface(hndl SurfaceHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.surfaces[hndl]; !ok {
		return false
	}
	delete(d.surfaces, hndl)
	return true
}

// RemoveSurfaceObject unregisters a surface by identity, for callers
// holding the object but not its handle. Returns whether a surface was
// removed.
func (d *Display) RemoveSurfaceObject(s *Surface) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for hndl, reg := range d.surfaces {
		if reg == s {
			delete(d.surfaces, hndl)
			return true
		}
	}
	return false
}

// AddContext registers a context and returns its handle. Idempotent by
// identity, like AddSurface.
func (d *Display) AddContext(c *Context) ContextHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	hndl := c.Handle()
	if _, ok := d.contexts[hndl]; ok {
		return hndl
	}
	d.contexts[hndl] = c
	return hndl
}

// GetContext returns the context registered under hndl, or (nil, false).
func (d *Display) GetContext(hndl ContextHandle) (*Context, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.contexts[hndl]
	return c, ok
}

// RemoveContext unregisters the context with the given handle. Returns
// whether a context was removed.
func (d *Display) RemoveContext(hndl ContextHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.contexts[hndl]; !ok {
		return false
	}
	delete(d.contexts, hndl)
	return true
}

// RemoveContextObject unregisters a context by identity. Returns whether
// a context was removed.
func (d *Display) RemoveContextObject(c *Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for hndl, reg := range d.contexts {
		if reg == c {
			delete(d.contexts, hndl)
			return true
		}
	}
	return false
}

// AddImage registers a shareable image, assigns it the next free image
// id, and returns the id as the image's handle. Ids are never 0: the
// counter wraps and skips both 0 and any id still live after wraparound.
// Re-adding a registered image returns its existing handle.
func (d *Display) AddImage(im *Image) ImageHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	if im.id != 0 {
		if reg, ok := d.images[im.id]; ok && reg == im {
			return im.id
		}
	}

	for {
		d.nextImageID++
		if d.nextImageID == 0 {
			continue
		}
		if _, inUse := d.images[ImageHandle(d.nextImageID)]; inUse {
			continue
		}
		break
	}

	im.id = ImageHandle(d.nextImageID)
	d.images[im.id] = im
	return im.id
}

// GetImage returns the image registered under hndl, or (nil, false).
func (d *Display) GetImage(hndl ImageHandle) (*Image, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	im, ok := d.images[hndl]
	return im, ok
}

// RemoveImage unregisters the image with the given handle. Returns
// whether an image was removed.
func (d *Display) RemoveImage(hndl ImageHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.images[hndl]; !ok {
		return false
	}
	delete(d.images, hndl)
	return true
}
