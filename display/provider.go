// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/gpucontext"
)

// ConfigProvider enumerates the capability configs of a display. It is
// the one external capability the display core calls into, once, during
// the first Initialize.
type ConfigProvider interface {
	// EnumerateConfigs returns the display's capability profiles. The
	// display sorts them; providers need not.
	EnumerateConfigs() ([]*Config, error)
}

// ProviderFactory creates a ConfigProvider for a GPU device. Providers
// that need no device (headless enumeration) accept nil.
type ProviderFactory func(dev gpucontext.DeviceProvider) (ConfigProvider, error)

// ProviderEntry represents a registered config provider backend.
type ProviderEntry struct {
	// Name is the unique identifier for this provider.
	Name string

	// Priority determines selection order (higher = preferred).
	// GPU-backed providers register at 100, headless fallbacks at 10.
	Priority int

	// Factory creates provider instances.
	Factory ProviderFactory

	// Available reports if the provider can run on this system.
	Available func() bool
}

// globalProviders is the default provider registry.
var globalProviders = &ProviderRegistry{}

// ProviderRegistry manages registered config providers.
//
// The registry lets GPU backends supply display capabilities without the
// core depending on them:
//
//	func init() {
//	    display.Register("native", 100, nativeFactory, nativeAvailable)
//	}
type ProviderRegistry struct {
	mu      sync.RWMutex
	entries map[string]*ProviderEntry
}

// NewProviderRegistry creates a new empty registry. Most code should use
// the global registry via Register and NewProvider.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		entries: make(map[string]*ProviderEntry),
	}
}

// Register adds a provider to the global registry.
//
// If available is nil, the provider is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory ProviderFactory, available func() bool) {
	globalProviders.Register(name, priority, factory, available)
}

// Unregister removes a provider from the global registry.
func Unregister(name string) {
	globalProviders.Unregister(name)
}

// Providers returns all registered provider names sorted by priority
// (highest first).
func Providers() []string {
	return globalProviders.List()
}

// NewProvider creates a config provider using the best available backend
// from the global registry.
func NewProvider(dev gpucontext.DeviceProvider) (ConfigProvider, error) {
	return globalProviders.NewProvider(dev)
}

// NewProviderByName creates a config provider using a specific backend
// from the global registry.
func NewProviderByName(name string, dev gpucontext.DeviceProvider) (ConfigProvider, error) {
	return globalProviders.NewProviderByName(name, dev)
}

// Register adds a provider to this registry.
func (r *ProviderRegistry) Register(name string, priority int, factory ProviderFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*ProviderEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &ProviderEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a provider from this registry.
func (r *ProviderRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered provider names sorted by priority.
func (r *ProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available providers sorted by priority.
func (r *ProviderRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific provider.
func (r *ProviderRegistry) Get(name string) (*ProviderEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification.
	entryCopy := *entry
	return &entryCopy, true
}

// NewProvider creates a config provider using the best available
// backend, trying each in priority order.
func (r *ProviderRegistry) NewProvider(dev gpucontext.DeviceProvider) (ConfigProvider, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoProviderAvailable
	}

	var lastErr error
	for _, name := range available {
		p, err := r.NewProviderByName(name, dev)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoProviderAvailable
}

// NewProviderByName creates a config provider using a specific backend.
func (r *ProviderRegistry) NewProviderByName(name string, dev gpucontext.DeviceProvider) (ConfigProvider, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ProviderNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &ProviderUnavailableError{Name: name}
	}

	return entry.Factory(dev)
}

// sortedNames returns provider names sorted by priority (highest first).
// Must be called with the lock held.
func (r *ProviderRegistry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoProviderAvailable is returned when no config providers are
	// registered or available on the current system.
	ErrNoProviderAvailable = errors.New("display: no config provider available")
)

// ProviderNotFoundError indicates a named provider is not registered.
type ProviderNotFoundError struct {
	Name string
}

func (e *ProviderNotFoundError) Error() string {
	return "display: config provider not found: " + e.Name
}

// ProviderUnavailableError indicates a provider exists but cannot run on
// this system.
type ProviderUnavailableError struct {
	Name string
}

func (e *ProviderUnavailableError) Error() string {
	return "display: config provider unavailable: " + e.Name
}

// init registers the built-in headless provider.
func init() {
	Register("headless", 10, func(dev gpucontext.DeviceProvider) (ConfigProvider, error) {
		return headlessProvider{}, nil
	}, nil)
}
