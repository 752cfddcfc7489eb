// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

// listProvider is a ConfigProvider over a fixed list.
type listProvider struct {
	configs []*Config
	err     error
	calls   int
}

func (p *listProvider) EnumerateConfigs() ([]*Config, error) {
	p.calls++
	return p.configs, p.err
}

// configsWithIDs returns otherwise-identical configs with the given IDs,
// so ID is the effective sort key.
func configsWithIDs(ids ...int32) []*Config {
	configs := make([]*Config, len(ids))
	for i, id := range ids {
		configs[i] = &Config{
			ID:          id,
			BufferSize:  32,
			RedSize:     8,
			GreenSize:   8,
			BlueSize:    8,
			AlphaSize:   8,
			SampleCount: 1,
			SurfaceType: SurfaceTypeWindow,
			ColorFormat: gputypes.TextureFormatRGBA8Unorm,
		}
	}
	return configs
}

func initializedDisplay(t *testing.T, configs []*Config) *Display {
	t.Helper()
	d := NewDisplay()
	if err := d.Initialize(&listProvider{configs: configs}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return d
}

// TestInitializeSortsConfigs tests that configs come out in sort order
// regardless of insertion order.
func TestInitializeSortsConfigs(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(5, 3, 1, 4, 2))

	if got := d.ConfigCount(); got != 5 {
		t.Fatalf("ConfigCount = %d, want 5", got)
	}

	out := make([]*Config, 5)
	n := d.CopyConfigs(out)
	if n != 5 {
		t.Fatalf("CopyConfigs = %d, want 5", n)
	}
	for i, want := range []int32{1, 2, 3, 4, 5} {
		if out[i].ID != want {
			t.Errorf("config[%d].ID = %d, want %d", i, out[i].ID, want)
		}
	}
}

// TestCompareExtremeValues tests that Compare stays a valid total order
// on attribute values near the int32 limits, where subtraction-based
// comparisons would overflow.
func TestCompareExtremeValues(t *testing.T) {
	lo := &Config{ID: math.MinInt32, BufferSize: 32}
	hi := &Config{ID: math.MaxInt32, BufferSize: 32}

	if got := lo.Compare(hi); got >= 0 {
		t.Errorf("Compare(min ID, max ID) = %d, want < 0", got)
	}
	if got := hi.Compare(lo); got <= 0 {
		t.Errorf("Compare(max ID, min ID) = %d, want > 0", got)
	}

	shallow := &Config{ID: 1, BufferSize: 32, DepthSize: 0}
	deep := &Config{ID: 2, BufferSize: 32, DepthSize: math.MaxInt32}
	if got := shallow.Compare(deep); got >= 0 {
		t.Errorf("Compare(depth 0, depth max) = %d, want < 0", got)
	}

	same := &Config{ID: 7, BufferSize: 32}
	if got := same.Compare(same); got != 0 {
		t.Errorf("Compare(c, c) = %d, want 0", got)
	}
}

// TestInitializeIdempotent tests that re-initialization after terminate
// skips config recomputation.
func TestInitializeIdempotent(t *testing.T) {
	p := &listProvider{configs: configsWithIDs(1, 2, 3)}
	d := NewDisplay()

	if err := d.Initialize(p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !d.Initialized() {
		t.Fatal("display should be initialized")
	}

	d.Terminate()
	if d.Initialized() {
		t.Fatal("display should be uninitialized after Terminate")
	}

	if err := d.Initialize(p); err != nil {
		t.Fatalf("re-Initialize failed: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1 (configs cached)", p.calls)
	}
	if got := d.ConfigCount(); got != 3 {
		t.Errorf("ConfigCount after re-init = %d, want 3", got)
	}
}

// TestInitializeProviderError tests that enumeration failure leaves the
// display uninitialized.
func TestInitializeProviderError(t *testing.T) {
	wantErr := errors.New("no device")
	d := NewDisplay()

	err := d.Initialize(&listProvider{err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Initialize error = %v, want %v", err, wantErr)
	}
	if d.Initialized() {
		t.Error("display should stay uninitialized on provider error")
	}
}

// TestCopyConfigsCapacity tests that CopyConfigs never writes past the
// caller's buffer.
func TestCopyConfigsCapacity(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1, 2, 3, 4, 5))

	out := make([]*Config, 2)
	n := d.CopyConfigs(out)
	if n != 2 {
		t.Fatalf("CopyConfigs = %d, want 2", n)
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("copied IDs = %d,%d, want 1,2", out[0].ID, out[1].ID)
	}
}

// TestChooseConfigs tests filtering with order preservation and capacity
// capping.
func TestChooseConfigs(t *testing.T) {
	configs := configsWithIDs(5, 3, 1, 4, 2)
	configs[0].DepthSize = 24 // ID 5
	configs[1].DepthSize = 24 // ID 3
	configs[3].DepthSize = 24 // ID 4
	d := initializedDisplay(t, configs)

	crit := NewCriteria()
	crit.DepthSize = 16

	out := make([]*Config, 8)
	n := d.ChooseConfigs(crit, out)
	if n != 3 {
		t.Fatalf("ChooseConfigs = %d, want 3", n)
	}
	// Depth configs sort after no-depth ones; among themselves by ID.
	for i, want := range []int32{3, 4, 5} {
		if out[i].ID != want {
			t.Errorf("chosen[%d].ID = %d, want %d", i, out[i].ID, want)
		}
	}

	// Capacity capping.
	small := make([]*Config, 1)
	if n := d.ChooseConfigs(crit, small); n != 1 {
		t.Errorf("ChooseConfigs capped = %d, want 1", n)
	}

	// Nothing matches: returns 0 and writes nothing.
	crit.DepthSize = 32
	sentinel := &Config{ID: -1}
	out2 := []*Config{sentinel}
	if n := d.ChooseConfigs(crit, out2); n != 0 {
		t.Errorf("ChooseConfigs(no match) = %d, want 0", n)
	}
	if out2[0] != sentinel {
		t.Error("ChooseConfigs wrote to the buffer with no matches")
	}
}

// TestConfigLookup tests ID and handle lookup.
func TestConfigLookup(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1, 2, 3))

	c, ok := d.ConfigByID(2)
	if !ok || c.ID != 2 {
		t.Fatalf("ConfigByID(2) = %v,%v", c, ok)
	}

	if _, ok := d.ConfigByID(9); ok {
		t.Error("ConfigByID(9) found, want absent")
	}

	got, ok := d.ConfigByHandle(c)
	if !ok || got != c {
		t.Error("ConfigByHandle should find the display's own config")
	}

	foreign := &Config{ID: 2}
	if _, ok := d.ConfigByHandle(foreign); ok {
		t.Error("ConfigByHandle found a config from another display")
	}
}

// TestAddSurfaceIdempotent tests identity-based surface registration.
func TestAddSurfaceIdempotent(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1))
	cfg, _ := d.ConfigByID(1)

	s := NewSurface(SurfaceWindow, cfg, 640, 480)
	h1 := d.AddSurface(s)
	h2 := d.AddSurface(s)

	if h1 != h2 {
		t.Errorf("AddSurface twice: handles %v and %v, want equal", h1, h2)
	}
	if h1 != s.Handle() {
		t.Errorf("handle %v differs from surface identity %v", h1, s.Handle())
	}

	got, ok := d.GetSurface(h1)
	if !ok || got != s {
		t.Error("GetSurface should return the registered surface")
	}
}

// TestRemoveSurfacePaths tests both the handle-keyed and identity-scan
// removal paths.
func TestRemoveSurfacePaths(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1))
	cfg, _ := d.ConfigByID(1)

	s1 := NewSurface(SurfacePbuffer, cfg, 16, 16)
	s2 := NewSurface(SurfacePbuffer, cfg, 16, 16)
	h1 := d.AddSurface(s1)
	d.AddSurface(s2)

	if !d.RemoveSurface(h1) {
		t.Error("RemoveSurface(h1) = false, want true")
	}
	if d.RemoveSurface(h1) {
		t.Error("second RemoveSurface(h1) = true, want false")
	}

	if !d.RemoveSurfaceObject(s2) {
		t.Error("RemoveSurfaceObject(s2) = false, want true")
	}
	if d.RemoveSurfaceObject(s2) {
		t.Error("second RemoveSurfaceObject(s2) = true, want false")
	}
}

// TestContextRegistration tests context add/get/remove symmetry.
func TestContextRegistration(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1))
	cfg, _ := d.ConfigByID(1)

	c := NewContext(cfg, 0xC0, 2)
	h := d.AddContext(c)
	if h2 := d.AddContext(c); h2 != h {
		t.Errorf("AddContext twice: handles %v and %v, want equal", h2, h)
	}

	got, ok := d.GetContext(h)
	if !ok || got != c {
		t.Fatal("GetContext should return the registered context")
	}
	if got.ShareGroup() != 0xC0 {
		t.Errorf("ShareGroup = %#x, want 0xC0", got.ShareGroup())
	}

	if !d.RemoveContextObject(c) {
		t.Error("RemoveContextObject = false, want true")
	}
	if _, ok := d.GetContext(h); ok {
		t.Error("context still registered after removal")
	}
}

// TestTerminate tests that terminate clears surfaces and contexts but
// keeps the config list.
func TestTerminate(t *testing.T) {
	d := initializedDisplay(t, configsWithIDs(1, 2))
	cfg, _ := d.ConfigByID(1)

	sh := d.AddSurface(NewSurface(SurfaceWindow, cfg, 32, 32))
	ch := d.AddContext(NewContext(cfg, 1, 2))

	d.Terminate()

	if _, ok := d.GetSurface(sh); ok {
		t.Error("surface survived Terminate")
	}
	if _, ok := d.GetContext(ch); ok {
		t.Error("context survived Terminate")
	}
	if got := d.ConfigCount(); got != 2 {
		t.Errorf("ConfigCount after Terminate = %d, want 2", got)
	}

	if err := d.Initialize(&listProvider{}); err != nil {
		t.Fatalf("re-Initialize failed: %v", err)
	}
	if got := d.ConfigCount(); got != 2 {
		t.Errorf("ConfigCount after re-init = %d, want 2", got)
	}
}

// TestAddImage tests image id assignment.
func TestAddImage(t *testing.T) {
	d := NewDisplay()

	im1 := NewImage(64, 64, gputypes.TextureFormatRGBA8Unorm, 7)
	im2 := NewImage(64, 64, gputypes.TextureFormatRGBA8Unorm, 8)

	h1 := d.AddImage(im1)
	h2 := d.AddImage(im2)

	if h1 == 0 || h2 == 0 {
		t.Fatal("image handles must be nonzero")
	}
	if h1 == h2 {
		t.Fatal("distinct images got the same handle")
	}
	if im1.ID() != h1 {
		t.Errorf("image ID %d differs from handle %d", im1.ID(), h1)
	}

	// Idempotent re-registration.
	if again := d.AddImage(im1); again != h1 {
		t.Errorf("re-AddImage = %d, want %d", again, h1)
	}

	got, ok := d.GetImage(h1)
	if !ok || got != im1 {
		t.Error("GetImage should return the registered image")
	}

	if !d.RemoveImage(h1) {
		t.Error("RemoveImage = false, want true")
	}
	if d.RemoveImage(h1) {
		t.Error("second RemoveImage = true, want false")
	}
}

// TestAddImageWraparound tests that the id counter wraps, skips 0, and
// skips ids still in use.
func TestAddImageWraparound(t *testing.T) {
	d := NewDisplay()

	// Occupy id 1, then push the counter to the brink of wrapping.
	blocker := NewImage(1, 1, gputypes.TextureFormatRGBA8Unorm, 1)
	if h := d.AddImage(blocker); h != 1 {
		t.Fatalf("first image handle = %d, want 1", h)
	}
	d.nextImageID = ^uint32(0) - 1

	a := d.AddImage(NewImage(1, 1, gputypes.TextureFormatRGBA8Unorm, 2))
	if a != ImageHandle(^uint32(0)) {
		t.Fatalf("pre-wrap handle = %d, want %d", a, ^uint32(0))
	}

	// Next allocation wraps: skips 0, skips live id 1, lands on 2.
	b := d.AddImage(NewImage(1, 1, gputypes.TextureFormatRGBA8Unorm, 3))
	if b != 2 {
		t.Errorf("post-wrap handle = %d, want 2", b)
	}
}
