// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides a display config provider backed by the Pure
// Go WebGPU HAL (gogpu/wgpu).
//
// Importing the package registers the "native" provider at priority 100,
// ahead of the built-in headless fallback:
//
//	import _ "github.com/gogpu/glbridge/backend/native"
//
// The provider needs HAL access: the gpucontext.DeviceProvider passed to
// display.NewProvider must also expose HalDevice() any returning a
// hal.Device (gogpu's providers do). Without one the factory fails and
// provider selection falls through to the next registered backend.
package native

import (
	"errors"

	"github.com/gogpu/glbridge/display"
	"github.com/gogpu/glbridge/objects"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoHALDevice is returned when the device provider does not expose a
// usable HAL device.
var ErrNoHALDevice = errors.New("native: device provider exposes no hal.Device")

// Provider enumerates display configs for a HAL device and realizes
// shader objects on it.
type Provider struct {
	device hal.Device
}

// New creates a provider over the given HAL device.
func New(device hal.Device) (*Provider, error) {
	if device == nil {
		return nil, ErrNoHALDevice
	}
	return &Provider{device: device}, nil
}

// Device returns the underlying HAL device.
func (p *Provider) Device() hal.Device { return p.device }

// EnumerateConfigs returns the capability profiles the HAL guarantees,
// marked native-renderable since the device itself realizes them.
func (p *Provider) EnumerateConfigs() ([]*display.Config, error) {
	configs := display.BaseConfigs()
	for _, c := range configs {
		c.NativeRenderable = true
	}
	return configs, nil
}

// CreateShaderModule compiles a shader object's translated source and
// creates the HAL shader module for it.
func (p *Provider) CreateShaderModule(label string, src *objects.ShaderSource) (hal.ShaderModule, error) {
	spirv, err := src.Compile()
	if err != nil {
		return nil, err
	}
	return p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
}

// halAware is the structural interface device providers implement to
// expose their HAL handles (see gogpu's DeviceProvider implementations).
type halAware interface {
	HalDevice() any
}

// fromDeviceProvider extracts a HAL device from a gpucontext provider.
func fromDeviceProvider(dev gpucontext.DeviceProvider) (hal.Device, error) {
	ha, ok := dev.(halAware)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := ha.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	return device, nil
}

func init() {
	display.Register("native", 100, func(dev gpucontext.DeviceProvider) (display.ConfigProvider, error) {
		if dev == nil {
			return nil, ErrNoHALDevice
		}
		device, err := fromDeviceProvider(dev)
		if err != nil {
			return nil, err
		}
		return New(device)
	}, nil)
}
