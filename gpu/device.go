// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// Device pairs a HAL device with its queue.
type Device struct {
	Device hal.Device
	Queue  hal.Queue
}

// NewDevice wraps an open HAL device and queue.
func NewDevice(device hal.Device, queue hal.Queue) (Device, error) {
	if device == nil || queue == nil {
		return Device{}, ErrNilDevice
	}
	return Device{Device: device, Queue: queue}, nil
}

// DeviceFromProvider extracts the HAL device and queue from a provider such
// as a gogpu application. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func DeviceFromProvider(provider gpucontext.DeviceProvider) (Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return Device{}, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return Device{}, ErrNoHALProvider
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return Device{}, ErrNoHALProvider
	}

	info := provider.AdapterInfo()
	slogger().Info("gpu: using provider device",
		"adapter", info.Name, "type", info.Type.String(), "format", provider.SurfaceFormat())
	return Device{Device: device, Queue: queue}, nil
}
