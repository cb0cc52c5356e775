// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "errors"

var (
	// ErrNoHALProvider is returned when a device provider does not expose
	// HalDevice/HalQueue.
	ErrNoHALProvider = errors.New("gpu: provider does not expose HAL types")

	// ErrNilDevice is returned when a device or queue is nil.
	ErrNilDevice = errors.New("gpu: device or queue is nil")

	// ErrBatchTooLarge is returned when a batch needs more vertices than
	// 16-bit indices can address.
	ErrBatchTooLarge = errors.New("gpu: batch exceeds 16-bit index range")

	// ErrReleased is returned when using a resource after Destroy.
	ErrReleased = errors.New("gpu: resource already destroyed")
)
