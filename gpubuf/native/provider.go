//go:build !nogpu

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"
)

// ErrNoHALAccess is returned when a provider cannot expose its underlying
// HAL device and queue.
var ErrNoHALAccess = errors.New("native: provider does not expose HAL access")

// NewFromProvider creates a Device sharing the GPU device of a host
// application (e.g. a gogpu app) instead of opening a separate adapter.
//
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue, which gpucontext-based hosts do.
// The host retains ownership of the device; Close only releases buffers
// created here.
func NewFromProvider(provider gpucontext.DeviceProvider, limits *types.Limits) (*Device, error) {
	if provider == nil {
		return nil, fmt.Errorf("native: nil provider: %w", ErrNoHALAccess)
	}

	hp, ok := provider.(interface {
		HalDevice() any
		HalQueue() any
	})
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("native: provider HalDevice is not hal.Device: %w", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("native: provider HalQueue is not hal.Queue: %w", ErrNoHALAccess)
	}

	return newDevice(device, queue, limits), nil
}
