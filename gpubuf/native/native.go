//go:build !nogpu

// Package native provides a gpubuf device driving a real GPU through
// gogpu/wgpu's HAL layer.
//
// HAL buffers are not host-mappable here, so the device reports no mapping
// support and renderers built on it fall back to their shadow-copy write
// strategy, uploading touched ranges through the queue. The device either
// opens its own Vulkan adapter or shares a host application's device via
// NewFromProvider.
//
// If GPU initialization fails (no Vulkan available), the registry factory
// returns nil and device selection falls through to the memory backend.
package native

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"

	"github.com/barktree707/magnum"
	"github.com/barktree707/magnum/gpubuf"
)

func init() {
	gpubuf.Register(gpubuf.DeviceNative, func() gpubuf.Device {
		d, err := New()
		if err != nil {
			magnum.Logger().Warn("native device not available", "err", err)
			return nil
		}
		return d
	})
}

// Device implements gpubuf.Device on top of gogpu/wgpu HAL.
//
// Device is safe for concurrent use. All resource operations are protected
// by a mutex.
type Device struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	// instance is non-nil when the device opened its own adapter and owns
	// the underlying resources.
	instance hal.Instance

	limits  types.Limits
	buffers map[gpubuf.BufferID]hal.Buffer
	sizes   map[gpubuf.BufferID]uint64
	nextID  atomic.Uint64
}

// New opens the first suitable Vulkan adapter and creates a device on it.
// Discrete and integrated GPUs are preferred over software implementations.
func New() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("native: vulkan backend not available: %w", gpubuf.ErrDeviceNotAvailable)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("native: no GPU adapters found: %w", gpubuf.ErrDeviceNotAvailable)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("native: open device: %w", err)
	}

	d := newDevice(openDev.Device, openDev.Queue, nil)
	d.instance = instance
	magnum.Logger().Info("native device initialized", "adapter", selected.Info.Name)
	return d, nil
}

// NewFromDevice wraps an existing HAL device and queue. The caller retains
// ownership of both; Close only releases buffers created through this
// Device. If limits is nil, default limits are used.
func NewFromDevice(device hal.Device, queue hal.Queue, limits *types.Limits) *Device {
	return newDevice(device, queue, limits)
}

func newDevice(device hal.Device, queue hal.Queue, limits *types.Limits) *Device {
	var lim types.Limits
	if limits != nil {
		lim = *limits
	} else {
		lim = types.DefaultLimits()
	}
	return &Device{
		device:  device,
		queue:   queue,
		limits:  lim,
		buffers: make(map[gpubuf.BufferID]hal.Buffer),
		sizes:   make(map[gpubuf.BufferID]uint64),
	}
}

// Name implements gpubuf.Device.
func (d *Device) Name() string { return gpubuf.DeviceNative }

// SupportsMapRange implements gpubuf.Device. HAL buffers are not
// host-mappable, so this is always false.
func (d *Device) SupportsMapRange() bool { return false }

// SupportsMap implements gpubuf.Device. Always false, see SupportsMapRange.
func (d *Device) SupportsMap() bool { return false }

// MaxBufferSize implements gpubuf.Device.
func (d *Device) MaxBufferSize() uint64 { return d.limits.MaxBufferSize }

// CreateBuffer implements gpubuf.Device.
func (d *Device) CreateBuffer(desc *gpubuf.BufferDescriptor) (gpubuf.BufferID, error) {
	if desc == nil || desc.Size == 0 {
		return gpubuf.InvalidID, gpubuf.ErrInvalidDescriptor
	}

	buffer, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: convertBufferUsage(desc.Usage),
	})
	if err != nil {
		return gpubuf.InvalidID, fmt.Errorf("native: create buffer: %w", err)
	}

	id := gpubuf.BufferID(d.nextID.Add(1))

	d.mu.Lock()
	d.buffers[id] = buffer
	d.sizes[id] = desc.Size
	d.mu.Unlock()

	return id, nil
}

// DestroyBuffer implements gpubuf.Device.
func (d *Device) DestroyBuffer(id gpubuf.BufferID) {
	d.mu.Lock()
	buffer, ok := d.buffers[id]
	if ok {
		delete(d.buffers, id)
		delete(d.sizes, id)
	}
	d.mu.Unlock()

	if ok {
		d.device.DestroyBuffer(buffer)
	}
}

// WriteBuffer implements gpubuf.Device. The write is queued through the
// HAL queue, which handles staging internally.
func (d *Device) WriteBuffer(id gpubuf.BufferID, offset uint64, data []byte) error {
	d.mu.RLock()
	buffer, ok := d.buffers[id]
	size := d.sizes[id]
	d.mu.RUnlock()

	if !ok {
		return gpubuf.ErrBufferNotFound
	}
	if offset+uint64(len(data)) > size {
		return &gpubuf.OutOfRangeError{
			Offset: offset, Size: uint64(len(data)), BufferSize: size,
		}
	}
	if len(data) == 0 {
		return nil
	}
	d.queue.WriteBuffer(buffer, offset, data)
	return nil
}

// MapRange implements gpubuf.Device.
func (d *Device) MapRange(gpubuf.BufferID, uint64, uint64) ([]byte, error) {
	return nil, gpubuf.ErrMapUnsupported
}

// Map implements gpubuf.Device.
func (d *Device) Map(gpubuf.BufferID) ([]byte, error) {
	return nil, gpubuf.ErrMapUnsupported
}

// Unmap implements gpubuf.Device.
func (d *Device) Unmap(gpubuf.BufferID) error {
	return gpubuf.ErrNotMapped
}

// Close implements gpubuf.Device. Buffers created through this device are
// destroyed; the HAL device itself is destroyed only when this Device
// opened it.
func (d *Device) Close() {
	d.mu.Lock()
	buffers := d.buffers
	d.buffers = make(map[gpubuf.BufferID]hal.Buffer)
	d.sizes = make(map[gpubuf.BufferID]uint64)
	d.mu.Unlock()

	for _, b := range buffers {
		d.device.DestroyBuffer(b)
	}
	if d.instance != nil {
		d.device.Destroy()
	}
}

func convertBufferUsage(usage gpubuf.BufferUsage) types.BufferUsage {
	var result types.BufferUsage

	if usage&gpubuf.BufferUsageMapRead != 0 {
		result |= types.BufferUsageMapRead
	}
	if usage&gpubuf.BufferUsageMapWrite != 0 {
		result |= types.BufferUsageMapWrite
	}
	if usage&gpubuf.BufferUsageCopySrc != 0 {
		result |= types.BufferUsageCopySrc
	}
	if usage&gpubuf.BufferUsageCopyDst != 0 {
		result |= types.BufferUsageCopyDst
	}
	if usage&gpubuf.BufferUsageIndex != 0 {
		result |= types.BufferUsageIndex
	}
	if usage&gpubuf.BufferUsageVertex != 0 {
		result |= types.BufferUsageVertex
	}

	return result
}
