// Package memory provides a pure-Go gpubuf device backed by host memory.
//
// It is the reference device: fully capable by default, restrictable via
// Config so callers can exercise the whole-buffer-map and shadow-copy
// fallback paths without real GPU hardware. Import it blank to make it
// available through the registry:
//
//	import _ "github.com/barktree707/magnum/gpubuf/memory"
package memory

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/barktree707/magnum/gpubuf"
)

func init() {
	gpubuf.Register(gpubuf.DeviceMemory, func() gpubuf.Device {
		return New()
	})
}

// buffer is one host-memory allocation with its mapping state.
type buffer struct {
	label  string
	data   []byte
	usage  gpubuf.BufferUsage
	hint   gpubuf.UsageHint
	mapped bool
}

// Device implements gpubuf.Device in host memory.
//
// Device is safe for concurrent use. All resource operations are protected
// by a mutex.
type Device struct {
	mu      sync.RWMutex
	cfg     Config
	buffers map[gpubuf.BufferID]*buffer
	nextID  atomic.Uint64
}

// New creates a fully capable memory device.
func New() *Device {
	d, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return d
}

// NewWithConfig creates a memory device with restricted capabilities.
func NewWithConfig(cfg Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Device{
		cfg:     cfg,
		buffers: make(map[gpubuf.BufferID]*buffer),
	}, nil
}

// Name implements gpubuf.Device.
func (d *Device) Name() string { return gpubuf.DeviceMemory }

// SupportsMapRange implements gpubuf.Device.
func (d *Device) SupportsMapRange() bool { return d.cfg.SupportsMapRange }

// SupportsMap implements gpubuf.Device.
func (d *Device) SupportsMap() bool { return d.cfg.SupportsMap }

// MaxBufferSize implements gpubuf.Device.
func (d *Device) MaxBufferSize() uint64 { return d.cfg.MaxBufferSize }

// CreateBuffer implements gpubuf.Device.
func (d *Device) CreateBuffer(desc *gpubuf.BufferDescriptor) (gpubuf.BufferID, error) {
	if desc == nil || desc.Size == 0 {
		return gpubuf.InvalidID, gpubuf.ErrInvalidDescriptor
	}
	if d.cfg.MaxBufferSize > 0 && desc.Size > d.cfg.MaxBufferSize {
		return gpubuf.InvalidID, fmt.Errorf("memory: buffer size %d exceeds limit %d: %w",
			desc.Size, d.cfg.MaxBufferSize, gpubuf.ErrInvalidDescriptor)
	}

	id := gpubuf.BufferID(d.nextID.Add(1))

	d.mu.Lock()
	d.buffers[id] = &buffer{
		label: desc.Label,
		data:  make([]byte, desc.Size),
		usage: desc.Usage,
		hint:  desc.Hint,
	}
	d.mu.Unlock()

	return id, nil
}

// DestroyBuffer implements gpubuf.Device.
func (d *Device) DestroyBuffer(id gpubuf.BufferID) {
	d.mu.Lock()
	delete(d.buffers, id)
	d.mu.Unlock()
}

// WriteBuffer implements gpubuf.Device. Writing to a mapped buffer fails:
// mapping is exclusive until Unmap.
func (d *Device) WriteBuffer(id gpubuf.BufferID, offset uint64, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buffers[id]
	if !ok {
		return gpubuf.ErrBufferNotFound
	}
	if b.mapped {
		return gpubuf.ErrAlreadyMapped
	}
	if offset+uint64(len(data)) > uint64(len(b.data)) {
		return &gpubuf.OutOfRangeError{
			Offset: offset, Size: uint64(len(data)), BufferSize: uint64(len(b.data)),
		}
	}
	copy(b.data[offset:], data)
	return nil
}

// MapRange implements gpubuf.Device.
func (d *Device) MapRange(id gpubuf.BufferID, offset, size uint64) ([]byte, error) {
	if !d.cfg.SupportsMapRange {
		return nil, gpubuf.ErrMapUnsupported
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buffers[id]
	if !ok {
		return nil, gpubuf.ErrBufferNotFound
	}
	if b.mapped {
		return nil, gpubuf.ErrAlreadyMapped
	}
	if offset+size > uint64(len(b.data)) {
		return nil, &gpubuf.OutOfRangeError{
			Offset: offset, Size: size, BufferSize: uint64(len(b.data)),
		}
	}
	b.mapped = true
	return b.data[offset : offset+size : offset+size], nil
}

// Map implements gpubuf.Device.
func (d *Device) Map(id gpubuf.BufferID) ([]byte, error) {
	if !d.cfg.SupportsMap {
		return nil, gpubuf.ErrMapUnsupported
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buffers[id]
	if !ok {
		return nil, gpubuf.ErrBufferNotFound
	}
	if b.mapped {
		return nil, gpubuf.ErrAlreadyMapped
	}
	b.mapped = true
	return b.data, nil
}

// Unmap implements gpubuf.Device.
func (d *Device) Unmap(id gpubuf.BufferID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buffers[id]
	if !ok {
		return gpubuf.ErrBufferNotFound
	}
	if !b.mapped {
		return gpubuf.ErrNotMapped
	}
	b.mapped = false
	return nil
}

// Close implements gpubuf.Device.
func (d *Device) Close() {
	d.mu.Lock()
	d.buffers = make(map[gpubuf.BufferID]*buffer)
	d.mu.Unlock()
}

// Bytes returns a copy of the buffer contents. It exists so tests and
// debugging tools can inspect what a renderer uploaded; GPU-facing code
// has no use for it.
func (d *Device) Bytes(id gpubuf.BufferID) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.buffers[id]
	if !ok {
		return nil, gpubuf.ErrBufferNotFound
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Mapped reports whether the buffer is currently mapped. Test aid.
func (d *Device) Mapped(id gpubuf.BufferID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	b, ok := d.buffers[id]
	return ok && b.mapped
}

// BufferCount returns the number of live buffers. Test aid.
func (d *Device) BufferCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.buffers)
}
