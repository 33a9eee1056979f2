package gpubuf

import (
	"errors"
	"fmt"
)

// Common device errors.
var (
	// ErrDeviceNotAvailable is returned when a requested device backend is
	// not available on this system.
	ErrDeviceNotAvailable = errors.New("gpubuf: device not available")

	// ErrBufferNotFound is returned for operations on an unknown buffer id.
	ErrBufferNotFound = errors.New("gpubuf: buffer not found")

	// ErrAlreadyMapped is returned when mapping a buffer that is already
	// mapped. Mapping is a scoped exclusive acquisition.
	ErrAlreadyMapped = errors.New("gpubuf: buffer already mapped")

	// ErrNotMapped is returned when unmapping a buffer that is not mapped.
	ErrNotMapped = errors.New("gpubuf: buffer not mapped")

	// ErrMapUnsupported is returned by devices that cannot expose buffer
	// memory to the host. Callers fall back to WriteBuffer.
	ErrMapUnsupported = errors.New("gpubuf: mapping not supported")

	// ErrInvalidDescriptor is returned for descriptors with a zero size.
	ErrInvalidDescriptor = errors.New("gpubuf: invalid buffer descriptor")
)

// OutOfRangeError reports a write or map range that does not fit the buffer.
type OutOfRangeError struct {
	Offset, Size uint64
	BufferSize   uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gpubuf: range [%d, %d) exceeds buffer size %d",
		e.Offset, e.Offset+e.Size, e.BufferSize)
}

// Device is the interface buffer backends implement. It covers exactly the
// operations the incremental text renderer needs: buffer lifecycle, queued
// writes, scoped mapping and the capability probes that select a write
// strategy once at renderer construction.
//
// Devices must be registered via Register() and are selected via Get()
// or Default().
//
// Implementations must be safe for concurrent use.
type Device interface {
	// Name returns the device identifier (e.g. "memory", "native").
	Name() string

	// CreateBuffer creates a buffer from the descriptor and returns its id.
	CreateBuffer(desc *BufferDescriptor) (BufferID, error)

	// DestroyBuffer releases a buffer. Unknown ids are ignored.
	DestroyBuffer(id BufferID)

	// WriteBuffer copies data into the buffer at the byte offset. It is
	// always available, even on devices without mapping support.
	WriteBuffer(id BufferID, offset uint64, data []byte) error

	// MapRange maps the byte range [offset, offset+size) for writing and
	// returns the host-visible memory. Fails with ErrMapUnsupported when
	// SupportsMapRange reports false.
	MapRange(id BufferID, offset, size uint64) ([]byte, error)

	// Map maps the whole buffer for writing. Fails with ErrMapUnsupported
	// when SupportsMap reports false.
	Map(id BufferID) ([]byte, error)

	// Unmap releases a mapping and makes the written bytes visible to
	// subsequent GPU use. The slice returned by Map/MapRange must not be
	// used afterwards.
	Unmap(id BufferID) error

	// SupportsMapRange reports whether MapRange is available.
	SupportsMapRange() bool

	// SupportsMap reports whether whole-buffer Map is available.
	SupportsMap() bool

	// MaxBufferSize returns the maximum buffer size in bytes, or 0 when
	// the device imposes no limit it can report.
	MaxBufferSize() uint64

	// Close releases all device resources, including any live buffers.
	// The device must not be used after Close.
	Close()
}
