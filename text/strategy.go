package text

import (
	"github.com/barktree707/magnum"
	"github.com/barktree707/magnum/gpubuf"
)

// writeStrategy is how a Renderer moves geometry bytes into a device
// buffer. The strategy is picked once at construction from the device's
// capabilities and never re-probed; every write is a scoped acquire →
// copy → release sequence so a buffer is never left mapped, whatever the
// exit path.
type writeStrategy interface {
	// name identifies the strategy in log output.
	name() string

	// usage returns the buffer usage bits the strategy needs on buffers it
	// will write to, beyond what the buffer's role requires.
	usage() gpubuf.BufferUsage

	// write copies data into the buffer at the byte offset.
	write(id gpubuf.BufferID, offset uint64, data []byte) error

	// discard forgets any per-buffer state once the buffer is destroyed.
	discard(id gpubuf.BufferID)
}

// chooseWriteStrategy probes the device once. Preference order: ranged
// mapping, whole-buffer mapping, shadow copy. The middle choice maps more
// memory than needed on every write, so it warns; the last runs everywhere
// WriteBuffer does.
func chooseWriteStrategy(dev gpubuf.Device) writeStrategy {
	switch {
	case dev.SupportsMapRange():
		return &mapRangeStrategy{dev: dev}
	case dev.SupportsMap():
		magnum.Logger().Warn("ranged buffer mapping not supported, mapping whole buffers instead",
			"device", dev.Name())
		return &mapFullStrategy{dev: dev}
	default:
		return &shadowCopyStrategy{dev: dev, shadows: make(map[gpubuf.BufferID][]byte)}
	}
}

// mapRangeStrategy maps exactly the written range.
type mapRangeStrategy struct {
	dev gpubuf.Device
}

func (s *mapRangeStrategy) name() string              { return "map-range" }
func (s *mapRangeStrategy) usage() gpubuf.BufferUsage { return gpubuf.BufferUsageMapWrite }
func (s *mapRangeStrategy) discard(gpubuf.BufferID)   {}

func (s *mapRangeStrategy) write(id gpubuf.BufferID, offset uint64, data []byte) (err error) {
	mem, err := s.dev.MapRange(id, offset, uint64(len(data)))
	if err != nil {
		return err
	}
	defer func() {
		if uerr := s.dev.Unmap(id); uerr != nil && err == nil {
			err = uerr
		}
	}()
	copy(mem, data)
	return nil
}

// mapFullStrategy maps the whole buffer and writes into the relevant part.
type mapFullStrategy struct {
	dev gpubuf.Device
}

func (s *mapFullStrategy) name() string              { return "map-full" }
func (s *mapFullStrategy) usage() gpubuf.BufferUsage { return gpubuf.BufferUsageMapWrite }
func (s *mapFullStrategy) discard(gpubuf.BufferID)   {}

func (s *mapFullStrategy) write(id gpubuf.BufferID, offset uint64, data []byte) (err error) {
	mem, err := s.dev.Map(id)
	if err != nil {
		return err
	}
	defer func() {
		if uerr := s.dev.Unmap(id); uerr != nil && err == nil {
			err = uerr
		}
	}()
	if offset+uint64(len(data)) > uint64(len(mem)) {
		return &gpubuf.OutOfRangeError{
			Offset: offset, Size: uint64(len(data)), BufferSize: uint64(len(mem)),
		}
	}
	copy(mem[offset:], data)
	return nil
}

// shadowCopyStrategy keeps a host-side copy per buffer and re-uploads the
// touched sub-range through the device queue. It is the fallback for
// devices without any host-visible mapping, such as the native HAL backend.
//
// Shadows grow lazily to cover the largest range written so far and are
// dropped with their buffer.
type shadowCopyStrategy struct {
	dev     gpubuf.Device
	shadows map[gpubuf.BufferID][]byte
}

func (s *shadowCopyStrategy) name() string              { return "shadow-copy" }
func (s *shadowCopyStrategy) usage() gpubuf.BufferUsage { return 0 }

func (s *shadowCopyStrategy) discard(id gpubuf.BufferID) {
	delete(s.shadows, id)
}

func (s *shadowCopyStrategy) write(id gpubuf.BufferID, offset uint64, data []byte) error {
	end := offset + uint64(len(data))
	shadow := s.shadows[id]
	if uint64(len(shadow)) < end {
		grown := make([]byte, end)
		copy(grown, shadow)
		shadow = grown
		s.shadows[id] = shadow
	}
	copy(shadow[offset:end], data)
	return s.dev.WriteBuffer(id, offset, shadow[offset:end])
}
