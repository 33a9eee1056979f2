package text

import (
	"encoding/binary"
)

// IndexType is the element width of an index buffer.
type IndexType uint8

const (
	// IndexTypeU8 addresses up to 256 vertices (64 glyph quads).
	IndexTypeU8 IndexType = iota

	// IndexTypeU16 addresses up to 65536 vertices (16384 glyph quads).
	IndexTypeU16

	// IndexTypeU32 addresses any vertex count this engine can produce.
	IndexTypeU32
)

// Size returns the element size in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexTypeU8:
		return 1
	case IndexTypeU16:
		return 2
	default:
		return 4
	}
}

// Bits returns the element width in bits.
func (t IndexType) Bits() int { return t.Size() * 8 }

// String returns the index type name.
func (t IndexType) String() string {
	switch t {
	case IndexTypeU8:
		return "Uint8"
	case IndexTypeU16:
		return "Uint16"
	case IndexTypeU32:
		return "Uint32"
	default:
		return unknownStr
	}
}

// IndexTypeFor returns the narrowest index type whose range covers the
// given number of vertices.
func IndexTypeFor(vertexCount uint32) IndexType {
	switch {
	case vertexCount <= 256:
		return IndexTypeU8
	case vertexCount <= 65536:
		return IndexTypeU16
	default:
		return IndexTypeU32
	}
}

// EmitQuadIndices fills indices with triangle-list indices for a run of
// glyph quads. Each glyph i becomes the two triangles (0,1,2) and (2,1,3)
// over its 4 vertices, offset by (glyphOffset+i)*4:
//
//	2---3 2 3---5
//	|   | |\ \  |
//	|   | | \ \ |
//	|   | |  \ \|
//	0---1 0---1 4
//
// len(indices) must be divisible by 6 and determines the glyph count. The
// highest emitted vertex index, (glyphOffset+glyphCount)*4-1, must be
// representable in T; otherwise an IndexOverflowError is returned and
// nothing is written.
func EmitQuadIndices[T uint8 | uint16 | uint32](glyphOffset uint32, indices []T) error {
	if len(indices)%6 != 0 {
		return &SizeMismatchError{
			What: "indices", Got: len(indices), Want: len(indices) / 6 * 6,
		}
	}
	glyphCount := uint32(len(indices) / 6)

	var bits int
	switch any(indices).(type) {
	case []uint8:
		bits = 8
	case []uint16:
		bits = 16
	default:
		bits = 32
	}
	maxValue := (uint64(glyphOffset) + uint64(glyphCount)) * 4
	if maxValue > 1<<bits {
		return &IndexOverflowError{MaxValue: maxValue - 1, Bits: bits}
	}

	for i := uint32(0); i != glyphCount; i++ {
		base := T((glyphOffset + i) * 4)
		out := indices[i*6 : i*6+6]
		out[0] = base
		out[1] = base + 1
		out[2] = base + 2
		out[3] = base + 2
		out[4] = base + 1
		out[5] = base + 3
	}
	return nil
}

// QuadIndices emits ready-to-upload index bytes for glyphCount quads,
// starting at glyph offset 0, using the narrowest index type that covers
// glyphCount*4 vertices. Multi-byte elements are serialized little-endian.
func QuadIndices(glyphCount uint32) ([]byte, IndexType) {
	indexType := IndexTypeFor(glyphCount * 4)
	count := int(glyphCount) * 6

	switch indexType {
	case IndexTypeU8:
		buf := make([]uint8, count)
		// The type was chosen to fit, emission cannot overflow.
		_ = EmitQuadIndices(0, buf)
		return buf, indexType

	case IndexTypeU16:
		buf := make([]uint16, count)
		_ = EmitQuadIndices(0, buf)
		out := make([]byte, count*2)
		for i, v := range buf {
			binary.LittleEndian.PutUint16(out[i*2:], v)
		}
		return out, indexType

	default:
		buf := make([]uint32, count)
		_ = EmitQuadIndices(0, buf)
		out := make([]byte, count*4)
		for i, v := range buf {
			binary.LittleEndian.PutUint32(out[i*4:], v)
		}
		return out, indexType
	}
}
