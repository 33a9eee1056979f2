package gpubuf

import "strings"

// BufferID is an opaque handle to a device buffer. Each device
// implementation maintains a mapping between IDs and actual backend
// resources. IDs are uint64 to accommodate various backend handle sizes.
type BufferID uint64

// InvalidID is the zero value, representing an invalid/null buffer.
const InvalidID BufferID = 0

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageMapRead indicates the buffer can be mapped for reading.
	BufferUsageMapRead BufferUsage = 1 << 0

	// BufferUsageMapWrite indicates the buffer can be mapped for writing.
	BufferUsageMapWrite BufferUsage = 1 << 1

	// BufferUsageCopySrc indicates the buffer can be used as a copy source.
	BufferUsageCopySrc BufferUsage = 1 << 2

	// BufferUsageCopyDst indicates the buffer can be used as a copy destination.
	BufferUsageCopyDst BufferUsage = 1 << 3

	// BufferUsageIndex indicates the buffer can be used as an index buffer.
	BufferUsageIndex BufferUsage = 1 << 4

	// BufferUsageVertex indicates the buffer can be used as a vertex buffer.
	BufferUsageVertex BufferUsage = 1 << 5
)

// String returns the set flags joined by "|", e.g. "MapWrite|Vertex".
func (u BufferUsage) String() string {
	if u == 0 {
		return "None"
	}
	names := [...]struct {
		flag BufferUsage
		name string
	}{
		{BufferUsageMapRead, "MapRead"},
		{BufferUsageMapWrite, "MapWrite"},
		{BufferUsageCopySrc, "CopySrc"},
		{BufferUsageCopyDst, "CopyDst"},
		{BufferUsageIndex, "Index"},
		{BufferUsageVertex, "Vertex"},
	}
	var b strings.Builder
	for _, n := range names {
		if u&n.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	if b.Len() == 0 {
		return unknownStr
	}
	return b.String()
}

// UsageHint describes the expected update frequency of a buffer, letting
// backends pick a memory placement. It mirrors the classic
// static/dynamic/stream triad of GPU APIs.
type UsageHint uint8

const (
	// UsageHintStatic marks a buffer written once and drawn many times.
	UsageHintStatic UsageHint = iota

	// UsageHintDynamic marks a buffer rewritten occasionally.
	UsageHintDynamic

	// UsageHintStream marks a buffer rewritten on nearly every use.
	UsageHintStream
)

const unknownStr = "Unknown"

// String returns the hint name.
func (h UsageHint) String() string {
	switch h {
	case UsageHintStatic:
		return "Static"
	case UsageHintDynamic:
		return "Dynamic"
	case UsageHintStream:
		return "Stream"
	default:
		return unknownStr
	}
}

// BufferDescriptor describes parameters for creating a buffer.
type BufferDescriptor struct {
	// Label is an optional debug label for the buffer.
	Label string

	// Size is the buffer size in bytes. Must be positive.
	Size uint64

	// Usage specifies how the buffer will be used.
	Usage BufferUsage

	// Hint describes the expected update frequency.
	Hint UsageHint
}
