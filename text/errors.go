package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrFontNotOpen is returned when an operation requires an open font.
	ErrFontNotOpen = errors.New("text: font not open")

	// ErrFontNotInCache is returned when a font has no entry in the glyph
	// cache passed alongside it.
	ErrFontNotInCache = errors.New("text: font not found in glyph cache")

	// ErrArrayCacheUnsupported is returned when a single-layer operation is
	// used with a cache that has multiple array layers.
	ErrArrayCacheUnsupported = errors.New("text: array glyph caches are not supported here")

	// ErrNotReserved is returned when drawing through a renderer that has
	// no reserved capacity yet.
	ErrNotReserved = errors.New("text: renderer has no reserved capacity")

	// ErrNoDevice is returned when a renderer is created without a buffer
	// device and none is registered.
	ErrNoDevice = errors.New("text: no buffer device available")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFontSize is returned when a font is opened at a
	// non-positive size.
	ErrInvalidFontSize = errors.New("text: font size must be positive")

	// ErrInvalidCacheSize is returned when a glyph cache is created with
	// non-positive dimensions or layer count.
	ErrInvalidCacheSize = errors.New("text: glyph cache size must be positive")
)

// SizeMismatchError is returned when parallel input/output slices disagree
// in length.
type SizeMismatchError struct {
	What string
	Got  int
	Want int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("text: %s length %d, expected %d", e.What, e.Got, e.Want)
}

// UnsupportedDirectionError is returned for layout directions other than
// horizontal top-to-bottom.
type UnsupportedDirectionError struct {
	Got Direction
}

func (e *UnsupportedDirectionError) Error() string {
	return fmt.Sprintf("text: only %v is supported, got %v",
		DirectionHorizontalTopToBottom, e.Got)
}

// IndexOverflowError is returned when an emitted vertex index cannot fit
// the chosen index element width.
type IndexOverflowError struct {
	MaxValue uint64
	Bits     int
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("text: max index value %d cannot fit into a %d-bit type",
		e.MaxValue, e.Bits)
}

// CapacityError is returned when rendered text needs more glyphs than the
// renderer reserved.
type CapacityError struct {
	Capacity   uint32
	GlyphCount uint32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("text: capacity %d too small to render %d glyphs",
		e.Capacity, e.GlyphCount)
}

// BufferTooLargeError is returned when a reservation would exceed the
// device's maximum buffer size.
type BufferTooLargeError struct {
	Size, Max uint64
}

func (e *BufferTooLargeError) Error() string {
	return fmt.Sprintf("text: buffer size %d exceeds device limit %d", e.Size, e.Max)
}
