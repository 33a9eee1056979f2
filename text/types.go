package text

import (
	"github.com/barktree707/magnum"
)

// GlyphID identifies a glyph inside a font. IDs are opaque, assigned by the
// shaper, and only meaningful together with the font that produced them.
type GlyphID uint32

// Glyph is one shaped glyph: its id plus the positioning the shaper chose.
// Offset is a fine-grained adjustment relative to the current pen position;
// Advance is how far the pen moves after the glyph.
// Both are in font units at the font's native size.
type Glyph struct {
	ID      GlyphID
	Offset  magnum.Vec2
	Advance magnum.Vec2
}

// Direction is the progression of lines in laid-out text.
type Direction uint8

const (
	// DirectionHorizontalTopToBottom lays out horizontal lines advancing
	// downward. This is the only direction the layout and alignment
	// functions currently accept.
	DirectionHorizontalTopToBottom Direction = iota

	// DirectionVerticalLeftToRight lays out vertical lines advancing right.
	DirectionVerticalLeftToRight

	// DirectionVerticalRightToLeft lays out vertical lines advancing left.
	DirectionVerticalRightToLeft
)

const unknownStr = "Unknown"

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionHorizontalTopToBottom:
		return "HorizontalTopToBottom"
	case DirectionVerticalLeftToRight:
		return "VerticalLeftToRight"
	case DirectionVerticalRightToLeft:
		return "VerticalRightToLeft"
	default:
		return unknownStr
	}
}

// Vertex is one corner of a glyph quad: a position and the matching
// texture coordinate into the glyph cache atlas. The layout is two packed
// float32 pairs (16 bytes), uploadable to a GPU vertex buffer as-is.
type Vertex struct {
	Position magnum.Vec2
	TexCoord magnum.Vec2
}
