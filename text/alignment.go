package text

import (
	"math"

	"github.com/barktree707/magnum"
)

// HorizontalAlignment anchors lines on the x axis.
type HorizontalAlignment uint8

const (
	// HorizontalLeft anchors the left edge at x=0.
	HorizontalLeft HorizontalAlignment = iota

	// HorizontalCenter centers around x=0.
	HorizontalCenter

	// HorizontalRight anchors the right edge at x=0.
	HorizontalRight
)

// String returns the alignment name.
func (h HorizontalAlignment) String() string {
	switch h {
	case HorizontalLeft:
		return "Left"
	case HorizontalCenter:
		return "Center"
	case HorizontalRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAlignment anchors a text block on the y axis.
type VerticalAlignment uint8

const (
	// VerticalBaseline keeps the first line's baseline at y=0, applying no
	// vertical shift.
	VerticalBaseline VerticalAlignment = iota

	// VerticalBottom anchors the block's bottom edge at y=0.
	VerticalBottom

	// VerticalMiddle centers the block around y=0.
	VerticalMiddle

	// VerticalTop anchors the block's top edge at y=0.
	VerticalTop
)

// String returns the alignment name.
func (v VerticalAlignment) String() string {
	switch v {
	case VerticalBaseline:
		return "Baseline"
	case VerticalBottom:
		return "Bottom"
	case VerticalMiddle:
		return "Middle"
	case VerticalTop:
		return "Top"
	default:
		return unknownStr
	}
}

// Alignment is the policy for anchoring rendered text around the origin.
// The two axes are independent; Integral rounds the Center/Middle shift to
// whole units (useful for pixel-snapped rendering) and has no effect on the
// other anchors; GlyphBounds selects whether lines align against their
// tight glyph-quad rectangle instead of the advance-based line rectangle.
//
// The zero value is baseline-left: the layout's natural placement.
type Alignment struct {
	Horizontal  HorizontalAlignment
	Vertical    VerticalAlignment
	Integral    bool
	GlyphBounds bool
}

// Common alignment values.
var (
	AlignLineLeft             = Alignment{Horizontal: HorizontalLeft, Vertical: VerticalBaseline}
	AlignLineCenter           = Alignment{Horizontal: HorizontalCenter, Vertical: VerticalBaseline}
	AlignLineRight            = Alignment{Horizontal: HorizontalRight, Vertical: VerticalBaseline}
	AlignBottomLeft           = Alignment{Horizontal: HorizontalLeft, Vertical: VerticalBottom}
	AlignMiddleCenter         = Alignment{Horizontal: HorizontalCenter, Vertical: VerticalMiddle}
	AlignMiddleCenterIntegral = Alignment{Horizontal: HorizontalCenter, Vertical: VerticalMiddle, Integral: true}
	AlignTopLeft              = Alignment{Horizontal: HorizontalLeft, Vertical: VerticalTop}
	AlignTopRight             = Alignment{Horizontal: HorizontalRight, Vertical: VerticalTop}
)

// AlignLine shifts one line's positions horizontally according to the
// alignment and returns the rectangle translated by the same amount. The
// caller chooses which rectangle anchors the line: the advance-based line
// rectangle, or the glyph-quad rectangle when Alignment.GlyphBounds is set.
//
// The shift is a single scalar applied to every position in place. Only
// DirectionHorizontalTopToBottom is supported.
func AlignLine(rect magnum.Rect, direction Direction, alignment Alignment,
	positions []magnum.Vec2) (magnum.Rect, error) {

	if direction != DirectionHorizontalTopToBottom {
		return magnum.Rect{}, &UnsupportedDirectionError{Got: direction}
	}

	var offset float32
	switch alignment.Horizontal {
	case HorizontalLeft:
		offset = -rect.Left()
	case HorizontalCenter:
		offset = -rect.CenterX()
		if alignment.Integral {
			offset = roundf(offset)
		}
	case HorizontalRight:
		offset = -rect.Right()
	}

	for i := range positions {
		positions[i].X += offset
	}

	return rect.Translated(magnum.V2(offset, 0)), nil
}

// AlignBlock shifts a whole block's positions vertically according to the
// alignment and returns the rectangle translated by the same amount. It is
// applied once, after all lines have been laid out and line-aligned, over
// the union of the line rectangles.
//
// Only DirectionHorizontalTopToBottom is supported.
func AlignBlock(rect magnum.Rect, direction Direction, alignment Alignment,
	positions []magnum.Vec2) (magnum.Rect, error) {

	if direction != DirectionHorizontalTopToBottom {
		return magnum.Rect{}, &UnsupportedDirectionError{Got: direction}
	}

	var offset float32
	switch alignment.Vertical {
	case VerticalBaseline:
		// Natural placement, no shift.
	case VerticalBottom:
		offset = -rect.Bottom()
	case VerticalMiddle:
		offset = -rect.CenterY()
		if alignment.Integral {
			offset = roundf(offset)
		}
	case VerticalTop:
		offset = -rect.Top()
	}

	for i := range positions {
		positions[i].Y += offset
	}

	return rect.Translated(magnum.V2(0, offset)), nil
}

// roundf rounds to the nearest whole unit, halves away from zero.
func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}
