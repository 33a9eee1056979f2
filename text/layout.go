package text

import (
	"github.com/barktree707/magnum"
)

// LayoutLine positions the glyphs of a single line, writing one position
// per glyph and advancing the pen cursor in place so successive calls can
// chain across lines.
//
// Offsets and advances come from a Shaper in font units at the font's
// native size; size is the rendering size and everything is scaled by
// size/font.Size(). Each position is written before its advance is applied,
// which makes it legal to pass the offsets slice as positions and convert
// shaper output to absolute positions in place.
//
// The returned rectangle spans the line's vertical metrics (descent to
// ascent around the initial baseline) and horizontally from the initial
// cursor to the furthest pen position reached. It reflects advances only;
// quads built later may extend beyond it. Cursor must be non-nil.
//
// Only DirectionHorizontalTopToBottom is supported. The slices must have
// equal length and the font must be open.
func LayoutLine(font Font, size float32, direction Direction,
	offsets, advances []magnum.Vec2, cursor *magnum.Vec2,
	positions []magnum.Vec2) (magnum.Rect, error) {

	if direction != DirectionHorizontalTopToBottom {
		return magnum.Rect{}, &UnsupportedDirectionError{Got: direction}
	}
	if len(advances) != len(offsets) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "advances", Got: len(advances), Want: len(offsets),
		}
	}
	if len(positions) != len(offsets) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "positions", Got: len(positions), Want: len(offsets),
		}
	}
	if font == nil || !font.IsOpen() {
		return magnum.Rect{}, ErrFontNotOpen
	}

	scale := size / font.Size()

	rect := magnum.Rect{
		Min: cursor.Add(magnum.V2(0, font.Descent()*scale)),
		Max: cursor.Add(magnum.V2(0, font.Ascent()*scale)),
	}

	for i := range offsets {
		// Write before advancing: positions may alias offsets.
		positions[i] = cursor.Add(offsets[i].Mul(scale))
		*cursor = cursor.Add(advances[i].Mul(scale))
		rect.Max = rect.Max.Max(*cursor)
	}

	return rect, nil
}
