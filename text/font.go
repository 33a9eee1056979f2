package text

import (
	"github.com/barktree707/magnum"
)

// Font is the capability the engine consumes from a loaded font: its native
// size, vertical metrics at that size, and a shaper factory. Fonts are
// borrowed read-only; the engine never mutates or closes them.
//
// All metric accessors report values at the font's native Size(). Layout at
// a different rendering size scales them by renderSize/Size().
type Font interface {
	// Size returns the size the font was opened at, in points.
	Size() float32

	// Ascent returns the distance from the baseline to the top of the
	// font (positive, above baseline).
	Ascent() float32

	// Descent returns the distance from the baseline to the bottom of the
	// font (negative, below baseline).
	Descent() float32

	// LineHeight returns the baseline-to-baseline distance of consecutive
	// lines.
	LineHeight() float32

	// IsOpen reports whether the font is usable. Layout operations on a
	// closed font fail.
	IsOpen() bool

	// CreateShaper returns a new shaper for this font. Shapers are
	// lightweight and single-threaded; create one per rendering sequence.
	CreateShaper() Shaper
}

// Shaper converts one line of text into glyphs. A Shaper is stateful: Shape
// replaces the previous result, and the Into accessors read the current
// one. Shapers are not safe for concurrent use.
type Shaper interface {
	// Shape shapes a single line of text (no newlines) and returns the
	// number of glyphs produced. A shaping failure aborts the caller's
	// whole render.
	Shape(text string) (int, error)

	// GlyphCount returns the glyph count of the current shaping result.
	GlyphCount() int

	// GlyphIDsInto fills ids with the glyph ids of the current result.
	// len(ids) must be GlyphCount().
	GlyphIDsInto(ids []GlyphID)

	// GlyphOffsetsAdvancesInto fills offsets and advances of the current
	// result, in font units at the font's native size. Both slices must
	// have length GlyphCount().
	GlyphOffsetsAdvancesInto(offsets, advances []magnum.Vec2)
}
