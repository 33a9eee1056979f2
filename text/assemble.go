package text

import (
	"fmt"
	"strings"

	"github.com/barktree707/magnum"
)

// RenderText lays out a whole multi-line string and returns its quad
// geometry: 4 interleaved vertices per glyph in glyph-then-line order, plus
// the bounding rectangle of the block-aligned result.
//
// The string is split on '\n'. Each line is shaped with the font's Shaper,
// laid out with LayoutLine from the line's origin, expanded into quads with
// BuildQuads and horizontally aligned with AlignLine; lines stack downward
// by the font's line height scaled to size, the first baseline at y=0.
// Empty lines produce no geometry but still advance the vertical cursor.
// After the last line the whole vertex set is vertically aligned with
// AlignBlock over the union of the aligned line rectangles.
//
// Whether a line aligns against its advance-based rectangle or its tight
// glyph-quad rectangle is selected by alignment.GlyphBounds.
//
// The font must be open and present in cache, and the cache single-layer.
// A shaping failure aborts the whole render and returns no geometry.
func RenderText(font Font, cache GlyphCache, size float32, str string,
	alignment Alignment) ([]Vertex, magnum.Rect, error) {

	positions, texCoords, rect, err := renderVertices(font, cache, size, str, alignment)
	if err != nil {
		return nil, magnum.Rect{}, err
	}

	vertices := make([]Vertex, len(positions))
	for i := range vertices {
		vertices[i] = Vertex{Position: positions[i], TexCoord: texCoords[i]}
	}
	return vertices, rect, nil
}

// Render is the one-shot convenience over RenderText: the same pipeline,
// returning deinterleaved position and texture-coordinate arrays together
// with ready-made 32-bit triangle indices for all rendered quads.
func Render(font Font, cache GlyphCache, size float32, str string,
	alignment Alignment) (positions, texCoords []magnum.Vec2,
	indices []uint32, rect magnum.Rect, err error) {

	positions, texCoords, rect, err = renderVertices(font, cache, size, str, alignment)
	if err != nil {
		return nil, nil, nil, magnum.Rect{}, err
	}

	glyphCount := len(positions) / 4
	indices = make([]uint32, glyphCount*6)
	if err := EmitQuadIndices(0, indices); err != nil {
		// 32-bit indices cover any glyph count this engine can produce.
		return nil, nil, nil, magnum.Rect{}, err
	}
	return positions, texCoords, indices, rect, nil
}

// renderVertices runs the per-line pipeline over the whole string and
// produces deinterleaved vertex data, 4 entries per glyph.
func renderVertices(font Font, cache GlyphCache, size float32, str string,
	alignment Alignment) (positions, texCoords []magnum.Vec2, rect magnum.Rect, err error) {

	if font == nil || !font.IsOpen() {
		return nil, nil, magnum.Rect{}, ErrFontNotOpen
	}
	_, _, layers := cache.Size()
	if layers != 1 {
		return nil, nil, magnum.Rect{}, ErrArrayCacheUnsupported
	}
	if !cache.FindFont(font) {
		return nil, nil, magnum.Rect{}, ErrFontNotInCache
	}

	// Pre-size for one glyph per input byte so shaping a typical line never
	// reallocates. Shapers may merge characters into fewer glyphs, so the
	// actual count only shrinks; append below handles the rare opposite.
	positions = make([]magnum.Vec2, 0, len(str)*4)
	texCoords = make([]magnum.Vec2, 0, len(str)*4)

	scale := size / font.Size()
	lineAdvance := magnum.V2(0, font.LineHeight()*scale)
	shaper := font.CreateShaper()

	// Per-line scratch, reused across lines.
	var (
		ids      []GlyphID
		offsets  []magnum.Vec2
		advances []magnum.Vec2
	)

	var linePosition magnum.Vec2
	remaining := str
	for lineIndex := 0; ; lineIndex++ {
		line, rest, more := strings.Cut(remaining, "\n")

		// An empty line followed by another contributes nothing; a trailing
		// empty line still goes through layout so its vertical metrics
		// extend the block rectangle.
		if line != "" || !more {
			glyphCount, err := shaper.Shape(line)
			if err != nil {
				return nil, nil, magnum.Rect{}, fmt.Errorf("text: shaping line %d: %w", lineIndex, err)
			}
			if glyphCount > cap(ids) {
				ids = make([]GlyphID, glyphCount)
				offsets = make([]magnum.Vec2, glyphCount)
				advances = make([]magnum.Vec2, glyphCount)
			}
			ids = ids[:glyphCount]
			offsets = offsets[:glyphCount]
			advances = advances[:glyphCount]
			shaper.GlyphIDsInto(ids)
			shaper.GlyphOffsetsAdvancesInto(offsets, advances)

			// Lay out from the line origin, converting the shaper offsets to
			// absolute glyph positions in place.
			cursor := linePosition
			lineRect, err := LayoutLine(font, size, DirectionHorizontalTopToBottom,
				offsets, advances, &cursor, offsets)
			if err != nil {
				return nil, nil, magnum.Rect{}, err
			}

			// Expand into quads appended after the previous lines' vertices.
			lineStart := len(positions)
			positions = append(positions, make([]magnum.Vec2, glyphCount*4)...)
			texCoords = append(texCoords, make([]magnum.Vec2, glyphCount*4)...)
			quadRect, err := BuildQuads(font, size, cache, offsets, ids,
				positions[lineStart:], texCoords[lineStart:])
			if err != nil {
				return nil, nil, magnum.Rect{}, err
			}

			lineAlignRect := lineRect
			if alignment.GlyphBounds {
				lineAlignRect = quadRect
			}
			alignedRect, err := AlignLine(lineAlignRect, DirectionHorizontalTopToBottom,
				alignment, positions[lineStart:])
			if err != nil {
				return nil, nil, magnum.Rect{}, err
			}
			rect = rect.Union(alignedRect)
		}

		if !more {
			break
		}
		remaining = rest
		linePosition = linePosition.Sub(lineAdvance)
	}

	rect, err = AlignBlock(rect, DirectionHorizontalTopToBottom, alignment, positions)
	if err != nil {
		return nil, nil, magnum.Rect{}, err
	}
	return positions, texCoords, rect, nil
}
