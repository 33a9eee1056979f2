package text

import (
	"github.com/barktree707/magnum"
)

// BuildQuads expands positioned glyphs into per-glyph vertex quads using
// the glyph cache's atlas placements, writing 4 vertices per glyph in the
// fixed corner order bottom-left, bottom-right, top-left, top-right.
// Texture coordinates are normalized to [0,1] over the atlas size.
//
// outPositions and outTexCoords must hold 4*len(ids) elements. The font
// must be open and present in the cache, and the cache must be
// single-layer; use BuildQuadsLayered for array atlases.
//
// The returned rectangle is the union of the emitted quads, the tight
// glyph bounds as opposed to the advance-based rectangle of LayoutLine.
// Degenerate quads (whitespace and fallback entries rasterize to nothing)
// do not extend it. Glyphs are processed in increasing order, so positions
// may share backing storage with the first vertex slot of each quad in
// outPositions.
func BuildQuads(font Font, size float32, cache GlyphCache,
	positions []magnum.Vec2, ids []GlyphID,
	outPositions, outTexCoords []magnum.Vec2) (magnum.Rect, error) {

	_, _, layers := cache.Size()
	if layers != 1 {
		return magnum.Rect{}, ErrArrayCacheUnsupported
	}
	return buildQuads(font, size, cache, positions, ids, outPositions, outTexCoords, nil)
}

// BuildQuadsLayered is BuildQuads for array glyph caches: the atlas layer
// of each glyph is broadcast to its 4 vertices in outLayers, which must
// hold 4*len(ids) elements like the other outputs.
func BuildQuadsLayered(font Font, size float32, cache GlyphCache,
	positions []magnum.Vec2, ids []GlyphID,
	outPositions, outTexCoords []magnum.Vec2,
	outLayers []int32) (magnum.Rect, error) {

	if len(outLayers) != 4*len(ids) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "output layers", Got: len(outLayers), Want: 4 * len(ids),
		}
	}
	return buildQuads(font, size, cache, positions, ids, outPositions, outTexCoords, outLayers)
}

func buildQuads(font Font, size float32, cache GlyphCache,
	positions []magnum.Vec2, ids []GlyphID,
	outPositions, outTexCoords []magnum.Vec2,
	outLayers []int32) (magnum.Rect, error) {

	if len(ids) != len(positions) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "glyph ids", Got: len(ids), Want: len(positions),
		}
	}
	if len(outPositions) != 4*len(ids) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "output positions", Got: len(outPositions), Want: 4 * len(ids),
		}
	}
	if len(outTexCoords) != 4*len(ids) {
		return magnum.Rect{}, &SizeMismatchError{
			What: "output texture coordinates", Got: len(outTexCoords), Want: 4 * len(ids),
		}
	}
	if font == nil || !font.IsOpen() {
		return magnum.Rect{}, ErrFontNotOpen
	}
	if !cache.FindFont(font) {
		return magnum.Rect{}, ErrFontNotInCache
	}

	scale := size / font.Size()
	width, height, _ := cache.Size()
	invCacheSize := magnum.V2(1/float32(width), 1/float32(height))

	var rect magnum.Rect
	for i := range ids {
		g := cache.Glyph(font, ids[i])

		quadMin := positions[i].Add(g.Offset.Vec2().Mul(scale))
		quadMax := quadMin.Add(g.Rect.Size().Vec2().Mul(scale))
		texMin := magnum.V2(float32(g.Rect.Min.X)*invCacheSize.X, float32(g.Rect.Min.Y)*invCacheSize.Y)
		texMax := magnum.V2(float32(g.Rect.Max.X)*invCacheSize.X, float32(g.Rect.Max.Y)*invCacheSize.Y)

		for j := 0; j < 4; j++ {
			outPositions[i*4+j] = quadCorner(quadMin, quadMax, j)
			outTexCoords[i*4+j] = quadCorner(texMin, texMax, j)
			if outLayers != nil {
				outLayers[i*4+j] = g.Layer
			}
		}

		rect = rect.Union(magnum.Rect{Min: quadMin, Max: quadMax})
	}

	return rect, nil
}

// quadCorner selects a rectangle corner by index: bit 0 picks the right
// edge, bit 1 the top edge, giving the order bottom-left, bottom-right,
// top-left, top-right.
func quadCorner(min, max magnum.Vec2, j int) magnum.Vec2 {
	c := min
	if j&1 != 0 {
		c.X = max.X
	}
	if j&2 != 0 {
		c.Y = max.Y
	}
	return c
}
