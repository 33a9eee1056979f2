// Package text turns shaped glyph runs into positioned, aligned quad
// geometry ready for GPU rendering.
//
// # Pipeline
//
// The engine is layered, leaves first:
//
//   - [LayoutLine] positions the glyphs of one line from shaper output and
//     font metrics, advancing a pen cursor.
//   - [BuildQuads] expands positioned glyphs into per-glyph vertex quads
//     using glyph cache atlas data.
//   - [AlignLine] and [AlignBlock] shift line and block geometry according
//     to an [Alignment] policy.
//   - [EmitQuadIndices] emits triangle indices for a run of quads at the
//     narrowest index width that fits.
//   - [RenderText] orchestrates the above per line of a multi-line string.
//   - [Renderer] reserves capacity-bounded vertex/index buffers on a
//     gpubuf device once and re-renders changing text into them without
//     reallocating.
//
// Fonts, shapers and glyph caches are consumed through the [Font],
// [Shaper] and [GlyphCache] capability interfaces; they are borrowed
// read-only and never mutated by the engine. [GoTextFont] provides a
// HarfBuzz-backed implementation via go-text/typesetting, and
// [StaticCache] a programmatically populated glyph cache.
//
// # Geometry conventions
//
// Coordinates are y-up with the first line's baseline at y=0; lines stack
// downward. Every glyph becomes one quad of 4 vertices in the fixed corner
// order bottom-left, bottom-right, top-left, top-right, indexed as the two
// triangles (0,1,2) and (2,1,3).
package text
