package text

import (
	"github.com/barktree707/magnum"
)

// CachedGlyph is the atlas placement of one glyph: where its quad sits
// relative to the pen position, which atlas layer holds it, and the texel
// rectangle of its bitmap. A zero CachedGlyph is the fallback for glyphs a
// cache does not hold; its empty rectangle produces a degenerate quad.
type CachedGlyph struct {
	// Offset positions the quad's bottom-left corner relative to the pen,
	// in font texels at the cache's rasterization size.
	Offset magnum.Vec2i

	// Layer is the atlas array layer holding the glyph bitmap.
	Layer int32

	// Rect is the glyph bitmap rectangle inside the atlas, in texels.
	Rect magnum.Recti
}

// GlyphCache is the capability the engine consumes from a glyph atlas.
// Population and packing happen elsewhere; the engine only reads. Caches
// are borrowed and may be shared read-only across renderers, but the
// engine provides no synchronization against concurrent population.
type GlyphCache interface {
	// Size returns the atlas texture dimensions and array layer count.
	Size() (width, height, layers int)

	// FindFont reports whether the font has an entry in this cache.
	FindFont(font Font) bool

	// Glyph returns the atlas placement for a glyph of the given font.
	// Unknown glyphs resolve to the cache's fallback entry, typically the
	// zero CachedGlyph; this is never an error.
	Glyph(font Font, id GlyphID) CachedGlyph
}
