package text

import (
	"sync"
)

// StaticCache is a GlyphCache populated programmatically: the caller adds
// fonts and glyph placements, the engine reads them. It performs no
// rasterization or packing of its own, which keeps it suitable both for
// tests with hand-placed rectangles and for atlases prebuilt by external
// tooling.
//
// Fonts are compared by identity. StaticCache is safe for concurrent use,
// but the engine does not serialize renders against concurrent population;
// callers doing both at once must coordinate externally.
type StaticCache struct {
	width, height, layers int

	mu    sync.RWMutex
	fonts map[Font]map[GlyphID]CachedGlyph
}

// NewStaticCache creates an empty cache describing an atlas of the given
// texel dimensions and array layer count.
func NewStaticCache(width, height, layers int) (*StaticCache, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, ErrInvalidCacheSize
	}
	return &StaticCache{
		width:  width,
		height: height,
		layers: layers,
		fonts:  make(map[Font]map[GlyphID]CachedGlyph),
	}, nil
}

// AddFont registers a font with the cache. Adding a glyph registers its
// font implicitly; AddFont exists for fonts whose glyphs all fall back to
// the zero entry.
func (c *StaticCache) AddFont(font Font) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fonts[font]; !ok {
		c.fonts[font] = make(map[GlyphID]CachedGlyph)
	}
}

// AddGlyph stores the atlas placement for one glyph of the font.
func (c *StaticCache) AddGlyph(font Font, id GlyphID, glyph CachedGlyph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	glyphs, ok := c.fonts[font]
	if !ok {
		glyphs = make(map[GlyphID]CachedGlyph)
		c.fonts[font] = glyphs
	}
	glyphs[id] = glyph
}

// Size implements GlyphCache.
func (c *StaticCache) Size() (width, height, layers int) {
	return c.width, c.height, c.layers
}

// FindFont implements GlyphCache.
func (c *StaticCache) FindFont(font Font) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.fonts[font]
	return ok
}

// Glyph implements GlyphCache. Unknown glyphs return the zero fallback.
func (c *StaticCache) Glyph(font Font, id GlyphID) CachedGlyph {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fonts[font][id]
}
