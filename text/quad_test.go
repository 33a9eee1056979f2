package text

import (
	"errors"
	"testing"

	"github.com/barktree707/magnum"
)

// newTestCache builds a 64x32 atlas cache with the given layer count.
func newTestCache(t *testing.T, layers int) *StaticCache {
	t.Helper()

	cache, err := NewStaticCache(64, 32, layers)
	if err != nil {
		t.Fatalf("NewStaticCache failed: %v", err)
	}
	return cache
}

func TestBuildQuads_Corners(t *testing.T) {
	font := newFakeFont()
	cache := newTestCache(t, 1)
	cache.AddGlyph(font, GlyphID('A'), CachedGlyph{
		Offset: magnum.V2i(1, 2),
		Rect:   magnum.Recti{Min: magnum.V2i(10, 20), Max: magnum.V2i(18, 30)},
	})

	positions := []magnum.Vec2{magnum.V2(100, 50)}
	ids := []GlyphID{GlyphID('A')}
	outPositions := make([]magnum.Vec2, 4)
	outTexCoords := make([]magnum.Vec2, 4)

	// Size 20 over native size 10 scales offsets and quad sizes by 2.
	rect, err := BuildQuads(font, 20, cache, positions, ids, outPositions, outTexCoords)
	if err != nil {
		t.Fatalf("BuildQuads failed: %v", err)
	}

	// Corner order is bottom-left, bottom-right, top-left, top-right.
	wantPositions := []magnum.Vec2{
		magnum.V2(102, 54),
		magnum.V2(118, 54),
		magnum.V2(102, 74),
		magnum.V2(118, 74),
	}
	for i, p := range outPositions {
		if p != wantPositions[i] {
			t.Errorf("outPositions[%d] = %v, want %v", i, p, wantPositions[i])
		}
	}

	// Texture coordinates are texel rectangles over the 64x32 atlas.
	wantTexCoords := []magnum.Vec2{
		magnum.V2(0.15625, 0.625),
		magnum.V2(0.28125, 0.625),
		magnum.V2(0.15625, 0.9375),
		magnum.V2(0.28125, 0.9375),
	}
	for i, tc := range outTexCoords {
		if tc != wantTexCoords[i] {
			t.Errorf("outTexCoords[%d] = %v, want %v", i, tc, wantTexCoords[i])
		}
	}

	wantRect := magnum.Rect{Min: magnum.V2(102, 54), Max: magnum.V2(118, 74)}
	if rect != wantRect {
		t.Errorf("rect = %v, want %v", rect, wantRect)
	}
}

// TestBuildQuads_DegenerateFallback renders a glyph the cache does not
// hold: the zero fallback entry collapses the quad to a point at the pen
// and must not extend the bounding rectangle.
func TestBuildQuads_DegenerateFallback(t *testing.T) {
	font := newFakeFont()
	cache := newTestCache(t, 1)
	cache.AddGlyph(font, GlyphID('A'), CachedGlyph{
		Rect: magnum.Recti{Min: magnum.V2i(0, 0), Max: magnum.V2i(4, 5)},
	})

	positions := []magnum.Vec2{magnum.V2(0, 0), magnum.V2(600, 600)}
	ids := []GlyphID{GlyphID('A'), GlyphID('X')}
	outPositions := make([]magnum.Vec2, 8)
	outTexCoords := make([]magnum.Vec2, 8)

	rect, err := BuildQuads(font, 10, cache, positions, ids, outPositions, outTexCoords)
	if err != nil {
		t.Fatalf("BuildQuads failed: %v", err)
	}

	for j := 4; j < 8; j++ {
		if outPositions[j] != magnum.V2(600, 600) {
			t.Errorf("fallback corner %d = %v, want (600, 600)", j-4, outPositions[j])
		}
		if outTexCoords[j] != (magnum.Vec2{}) {
			t.Errorf("fallback texcoord %d = %v, want zero", j-4, outTexCoords[j])
		}
	}

	wantRect := magnum.Rect{Min: magnum.V2(0, 0), Max: magnum.V2(4, 5)}
	if rect != wantRect {
		t.Errorf("rect = %v, want %v (degenerate quad extended it)", rect, wantRect)
	}
}

func TestBuildQuadsLayered(t *testing.T) {
	font := newFakeFont()
	cache := newTestCache(t, 3)
	cache.AddGlyph(font, GlyphID('A'), CachedGlyph{
		Layer: 2,
		Rect:  magnum.Recti{Min: magnum.V2i(0, 0), Max: magnum.V2i(4, 5)},
	})

	positions := []magnum.Vec2{{}}
	ids := []GlyphID{GlyphID('A')}
	outPositions := make([]magnum.Vec2, 4)
	outTexCoords := make([]magnum.Vec2, 4)
	outLayers := make([]int32, 4)

	if _, err := BuildQuadsLayered(font, 10, cache, positions, ids,
		outPositions, outTexCoords, outLayers); err != nil {
		t.Fatalf("BuildQuadsLayered failed: %v", err)
	}

	// The glyph's layer is broadcast to all 4 corners.
	for i, l := range outLayers {
		if l != 2 {
			t.Errorf("outLayers[%d] = %d, want 2", i, l)
		}
	}
}

func TestBuildQuads_Errors(t *testing.T) {
	font := newFakeFont()
	cache := newTestCache(t, 1)
	cache.AddFont(font)

	positions := []magnum.Vec2{{}}
	ids := []GlyphID{GlyphID('A')}
	out4 := make([]magnum.Vec2, 4)

	t.Run("array cache", func(t *testing.T) {
		layered := newTestCache(t, 2)
		layered.AddFont(font)
		_, err := BuildQuads(font, 10, layered, positions, ids, out4, out4)
		if !errors.Is(err, ErrArrayCacheUnsupported) {
			t.Errorf("got %v, want ErrArrayCacheUnsupported", err)
		}
	})

	t.Run("id count mismatch", func(t *testing.T) {
		_, err := BuildQuads(font, 10, cache, positions, ids[:0], out4, out4)
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("got %v, want SizeMismatchError", err)
		}
	})

	t.Run("output positions mismatch", func(t *testing.T) {
		_, err := BuildQuads(font, 10, cache, positions, ids, out4[:3], out4)
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("got %v, want SizeMismatchError", err)
		}
	})

	t.Run("output layers mismatch", func(t *testing.T) {
		layered := newTestCache(t, 2)
		layered.AddFont(font)
		_, err := BuildQuadsLayered(font, 10, layered, positions, ids, out4, out4, nil)
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("got %v, want SizeMismatchError", err)
		}
	})

	t.Run("closed font", func(t *testing.T) {
		closed := newFakeFont()
		closed.open = false
		_, err := BuildQuads(closed, 10, cache, positions, ids, out4, out4)
		if !errors.Is(err, ErrFontNotOpen) {
			t.Errorf("got %v, want ErrFontNotOpen", err)
		}
	})

	t.Run("font not in cache", func(t *testing.T) {
		stranger := newFakeFont()
		_, err := BuildQuads(stranger, 10, cache, positions, ids, out4, out4)
		if !errors.Is(err, ErrFontNotInCache) {
			t.Errorf("got %v, want ErrFontNotInCache", err)
		}
	})
}

func TestQuadCorner(t *testing.T) {
	min := magnum.V2(1, 2)
	max := magnum.V2(3, 4)

	tests := []struct {
		j      int
		expect magnum.Vec2
	}{
		{0, magnum.V2(1, 2)},
		{1, magnum.V2(3, 2)},
		{2, magnum.V2(1, 4)},
		{3, magnum.V2(3, 4)},
	}
	for _, tt := range tests {
		if got := quadCorner(min, max, tt.j); got != tt.expect {
			t.Errorf("quadCorner(%d) = %v, want %v", tt.j, got, tt.expect)
		}
	}
}
