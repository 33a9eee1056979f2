package text

import (
	"errors"
	"sync"
	"testing"

	"github.com/barktree707/magnum"
)

func TestNewStaticCache(t *testing.T) {
	cache, err := NewStaticCache(64, 32, 2)
	if err != nil {
		t.Fatalf("NewStaticCache failed: %v", err)
	}

	w, h, layers := cache.Size()
	if w != 64 || h != 32 || layers != 2 {
		t.Errorf("Size() = (%d, %d, %d), want (64, 32, 2)", w, h, layers)
	}
}

func TestNewStaticCache_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		layers        int
	}{
		{"zero width", 0, 32, 1},
		{"negative height", 64, -1, 1},
		{"zero layers", 64, 32, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticCache(tt.width, tt.height, tt.layers)
			if !errors.Is(err, ErrInvalidCacheSize) {
				t.Errorf("got %v, want ErrInvalidCacheSize", err)
			}
		})
	}
}

func TestStaticCache_FindFont(t *testing.T) {
	cache := newTestCache(t, 1)
	font := newFakeFont()

	if cache.FindFont(font) {
		t.Error("FindFont() = true before AddFont")
	}
	cache.AddFont(font)
	if !cache.FindFont(font) {
		t.Error("FindFont() = false after AddFont")
	}

	// Fonts are compared by identity, not by value.
	other := newFakeFont()
	if cache.FindFont(other) {
		t.Error("FindFont() = true for a different font instance")
	}
}

func TestStaticCache_Glyph(t *testing.T) {
	cache := newTestCache(t, 1)
	font := newFakeFont()

	want := CachedGlyph{
		Offset: magnum.V2i(1, -2),
		Layer:  0,
		Rect:   magnum.Recti{Min: magnum.V2i(4, 8), Max: magnum.V2i(12, 20)},
	}
	cache.AddGlyph(font, 7, want)

	// Adding a glyph registers its font implicitly.
	if !cache.FindFont(font) {
		t.Error("FindFont() = false after AddGlyph")
	}
	if got := cache.Glyph(font, 7); got != want {
		t.Errorf("Glyph() = %+v, want %+v", got, want)
	}

	// Unknown ids and fonts fall back to the zero entry.
	if got := cache.Glyph(font, 8); got != (CachedGlyph{}) {
		t.Errorf("Glyph() for unknown id = %+v, want zero", got)
	}
	if got := cache.Glyph(newFakeFont(), 7); got != (CachedGlyph{}) {
		t.Errorf("Glyph() for unknown font = %+v, want zero", got)
	}
}

// TestStaticCache_AddFontKeepsGlyphs re-adds a registered font: its glyphs
// survive.
func TestStaticCache_AddFontKeepsGlyphs(t *testing.T) {
	cache := newTestCache(t, 1)
	font := newFakeFont()

	glyph := CachedGlyph{Rect: magnum.Recti{Max: magnum.V2i(4, 4)}}
	cache.AddGlyph(font, 3, glyph)
	cache.AddFont(font)

	if got := cache.Glyph(font, 3); got != glyph {
		t.Errorf("Glyph() = %+v, want %+v after re-adding the font", got, glyph)
	}
}

func TestStaticCache_Overwrite(t *testing.T) {
	cache := newTestCache(t, 1)
	font := newFakeFont()

	cache.AddGlyph(font, 3, CachedGlyph{Layer: 0})
	updated := CachedGlyph{Layer: 0, Rect: magnum.Recti{Max: magnum.V2i(8, 8)}}
	cache.AddGlyph(font, 3, updated)

	if got := cache.Glyph(font, 3); got != updated {
		t.Errorf("Glyph() = %+v, want updated %+v", got, updated)
	}
}

func TestStaticCache_Concurrent(t *testing.T) {
	cache := newTestCache(t, 1)
	font := newFakeFont()
	cache.AddFont(font)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				cache.AddGlyph(font, GlyphID(base*50+j), CachedGlyph{})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = cache.Glyph(font, GlyphID(j))
				_ = cache.FindFont(font)
			}
		}()
	}
	wg.Wait()
}
