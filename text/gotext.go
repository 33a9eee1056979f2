package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/barktree707/magnum"
)

// hbShaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state (buffer) and is NOT safe for concurrent use, but reusing
// instances across sequential shaping calls avoids reallocating that state.
var hbShaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// GoTextFont is a Font backed by go-text/typesetting's HarfBuzz
// implementation. Shaping through it supports the full OpenType feature
// set including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// A GoTextFont holds the parsed font.Font, which is read-only and safe for
// concurrent use; the per-shaper font.Face instances it hands out are not.
// Metric accessors report values at the size the font was opened with.
type GoTextFont struct {
	font *font.Font
	size float32

	ascent     float32
	descent    float32
	lineHeight float32

	open bool
}

// NewGoTextFont parses TTF or OTF font data and opens it at the given size.
// Vertical metrics come from the font's hhea table, scaled from font units
// to the requested size; fonts without horizontal extents get typographic
// fallback ratios.
func NewGoTextFont(data []byte, size float32) (*GoTextFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, ErrInvalidFontSize
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}

	f := &GoTextFont{
		font: parsed.Font,
		size: size,
		open: true,
	}

	if extents, ok := parsed.FontHExtents(); ok {
		scale := size / float32(parsed.Upem())
		f.ascent = extents.Ascender * scale
		f.descent = extents.Descender * scale
		f.lineHeight = (extents.Ascender - extents.Descender + extents.LineGap) * scale
	} else {
		// Typical ratios: 80% above the baseline, 20% below, 120% leading.
		f.ascent = size * 0.8
		f.descent = size * -0.2
		f.lineHeight = size * 1.2
	}

	magnum.Logger().Debug("font opened",
		"size", size,
		"ascent", f.ascent,
		"descent", f.descent,
		"lineHeight", f.lineHeight)
	return f, nil
}

// Size returns the size the font was opened at.
func (f *GoTextFont) Size() float32 { return f.size }

// Ascent returns the distance from the baseline to the font top, positive.
func (f *GoTextFont) Ascent() float32 { return f.ascent }

// Descent returns the distance from the baseline to the font bottom,
// negative.
func (f *GoTextFont) Descent() float32 { return f.descent }

// LineHeight returns the baseline-to-baseline distance.
func (f *GoTextFont) LineHeight() float32 { return f.lineHeight }

// IsOpen reports whether the font is usable.
func (f *GoTextFont) IsOpen() bool { return f.open }

// Close marks the font unusable. Shapers created from it fail afterwards.
func (f *GoTextFont) Close() error {
	f.open = false
	return nil
}

// CreateShaper returns a shaper for this font. The shaper wraps its own
// font.Face, which is NOT safe for concurrent use, so each rendering
// sequence gets its own instance. font.NewFace is cheap; it wraps the
// thread-safe *Font and initializes glyph caches.
func (f *GoTextFont) CreateShaper() Shaper {
	return &goTextShaper{
		font: f,
		face: font.NewFace(f.font),
	}
}

// goTextShaper shapes single lines through a pooled HarfbuzzShaper and
// keeps the last output for the Into accessors.
type goTextShaper struct {
	font *GoTextFont
	face *font.Face

	glyphs []shaping.Glyph
	dir    di.Direction
}

func (s *goTextShaper) Shape(text string) (int, error) {
	s.glyphs = nil
	if !s.font.open {
		return 0, ErrFontNotOpen
	}
	if text == "" {
		return 0, nil
	}

	runes := []rune(text)
	s.dir = baseDirection(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: s.dir,
		Face:      s.face,
		Size:      floatToFixed(s.font.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := hbShaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	hbShaperPool.Put(hbShaper)

	s.glyphs = output.Glyphs
	return len(s.glyphs), nil
}

func (s *goTextShaper) GlyphCount() int { return len(s.glyphs) }

func (s *goTextShaper) GlyphIDsInto(ids []GlyphID) {
	for i, g := range s.glyphs {
		ids[i] = GlyphID(g.GlyphID)
	}
}

func (s *goTextShaper) GlyphOffsetsAdvancesInto(offsets, advances []magnum.Vec2) {
	vertical := s.dir.IsVertical()
	for i, g := range s.glyphs {
		offsets[i] = magnum.V2(fixedToFloat(g.XOffset), fixedToFloat(g.YOffset))
		adv := fixedToFloat(g.Advance)
		if vertical {
			advances[i] = magnum.V2(0, adv)
		} else {
			advances[i] = magnum.V2(adv, 0)
		}
	}
}

// baseDirection resolves the paragraph base direction of a line per the
// Unicode bidi algorithm. Mixed and neutral content falls back to
// left-to-right.
func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script text
// should be split into runs per script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a font size to 26.6 fixed point.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
