package text

import (
	"errors"
	"testing"

	"github.com/barktree707/magnum"
)

// fakeFont is a deterministic Font for layout and renderer tests: one
// glyph per rune, glyph id equal to the rune value, fixed advances, and
// optional per-rune offsets. Native size 10 with an 8/-2 vertical band
// and line height 12 keeps expected values easy to read.
type fakeFont struct {
	size       float32
	ascent     float32
	descent    float32
	lineHeight float32
	open       bool

	advance magnum.Vec2
	offsets map[rune]magnum.Vec2

	// shapeErr makes every Shape call fail when set.
	shapeErr error

	// shapeCalls counts Shape invocations across all shapers of this font.
	shapeCalls int
}

func newFakeFont() *fakeFont {
	return &fakeFont{
		size:       10,
		ascent:     8,
		descent:    -2,
		lineHeight: 12,
		open:       true,
		advance:    magnum.V2(6, 0),
	}
}

func (f *fakeFont) Size() float32       { return f.size }
func (f *fakeFont) Ascent() float32     { return f.ascent }
func (f *fakeFont) Descent() float32    { return f.descent }
func (f *fakeFont) LineHeight() float32 { return f.lineHeight }
func (f *fakeFont) IsOpen() bool        { return f.open }

func (f *fakeFont) CreateShaper() Shaper { return &fakeShaper{font: f} }

// fakeShaper produces one glyph per rune of the shaped text.
type fakeShaper struct {
	font   *fakeFont
	glyphs []Glyph
}

func (s *fakeShaper) Shape(text string) (int, error) {
	s.font.shapeCalls++
	s.glyphs = s.glyphs[:0]
	if s.font.shapeErr != nil {
		return 0, s.font.shapeErr
	}
	if !s.font.open {
		return 0, ErrFontNotOpen
	}
	for _, r := range text {
		g := Glyph{ID: GlyphID(r), Advance: s.font.advance}
		if off, ok := s.font.offsets[r]; ok {
			g.Offset = off
		}
		s.glyphs = append(s.glyphs, g)
	}
	return len(s.glyphs), nil
}

func (s *fakeShaper) GlyphCount() int { return len(s.glyphs) }

func (s *fakeShaper) GlyphIDsInto(ids []GlyphID) {
	for i, g := range s.glyphs {
		ids[i] = g.ID
	}
}

func (s *fakeShaper) GlyphOffsetsAdvancesInto(offsets, advances []magnum.Vec2) {
	for i, g := range s.glyphs {
		offsets[i] = g.Offset
		advances[i] = g.Advance
	}
}

// shapeForTest runs a shaper over text and returns the per-glyph arrays.
func shapeForTest(t *testing.T, font Font, text string) (ids []GlyphID, offsets, advances []magnum.Vec2) {
	t.Helper()

	shaper := font.CreateShaper()
	n, err := shaper.Shape(text)
	if err != nil {
		t.Fatalf("Shape(%q) failed: %v", text, err)
	}
	ids = make([]GlyphID, n)
	offsets = make([]magnum.Vec2, n)
	advances = make([]magnum.Vec2, n)
	shaper.GlyphIDsInto(ids)
	shaper.GlyphOffsetsAdvancesInto(offsets, advances)
	return ids, offsets, advances
}

func TestLayoutLine_Positions(t *testing.T) {
	font := newFakeFont()
	_, offsets, advances := shapeForTest(t, font, "abc")

	cursor := magnum.Vec2{}
	positions := make([]magnum.Vec2, 3)
	rect, err := LayoutLine(font, 20, DirectionHorizontalTopToBottom,
		offsets, advances, &cursor, positions)
	if err != nil {
		t.Fatalf("LayoutLine failed: %v", err)
	}

	// Size 20 over native size 10 doubles every metric.
	want := []magnum.Vec2{magnum.V2(0, 0), magnum.V2(12, 0), magnum.V2(24, 0)}
	for i, p := range positions {
		if p != want[i] {
			t.Errorf("positions[%d] = %v, want %v", i, p, want[i])
		}
	}
	if cursor != magnum.V2(36, 0) {
		t.Errorf("cursor = %v, want (36, 0)", cursor)
	}

	wantRect := magnum.Rect{Min: magnum.V2(0, -4), Max: magnum.V2(36, 16)}
	if rect != wantRect {
		t.Errorf("rect = %v, want %v", rect, wantRect)
	}
}

func TestLayoutLine_Offsets(t *testing.T) {
	font := newFakeFont()
	font.offsets = map[rune]magnum.Vec2{'a': magnum.V2(1, 2)}
	_, offsets, advances := shapeForTest(t, font, "aa")

	cursor := magnum.Vec2{}
	positions := make([]magnum.Vec2, 2)
	if _, err := LayoutLine(font, 20, DirectionHorizontalTopToBottom,
		offsets, advances, &cursor, positions); err != nil {
		t.Fatalf("LayoutLine failed: %v", err)
	}

	// Offsets shift the glyph but not the pen.
	if positions[0] != magnum.V2(2, 4) {
		t.Errorf("positions[0] = %v, want (2, 4)", positions[0])
	}
	if positions[1] != magnum.V2(14, 4) {
		t.Errorf("positions[1] = %v, want (14, 4)", positions[1])
	}
	if cursor != magnum.V2(24, 0) {
		t.Errorf("cursor = %v, want (24, 0)", cursor)
	}
}

// TestLayoutLine_AliasedOutput passes the offsets slice as the positions
// output, converting shaper output to absolute positions in place. Each
// offset must be consumed before its slot is overwritten.
func TestLayoutLine_AliasedOutput(t *testing.T) {
	font := newFakeFont()
	font.offsets = map[rune]magnum.Vec2{'a': magnum.V2(1, 2)}
	_, offsets, advances := shapeForTest(t, font, "aaa")

	cursor := magnum.Vec2{}
	if _, err := LayoutLine(font, 20, DirectionHorizontalTopToBottom,
		offsets, advances, &cursor, offsets); err != nil {
		t.Fatalf("LayoutLine failed: %v", err)
	}

	want := []magnum.Vec2{magnum.V2(2, 4), magnum.V2(14, 4), magnum.V2(26, 4)}
	for i, p := range offsets {
		if p != want[i] {
			t.Errorf("aliased positions[%d] = %v, want %v", i, p, want[i])
		}
	}
}

// TestLayoutLine_CursorChains verifies the pen carries across calls, which
// is how multi-run lines build up.
func TestLayoutLine_CursorChains(t *testing.T) {
	font := newFakeFont()
	_, offsets, advances := shapeForTest(t, font, "ab")

	cursor := magnum.V2(5, 3)
	positions := make([]magnum.Vec2, 2)
	rect1, err := LayoutLine(font, 10, DirectionHorizontalTopToBottom,
		offsets, advances, &cursor, positions)
	if err != nil {
		t.Fatalf("first LayoutLine failed: %v", err)
	}
	if positions[0] != magnum.V2(5, 3) {
		t.Errorf("positions[0] = %v, want (5, 3)", positions[0])
	}
	if cursor != magnum.V2(17, 3) {
		t.Errorf("cursor after first run = %v, want (17, 3)", cursor)
	}
	wantRect := magnum.Rect{Min: magnum.V2(5, 1), Max: magnum.V2(17, 11)}
	if rect1 != wantRect {
		t.Errorf("rect = %v, want %v", rect1, wantRect)
	}

	// Second run continues from the advanced pen.
	if _, err := LayoutLine(font, 10, DirectionHorizontalTopToBottom,
		offsets, advances, &cursor, positions); err != nil {
		t.Fatalf("second LayoutLine failed: %v", err)
	}
	if positions[0] != magnum.V2(17, 3) {
		t.Errorf("second run positions[0] = %v, want (17, 3)", positions[0])
	}
}

// TestLayoutLine_Empty lays out zero glyphs: no positions, but the
// rectangle still spans the font's vertical band so empty lines keep
// their height.
func TestLayoutLine_Empty(t *testing.T) {
	font := newFakeFont()

	cursor := magnum.Vec2{}
	rect, err := LayoutLine(font, 20, DirectionHorizontalTopToBottom,
		nil, nil, &cursor, nil)
	if err != nil {
		t.Fatalf("LayoutLine failed: %v", err)
	}

	want := magnum.Rect{Min: magnum.V2(0, -4), Max: magnum.V2(0, 16)}
	if rect != want {
		t.Errorf("rect = %v, want %v", rect, want)
	}
	if cursor != (magnum.Vec2{}) {
		t.Errorf("cursor moved to %v on empty layout", cursor)
	}
}

func TestLayoutLine_Errors(t *testing.T) {
	font := newFakeFont()
	offsets := make([]magnum.Vec2, 2)
	advances := make([]magnum.Vec2, 2)
	positions := make([]magnum.Vec2, 2)
	cursor := magnum.Vec2{}

	t.Run("unsupported direction", func(t *testing.T) {
		_, err := LayoutLine(font, 10, DirectionVerticalLeftToRight,
			offsets, advances, &cursor, positions)
		var dirErr *UnsupportedDirectionError
		if !errors.As(err, &dirErr) {
			t.Fatalf("got %v, want UnsupportedDirectionError", err)
		}
		if dirErr.Got != DirectionVerticalLeftToRight {
			t.Errorf("error direction = %v, want %v", dirErr.Got, DirectionVerticalLeftToRight)
		}
	})

	t.Run("advance count mismatch", func(t *testing.T) {
		_, err := LayoutLine(font, 10, DirectionHorizontalTopToBottom,
			offsets, advances[:1], &cursor, positions)
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("got %v, want SizeMismatchError", err)
		}
	})

	t.Run("position count mismatch", func(t *testing.T) {
		_, err := LayoutLine(font, 10, DirectionHorizontalTopToBottom,
			offsets, advances, &cursor, positions[:1])
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("got %v, want SizeMismatchError", err)
		}
	})

	t.Run("closed font", func(t *testing.T) {
		closed := newFakeFont()
		closed.open = false
		_, err := LayoutLine(closed, 10, DirectionHorizontalTopToBottom,
			offsets, advances, &cursor, positions)
		if !errors.Is(err, ErrFontNotOpen) {
			t.Errorf("got %v, want ErrFontNotOpen", err)
		}
	})

	t.Run("nil font", func(t *testing.T) {
		_, err := LayoutLine(nil, 10, DirectionHorizontalTopToBottom,
			offsets, advances, &cursor, positions)
		if !errors.Is(err, ErrFontNotOpen) {
			t.Errorf("got %v, want ErrFontNotOpen", err)
		}
	})
}
