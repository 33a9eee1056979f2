package magnum

// Rect is an axis-aligned rectangle in the y-up coordinate convention used
// for text geometry: Min is the bottom-left corner, Max the top-right.
type Rect struct {
	Min, Max Vec2
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float32 {
	return r.Min.X
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.Max.X
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Min.Y
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float32 {
	return r.Max.Y
}

// CenterX returns the x coordinate of the rectangle center.
func (r Rect) CenterX() float32 {
	return (r.Min.X + r.Max.X) / 2
}

// CenterY returns the y coordinate of the rectangle center.
func (r Rect) CenterY() float32 {
	return (r.Min.Y + r.Max.Y) / 2
}

// Size returns the rectangle dimensions as a vector.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// IsEmpty reports whether the rectangle is fully degenerate, with Min and
// Max equal in both dimensions. The zero Rect is empty.
func (r Rect) IsEmpty() bool {
	return r.Min == r.Max
}

// Union returns a rectangle containing both input rectangles. An empty
// rectangle does not participate: the other one is returned unchanged, so
// bounds can be accumulated starting from the zero Rect without dragging
// the origin into the result.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// Translated returns the rectangle shifted by the given vector.
func (r Rect) Translated(by Vec2) Rect {
	return Rect{
		Min: r.Min.Add(by),
		Max: r.Max.Add(by),
	}
}

// Recti is an axis-aligned rectangle with integer texel coordinates,
// used for glyph placements inside a cache atlas.
type Recti struct {
	Min, Max Vec2i
}

// Size returns the rectangle dimensions as an integer vector.
func (r Recti) Size() Vec2i {
	return r.Max.Sub(r.Min)
}

// Rect converts the texel rectangle to float coordinates.
func (r Recti) Rect() Rect {
	return Rect{Min: r.Min.Vec2(), Max: r.Max.Vec2()}
}
