package magnum

// Vec2 is a 2D vector with float32 components.
// Float32 is used throughout because the geometry this library produces is
// uploaded directly into GPU vertex buffers.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Min returns the componentwise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Vec2i is a 2D vector with int32 components, used for atlas texel
// coordinates and pixel rectangles.
type Vec2i struct {
	X, Y int32
}

// V2i is a convenience function to create a Vec2i.
func V2i(x, y int32) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Vec2 converts the integer vector to a float vector.
func (v Vec2i) Vec2() Vec2 {
	return Vec2{X: float32(v.X), Y: float32(v.Y)}
}

// Add returns the sum of two vectors.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{X: v.X - w.X, Y: v.Y - w.Y}
}
