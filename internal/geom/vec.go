package geom

import "math"

// #region vec2
// Vec2 is a point or displacement in the plane. It is a comparable value
// type, so it can serve directly as a map key.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the componentwise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}
// #endregion vec2

// #region triangle-area
// TriangleArea returns the area of the triangle (v0, v1, v2) via the 2D
// scalar cross product. The result is non-negative regardless of the
// winding of the inputs.
func TriangleArea(v0, v1, v2 Vec2) float64 {
	cross := (v1.X-v0.X)*(v2.Y-v0.Y) - (v2.X-v0.X)*(v1.Y-v0.Y)
	return 0.5 * math.Abs(cross)
}
// #endregion triangle-area
