// Package geometry provides the 2D primitives the motif compiler builds on:
// points, linear interpolation, and axis-aligned square construction.
//
// Everything in this package is pure and stateless. Coordinates live in a
// fixed plane centered on the motif, with y growing downward (screen
// convention), which keeps the chart renderers free of axis flips.
package geometry

import "math"

// Vec2 represents a 2D point or displacement vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
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
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}
