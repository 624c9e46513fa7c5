package chart

import "math"

// Point is a canvas coordinate. Y grows downward.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point  { return Point{p.X * k, p.Y * k} }
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Lerp returns the point at fraction t of the straight line from p to q.
func (p Point) Lerp(q Point, t float64) Point { return p.Add(q.Sub(p).Mul(t)) }

// Size is the size of a drawing rectangle.
type Size struct{ Width, Height float64 }

// Rect is a drawing rectangle with a fixed inner padding on every side.
// Samples are laid out in the inner rectangle.
type Rect struct {
	Size
	Padding float64
}

// InnerWidth returns the width available to samples, never negative.
func (r Rect) InnerWidth() float64 { return math.Max(0, r.Width-2*r.Padding) }

// InnerHeight returns the height available to samples, never negative.
func (r Rect) InnerHeight() float64 { return math.Max(0, r.Height-2*r.Padding) }

// Empty reports whether the inner rectangle has no area.
func (r Rect) Empty() bool { return r.InnerWidth() <= 0 || r.InnerHeight() <= 0 }

// Center returns the center of the rectangle.
func (r Rect) Center() Point { return Point{r.Width / 2, r.Height / 2} }

// Baseline returns the y coordinate of the bottom of the inner rectangle.
func (r Rect) Baseline() float64 { return r.Padding + r.InnerHeight() }

// X maps a normalized horizontal position to a canvas x.
func (r Rect) X(nx float64) float64 { return r.Padding + nx*r.InnerWidth() }

// Y maps a normalized vertical position to a canvas y.
func (r Rect) Y(ny float64) float64 { return r.Padding + ny*r.InnerHeight() }

// NormalizedX maps a canvas x to a position in [0,1] across the inner
// rectangle. Positions outside the rectangle are clamped.
func (r Rect) NormalizedX(x float64) float64 {
	w := r.InnerWidth()
	if w <= 0 {
		return 0
	}
	return clamp01((x - r.Padding) / w)
}

// clamp01 clamps v to [0,1]. NaN clamps to 0.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
