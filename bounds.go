package chart

import "math"

// Bounds is the [Min,Max] value range used to normalize samples vertically.
// Max is never less than Min.
type Bounds struct{ Min, Max float64 }

// NewBounds returns the value range of s. Non finite values are ignored. An
// empty series, or one with no finite value, returns the zero Bounds.
func NewBounds(s Series) Bounds {
	var b Bounds
	found := false
	for _, sample := range s {
		v := sample.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found {
			b, found = Bounds{v, v}, true
			continue
		}
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	return b
}

// Flat reports whether the range is empty, i.e. every sample has the same value.
func (b Bounds) Flat() bool { return b.Max <= b.Min }

// Span returns Max - Min.
func (b Bounds) Span() float64 { return b.Max - b.Min }

// NormalizedY returns the vertical position of v as a fraction of the range:
// 0 at the top (Max) and 1 at the bottom (Min). Values outside the range are
// clamped. A flat range maps every value to the midline 0.5.
func (b Bounds) NormalizedY(v float64) float64 {
	if b.Flat() || math.IsNaN(v) {
		return 0.5
	}
	return clamp01((b.Max - v) / (b.Max - b.Min))
}

// Value is the inverse of NormalizedY. A flat range returns Min.
func (b Bounds) Value(ny float64) float64 {
	if b.Flat() {
		return b.Min
	}
	return b.Max - clamp01(ny)*(b.Max-b.Min)
}
