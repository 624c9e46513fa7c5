package chart

import (
	"math"
	"strconv"
	"strings"
)

// Verb is the kind of a path Segment.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	CubicTo
	Close
)

func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	default:
		return "?"
	}
}

// Segment is one element of a Path. C1 and C2 are only meaningful for CubicTo.
type Segment struct {
	Verb   Verb
	C1, C2 Point
	To     Point
}

// Path is an ordered list of segments, starting with a MoveTo.
//
// Paths built by a Strategy have exactly one segment per canvas point: the
// MoveTo to point 0, then one drawing segment ending on each following point.
// Segment k (k ≥ 1) therefore joins point k-1 to point k.
type Path []Segment

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool { return len(p) < 2 }

// Start returns the first point of the path.
func (p Path) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].To, true
}

// End returns the current point at the end of the path.
func (p Path) End() (Point, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Verb != Close {
			return p[i].To, true
		}
	}
	return Point{}, false
}

// Length returns the straight-line length of the path: the sum of the
// distances between consecutive segment end points. Control points are
// ignored, so for cubic segments this is the chord length, not the arc length.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		switch p[i].Verb {
		case LineTo, CubicTo:
			total += p[i-1].To.Dist(p[i].To)
		}
	}
	return total
}

// Closed returns the region enclosed by the path and the horizontal baseline,
// used for the gradient fill below a curve. It is empty when p draws nothing.
func (p Path) Closed(baseline float64) Path {
	if p.Empty() {
		return nil
	}
	start, _ := p.Start()
	end, _ := p.End()
	region := make(Path, 0, len(p)+3)
	region = append(region, p...)
	region = append(region,
		Segment{Verb: LineTo, To: Point{end.X, baseline}},
		Segment{Verb: LineTo, To: Point{start.X, baseline}},
		Segment{Verb: Close, To: start},
	)
	return region
}

// String returns the path in SVG path data syntax, with coordinates rounded
// to two decimals.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Verb.String())
		switch s.Verb {
		case MoveTo, LineTo:
			writePoint(&b, s.To)
		case CubicTo:
			writePoint(&b, s.C1)
			b.WriteByte(' ')
			writePoint(&b, s.C2)
			b.WriteByte(' ')
			writePoint(&b, s.To)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(formatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(pt.Y))
}

func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
