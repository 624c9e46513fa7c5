package chart

// Strategy builds a path through canvas points.
//
// Implementations return nil for fewer than two points: a single sample has
// no curve and is drawn as a static marker instead.
type Strategy interface {
	Build(points []Point) Path
}

// Layout returns the canvas point of each sample: samples are evenly spaced
// across the inner width in order, and placed vertically by b.
//
// A single sample is placed at the horizontal center of the rectangle.
func Layout(s Series, b Bounds, r Rect) []Point {
	n := len(s)
	points := make([]Point, n)
	for i, sample := range s {
		nx := 0.5
		if n > 1 {
			nx = float64(i) / float64(n-1)
		}
		points[i] = Point{r.X(nx), r.Y(b.NormalizedY(sample.Value))}
	}
	return points
}

// Linear joins consecutive points with straight segments. It is used by sparklines.
type Linear struct{}

func (Linear) Build(points []Point) Path {
	if len(points) < 2 {
		return nil
	}
	p := make(Path, 0, len(points))
	p = append(p, Segment{Verb: MoveTo, To: points[0]})
	for _, pt := range points[1:] {
		p = append(p, Segment{Verb: LineTo, To: pt})
	}
	return p
}

// Smooth joins consecutive points with cubic segments whose control points
// are derived from Catmull-Rom splines:
//
//	c1 = p[i]   + Tension * (p[i+1] - p[i-1])
//	c2 = p[i+1] - Tension * (p[i+2] - p[i])
//
// At both ends the missing neighbour is the endpoint itself; the curve is
// never extrapolated.
type Smooth struct {
	Tension float64
}

func (s Smooth) Build(points []Point) Path {
	n := len(points)
	if n < 2 {
		return nil
	}
	at := func(i int) Point { return points[max(0, min(n-1, i))] }

	p := make(Path, 0, n)
	p = append(p, Segment{Verb: MoveTo, To: points[0]})
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		p = append(p, Segment{
			Verb: CubicTo,
			C1:   p1.Add(p2.Sub(p0).Mul(s.Tension)),
			C2:   p2.Sub(p3.Sub(p1).Mul(s.Tension)),
			To:   p2,
		})
	}
	return p
}
