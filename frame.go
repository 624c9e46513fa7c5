package chart

// Input is everything a frame depends on.
type Input struct {
	Series   Series
	Size     Size
	Progress float64    // reveal progress in [0,1]
	Scrub    ScrubState // zero when not scrubbing
}

// Crosshair is the scrub overlay: a vertical line at X through the marker At.
type Crosshair struct {
	X     float64
	At    Point
	Index int
	Value float64
}

// Frame is the geometry of one display cycle.
type Frame struct {
	Rect   Rect
	Bounds Bounds
	Points []Point // canvas point of each sample
	Curve  Path    // complete curve
	Stroke Path    // revealed part of Curve
	Fill   Path    // Stroke closed on the baseline
	Gaps   Path    // gap segments of Stroke, drawn dashed and faded

	// Marker is set for a single sample series, which has no curve.
	Marker *Point
	// Complete reports that the reveal animation finished; End is then the
	// end-of-line marker.
	Complete bool
	End      *Point
	// Crosshair is set while a scrub is active.
	Crosshair *Crosshair
}

// Empty reports whether the frame draws nothing at all.
func (f Frame) Empty() bool { return f.Stroke.Empty() && f.Marker == nil }

// Chart computes frames. It holds only configuration: each call to Render is
// a pure function of its Input.
type Chart struct {
	opts     Options
	strategy Strategy
}

// New returns a chart with the given options.
func New(opts Options) Chart {
	return Chart{opts: opts, strategy: opts.Strategy()}
}

// Options returns the chart configuration.
func (c Chart) Options() Options { return c.opts }

// Render returns the frame of in.
//
// An empty series or an empty rectangle returns an empty frame. A single
// sample returns a frame with only a centered Marker. A scrub state that does
// not fit the series, for instance computed before a data refresh, is
// dropped rather than drawn.
func (c Chart) Render(in Input) Frame {
	f := Frame{Rect: c.opts.Rect(in.Size)}
	if len(in.Series) == 0 || f.Rect.Empty() {
		return f
	}
	f.Bounds = NewBounds(in.Series)
	f.Points = Layout(in.Series, f.Bounds, f.Rect)
	if len(in.Series) == 1 {
		center := f.Rect.Center()
		f.Marker = &center
		f.Complete = true
		return f
	}

	f.Curve = c.strategy.Build(f.Points)
	progress := clamp01(in.Progress)
	f.Stroke = f.Curve.Reveal(progress)
	f.Fill = f.Stroke.Closed(f.Rect.Baseline())
	f.Gaps = GapSegments(in.Series).Overlay(f.Stroke)
	if progress == 1 {
		end := f.Points[len(f.Points)-1]
		f.Complete, f.End = true, &end
	}
	f.Crosshair = c.crosshair(in.Scrub, in.Series, f)
	return f
}

func (c Chart) crosshair(st ScrubState, s Series, f Frame) *Crosshair {
	if !st.Fits(s) {
		return nil
	}
	x := f.Rect.X(clamp01(st.X))
	if c.opts.Policy == Nearest {
		// the marker sits on the sample it reports
		x = f.Points[st.Index].X
	}
	return &Crosshair{
		X:     x,
		At:    Point{x, f.Rect.Y(f.Bounds.NormalizedY(st.Value))},
		Index: st.Index,
		Value: st.Value,
	}
}
