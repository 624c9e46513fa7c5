package chart

import (
	"iter"
	"math"
	"slices"
	"time"
)

// Reveal returns the part of p drawn at the given progress in [0,1].
//
// Progress is measured along the straight lines between consecutive segment
// end points, not along the true curve. Whole segments are kept while their
// cumulated length fits in Length()*progress; the segment crossing that
// target is replaced by a straight LineTo ending at the fractional position,
// even when it is a cubic. Progress 0 returns nil and progress 1 returns a
// copy of p. Progress outside [0,1] is clamped.
func (p Path) Reveal(progress float64) Path {
	progress = clamp01(progress)
	if p.Empty() || progress == 0 {
		return nil
	}
	if progress == 1 {
		return slices.Clone(p)
	}

	target := p.Length() * progress
	out := make(Path, 0, len(p))
	out = append(out, p[0])
	var cumulated float64
	for i := 1; i < len(p); i++ {
		s, from := p[i], p[i-1].To
		if s.Verb != LineTo && s.Verb != CubicTo {
			out = append(out, s)
			continue
		}
		d := from.Dist(s.To)
		if cumulated+d <= target {
			out = append(out, s)
			cumulated += d
			continue
		}
		if target > cumulated {
			out = append(out, Segment{Verb: LineTo, To: from.Lerp(s.To, (target-cumulated)/d)})
		}
		break
	}
	return out
}

// Reveal is a convenience for strategy.Build(points).Reveal(progress).
func Reveal(strategy Strategy, points []Point, progress float64) Path {
	return strategy.Build(points).Reveal(progress)
}

// Easing maps a linear time fraction in [0,1] to a progress in [0,1].
type Easing func(float64) float64

// EaseOutCubic starts fast and slows down towards the end.
func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// DefaultRevealDuration is the duration of a reveal animation.
const DefaultRevealDuration = 600 * time.Millisecond

// Timeline maps the time elapsed since a data change to a reveal progress.
// It is the adapter between a caller owned clock and Path.Reveal.
type Timeline struct {
	Duration time.Duration
	Easing   Easing // nil is linear
}

// DefaultTimeline returns a linear timeline of DefaultRevealDuration.
func DefaultTimeline() Timeline { return Timeline{Duration: DefaultRevealDuration} }

// Progress returns the reveal progress after elapsed time.
func (t Timeline) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := clamp01(float64(elapsed) / float64(t.Duration))
	if t.Easing != nil && f > 0 && f < 1 {
		f = clamp01(t.Easing(f))
	}
	return f
}

// Frames returns the progress of each frame of one animation at fps frames
// per second, from 0 to exactly 1. A non positive fps defaults to 60.
func (t Timeline) Frames(fps int) iter.Seq[float64] {
	if fps <= 0 {
		fps = 60
	}
	return func(yield func(float64) bool) {
		n := int(math.Ceil(t.Duration.Seconds()*float64(fps) - 1e-9))
		if n <= 0 {
			yield(1)
			return
		}
		for i := 0; i <= n; i++ {
			if !yield(t.Progress(t.Duration * time.Duration(i) / time.Duration(n))) {
				return
			}
		}
	}
}
