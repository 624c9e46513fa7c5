package chart

import (
	"fmt"
	"math"
	"time"
)

// State is the state of a Scrubber.
type State int

const (
	// Idle has no scrub. A press may be pending activation.
	Idle State = iota
	// Armed has reached the activation threshold, the crosshair shows the press position.
	Armed
	// Active follows the pointer while it moves.
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Active:
		return "active"
	default:
		panic(fmt.Sprintf("unknown state %d", s))
	}
}

// Signal is emitted by a Scrubber when its ScrubState changes.
type Signal int

const (
	None Signal = iota
	// Started is emitted when a scrub is armed, e.g. to trigger haptic feedback.
	Started
	// Moved is emitted when the scrub state changed.
	Moved
	// Ended is emitted when the scrub ended; the consumer reverts its display
	// to the latest value.
	Ended
)

func (s Signal) String() string {
	switch s {
	case None:
		return "none"
	case Started:
		return "started"
	case Moved:
		return "moved"
	case Ended:
		return "ended"
	default:
		panic(fmt.Sprintf("unknown signal %d", s))
	}
}

// PointerKind is the kind of a PointerEvent.
type PointerKind int

const (
	Down PointerKind = iota
	Move
	Up
	Cancel
)

func (k PointerKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		panic(fmt.Sprintf("unknown pointer kind %d", k))
	}
}

// PointerEvent is a pointer event in rectangle-local coordinates. At is the
// event time relative to any fixed origin; only differences are used.
type PointerEvent struct {
	Kind PointerKind
	At   time.Duration
	Pos  Point
}

// ScrubState is the inspected position along the curve.
type ScrubState struct {
	Active bool
	X      float64 // normalized horizontal position in [0,1]
	Y      float64 // normalized vertical position of Value in [0,1]
	Index  int     // index of the resolved sample
	Sample Sample  // resolved sample
	Value  float64 // displayed value
}

// Fits reports whether st is an active scrub on the series s, and not a state
// computed on a series since replaced.
func (st ScrubState) Fits(s Series) bool {
	if !st.Active || st.Index < 0 || st.Index >= len(s) {
		return false
	}
	got := s[st.Index]
	return got.On == st.Sample.On && got.Interpolated == st.Sample.Interpolated &&
		(got.Value == st.Sample.Value || math.IsNaN(got.Value) && math.IsNaN(st.Sample.Value))
}

// Scrubber is the state machine translating a pointer event stream into a
// ScrubState.
//
// A press arms the scrubber once held for ActivationDelay without moving more
// than Jitter; moving further before that abandons the press, as it is a pan
// rather than a scrub. The first move received after the delay arms the press
// wherever it goes. Once armed, moves update the state until release.
// Platforms that send no event while the pointer stays still should call
// Tick so that the press can arm.
//
// A Scrubber is owned by a single event stream and is not safe for
// concurrent use.
type Scrubber struct {
	opts   Options
	series Series
	bounds Bounds
	rect   Rect

	state    State
	pressed  bool
	rejected bool // the current press can no longer arm
	downAt   time.Duration
	downPos  Point
	current  ScrubState
}

// NewScrubber returns an idle Scrubber over s drawn in a rectangle of the given size.
func NewScrubber(opts Options, s Series, size Size) *Scrubber {
	return &Scrubber{
		opts:   opts,
		series: s,
		bounds: NewBounds(s),
		rect:   opts.Rect(size),
	}
}

// State returns the current state.
func (s *Scrubber) State() State { return s.state }

// Scrub returns the current scrub state. It is the zero ScrubState when idle.
func (s *Scrubber) Scrub() ScrubState { return s.current }

// Handle consumes one pointer event and returns the resulting signal.
func (s *Scrubber) Handle(ev PointerEvent) Signal {
	switch ev.Kind {
	case Down:
		if s.pressed {
			return None // a second pointer is ignored
		}
		s.pressed, s.rejected = true, false
		s.downAt, s.downPos = ev.At, ev.Pos
		return None

	case Move:
		if !s.pressed {
			return None
		}
		if s.state == Idle {
			if s.rejected {
				return None
			}
			held := ev.At-s.downAt >= s.opts.ActivationDelay
			still := ev.Pos.Dist(s.downPos) <= s.opts.Jitter
			switch {
			case held && still:
				return s.arm(ev.Pos)
			case held:
				// no event while the pointer stood still: the press armed
				// where it started and this move already drags.
				sig := s.arm(s.downPos)
				if sig == Started {
					s.state, s.current = Active, s.resolve(ev.Pos.X)
				}
				return sig
			case !still:
				s.rejected = true
			}
			return None
		}
		next := s.resolve(ev.Pos.X)
		s.state = Active
		if next == s.current {
			return None
		}
		s.current = next
		return Moved

	case Up, Cancel:
		s.pressed, s.rejected = false, false
		return s.end()
	}
	return None
}

// Tick advances time without pointer movement, arming a pending press once
// the activation delay has elapsed.
func (s *Scrubber) Tick(now time.Duration) Signal {
	if !s.pressed || s.rejected || s.state != Idle {
		return None
	}
	if now-s.downAt < s.opts.ActivationDelay {
		return None
	}
	return s.arm(s.downPos)
}

// Reset replaces the series and the rectangle size. When either changed, any
// gesture in progress is aborted: the state is discarded rather than
// projected onto the new bounds, and the current press is ignored until
// released. It returns Ended if a scrub was armed.
func (s *Scrubber) Reset(series Series, size Size) Signal {
	rect := s.opts.Rect(size)
	if rect == s.rect && series.Equal(s.series) {
		return None
	}
	s.series, s.bounds, s.rect = series, NewBounds(series), rect
	if s.pressed {
		s.rejected = true
	}
	return s.end()
}

func (s *Scrubber) arm(pos Point) Signal {
	if len(s.series) < 2 || s.rect.Empty() {
		s.rejected = true
		return None
	}
	s.state = Armed
	s.current = s.resolve(pos.X)
	return Started
}

func (s *Scrubber) end() Signal {
	s.current = ScrubState{}
	if s.state == Idle {
		return None
	}
	s.state = Idle
	return Ended
}

// resolve computes the scrub state for the canvas abscissa x.
func (s *Scrubber) resolve(x float64) ScrubState {
	nx := s.rect.NormalizedX(x)
	i, v := Resolve(s.series, nx, s.opts.Policy)
	return ScrubState{
		Active: true,
		X:      nx,
		Y:      s.bounds.NormalizedY(v),
		Index:  i,
		Sample: s.series[i],
		Value:  v,
	}
}

// Resolve returns the sample index and the displayed value at the normalized
// horizontal position nx of a series of at least one sample.
//
// The index is always the nearest sample. With Nearest the value is that
// sample's value; with Blend it is linearly interpolated between the two
// samples around nx.
func Resolve(s Series, nx float64, policy Policy) (int, float64) {
	n := len(s)
	if n == 1 {
		return 0, s[0].Value
	}
	pos := clamp01(nx) * float64(n-1)
	i := int(math.Round(pos))
	if policy != Blend {
		return i, s[i].Value
	}
	lo := min(int(math.Floor(pos)), n-2)
	f := pos - float64(lo)
	return i, s[lo].Value + f*(s[lo+1].Value-s[lo].Value)
}
