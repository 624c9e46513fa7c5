package chart

import (
	"fmt"
	"strings"
	"time"
)

// Kind selects the chart variant.
type Kind int

const (
	// Interactive is the full chart: smooth curve and scrubbing.
	Interactive Kind = iota
	// Sparkline is the compact axis-free chart made of straight segments.
	Sparkline
)

func (k Kind) String() string {
	switch k {
	case Interactive:
		return "interactive"
	case Sparkline:
		return "sparkline"
	default:
		panic(fmt.Sprintf("unknown kind %d", k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interactive", "chart":
		return Interactive, nil
	case "sparkline", "spark":
		return Sparkline, nil
	default:
		return Interactive, fmt.Errorf("unknown chart kind %q", s)
	}
}

// Policy selects how a scrub position resolves to a displayed value.
type Policy int

const (
	// Nearest snaps to the closest sample.
	Nearest Policy = iota
	// Blend interpolates linearly between the two samples around the position.
	Blend
)

func (p Policy) String() string {
	switch p {
	case Nearest:
		return "nearest"
	case Blend:
		return "blend"
	default:
		panic(fmt.Sprintf("unknown policy %d", p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return Nearest, nil
	case "blend":
		return Blend, nil
	default:
		return Nearest, fmt.Errorf("unknown scrub policy %q", s)
	}
}

const (
	DefaultPadding         = 8
	DefaultTension         = 0.3
	DefaultActivationDelay = 150 * time.Millisecond
	DefaultJitter          = 10
)

// Options holds the configuration of a chart.
type Options struct {
	Kind    Kind
	Padding float64 // Inner padding of the drawing rectangle.
	Tension float64 // Smooth strategy tension.

	ActivationDelay time.Duration // Sustained contact needed to arm a scrub.
	Jitter          float64       // Movement tolerated while waiting for activation.
	Policy          Policy
}

// DefaultOptions returns the options of the interactive chart.
func DefaultOptions() Options {
	return Options{
		Kind:            Interactive,
		Padding:         DefaultPadding,
		Tension:         DefaultTension,
		ActivationDelay: DefaultActivationDelay,
		Jitter:          DefaultJitter,
		Policy:          Nearest,
	}
}

// Strategy returns the curve strategy of the chart kind.
func (o Options) Strategy() Strategy {
	if o.Kind == Sparkline {
		return Linear{}
	}
	return Smooth{Tension: o.Tension}
}

// Rect returns the padded drawing rectangle of the given size.
func (o Options) Rect(size Size) Rect { return Rect{Size: size, Padding: o.Padding} }
