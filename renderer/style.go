package renderer

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds the colors and sizes used to draw a frame. Colors are
// "#rrggbb" hex strings.
type Style struct {
	Background string // empty for transparent
	Line       string
	Width      float64 // line width

	// Fill is drawn as a vertical gradient from FillOpacity under the line to
	// transparent on the baseline.
	Fill        string
	FillOpacity float64

	// Gaps are overlaid on the line with a dashed stroke of GapColor, which
	// fades the line where the data is estimated.
	GapColor   string
	GapOpacity float64
	GapDash    []float64

	Marker    float64 // end and scrub marker radius
	Crosshair string
}

// DefaultStyle returns the style of a blue line on a white background.
func DefaultStyle() Style {
	return Style{
		Background:  "#ffffff",
		Line:        "#2563eb",
		Width:       2,
		Fill:        "#2563eb",
		FillOpacity: 0.35,
		GapColor:    "#ffffff",
		GapOpacity:  0.7,
		GapDash:     []float64{4, 4},
		Marker:      3.5,
		Crosshair:   "#9ca3af",
	}
}

// Validate checks that every color of s can be parsed.
func (s Style) Validate() error {
	for name, hex := range map[string]string{
		"background": s.Background,
		"line":       s.Line,
		"fill":       s.Fill,
		"gap":        s.GapColor,
		"crosshair":  s.Crosshair,
	} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("invalid %s color %q: %w", name, hex, err)
		}
	}
	return nil
}

// rgba returns the color hex with the given opacity. Invalid or empty colors
// are transparent.
func rgba(hex string, opacity float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Transparent
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clampOpacity(opacity)*255 + 0.5)}
}

func clampOpacity(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
