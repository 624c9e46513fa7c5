package renderer

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/etnz/chart"
	"github.com/fogleman/gg"
)

// Image draws f on a new image of the frame size.
func Image(f chart.Frame, s Style) image.Image {
	w := max(1, int(math.Ceil(f.Rect.Width)))
	h := max(1, int(math.Ceil(f.Rect.Height)))
	dc := gg.NewContext(w, h)
	if s.Background != "" {
		dc.SetColor(rgba(s.Background, 1))
		dc.Clear()
	}

	if f.Marker != nil {
		drawDot(dc, *f.Marker, s.Marker, s.Line)
		return dc.Image()
	}
	if f.Stroke.Empty() {
		return dc.Image()
	}

	if !f.Fill.Empty() && s.Fill != "" {
		grad := gg.NewLinearGradient(0, f.Rect.Padding, 0, f.Rect.Baseline())
		grad.AddColorStop(0, rgba(s.Fill, s.FillOpacity))
		grad.AddColorStop(1, rgba(s.Fill, 0))
		tracePath(dc, f.Fill)
		dc.SetFillStyle(grad)
		dc.Fill()
	}

	tracePath(dc, f.Stroke)
	dc.SetColor(rgba(s.Line, 1))
	dc.SetLineWidth(s.Width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.Stroke()

	if !f.Gaps.Empty() {
		tracePath(dc, f.Gaps)
		dc.SetColor(rgba(s.GapColor, s.GapOpacity))
		dc.SetLineWidth(s.Width + 1)
		dc.SetLineCapButt()
		dc.SetDash(s.GapDash...)
		dc.Stroke()
		dc.SetDash()
	}

	if f.End != nil {
		drawDot(dc, *f.End, s.Marker, s.Line)
	}
	if c := f.Crosshair; c != nil {
		dc.SetColor(rgba(s.Crosshair, 1))
		dc.SetLineWidth(1)
		dc.DrawLine(c.X, 0, c.X, f.Rect.Height)
		dc.Stroke()
		drawDot(dc, c.At, s.Marker, s.Line)
	}
	return dc.Image()
}

// PNG writes f as a PNG image.
func PNG(w io.Writer, f chart.Frame, s Style) error {
	dc := gg.NewContextForImage(Image(f, s))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

// tracePath appends p to the current gg path.
func tracePath(dc *gg.Context, p chart.Path) {
	for _, s := range p {
		switch s.Verb {
		case chart.MoveTo:
			dc.MoveTo(s.To.X, s.To.Y)
		case chart.LineTo:
			dc.LineTo(s.To.X, s.To.Y)
		case chart.CubicTo:
			dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
		case chart.Close:
			dc.ClosePath()
		}
	}
}

func drawDot(dc *gg.Context, at chart.Point, radius float64, color string) {
	dc.SetColor(rgba(color, 1))
	dc.DrawCircle(at.X, at.Y, radius)
	dc.Fill()
}
