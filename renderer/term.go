package renderer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/chart"
)

var levels = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Cell is one column of a terminal sparkline.
type Cell struct {
	Level     int // index in the block levels
	Estimated bool
}

// Cells samples s into at most width columns. Columns between samples use the
// blended value, and are estimated when the nearest sample is interpolated.
// A non positive width uses one column per sample.
func Cells(s chart.Series, width int) []Cell {
	if len(s) == 0 {
		return nil
	}
	if width <= 0 || width > len(s) {
		width = len(s)
	}
	b := chart.NewBounds(s)
	cells := make([]Cell, width)
	for i := range cells {
		nx := 0.5
		if width > 1 {
			nx = float64(i) / float64(width-1)
		}
		idx, v := chart.Resolve(s, nx, chart.Blend)
		cells[i] = Cell{
			Level:     int(math.Round((1 - b.NormalizedY(v)) * float64(len(levels)-1))),
			Estimated: s[idx].Interpolated,
		}
	}
	return cells
}

// SparkText returns the plain block sparkline of s.
func SparkText(s chart.Series, width int) string {
	var b strings.Builder
	for _, c := range Cells(s, width) {
		b.WriteString(levels[c.Level])
	}
	return b.String()
}

// Spark returns the block sparkline of s colored with the style line color,
// estimated columns being faint.
func Spark(s chart.Series, width int, st Style) string {
	line := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Line))
	gap := line.Faint(true)

	var out, run strings.Builder
	estimated := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if estimated {
			out.WriteString(gap.Render(run.String()))
		} else {
			out.WriteString(line.Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range Cells(s, width) {
		if c.Estimated != estimated {
			flush()
			estimated = c.Estimated
		}
		run.WriteString(levels[c.Level])
	}
	flush()
	return out.String()
}
