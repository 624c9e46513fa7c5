package renderer

import (
	"github.com/etnz/chart"
	"github.com/etnz/chart/date"
)

// Summary is the data of the markdown summary of a chart.
type Summary struct {
	Title     string
	Timeframe chart.Timeframe
	Readout   chart.Readout
	Span      date.Range // first to last visible sample
	Low, High chart.Money
	Samples   int
	Estimated int // number of interpolated samples
	Spark     string
}

// NewSummary returns the summary of s, inspected at the scrub state st, with
// a sparkline of width columns (see Cells), or none if width is negative.
// It returns false for an empty series.
func NewSummary(title string, tf chart.Timeframe, s chart.Series, st chart.ScrubState, cur string, width int) (*Summary, bool) {
	r, ok := chart.NewReadout(s, st, cur)
	if !ok {
		return nil, false
	}
	b := chart.NewBounds(s)
	sum := &Summary{
		Title:     title,
		Timeframe: tf,
		Readout:   r,
		Span:      date.NewRange(s[0].On, s[len(s)-1].On),
		Low:       chart.M(b.Min, cur),
		High:      chart.M(b.Max, cur),
		Samples:   len(s),
	}
	if width >= 0 {
		sum.Spark = SparkText(s, width)
	}
	for _, sample := range s {
		if sample.Interpolated {
			sum.Estimated++
		}
	}
	return sum, true
}

// Calendar names the calendar period the visible samples cover exactly, e.g.
// "2025-Q3" or "2025-W37", and is empty otherwise.
func (s *Summary) Calendar() string {
	if _, ok := s.Span.Period(); !ok {
		return ""
	}
	return s.Span.Identifier()
}

// SummaryMarkdown renders the summary to a markdown string.
func SummaryMarkdown(s *Summary) (string, error) {
	partials := map[string]string{
		"summary_title":  "summary_title.md",
		"summary_period": "summary_period.md",
		"summary_spark":  "summary_spark.md",
	}
	if s.Spark == "" {
		partials["summary_spark"] = ""
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
