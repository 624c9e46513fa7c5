package chart

import (
	"slices"

	"github.com/etnz/chart/date"
)

// Sample is one dated observation of the plotted series.
type Sample struct {
	On    date.Date
	Value float64
	// Interpolated is true when the value was estimated to fill a data gap
	// rather than directly observed.
	Interpolated bool
}

// Series is a chronologically ascending list of samples.
//
// Duplicate dates are not validated; their rendering is unspecified.
type Series []Sample

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// First returns the earliest sample.
func (s Series) First() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[0], true
}

// Latest returns the most recent sample.
func (s Series) Latest() (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	return s[len(s)-1], true
}

// Values returns the sample values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = sample.Value
	}
	return values
}

// Equal reports whether both series hold the same samples.
func (s Series) Equal(o Series) bool { return slices.Equal(s, o) }

// Window returns the samples whose date is within r. The result shares the
// underlying array of s.
func (s Series) Window(r date.Range) Series {
	from, _ := slices.BinarySearchFunc(s, r.From, func(x Sample, on date.Date) int { return compare(x.On, on) })
	to := from
	for to < len(s) && r.Contains(s[to].On) {
		to++
	}
	return s[from:to]
}

// Sorted reports whether s is chronologically ascending.
func (s Series) Sorted() bool {
	return slices.IsSortedFunc(s, func(a, b Sample) int { return compare(a.On, b.On) })
}

// Sort sorts s chronologically in place, keeping the order of equal dates.
func (s Series) Sort() {
	slices.SortStableFunc(s, func(a, b Sample) int { return compare(a.On, b.On) })
}

func compare(a, b date.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// FromHistory converts a history into a series of observed samples.
func FromHistory(h *date.History[float64]) Series {
	s := make(Series, 0, h.Len())
	for on, v := range h.Values() {
		s = append(s, Sample{On: on, Value: v})
	}
	return s
}

// History returns the observed samples of s as a history. Interpolated
// samples are dropped.
func (s Series) History() *date.History[float64] {
	h := new(date.History[float64])
	for _, sample := range s {
		if !sample.Interpolated {
			h.Append(sample.On, sample.Value)
		}
	}
	return h
}

// FillGaps returns a daily series covering the whole history. Days missing
// from h are linearly interpolated between their closest known neighbours and
// flagged Interpolated.
func FillGaps(h *date.History[float64]) Series {
	span, ok := h.Span()
	if !ok {
		return nil
	}
	s := make(Series, 0, span.Len())
	for on := range span.Days() {
		if v, ok := h.Get(on); ok {
			s = append(s, Sample{On: on, Value: v})
			continue
		}
		// both sides exist strictly inside the span
		before, vb, _, after, va, _ := h.Around(on)
		t := float64(on.Sub(before)) / float64(after.Sub(before))
		s = append(s, Sample{On: on, Value: vb + t*(va-vb), Interpolated: true})
	}
	return s
}
