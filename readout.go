package chart

import "github.com/etnz/chart/date"

// Readout is the value displayed next to a chart: the scrubbed point while
// scrubbing, the latest sample otherwise.
type Readout struct {
	On          date.Date
	Value       Money
	Performance Performance // change since the first visible sample
	Estimated   bool        // the displayed sample is interpolated
	Scrubbing   bool
}

// NewReadout returns the readout of s for the scrub state st, values
// formatted in currency cur. It returns false for an empty series.
func NewReadout(s Series, st ScrubState, cur string) (Readout, bool) {
	first, ok := s.First()
	if !ok {
		return Readout{}, false
	}
	sample, value := s[len(s)-1], s[len(s)-1].Value
	scrubbing := st.Fits(s)
	if scrubbing {
		sample, value = s[st.Index], st.Value
	}
	return Readout{
		On:          sample.On,
		Value:       M(value, cur),
		Performance: Performance{Start: M(first.Value, cur), End: M(value, cur)},
		Estimated:   sample.Interpolated,
		Scrubbing:   scrubbing,
	}, true
}
