package chart

import (
	"math"

	"github.com/etnz/chart/date"
)

// day0 is the first day of test series.
var day0 = date.New(2025, 1, 1)

// day returns the i-th day after day0.
func day(i int) date.Date { return day0.Add(i) }

// series is a helper for test to create a daily series of observed values.
func series(values ...float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Sample{On: day(i), Value: v}
	}
	return s
}

// interpolated returns a copy of s where samples at indexes are interpolated.
func interpolated(s Series, indexes ...int) Series {
	s = append(Series(nil), s...)
	for _, i := range indexes {
		s[i].Interpolated = true
	}
	return s
}

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }
