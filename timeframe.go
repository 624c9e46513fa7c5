package chart

import (
	"fmt"
	"strings"

	"github.com/etnz/chart/date"
)

// Timeframe is a trailing window of time selected by the user above a chart.
// Switching timeframe replaces the series, which restarts the reveal
// animation and aborts any scrub.
type Timeframe int

const (
	OneWeek Timeframe = iota
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	YearToDate
	All
)

func (t Timeframe) String() string {
	switch t {
	case OneWeek:
		return "1W"
	case OneMonth:
		return "1M"
	case ThreeMonths:
		return "3M"
	case SixMonths:
		return "6M"
	case OneYear:
		return "1Y"
	case YearToDate:
		return "YTD"
	case All:
		return "ALL"
	default:
		panic(fmt.Sprintf("unknown timeframe %d", t))
	}
}

// ParseTimeframe parses the short name of a timeframe, case insensitive.
func ParseTimeframe(s string) (Timeframe, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1W":
		return OneWeek, nil
	case "1M":
		return OneMonth, nil
	case "3M":
		return ThreeMonths, nil
	case "6M":
		return SixMonths, nil
	case "1Y":
		return OneYear, nil
	case "YTD":
		return YearToDate, nil
	case "ALL", "":
		return All, nil
	default:
		return All, fmt.Errorf("unknown timeframe %q want one of 1W, 1M, 3M, 6M, 1Y, YTD, ALL", s)
	}
}

// Range returns the window of the timeframe ending on end. It returns false
// for All, which is unbounded.
func (t Timeframe) Range(end date.Date) (date.Range, bool) {
	var from date.Date
	switch t {
	case OneWeek:
		from = end.Add(-6)
	case OneMonth:
		from = end.AddMonth(-1).Add(1)
	case ThreeMonths:
		from = end.AddMonth(-3).Add(1)
	case SixMonths:
		from = end.AddMonth(-6).Add(1)
	case OneYear:
		from = end.AddMonth(-12).Add(1)
	case YearToDate:
		from = end.StartOf(date.Yearly)
	default:
		return date.Range{}, false
	}
	return date.NewRange(from, end), true
}

// Timeframe returns the part of s within the timeframe ending on the latest sample.
func (s Series) Timeframe(t Timeframe) Series {
	latest, ok := s.Latest()
	if !ok {
		return s
	}
	r, ok := t.Range(latest.On)
	if !ok {
		return s
	}
	return s.Window(r)
}
