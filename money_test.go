package chart

import (
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m          Money
		want       string
		wantSigned string
	}{
		{M(1234.5, "USD"), "$1,234.50", "+$1,234.50"},
		{M(-12.345, "USD"), "-$12.35", "-$12.35"},
		{M(0, "USD"), "$0.00", "-"},
		{M(1234.5, ""), "1234.50", "+1234.50"},
		{M(0.004, ""), "0.00", "-"},
		{M(math.NaN(), "USD"), "$0.00", "-"},
		{M(math.Inf(-1), ""), "0.00", "-"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q want %q", tc.m.Decimal(), got, tc.want)
		}
		if got := tc.m.SignedString(); got != tc.wantSigned {
			t.Errorf("%v.SignedString() = %q want %q", tc.m.Decimal(), got, tc.wantSigned)
		}
	}
}

func TestMoney_Sub(t *testing.T) {
	got := M(10, "EUR").Sub(M(2.5, ""))
	if !got.Equal(M(7.5, "EUR")) {
		t.Errorf("Sub() = %v %s want 7.5 EUR", got.Decimal(), got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Sub() of different currencies did not panic")
		}
	}()
	M(10, "EUR").Sub(M(1, "USD"))
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		p          Percent
		want       string
		wantSigned string
	}{
		{12.5, "12.50%", "+12.50%"},
		{-3.333, "-3.33%", "-3.33%"},
		{0.001, "0.00%", "-"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q want %q", float64(tc.p), got, tc.want)
		}
		if got := tc.p.SignedString(); got != tc.wantSigned {
			t.Errorf("Percent(%v).SignedString() = %q want %q", float64(tc.p), got, tc.wantSigned)
		}
	}
}

func TestPerformance(t *testing.T) {
	testCases := []struct {
		start, end float64
		change     float64
		percent    Percent
	}{
		{100, 125, 25, 25},
		{200, 150, -50, -25},
		{-100, -50, 50, 50},
		{0, 10, 10, 0},
	}
	for _, tc := range testCases {
		p := Performance{Start: M(tc.start, "EUR"), End: M(tc.end, "EUR")}
		if got := p.Change(); !got.Equal(M(tc.change, "EUR")) {
			t.Errorf("Performance{%v, %v}.Change() = %v want %v", tc.start, tc.end, got.Decimal(), tc.change)
		}
		if got := p.Percent(); !got.Equal(tc.percent) {
			t.Errorf("Performance{%v, %v}.Percent() = %v want %v", tc.start, tc.end, got, tc.percent)
		}
	}
}

func TestNewReadout(t *testing.T) {
	s := interpolated(series(100, 150, 120), 1)

	if _, ok := NewReadout(nil, ScrubState{}, "USD"); ok {
		t.Errorf("NewReadout(empty) ok = true want false")
	}

	latest, ok := NewReadout(s, ScrubState{}, "USD")
	if !ok {
		t.Fatalf("NewReadout() ok = false want true")
	}
	if latest.Scrubbing || latest.Estimated || latest.On != day(2) || latest.Value.String() != "$120.00" {
		t.Errorf("NewReadout(idle) = %+v want the latest sample", latest)
	}
	if got := latest.Performance.Percent(); !got.Equal(20) {
		t.Errorf("NewReadout(idle).Performance.Percent() = %v want 20%%", got)
	}

	scrubbed, _ := NewReadout(s, ScrubState{Active: true, Index: 1, Sample: s[1], Value: 150}, "USD")
	if !scrubbed.Scrubbing || !scrubbed.Estimated || scrubbed.On != day(1) || scrubbed.Value.String() != "$150.00" {
		t.Errorf("NewReadout(scrub) = %+v want the scrubbed sample", scrubbed)
	}
	if got := scrubbed.Performance.Change().String(); got != "$50.00" {
		t.Errorf("NewReadout(scrub).Performance.Change() = %v want $50.00", got)
	}

	stale, _ := NewReadout(s, ScrubState{Active: true, Index: 7}, "USD")
	if stale.Scrubbing || stale.On != day(2) {
		t.Errorf("NewReadout(stale scrub) = %+v want the latest sample", stale)
	}

	// the series was refreshed since the scrub state was computed
	refreshed := series(100, 140, 120)
	old := ScrubState{Active: true, Index: 1, Sample: s[1], Value: 150}
	if r, _ := NewReadout(refreshed, old, "USD"); r.Scrubbing || r.Value.String() != "$120.00" {
		t.Errorf("NewReadout(refreshed series) = %+v want the latest sample", r)
	}
}

func TestNewReadout_NotFinite(t *testing.T) {
	s := series(math.NaN(), 5, 7)
	sc := NewScrubber(DefaultOptions(), s, testSize)
	sc.Handle(down(0, 8, 30))
	if got := sc.Tick(200 * ms); got != Started {
		t.Fatalf("Tick() = %v want started", got)
	}
	r, ok := NewReadout(s, sc.Scrub(), "USD")
	if !ok || !r.Scrubbing || r.On != day(0) {
		t.Fatalf("NewReadout() = %+v, %v want scrubbing the first sample", r, ok)
	}
	if got := r.Value.String(); got != "$0.00" {
		t.Errorf("NewReadout().Value = %q want $0.00", got)
	}
	if got := r.Performance.Percent(); got != 0 {
		t.Errorf("NewReadout().Performance.Percent() = %v want 0", got)
	}
}
