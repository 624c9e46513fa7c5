package chart

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// zigzag has two straight segments of length 5.
var zigzag = Path{
	{Verb: MoveTo, To: Point{0, 0}},
	{Verb: LineTo, To: Point{3, 4}},
	{Verb: LineTo, To: Point{6, 0}},
}

func TestReveal(t *testing.T) {
	testCases := []struct {
		progress float64
		want     Path
	}{
		{0, nil},
		{-1, nil},
		{0.25, Path{{Verb: MoveTo, To: Point{0, 0}}, {Verb: LineTo, To: Point{1.5, 2}}}},
		{0.5, zigzag[:2]},
		{0.75, Path{zigzag[0], zigzag[1], {Verb: LineTo, To: Point{4.5, 2}}}},
		{1, zigzag},
		{2, zigzag},
	}
	for _, tc := range testCases {
		got := zigzag.Reveal(tc.progress)
		if diff := cmp.Diff(tc.want, got, approx); diff != "" {
			t.Errorf("Reveal(%v) mismatch (-want +got):\n%s", tc.progress, diff)
		}
	}
}

func TestReveal_Length(t *testing.T) {
	s := series(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5)
	points := Layout(s, NewBounds(s), testRect)
	for _, strategy := range []Strategy{Linear{}, Smooth{Tension: DefaultTension}} {
		full := strategy.Build(points)
		total := full.Length()

		var previous float64
		for i := 0; i <= 100; i++ {
			p := float64(i) / 100
			revealed := Reveal(strategy, points, p)
			got := revealed.Length()
			if got < previous {
				t.Errorf("%T: Reveal(%v).Length() = %v decreased from %v", strategy, p, got, previous)
			}
			if !near(got, total*p) {
				t.Errorf("%T: Reveal(%v).Length() = %v want %v", strategy, p, got, total*p)
			}
			previous = got
		}
		if got := full.Reveal(1); len(got) != len(full) {
			t.Errorf("%T: Reveal(1) has %d segments want %d", strategy, len(got), len(full))
		}
	}
}

func TestReveal_SmoothTrailingLine(t *testing.T) {
	s := series(100, 110, 90)
	full := Smooth{Tension: DefaultTension}.Build(Layout(s, NewBounds(s), testRect))
	got := full.Reveal(0.75)
	if len(got) != 3 {
		t.Fatalf("Reveal(0.75) has %d segments want 3: %v", len(got), got)
	}
	if got[1] != full[1] {
		t.Errorf("Reveal(0.75)[1] = %v want the untouched cubic %v", got[1], full[1])
	}
	if got[2].Verb != LineTo {
		t.Errorf("Reveal(0.75)[2].Verb = %v want a straight fragment", got[2].Verb)
	}
}

func TestTimeline(t *testing.T) {
	tl := DefaultTimeline()
	testCases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Second, 0},
		{0, 0},
		{300 * time.Millisecond, 0.5},
		{600 * time.Millisecond, 1},
		{time.Hour, 1},
	}
	for _, tc := range testCases {
		if got := tl.Progress(tc.elapsed); !near(got, tc.want) {
			t.Errorf("Progress(%v) = %v want %v", tc.elapsed, got, tc.want)
		}
	}

	eased := Timeline{Duration: time.Second, Easing: EaseOutCubic}
	if got := eased.Progress(500 * time.Millisecond); !near(got, 0.875) {
		t.Errorf("EaseOutCubic Progress(0.5s) = %v want 0.875", got)
	}
}

func TestTimeline_Frames(t *testing.T) {
	var frames []float64
	for p := range DefaultTimeline().Frames(60) {
		frames = append(frames, p)
	}
	if len(frames) != 37 {
		t.Fatalf("Frames(60) yields %d frames want 37", len(frames))
	}
	if frames[0] != 0 || frames[len(frames)-1] != 1 {
		t.Errorf("Frames(60) = [%v .. %v] want [0 .. 1]", frames[0], frames[len(frames)-1])
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			t.Errorf("Frames(60)[%d] = %v < %v", i, frames[i], frames[i-1])
		}
	}

	n := 0
	for p := range (Timeline{}).Frames(60) {
		n++
		if p != 1 {
			t.Errorf("zero duration frame = %v want 1", p)
		}
	}
	if n != 1 {
		t.Errorf("zero duration yields %d frames want 1", n)
	}
}
