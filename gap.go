package chart

// Gap is the segment joining sample From to sample From+1, where at least one
// end is an interpolated sample.
type Gap struct{ From, To int }

// Gaps lists gap segments in order.
type Gaps []Gap

// GapSegments returns every segment (i, i+1) of s where sample i or sample
// i+1 is interpolated. It returns nil when no sample is interpolated.
func GapSegments(s Series) Gaps {
	var gaps Gaps
	for i := 0; i+1 < len(s); i++ {
		if s[i].Interpolated || s[i+1].Interpolated {
			gaps = append(gaps, Gap{From: i, To: i + 1})
		}
	}
	return gaps
}

// Contains reports whether segment (i, i+1) is a gap.
func (g Gaps) Contains(i int) bool {
	for _, gap := range g {
		if gap.From == i {
			return true
		}
	}
	return false
}

// Overlay returns the gap segments of p as a separate path, drawn over p with
// a distinct style. p is a path built by a Strategy, possibly partly
// revealed: only the gap segments present in p are returned, including a
// partly revealed last segment. Consecutive gaps are joined in a single
// subpath. p is never modified.
func (g Gaps) Overlay(p Path) Path {
	var out Path
	last := -1
	for _, gap := range g {
		k := gap.From + 1 // segment k joins point k-1 to point k
		if k >= len(p) {
			break
		}
		if gap.From != last {
			out = append(out, Segment{Verb: MoveTo, To: p[k-1].To})
		}
		out = append(out, p[k])
		last = gap.To
	}
	return out
}
