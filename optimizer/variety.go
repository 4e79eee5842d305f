package optimizer

import "sort"

// DefaultHistoryWindow is the number of recently accepted rep sequences a
// History remembers when no window is given.
const DefaultHistoryWindow = 2

// History remembers the most recently accepted rep sequences for a single
// exercise. It is bounded: pushing beyond the window evicts the oldest
// entry. A History must never be shared between exercises or between
// concurrent renders.
type History struct {
	window int
	seqs   [][]int
}

// NewHistory creates a History remembering the last window sequences.
// A window below 1 falls back to DefaultHistoryWindow.
func NewHistory(window int) *History {
	if window < 1 {
		window = DefaultHistoryWindow
	}
	return &History{window: window}
}

// Push records an accepted rep sequence, evicting the oldest entry when the
// window is full. The sequence is copied.
func (h *History) Push(reps []int) {
	h.seqs = append(h.seqs, append([]int(nil), reps...))
	if len(h.seqs) > h.window {
		h.seqs = h.seqs[1:]
	}
}

// Len returns the number of remembered sequences.
func (h *History) Len() int { return len(h.seqs) }

// Select returns the candidate least similar to the recently accepted
// sequences: it maximizes the minimum rep-count distance to every remembered
// sequence. Ties keep the earliest candidate, i.e. the optimizer's own
// tie-break order. Select never widens the choice: with no history, or a
// single candidate, it returns the first candidate unchanged.
//
// Select panics if candidates is empty; Optimize never returns an empty,
// nil-error candidate list.
func Select(candidates []Candidate, hist *History) Candidate {
	if len(candidates) <= 1 || hist == nil || len(hist.seqs) == 0 {
		return candidates[0]
	}
	best := 0
	bestScore := -1
	for i, c := range candidates {
		score := hist.distance(c.Reps)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return candidates[best]
}

// distance returns the minimum multiset rep-count distance between reps and
// any remembered sequence.
func (h *History) distance(reps []int) int {
	min := -1
	for _, seq := range h.seqs {
		d := repDistance(reps, seq)
		if min < 0 || d < min {
			min = d
		}
	}
	return min
}

// repDistance is a multiset distance between two rep sequences: both are
// sorted and compared position by position, with missing positions counting
// their full rep value. Identical sequences have distance 0.
func repDistance(a, b []int) int {
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)

	var d int
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av > bv {
			d += av - bv
		} else {
			d += bv - av
		}
	}
	return d
}
