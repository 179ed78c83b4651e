package interpolate

import (
	"sort"
)

// searcher resolves queries against a strictly increasing sequence of
// breakpoints.
type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	s.n = len(xs)
}

// bracket returns the indices of the breakpoints surrounding x. Queries below
// the first breakpoint give (0, 0), queries above the last give
// (n-1, n-1), and exact matches give (i, i). Otherwise lo + 1 == hi and
// xs[lo] < x < xs[hi].
//
// x must not be NaN.
func (s *searcher) bracket(x float64) (lo, hi int) {
	if x < s.x0 {
		return 0, 0
	} else if x > s.lim {
		return s.n - 1, s.n - 1
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 &&
		s.xs[guess] <= x && x < s.xs[guess+1] {

		if s.xs[guess] == x {
			return guess, guess
		}
		return guess, guess + 1
	}

	// Binary search for the lowest upper bound.
	lub := sort.SearchFloat64s(s.xs, x)
	if s.xs[lub] == x {
		return lub, lub
	}
	return lub - 1, lub
}

func (s *searcher) val(i int) float64 { return s.xs[i] }
