package easing

import "iter"

// Map returns an iterator yielding f(v) for every v of seq.
func Map(seq iter.Seq[float64], f func(float64) float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Take returns an iterator over at most the first n values of seq.
func Take(seq iter.Seq[float64], n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n <= 0 {
			return
		}

		cnt := 0

		for v := range seq {
			if !yield(v) {
				return
			}

			cnt++
			if cnt >= n {
				return
			}
		}
	}
}
