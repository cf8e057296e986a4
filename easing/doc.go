// Package easing implements easing functions and lazy sequences of eased
// values.
//
// An easing function maps linear progress p in [0, 1] to eased progress,
// with f(0) == 0 and f(1) == 1. A Sequence walks an easing function over a
// fixed number of steps between a start and an end value:
//
//	for v := range easing.CubicOut(0, 100, 10).All() {
//		...
//	}
//
// NaN or infinite start and end values are outside the contract; the
// produced values are unspecified but nothing panics.
package easing
