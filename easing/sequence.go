package easing

import (
	"iter"
	"math"
)

// maxCollectHint bounds the capacity Collect reserves up front; longer
// sequences grow the slice as they are read.
const maxCollectHint = 1 << 16

// Sequence lazily produces the eased values between a start and an end
// value. A Sequence is consumed by reading from it; to walk the same values
// again, construct a new one.
//
// A Sequence must not be read from more than one goroutine at a time. The
// easing function is never modified and may be shared freely.
type Sequence struct {
	start float64
	end   float64
	steps uint64
	step  uint64

	fn Func
}

// New returns a sequence of steps values from start to end, spaced by fn.
//
// With steps == 0 the sequence is empty and with steps == 1 it consists of
// start alone. Otherwise value i is start + (end-start)*fn(i/(steps-1)), the
// first value is exactly start and the last one exactly end.
func New(start, end float64, steps uint64, fn Func) *Sequence {
	if fn == nil {
		fn = LinearFunc
	}

	return &Sequence{
		start: start,
		end:   end,
		steps: steps,
		fn:    fn,
	}
}

// Next returns the next value. Once the sequence is exhausted, ok is false.
func (s *Sequence) Next() (v float64, ok bool) {
	if s.step >= s.steps {
		return
	}

	i := s.step
	s.step++

	return s.at(i), true
}

func (s *Sequence) at(i uint64) float64 {
	if i == 0 {
		return s.start
	}

	if i == s.steps-1 {
		return s.end
	}

	p := float64(i) / float64(s.steps-1)

	return s.start + (s.end-s.start)*s.fn(p)
}

// Len returns the number of values not read yet, capped at math.MaxInt.
func (s *Sequence) Len() int {
	n := s.steps - s.step
	if n > math.MaxInt {
		return math.MaxInt
	}

	return int(n)
}

// All returns an iterator over the remaining values. Breaking out of the
// loop early leaves the values after the break unread.
func (s *Sequence) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect reads all remaining values into a slice.
func (s *Sequence) Collect() []float64 {
	vs := make([]float64, 0, collectHint(s.Len()))

	for v := range s.All() {
		vs = append(vs, v)
	}

	return vs
}

func collectHint(n int) int {
	if n > maxCollectHint {
		return maxCollectHint
	}

	return n
}
