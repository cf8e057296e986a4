package easing

// Ease returns a sequence for the catalog entry n. Names outside the
// catalog fall back to linear spacing.
func Ease(n Name, start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, n.Func())
}

func Linear(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, LinearFunc)
}

func QuadIn(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuadInFunc)
}

func QuadOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuadOutFunc)
}

func QuadInOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuadInOutFunc)
}

func CubicIn(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, CubicInFunc)
}

func CubicOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, CubicOutFunc)
}

func CubicInOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, CubicInOutFunc)
}

func QuarticIn(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuarticInFunc)
}

func QuarticOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuarticOutFunc)
}

func QuarticInOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, QuarticInOutFunc)
}

func SinIn(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, SinInFunc)
}

func SinOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, SinOutFunc)
}

func SinInOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, SinInOutFunc)
}

func ExpIn(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, ExpInFunc)
}

func ExpOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, ExpOutFunc)
}

func ExpInOut(start, end float64, steps uint64) *Sequence {
	return New(start, end, steps, ExpInOutFunc)
}
