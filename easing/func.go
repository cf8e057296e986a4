package easing

import "math"

// Func maps progress in [0, 1] to eased progress.
type Func func(p float64) float64

func LinearFunc(x float64) float64 {
	return x
}

func QuadInFunc(x float64) float64 {
	return x * x
}

func QuadOutFunc(x float64) float64 {
	return x * (2 - x)
}

func QuadInOutFunc(x float64) float64 {
	if x < 0.5 {
		return 2 * x * x
	}

	y := 1 - x

	return 1 - 2*y*y
}

func CubicInFunc(x float64) float64 {
	return x * x * x
}

func CubicOutFunc(x float64) float64 {
	y := 1 - x

	return 1 - y*y*y
}

func CubicInOutFunc(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}

	y := 1 - x

	return 1 - 4*y*y*y
}

func QuarticInFunc(x float64) float64 {
	return x * x * x * x
}

func QuarticOutFunc(x float64) float64 {
	y := 1 - x

	return 1 - y*y*y*y
}

func QuarticInOutFunc(x float64) float64 {
	if x < 0.5 {
		return 8 * x * x * x * x
	}

	y := 1 - x

	return 1 - 8*y*y*y*y
}

// SinInFunc is 1-cos(x*pi/2), written as sin((x-1)*pi/2)+1 so that both
// edges come out as exactly 0 and 1.
func SinInFunc(x float64) float64 {
	return math.Sin((x-1)*math.Pi/2) + 1
}

func SinOutFunc(x float64) float64 {
	return math.Sin(x * math.Pi / 2)
}

// SinInOutFunc is -(cos(pi*x)-1)/2, stitched from the in and out halves so
// that the midpoint comes out as exactly 0.5.
func SinInOutFunc(x float64) float64 {
	if x < 0.5 {
		return SinInFunc(2*x) / 2
	}

	return (1 + SinOutFunc(2*x-1)) / 2
}

// The exponential curves never reach 0 or 1 on their own, the edges are
// pinned explicitly.

func ExpInFunc(x float64) float64 {
	if x == 0 {
		return 0
	}

	return math.Pow(2, 10*(x-1))
}

func ExpOutFunc(x float64) float64 {
	if x == 1 {
		return 1
	}

	return 1 - math.Pow(2, -10*x)
}

func ExpInOutFunc(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return 1 - math.Pow(2, -20*x+10)/2
	}
}
