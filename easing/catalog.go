package easing

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/commerr"
)

type Shape int

const (
	ShapeLinear Shape = iota
	ShapeQuad
	ShapeCubic
	ShapeQuartic
	ShapeSin
	ShapeExp
)

var shapeNames = map[Shape]string{
	ShapeLinear:  "linear",
	ShapeQuad:    "quad",
	ShapeCubic:   "cubic",
	ShapeQuartic: "quartic",
	ShapeSin:     "sin",
	ShapeExp:     "exp",
}

// shapeAliases maps every accepted spelling of a shape to the shape.
var shapeAliases = map[string]Shape{
	"linear":      ShapeLinear,
	"quad":        ShapeQuad,
	"quadratic":   ShapeQuad,
	"cubic":       ShapeCubic,
	"quartic":     ShapeQuartic,
	"quart":       ShapeQuartic,
	"sin":         ShapeSin,
	"sine":        ShapeSin,
	"sinusoidal":  ShapeSin,
	"exp":         ShapeExp,
	"expo":        ShapeExp,
	"exponential": ShapeExp,
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Shape(%d)", int(s))
}

type Direction int

const (
	DirectionIn Direction = iota
	DirectionOut
	DirectionInOut
)

var directionNames = map[Direction]string{
	DirectionIn:    "in",
	DirectionOut:   "out",
	DirectionInOut: "inout",
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// catalog is indexed by shape, then by direction.
var catalog = map[Shape][3]Func{
	ShapeLinear:  {LinearFunc, LinearFunc, LinearFunc},
	ShapeQuad:    {QuadInFunc, QuadOutFunc, QuadInOutFunc},
	ShapeCubic:   {CubicInFunc, CubicOutFunc, CubicInOutFunc},
	ShapeQuartic: {QuarticInFunc, QuarticOutFunc, QuarticInOutFunc},
	ShapeSin:     {SinInFunc, SinOutFunc, SinInOutFunc},
	ShapeExp:     {ExpInFunc, ExpOutFunc, ExpInOutFunc},
}

// Lookup returns the easing function for the given shape and direction.
// All three directions of ShapeLinear resolve to LinearFunc.
func Lookup(shape Shape, dir Direction) (Func, bool) {
	fns, ok := catalog[shape]
	if !ok || dir < DirectionIn || dir > DirectionInOut {
		return nil, false
	}

	return fns[dir], true
}

// Name identifies one entry of the catalog.
type Name struct {
	Shape     Shape
	Direction Direction
}

// String returns the canonical name, e.g. "cubic_inout". Linear curves are
// always named "linear".
func (n Name) String() string {
	if n.Shape == ShapeLinear {
		return n.Shape.String()
	}

	return n.Shape.String() + "_" + n.Direction.String()
}

// Func returns the easing function of n, or nil if n is not in the catalog.
func (n Name) Func() Func {
	fn, _ := Lookup(n.Shape, n.Direction)

	return fn
}

// Names returns every distinct easing function of the catalog, linear first.
func Names() []Name {
	ns := []Name{{Shape: ShapeLinear, Direction: DirectionIn}}

	for shape := ShapeQuad; shape <= ShapeExp; shape++ {
		for dir := DirectionIn; dir <= DirectionInOut; dir++ {
			ns = append(ns, Name{Shape: shape, Direction: dir})
		}
	}

	return ns
}

// ParseName parses names such as "quad_in", "Cubic-InOut", "linear" or
// "exponential_out".
func ParseName(s string) (n Name, err error) {
	ss := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if strings.HasSuffix(ss, "_in_out") {
		ss = strings.TrimSuffix(ss, "_in_out") + "_inout"
	}

	shapePart, dirPart := ss, ""
	if idx := strings.LastIndex(ss, "_"); idx >= 0 {
		shapePart, dirPart = ss[:idx], ss[idx+1:]
	}

	shape, ok := shapeAliases[shapePart]
	if !ok {
		err = fmt.Errorf("%w: unknown easing %q", commerr.ErrInvalidArgument, s)

		return
	}

	n.Shape = shape

	switch dirPart {
	case "in":
		n.Direction = DirectionIn
	case "out":
		n.Direction = DirectionOut
	case "inout":
		n.Direction = DirectionInOut
	case "":
		if shape != ShapeLinear {
			err = fmt.Errorf("%w: easing %q needs a direction", commerr.ErrInvalidArgument, s)
		}
	default:
		err = fmt.Errorf("%w: unknown easing direction in %q", commerr.ErrInvalidArgument, s)
	}

	if err != nil {
		n = Name{}
	}

	return
}
