package interp

import (
	"fmt"
	"strings"
)

// Strategy turns control points into a sampled curve.
//
// Implementations are stateless and never retain or modify the slices passed
// to them. Every method requires at least two points and returns an
// [InvalidInputError] otherwise.
type Strategy interface {
	// Calculate samples the curve defined by points. The number of samples
	// depends on segments and on the strategy. Segments is expected to be
	// positive; it is not validated, and zero produces NaN samples.
	Calculate(points []Point, segments int) ([]Point, error)

	// CalculatePoint evaluates the curve at a single position. What t means
	// depends on the strategy: it is the curve parameter for Bézier curves
	// and the x coordinate for interpolating strategies.
	CalculatePoint(points []Point, t float64) (Point, error)
}

var (
	_ Strategy = BezierStrategy{}
	_ Strategy = LagrangeStrategy{}
	_ Strategy = CubicSplineStrategy{}
)

// Kind identifies an interpolation strategy.
type Kind int

const (
	Bezier Kind = iota + 1
	Lagrange
	CubicSpline
)

// Kinds returns all known kinds, in display order.
func Kinds() []Kind {
	return []Kind{Bezier, Lagrange, CubicSpline}
}

func (k Kind) String() string {
	switch k {
	case Bezier:
		return "bezier"
	case Lagrange:
		return "lagrange"
	case CubicSpline:
		return "spline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title returns a human-readable name of the kind.
func (k Kind) Title() string {
	switch k {
	case Bezier:
		return "Bézier"
	case Lagrange:
		return "Lagrange"
	case CubicSpline:
		return "Cubic spline"
	default:
		return k.String()
	}
}

// ParseKind parses the output of [Kind.String]. It is case-insensitive and
// also accepts "cubicspline" for [CubicSpline].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bezier":
		return Bezier, nil
	case "lagrange":
		return Lagrange, nil
	case "spline", "cubicspline":
		return CubicSpline, nil
	default:
		return 0, invalidInput(fmt.Sprintf("unknown interpolation kind %q", s))
	}
}

// NewStrategy returns the strategy for kind k.
func NewStrategy(k Kind) (Strategy, error) {
	switch k {
	case Bezier:
		return BezierStrategy{}, nil
	case Lagrange:
		return LagrangeStrategy{}, nil
	case CubicSpline:
		return CubicSplineStrategy{}, nil
	default:
		return nil, invalidInput(fmt.Sprintf("unknown interpolation kind %s", k))
	}
}

func checkPoints(points []Point) error {
	if len(points) < 2 {
		return invalidInput("need at least 2 control points")
	}
	return nil
}
