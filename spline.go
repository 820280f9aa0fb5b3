package interp

import (
	"cmp"
	"slices"
)

// MinSplineSamples is the minimum number of steps [CubicSplineStrategy]
// samples between two neighboring knots.
const MinSplineSamples = 10

// CubicSplineStrategy interpolates the control points with a natural cubic
// spline, treating y as a function of x. The second derivative of the spline
// is zero at both ends.
//
// The control points are sorted by x before use. All x coordinates must be
// distinct.
type CubicSplineStrategy struct{}

// Calculate samples the spline piece by piece. Each of the len(points)−1
// pieces between neighboring knots is sampled in
// n = max(segments/(len(points)−1), [MinSplineSamples]) equal steps, which
// produces n+1 samples per piece, both knots included. The knots shared by
// neighboring pieces are therefore sampled twice and the result has
// (len(points)−1)·(n+1) samples.
func (CubicSplineStrategy) Calculate(points []Point, segments int) ([]Point, error) {
	knots, err := splineKnots(points)
	if err != nil {
		return nil, err
	}
	y2 := secondDerivatives(knots)

	pieces := len(knots) - 1
	n := max(segments/pieces, MinSplineSamples)
	out := make([]Point, 0, pieces*(n+1))
	for i := range pieces {
		p1, p2 := knots[i], knots[i+1]
		h := p2.X - p1.X
		for j := 0; j <= n; j++ {
			t := float64(j) / float64(n)
			x := p1.X + t*h
			out = append(out, Pt(x, evalSpline(p1, p2, y2[i], y2[i+1], x)))
		}
	}
	return out, nil
}

// CalculatePoint evaluates the spline at x and returns (x, y). There is no
// extrapolation: for x left of the first knot it returns the first knot, and
// for x right of the last knot it returns the last knot. A NaN x, which lies
// on no side of any knot, also yields the last knot.
func (CubicSplineStrategy) CalculatePoint(points []Point, x float64) (Point, error) {
	knots, err := splineKnots(points)
	if err != nil {
		return Point{}, err
	}
	first, last := knots[0], knots[len(knots)-1]
	switch {
	case x < first.X:
		return first, nil
	case x > last.X:
		return last, nil
	}

	y2 := secondDerivatives(knots)
	for i := range len(knots) - 1 {
		p1, p2 := knots[i], knots[i+1]
		if x >= p1.X && x <= p2.X {
			return Pt(x, evalSpline(p1, p2, y2[i], y2[i+1], x)), nil
		}
	}
	// Only NaN gets here; it compares false with every knot.
	return last, nil
}

// splineKnots returns a copy of points, sorted by x, after validating it.
func splineKnots(points []Point) ([]Point, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	knots := slices.Clone(points)
	slices.SortStableFunc(knots, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	for i := 1; i < len(knots); i++ {
		if knots[i].X == knots[i-1].X {
			return nil, invalidInput("x coordinates must be unique")
		}
	}
	return knots, nil
}

// secondDerivatives solves the tridiagonal system for the second derivatives
// of the natural spline through knots, which must be sorted by x and have
// distinct x.
func secondDerivatives(knots []Point) []float64 {
	n := len(knots)
	y2 := make([]float64, n)
	u := make([]float64, n)

	// Decomposition. y2[0] and u[0] stay zero for the natural boundary.
	for i := 1; i < n-1; i++ {
		prev, cur, next := knots[i-1], knots[i], knots[i+1]
		sig := (cur.X - prev.X) / (next.X - prev.X)
		p := sig*y2[i-1] + 2
		y2[i] = (sig - 1) / p
		d := (next.Y-cur.Y)/(next.X-cur.X) - (cur.Y-prev.Y)/(cur.X-prev.X)
		u[i] = (6*d/(next.X-prev.X) - sig*u[i-1]) / p
	}

	// Back substitution, starting from the natural boundary at the end.
	y2[n-1] = 0
	for i := n - 2; i >= 0; i-- {
		y2[i] = y2[i]*y2[i+1] + u[i]
	}
	return y2
}

// evalSpline evaluates the cubic piece between the knots p1 and p2, whose
// second derivatives are ypp1 and ypp2, at x.
func evalSpline(p1, p2 Point, ypp1, ypp2, x float64) float64 {
	h := p2.X - p1.X
	a := (p2.X - x) / h
	b := (x - p1.X) / h
	return a*p1.Y + b*p2.Y + ((a*a*a-a)*ypp1+(b*b*b-b)*ypp2)*(h*h)/6
}
