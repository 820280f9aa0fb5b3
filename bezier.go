package interp

import "math"

// BezierStrategy treats the control points as the control polygon of a single
// Bézier curve of degree len(points)−1. Points are used in the order given.
type BezierStrategy struct{}

// Calculate evaluates the curve at segments+1 equally spaced parameters
// t = i/segments. The first and last samples are exactly the first and last
// control points.
func (BezierStrategy) Calculate(points []Point, segments int) ([]Point, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	// Scratch space, reused for every sample.
	work := make([]Point, len(points))
	out := make([]Point, 0, max(segments+1, 0))
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		copy(work, points)
		out = append(out, deCasteljau(work, t))
	}
	return out, nil
}

// CalculatePoint evaluates the curve at parameter t, which is usually in [0, 1].
func (BezierStrategy) CalculatePoint(points []Point, t float64) (Point, error) {
	if err := checkPoints(points); err != nil {
		return Point{}, err
	}
	return DeCasteljau(points, t), nil
}

// DeCasteljau evaluates the Bézier curve with the given control points at t,
// using De Casteljau's algorithm: the control polygon is repeatedly replaced
// by the points dividing each of its edges in the ratio t : 1−t, until a
// single point remains.
//
// It panics if points is empty.
func DeCasteljau(points []Point, t float64) Point {
	work := make([]Point, len(points))
	copy(work, points)
	return deCasteljau(work, t)
}

// deCasteljau is like DeCasteljau but overwrites work.
func deCasteljau(work []Point, t float64) Point {
	for n := len(work) - 1; n > 0; n-- {
		for i := range n {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}

// Bernstein evaluates the Bézier curve with the given control points at t as
// the sum of the points weighted by the Bernstein basis polynomials
// C(n, i)·tⁱ·(1−t)ⁿ⁻ⁱ. It agrees with [DeCasteljau] up to rounding error, but
// is less numerically stable for curves of high degree.
func Bernstein(points []Point, t float64) Point {
	n := len(points) - 1
	var x, y float64
	for i, pt := range points {
		b := Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		x += b * pt.X
		y += b * pt.Y
	}
	return Pt(x, y)
}

// Binomial returns the binomial coefficient C(n, k), or 0 if k is outside
// [0, n].
//
// The coefficient is computed with the multiplicative formula, which keeps
// intermediate values small and exact for all results that fit a float64's
// mantissa.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}
	return res
}
