package interp

// LagrangeStrategy interpolates the control points with the unique polynomial
// of degree len(points)−1 passing through all of them, treating y as a
// function of x.
//
// Control points sharing an x coordinate make the polynomial undefined. This
// is not checked for; the resulting samples are NaN or infinite.
type LagrangeStrategy struct{}

// Calculate samples the polynomial at segments+1 x coordinates, equally
// spaced between the smallest and largest x of the control points. The order
// of the control points does not matter.
func (LagrangeStrategy) Calculate(points []Point, segments int) ([]Point, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	minX, maxX := points[0].X, points[0].X
	for _, pt := range points[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
	}

	out := make([]Point, 0, max(segments+1, 0))
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := minX + t*(maxX-minX)
		out = append(out, Pt(x, lagrange(points, x)))
	}
	return out, nil
}

// CalculatePoint evaluates the polynomial at x and returns (x, y).
func (LagrangeStrategy) CalculatePoint(points []Point, x float64) (Point, error) {
	if err := checkPoints(points); err != nil {
		return Point{}, err
	}
	return Pt(x, lagrange(points, x)), nil
}

// lagrange computes Σ yᵢ·Lᵢ(x).
func lagrange(points []Point, x float64) float64 {
	var y float64
	for i, pt := range points {
		y += pt.Y * lagrangeBasis(points, i, x)
	}
	return y
}

// lagrangeBasis computes Lᵢ(x) = Π_{j≠i} (x − xⱼ) / (xᵢ − xⱼ).
func lagrangeBasis(points []Point, i int, x float64) float64 {
	xi := points[i].X
	res := 1.0
	for j, pt := range points {
		if j == i {
			continue
		}
		res *= (x - pt.X) / (xi - pt.X)
	}
	return res
}
