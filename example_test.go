package interp_test

import (
	"fmt"
	"slices"

	"honnef.co/go/interp"
)

func Example() {
	var pts interp.PointSet
	pts.Add(interp.Pt(0, 0))
	pts.Add(interp.Pt(50, 100))
	pts.Add(interp.Pt(100, 0))

	// Dragging the middle point.
	if i := pts.NearestIndex(interp.Pt(48, 97), 10); i != -1 {
		pts.Update(i, interp.Pt(50, 80))
	}

	if !pts.HasEnoughPointsForCurve() {
		return
	}
	s, err := interp.NewStrategy(interp.Bezier)
	if err != nil {
		panic(err)
	}
	curve, err := s.Calculate(pts.Points(), 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(interp.SVG(slices.Values(curve), interp.SVGOptions{}))
	// Output:
	// M0,0 L25,30 L50,40 L75,30 L100,0
}

func ExampleCubicSplineStrategy_CalculatePoint() {
	pts := []interp.Point{interp.Pt(2, 0), interp.Pt(0, 0), interp.Pt(1, 2)}
	var s interp.CubicSplineStrategy
	for _, x := range []float64{-1, 0, 1, 3} {
		p, err := s.CalculatePoint(pts, x)
		if err != nil {
			panic(err)
		}
		fmt.Println(p.Round())
	}
	// Output:
	// (0, 0)
	// (0, 0)
	// (1, 2)
	// (2, 0)
}
