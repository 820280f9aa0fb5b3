package interp

import (
	"errors"
	"testing"
)

func TestBezierTooFewPoints(t *testing.T) {
	var b BezierStrategy
	for _, pts := range [][]Point{nil, {Pt(0, 0)}} {
		_, err := b.Calculate(pts, 10)
		var ierr *InvalidInputError
		if !errors.As(err, &ierr) {
			t.Fatalf("got error %v, want *InvalidInputError", err)
		}
		if want := "need at least 2 control points"; ierr.Reason != want {
			t.Errorf("got reason %q, want %q", ierr.Reason, want)
		}
		if _, err := b.CalculatePoint(pts, 0.5); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CalculatePoint: got error %v, want %v", err, ErrInvalidInput)
		}
	}
}

func TestBezierSampleCount(t *testing.T) {
	var b BezierStrategy
	pts := []Point{Pt(0, 0), Pt(10, 10)}
	for _, n := range []int{1, 5, 100} {
		curve, err := b.Calculate(pts, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(curve) != n+1 {
			t.Errorf("got %d samples for %d segments, want %d", len(curve), n, n+1)
		}
	}
}

func TestBezierEndpoints(t *testing.T) {
	var b BezierStrategy
	inputs := [][]Point{
		{Pt(0, 0), Pt(10, 10)},
		{Pt(0.1, 0.3), Pt(5, 10), Pt(10.7, 0.9)},
		{Pt(550, 258), Pt(1044, 482), Pt(2029, 1841), Pt(1934, 1554), Pt(-3, 0.125)},
	}
	for _, pts := range inputs {
		for _, n := range []int{1, 3, 7, 100} {
			curve, err := b.Calculate(pts, n)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, pts[0], curve[0])
			diff(t, pts[len(pts)-1], curve[len(curve)-1])
		}
	}
}

func TestBezierControlOrder(t *testing.T) {
	// Control points aren't sorted, so reordering them changes the curve.
	var b BezierStrategy
	p, _ := b.CalculatePoint([]Point{Pt(0, 0), Pt(10, 0), Pt(5, 10)}, 0.5)
	q, _ := b.CalculatePoint([]Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}, 0.5)
	diff(t, Pt(6.25, 2.5), p, pointComparer)
	diff(t, Pt(5, 5), q, pointComparer)
}

func TestDeCasteljauEqualsBernstein(t *testing.T) {
	inputs := [][]Point{
		{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
		{Pt(0, 0), Pt(0.8, 1), Pt(0.2, 1), Pt(1, 0)},
		{Pt(3, 7), Pt(-2, 4), Pt(8, 8), Pt(1, -5), Pt(0, 0), Pt(9, 2)},
	}
	approx := approxPoint(1e-6)
	for _, pts := range inputs {
		for i := 0; i <= 10; i++ {
			tt := float64(i) / 10
			diff(t, DeCasteljau(pts, tt), Bernstein(pts, tt), approx)
		}
	}
}

func TestDeCasteljauDoesNotModifyInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	DeCasteljau(pts, 0.3)
	diff(t, []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}, pts)

	var b BezierStrategy
	if _, err := b.Calculate(pts, 4); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, 10), Pt(10, 0)}, pts)
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 1, 5},
		{5, 2, 10},
		{5, 3, 10},
		{5, -1, 0},
		{5, 6, 0},
		{20, 10, 184756},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %g, want %g", tt.n, tt.k, got, tt.want)
		}
	}
}
