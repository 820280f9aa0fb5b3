package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLagrangeTooFewPoints(t *testing.T) {
	var l LagrangeStrategy
	if _, err := l.Calculate([]Point{Pt(0, 0)}, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want %v", err, ErrInvalidInput)
	}
}

func TestLagrangeCalculate(t *testing.T) {
	var l LagrangeStrategy
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	curve, err := l.Calculate(pts, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(curve) != 11 {
		t.Fatalf("got %d samples, want 11", len(curve))
	}
	approx := cmpopts.EquateApprox(0, 1e-6)
	diff(t, 0.0, curve[0].Y, approx)
	diff(t, 0.0, curve[len(curve)-1].Y, approx)
	// y = 2x − x²
	for _, pt := range curve {
		diff(t, 2*pt.X-pt.X*pt.X, pt.Y, approx)
	}
}

func TestLagrangeUnsortedInput(t *testing.T) {
	var l LagrangeStrategy
	sorted, err := l.Calculate([]Point{Pt(-1, 3), Pt(0.5, -2), Pt(4, 1), Pt(6, 6)}, 20)
	if err != nil {
		t.Fatal(err)
	}
	shuffled, err := l.Calculate([]Point{Pt(4, 1), Pt(-1, 3), Pt(6, 6), Pt(0.5, -2)}, 20)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, sorted, shuffled, approxPoint(1e-9))
	if sorted[0].X != -1 || sorted[len(sorted)-1].X != 6 {
		t.Errorf("samples span [%g, %g], want [-1, 6]", sorted[0].X, sorted[len(sorted)-1].X)
	}
}

func TestLagrangePassesThroughControlPoints(t *testing.T) {
	var l LagrangeStrategy
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(2.5, -1), Pt(4, 3), Pt(5, 0.5)}
	for _, p := range pts {
		got, err := l.CalculatePoint(pts, p.X)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, p, got, approxPoint(1e-6))
	}
}

func TestLagrangeBetweenControlPoints(t *testing.T) {
	var l LagrangeStrategy
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	p, err := l.CalculatePoint(pts, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 0.5 {
		t.Errorf("got x %g, want 0.5", p.X)
	}
	if !(p.Y > 0 && p.Y < 2) {
		t.Errorf("got y %g, want value in (0, 2)", p.Y)
	}
}

func TestLagrangeDuplicateX(t *testing.T) {
	// Duplicate x coordinates aren't rejected; they produce non-finite
	// samples.
	var l LagrangeStrategy
	curve, err := l.Calculate([]Point{Pt(0, 0), Pt(1, 1), Pt(1, 2)}, 4)
	if err != nil {
		t.Fatal(err)
	}
	bad := 0
	for _, pt := range curve {
		if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			bad++
		}
	}
	if bad == 0 {
		t.Errorf("expected non-finite samples, got %v", curve)
	}
}
