package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	approx := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		pt         Point
		distSq, tt float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-4, 3), 25, 0},
		{Pt(13, 4), 25, 1},
		{Pt(2.5, 0), 0, 0.25},
	}
	for _, tt := range tests {
		d, param := l.Nearest(tt.pt)
		diff(t, tt.distSq, d, approx)
		diff(t, tt.tt, param, approx)
	}

	// Degenerate lines behave like points.
	d, _ := Line{Pt(1, 1), Pt(1, 1)}.Nearest(Pt(4, 5))
	diff(t, 25.0, d)
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 8)}
	diff(t, Pt(1, 2), l.Eval(0.25))
	diff(t, l.P1, l.Eval(1))
}
