package interp

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestSVG(t *testing.T) {
	tests := []struct {
		in   []Point
		opts SVGOptions
		want string
	}{
		{nil, SVGOptions{}, ""},
		{[]Point{Pt(0, 0), Pt(1.5, 2), Pt(3, -1)}, SVGOptions{}, "M0,0 L1.5,2 L3,-1"},
		{[]Point{Pt(1.0/3, 2), Pt(10, 0.25)}, SVGOptions{MaxPrecision: 2}, "M0.33,2 L10,0.25"},
		{[]Point{Pt(0, 0), Pt(1, math.NaN()), Pt(2, 2), Pt(3, 3)}, SVGOptions{}, "M0,0 M2,2 L3,3"},
		{[]Point{Pt(math.Inf(1), 0), Pt(1, 1)}, SVGOptions{}, "M1,1"},
	}
	for _, tt := range tests {
		got := SVG(slices.Values(tt.in), tt.opts)
		if got != tt.want {
			t.Errorf("SVG(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(failingWriter{}, slices.Values([]Point{Pt(0, 0), Pt(1, 1)}), SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}
