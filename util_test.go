package interp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})

// approxPoint returns a comparer for points that are within tol of each
// other.
func approxPoint(tol float64) cmp.Option {
	return cmp.Comparer(func(p1, p2 Point) bool {
		return p1.Distance(p2) <= tol
	})
}
