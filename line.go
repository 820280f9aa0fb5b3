package interp

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval returns the point at parameter t, where t = 0 is the start and t = 1
// the end of the line.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the point on the line
// closest to it, as well as that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	dx, dy := l.P1.X-l.P0.X, l.P1.Y-l.P0.Y
	dotp := dx*(pt.X-l.P0.X) + dy*(pt.Y-l.P0.Y)
	dSquared := dx*dx + dy*dy
	if dotp <= 0.0 {
		return pt.DistanceSquared(l.P0), 0.0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), 1.0
	} else {
		t := dotp / dSquared
		return pt.DistanceSquared(l.Eval(t)), t
	}
}
