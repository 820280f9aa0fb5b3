package interp

import (
	"iter"
	"slices"
)

// PointSet is an ordered, mutable collection of control points.
//
// The order of insertion is significant: it is the order of Bézier control
// points, and it is the order indices refer to. A PointSet is meant to have a
// single owner and must not be used concurrently.
//
// The zero value is an empty set ready to use.
type PointSet struct {
	pts []Point
}

// NewPointSet returns a set containing pts, in order.
func NewPointSet(pts ...Point) *PointSet {
	return &PointSet{pts: slices.Clone(pts)}
}

// Add appends a point.
func (s *PointSet) Add(pt Point) {
	s.pts = append(s.pts, pt)
}

// Insert inserts pt at index i, shifting the points at i and after it up by
// one. Valid indices are 0 to Len, inclusive.
func (s *PointSet) Insert(i int, pt Point) error {
	if i < 0 || i > len(s.pts) {
		return &IndexError{Op: "insert", Index: i, Len: len(s.pts), Inclusive: true}
	}
	s.pts = slices.Insert(s.pts, i, pt)
	return nil
}

// Update replaces the point at index i.
func (s *PointSet) Update(i int, pt Point) error {
	if err := s.check("update", i); err != nil {
		return err
	}
	s.pts[i] = pt
	return nil
}

// RemoveAt removes the point at index i. The indices of all following points
// shift down by one.
func (s *PointSet) RemoveAt(i int) error {
	if err := s.check("remove", i); err != nil {
		return err
	}
	s.pts = slices.Delete(s.pts, i, i+1)
	return nil
}

// Remove removes the first point equal to pt. It reports whether a point was
// removed.
func (s *PointSet) Remove(pt Point) bool {
	i := slices.Index(s.pts, pt)
	if i == -1 {
		return false
	}
	s.pts = slices.Delete(s.pts, i, i+1)
	return true
}

// Clear removes all points.
func (s *PointSet) Clear() {
	clear(s.pts)
	s.pts = s.pts[:0]
}

// Contains reports whether the set contains a point equal to pt.
func (s *PointSet) Contains(pt Point) bool {
	return slices.Contains(s.pts, pt)
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// At returns the point at index i.
func (s *PointSet) At(i int) (Point, error) {
	if err := s.check("at", i); err != nil {
		return Point{}, err
	}
	return s.pts[i], nil
}

// Points returns a copy of the points, in order. Modifying the returned slice
// does not affect the set.
func (s *PointSet) Points() []Point {
	return slices.Clone(s.pts)
}

// All returns an iterator over indices and points. The set must not be
// modified during iteration.
func (s *PointSet) All() iter.Seq2[int, Point] {
	return slices.All(s.pts)
}

// HasEnoughPointsForCurve reports whether the set has the minimum of two
// points that every [Strategy] requires.
func (s *PointSet) HasEnoughPointsForCurve() bool {
	return len(s.pts) >= 2
}

// NearestIndex returns the index of the point closest to q, provided its
// distance to q is at most radius. It returns -1 if there is no such point.
//
// Points at equal distance are resolved in favor of the lowest index.
func (s *PointSet) NearestIndex(q Point, radius float64) int {
	best := -1
	var bestDist float64
	for i, pt := range s.pts {
		d := pt.Distance(q)
		if !(d <= radius) {
			// Also skips NaN distances.
			continue
		}
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Nearest is like [PointSet.NearestIndex] but returns the point itself.
func (s *PointSet) Nearest(q Point, radius float64) (Point, bool) {
	i := s.NearestIndex(q, radius)
	if i == -1 {
		return Point{}, false
	}
	return s.pts[i], true
}

// NearestEdge finds the edge of the control polygon, the line from point i to
// point i+1, that passes closest to q, provided its distance to q is at most
// radius. It returns i, or -1 if there is no such edge. Inserting a point at
// index i+1 splits the edge.
//
// Edges at equal distance are resolved in favor of the lowest index.
func (s *PointSet) NearestEdge(q Point, radius float64) int {
	if !(radius >= 0) {
		return -1
	}
	best := -1
	var bestDist float64
	for i := 0; i+1 < len(s.pts); i++ {
		d, _ := Line{s.pts[i], s.pts[i+1]}.Nearest(q)
		if !(d <= radius*radius) {
			continue
		}
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// BoundingBox returns the smallest rectangle enclosing all finite points. It
// returns the zero Rect for a set without finite points.
func (s *PointSet) BoundingBox() Rect {
	r, _ := Bounds(s.pts)
	return r
}

func (s *PointSet) check(op string, i int) error {
	if i < 0 || i >= len(s.pts) {
		return &IndexError{Op: op, Index: i, Len: len(s.pts)}
	}
	return nil
}
