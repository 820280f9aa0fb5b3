// Package interp provides the geometry behind an interactive curve editor:
// a mutable set of control points and several ways of turning those points
// into a curve.
//
// # Control points
//
// [PointSet] is an ordered collection of [Point] values. Points are added,
// inserted, moved and removed by index, and [PointSet.NearestIndex] finds
// the point closest to a position within a radius, which is what an editor
// needs to pick points with a mouse. Insertion order is significant; it is
// the order of Bézier control points.
//
// PointSet is not safe for concurrent use. It is meant to be owned by a
// single editing session, which passes copies of its points (see
// [PointSet.Points]) to strategies.
//
// # Strategies
//
// A [Strategy] samples a curve from control points. This package provides:
//   - [BezierStrategy], a single Bézier curve of arbitrary degree, evaluated
//     with De Casteljau's algorithm ([DeCasteljau]). [Bernstein] evaluates
//     the same curve using the Bernstein basis.
//   - [LagrangeStrategy], the interpolating polynomial through all points.
//   - [CubicSplineStrategy], a natural cubic spline through all points.
//
// The latter two interpolate y as a function of x. They don't care about the
// order of control points, but points sharing an x coordinate don't describe
// a function. CubicSplineStrategy rejects such input; LagrangeStrategy
// doesn't check and produces NaN or infinite coordinates.
//
// Strategies are selected by [Kind], using [NewStrategy].
//
// # Errors
//
// Misuse is reported with [InvalidInputError], such as asking for a curve
// with fewer than two control points, and with [IndexError], for indices
// outside a PointSet. The two can be matched with [errors.Is] against
// [ErrInvalidInput] and [ErrIndexOutOfRange]. Reasons of InvalidInputError
// are meant to be shown to users as is.
//
// # Output
//
// Sampled curves are plain slices of points, freshly allocated on every call.
// [SVG] and [WriteSVG] convert them to SVG path data.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - Press et al., Numerical Recipes, section 3.3, "Cubic Spline Interpolation"
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package interp
