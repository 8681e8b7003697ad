// Package curve provides the 2D geometry needed to measure glyph outlines:
// points and vectors, lines, quadratic and cubic Béziers, and Bézier paths
// made of them.
//
// # Paths, elements and segments
//
// A [BezPath] is a slice of [PathElement]s, which are akin to the drawing
// commands of PostScript or a font's glyph outline: [MoveTo], [LineTo],
// [QuadTo], [CubicTo] and [ClosePath]. Each command starts where the previous
// one ended. A MoveTo starts a new subpath; [BezPath.Subpaths] splits a path
// at those boundaries and reports which subpaths are closed.
//
// A [PathSegment], on the other hand, is a self-contained line or curve with
// an explicit start point. [BezPath.Segments] turns elements into segments,
// [Elements] goes the other way.
//
// # Differential geometry
//
// Every segment kind can be evaluated at t ∈ [0, 1] and reports its first
// derivative ([PathSegment.Deriv]), its signed curvature
// ([PathSegment.Curvature]) and its arc length ([PathSegment.Arclen]).
// Curvature uses the convention d″ × d′ / |d′|³, so its sign flips when a
// segment is reversed while its magnitude stays the same.
//
// Degenerate curves don't produce errors. A curve whose derivative vanishes
// has NaN curvature, and a quadratic whose points all coincide has NaN arc
// length. Callers are expected to filter such segments.
//
// # SVG
//
// [ParseSVG] reads SVG path data and [BezPath.SVG] writes it, which makes
// for compact test fixtures and debugging output.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Green's theorem], for signed areas
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package curve
