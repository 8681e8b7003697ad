package curve

import (
	"fmt"
	"math"
)

type PathSegmentKind int

const (
	LineKind PathSegmentKind = iota + 1
	QuadKind
	CubicKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("PathSegmentKind(%d)", int(k))
	}
}

// PathSegment is a single line, quadratic or cubic segment of a path. It is
// a tagged union rather than an interface so that segments can be passed
// around without allocating.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = PathSegment{}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Deriv returns the first derivative of the segment at t.
func (seg PathSegment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv(t)
	case QuadKind:
		return seg.Quad().Deriv(t)
	case CubicKind:
		return seg.Cubic().Deriv(t)
	default:
		return Vec2{}
	}
}

// Curvature returns the signed curvature of the segment at t. Lines have zero
// curvature. Curves with a vanishing derivative at t yield NaN.
func (seg PathSegment) Curvature(t float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Curvature(t)
	case QuadKind:
		return seg.Quad().Curvature(t)
	case CubicKind:
		return seg.Cubic().Curvature(t)
	default:
		return 0
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// Arclen returns the arc length of the segment. Degenerate quadratic segments
// whose points all coincide yield NaN.
func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	default:
		return 0
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// ControlBox returns the bounding box of the segment's control points. It
// always encloses the segment.
func (seg PathSegment) ControlBox() Rect {
	r := NewRectFromPoints(seg.P0, seg.P1)
	switch seg.Kind {
	case QuadKind:
		r = r.UnionPoint(seg.P2)
	case CubicKind:
		r = r.UnionPoint(seg.P2).UnionPoint(seg.P3)
	}
	return r
}

// PathElement returns the PathElement corresponding to the segment,
// discarding the segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// Reverse returns the same segment traversed in the opposite direction.
func (seg PathSegment) Reverse() PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Reverse().Seg()
	case QuadKind:
		return seg.Quad().Reverse().Seg()
	case CubicKind:
		return seg.Cubic().Reverse().Seg()
	default:
		return PathSegment{}
	}
}

// Tangents returns the tangent directions at both endpoints. Unlike
// [PathSegment.Deriv] it doesn't return zero vectors for curves with
// coincident control points.
func (seg PathSegment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

// windingInner assumes seg is monotonic in y.
func (seg PathSegment) windingInner(pt Point) int {
	start := seg.Eval(0)
	end := seg.Eval(1)
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch seg.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		}
		return 0
	case QuadKind:
		quad := seg.Quad()
		p1 := quad.P1
		if pt.X < min(start.X, end.X, p1.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X) {
			return sign
		}
		a := end.Y - 2.0*p1.Y + start.Y
		b := 2.0 * (p1.Y - start.Y)
		c := start.Y - pt.Y
		solution, n := SolveQuadratic(c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				x := quad.Eval(t).X
				if pt.X >= x {
					return sign
				}
				return 0
			}
		}
		return 0
	case CubicKind:
		cubic := seg.Cubic()
		p1 := cubic.P1
		p2 := cubic.P2
		if pt.X < min(start.X, end.X, p1.X, p2.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X, p2.X) {
			return sign
		}
		a := end.Y - 3.0*p2.Y + 3.0*p1.Y - start.Y
		b := 3.0 * (p2.Y - 2.0*p1.Y + start.Y)
		c := 3.0 * (p1.Y - start.Y)
		d := start.Y - pt.Y
		solution, n := SolveCubic(d, c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				x := cubic.Eval(t).X
				if pt.X >= x {
					return sign
				}
				return 0
			}
		}
		return 0
	default:
		return 0
	}
}

// Winding returns the winding number contribution of seg for pt, counting
// crossings of a ray cast to the left of pt.
func (seg PathSegment) Winding(pt Point) int {
	exs, n := ExtremaRanges(seg)
	var w int
	for _, ex := range exs[:n] {
		w += seg.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// LineIntersection is an intersection of a [Line] and a [PathSegment].
type LineIntersection struct {
	// The parameter of the intersection on the line, in [0, 1].
	LineT float64
	// The parameter of the intersection on the segment. It may slightly
	// exceed [0, 1] at the segment's endpoints.
	SegmentT float64
}

func (li LineIntersection) IsInf() bool {
	return math.IsInf(li.LineT, 0) || math.IsInf(li.SegmentT, 0)
}

func (li LineIntersection) IsNaN() bool {
	return math.IsNaN(li.LineT) || math.IsNaN(li.SegmentT)
}

// IntersectLine computes the intersections of seg with line.
//
// Hits near the segment's endpoints are included, so that testing a line
// against contiguous segments of a path catches at least one of them. Callers
// have to coalesce duplicates.
func (seg PathSegment) IntersectLine(line Line) ([3]LineIntersection, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IntersectLine(line)
	case QuadKind:
		return seg.Quad().IntersectLine(line)
	case CubicKind:
		return seg.Cubic().IntersectLine(line)
	default:
		return [3]LineIntersection{}, 0
	}
}
