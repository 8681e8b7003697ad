package curve

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a line to P0.
	LineToKind
	// QuadToKind draws a quadratic Bézier with control point P0, ending at P1.
	QuadToKind
	// CubicToKind draws a cubic Bézier with control points P0 and P1, ending
	// at P2.
	CubicToKind
	// ClosePathKind closes the current subpath.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath]. A valid path has a
// MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf() || el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path made of lines, quadratic and cubic Béziers. It may
// contain multiple subpaths. Each subpath begins with a MoveTo, followed by
// zero or more drawing elements, and optionally ends with a ClosePath.
//
// A path can be viewed as a sequence of elements ([BezPath.Elements]), which
// is how it is drawn, or as a sequence of segments ([BezPath.Segments]), which
// describes the geometry itself.
type BezPath []PathElement

// Transform returns a new path with aff applied to every point.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments. A ClosePath yields
// a closing line only if the subpath doesn't already end at its start.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Subpath is a maximal run of a path from one MoveTo up to the next.
type Subpath struct {
	Path BezPath
	// Closed reports whether the subpath ends in a ClosePath.
	Closed bool
}

// Segments returns the subpath's segments.
func (sp Subpath) Segments() iter.Seq[PathSegment] { return sp.Path.Segments() }

// Subpaths splits p at every MoveTo. The yielded paths share storage with p.
// Elements before the first MoveTo form their own subpath.
func (p BezPath) Subpaths() iter.Seq[Subpath] {
	return func(yield func(Subpath) bool) {
		start := 0
		emit := func(end int) bool {
			if end <= start {
				return true
			}
			sp := p[start:end:end]
			return yield(Subpath{
				Path:   sp,
				Closed: sp[len(sp)-1].Kind == ClosePathKind,
			})
		}
		for i, el := range p {
			if el.Kind == MoveToKind && i > start {
				if !emit(i) {
					return
				}
				start = i
			}
		}
		emit(len(p))
	}
}

func (p BezPath) SignedArea() float64 {
	return SegmentsSignedArea(p.Segments())
}

func (p BezPath) Arclen(accuracy float64) float64 {
	var sum float64
	for s := range p.Segments() {
		sum += s.Arclen(accuracy)
	}
	return sum
}

// Winding returns the winding number of pt with respect to p.
func (p BezPath) Winding(pt Point) int {
	return SegmentsWinding(p.Segments(), pt)
}

func (p BezPath) BoundingBox() Rect {
	return SegmentsBoundingBox(p.Segments())
}

func (p BezPath) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [BezPath.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve elements.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}

	return cbox
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// ReverseSubpaths returns a new path with the direction of all subpaths
// reversed.
func (p BezPath) ReverseSubpaths() BezPath {
	elements := p
	startIdx := 1
	startPt := Point{}
	reversed := BezPath(make([]PathElement, 0, len(elements)))
	// Pending move is used to capture degenerate subpaths that should
	// remain in the reversed output.
	pendingMove := false
	for ix, el := range elements {
		switch el.Kind {
		case MoveToKind:
			pt := el.P0
			if pendingMove {
				reversed.Push(MoveTo(startPt))
			}
			if startIdx < ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			pendingMove = true
			startPt = pt
			startIdx = ix + 1
		case ClosePathKind:
			if startIdx <= ix {
				reverseSubpath(startPt, elements[startIdx:ix], &reversed)
			}
			reversed.Push(ClosePath())
			startIdx = ix + 1
			pendingMove = false
		default:
			pendingMove = false
		}
	}
	if startIdx < len(elements) {
		reverseSubpath(startPt, elements[startIdx:], &reversed)
	} else if pendingMove {
		reversed.Push(MoveTo(startPt))
	}
	return reversed
}

// reverseSubpath appends the reversal of els, which must not contain MoveTo
// or ClosePath elements, to reversed.
func reverseSubpath(startPt Point, els []PathElement, reversed *BezPath) {
	var endPt Point
	if len(els) > 0 {
		endPt, _ = els[len(els)-1].EndPoint()
	} else {
		endPt = startPt
	}
	reversed.Push(MoveTo(endPt))
	for ix := len(els) - 1; ix >= 0; ix-- {
		el := &els[ix]

		var endPt Point
		if ix > 0 {
			endPt, _ = els[ix-1].EndPoint()
		} else {
			endPt = startPt
		}
		switch el.Kind {
		case LineToKind:
			reversed.Push(LineTo(endPt))
		case QuadToKind:
			reversed.Push(QuadTo(el.P0, endPt))
		case CubicToKind:
			reversed.Push(CubicTo(el.P1, el.P0, endPt))
		default:
			panic("reverseSubpath expects MoveTo and ClosePath to be removed")
		}
	}
}

func SegmentsSignedArea(seq iter.Seq[PathSegment]) float64 {
	var sum float64
	for s := range seq {
		sum += s.SignedArea()
	}
	return sum
}

func SegmentsBoundingBox(seq iter.Seq[PathSegment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		sbbox := s.BoundingBox()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}

func SegmentsWinding(seq iter.Seq[PathSegment], pt Point) int {
	var sum int
	for s := range seq {
		sum += s.Winding(pt)
	}
	return sum
}
