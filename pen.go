package wonky

import (
	"iter"

	"honnef.co/go/wonky/curve"
)

// Pen receives the drawing commands of an outline. Glyph sources draw into a
// Pen rather than returning paths of their own.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

var _ Pen = (*PathBuilder)(nil)

// PathBuilder is a [Pen] that records the commands it receives as a
// [curve.BezPath]. The zero value is ready to use.
type PathBuilder struct {
	path curve.BezPath
}

func (b *PathBuilder) MoveTo(x, y float64) { b.path.MoveTo(curve.Pt(x, y)) }
func (b *PathBuilder) LineTo(x, y float64) { b.path.LineTo(curve.Pt(x, y)) }

func (b *PathBuilder) QuadTo(cx, cy, x, y float64) {
	b.path.QuadTo(curve.Pt(cx, cy), curve.Pt(x, y))
}

func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.path.CubicTo(curve.Pt(c1x, c1y), curve.Pt(c2x, c2y), curve.Pt(x, y))
}

func (b *PathBuilder) ClosePath() { b.path.ClosePath() }

// Path returns the recorded path. The builder keeps appending to the same
// storage, so callers that keep drawing should clone it.
func (b *PathBuilder) Path() curve.BezPath { return b.path }

// Subpaths splits the recorded path at every MoveTo.
func (b *PathBuilder) Subpaths() iter.Seq[curve.Subpath] { return b.path.Subpaths() }

// Reset discards the recorded path while keeping its storage.
func (b *PathBuilder) Reset() { b.path = b.path[:0] }

// DrawPath replays p into pen.
func DrawPath(p curve.BezPath, pen Pen) {
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			pen.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			pen.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			pen.QuadTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			pen.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			pen.ClosePath()
		}
	}
}
