package wonky

import (
	"slices"
	"testing"

	"honnef.co/go/wonky/curve"
)

func TestPathBuilder(t *testing.T) {
	var b PathBuilder
	b.MoveTo(0, 0)
	b.LineTo(1, 0)
	b.QuadTo(2, 0, 2, 1)
	b.CubicTo(2, 2, 1, 3, 0, 3)
	b.ClosePath()
	b.MoveTo(5, 5)
	b.LineTo(6, 6)

	want := svg("M 0 0 L 1 0 Q 2 0 2 1 C 2 2 1 3 0 3 Z M 5 5 L 6 6")
	diff(t, want, b.Path())

	subpaths := slices.Collect(b.Subpaths())
	diff(t, []curve.Subpath{
		{Path: want[:5], Closed: true},
		{Path: want[5:], Closed: false},
	}, subpaths)

	b.Reset()
	diff(t, 0, len(b.Path()))
}

func TestDrawPath(t *testing.T) {
	p := svg("M 0 0 L 1 0 Q 2 0 2 1 C 2 2 1 3 0 3 Z")
	var b PathBuilder
	DrawPath(p, &b)
	diff(t, p, b.Path())
}
