package wonky

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/wonky/curve"
)

func TestPathDataRoundTrip(t *testing.T) {
	p := svg("M 0 0 L 10 0 Q 15 5 10 10 C 5 15 0 15 -5 10 Z M 20 20 L 30 30")
	d := ToPathData(p)
	diff(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}, d.Cmds)
	// 1 + 1 + 2 + 3 + 0 + 1 + 1 points.
	diff(t, 9, len(d.Coords))
	diff(t, vec.Vec2{X: 15, Y: 5}, d.Coords[2])
	diff(t, p, FromPathData(d))
}

func TestFromPathDataSkipsUnknown(t *testing.T) {
	d := &path.Data{
		Cmds:   []path.Command{path.CmdMoveTo, path.Command(255), path.CmdLineTo},
		Coords: []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}},
	}
	want := curve.BezPath{curve.MoveTo(curve.Pt(1, 2)), curve.LineTo(curve.Pt(3, 4))}
	diff(t, want, FromPathData(d))
	diff(t, curve.BezPath(nil), FromPathData(nil))
}

func TestSimplifyFallback(t *testing.T) {
	// An open line has no area, so overlap removal fails and the input
	// comes back unchanged.
	p := svg("M 0 0 L 10 0")
	got := Simplify(p)
	diff(t, p, got)
	got[0] = curve.MoveTo(curve.Pt(5, 5))
	if p[0].P0 != curve.Pt(0, 0) {
		t.Error("Simplify returned the input's storage")
	}
}

func TestSimplifyDoesNotMutate(t *testing.T) {
	p := svg(crossSVG)
	orig := slices.Clone(p)
	_ = Simplify(p)
	diff(t, orig, p)
}

func TestSimplifyCross(t *testing.T) {
	out := Simplify(svg(crossSVG))
	diff(t, 3375.0, math.Abs(out.SignedArea()))
	var n int
	for range out.Subpaths() {
		n++
	}
	diff(t, 1, n)
}
