package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var testSegments = []PathSegment{
	Line{Pt(0, 0), Pt(3, 4)}.Seg(),
	QuadBez{Pt(0, 0), Pt(0.5, 0), Pt(1, 1)}.Seg(),
	parabola.Seg(),
}

func TestPathSegmentDispatch(t *testing.T) {
	for _, seg := range testSegments {
		t.Run(seg.Kind.String(), func(t *testing.T) {
			diff(t, seg.Eval(0), seg.Start())
			assertNear(t, seg.Eval(1), seg.End(), 1e-12)

			r := seg.Reverse()
			diff(t, seg.End(), r.Start())
			diff(t, seg.Start(), r.End())
			diff(t, seg.Arclen(1e-9), r.Arclen(1e-9), cmpopts.EquateApprox(0, 1e-9))

			for _, ts := range []float64{0.05, 0.5, 0.95} {
				d := seg.Deriv(ts)
				rd := r.Deriv(1 - ts)
				diff(t, d, rd.Negate(), cmpopts.EquateApprox(0, 1e-12))
				if k := seg.Curvature(ts); math.IsNaN(k) {
					t.Errorf("t=%v: curvature is NaN", ts)
				}
			}
		})
	}
}

func TestPathSegmentCurvatureLine(t *testing.T) {
	diff(t, 0.0, testSegments[0].Curvature(0.5))
	diff(t, parabolaCurvature(0.95), testSegments[1].Curvature(0.95), cmpopts.EquateApprox(0, 1e-12))
	diff(t, parabolaCurvature(0.05), testSegments[2].Curvature(0.05), cmpopts.EquateApprox(0, 1e-12))
}

func TestPathSegmentWinding(t *testing.T) {
	// closed D shape: a line up the left side, a cubic bulging right
	segs := []PathSegment{
		Line{Pt(0, 10), Pt(0, 0)}.Seg(),
		CubicBez{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}.Seg(),
	}
	winding := func(pt Point) int {
		w := 0
		for _, s := range segs {
			w += s.Winding(pt)
		}
		return w
	}
	if w := winding(Pt(3, 5)); w == 0 {
		t.Error("point inside D has winding 0")
	}
	if w := winding(Pt(9, 5)); w != 0 {
		t.Errorf("point outside D has winding %d", w)
	}
	if w := winding(Pt(-1, 5)); w != 0 {
		t.Errorf("point left of D has winding %d", w)
	}
}

func TestPathSegmentWindingLoop(t *testing.T) {
	// A closed teardrop whose y coordinate is quadratic in t. Its monotonic
	// pieces carry a tiny cubic term from subdivision.
	seg := CubicBez{Pt(0, 0), Pt(10, 10), Pt(-10, 10), Pt(0, 0)}.Seg()
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(0, 4), 1},
		{Pt(0, 1), 1},
		{Pt(0, 7.4), 1},
		{Pt(0, 7.6), 0},
		{Pt(5, 4), 0},
		{Pt(-5, 4), 0},
	}
	for _, tt := range tests {
		if got := seg.Winding(tt.pt); got != tt.want {
			t.Errorf("Winding(%v) = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestPathSegmentTransform(t *testing.T) {
	seg := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6)}.Seg()
	got := seg.Transform(Translate(Vec(1, 1)))
	want := CubicBez{Pt(1, 1), Pt(2, 3), Pt(4, 5), Pt(6, 7)}.Seg()
	diff(t, want, got)
}
