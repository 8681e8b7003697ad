package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadBezArclen(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	want := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		est := q.Arclen(accuracy)
		if err := math.Abs(est - want); err > accuracy {
			t.Errorf("got error %g for desired accuracy of %g", err, accuracy)
		}
	}
}

func TestQuadBezArclenPathological(t *testing.T) {
	q := QuadBez{
		Pt(-1.0, 0.0),
		Pt(1.03, 0.0),
		Pt(1.0, 0.0),
	}
	const want = 2.0008737864167325
	const accuracy = 1e-11
	est := q.Arclen(accuracy)
	if err := math.Abs(est - want); err > accuracy {
		t.Errorf("got error %g for desired accuracy of %g", err, accuracy)
	}
}

func TestQuadBezArclenDegenerate(t *testing.T) {
	// All points coincide. Callers rely on this not being positive.
	q := QuadBez{Pt(38, 51), Pt(38, 51), Pt(38, 51)}
	if l := q.Arclen(0.1); l > 0 {
		t.Errorf("got arclen %v, want NaN or 0", l)
	}
}

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezDeriv(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	const n = 10
	const delta = 1e-6
	for i := range n {
		ts := float64(i) / float64(n)
		dApprox := q.Eval(ts + delta).Sub(q.Eval(ts)).Mul(1.0 / delta)
		if l := q.Deriv(ts).Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("t=%v: got difference of %g, want at most %g", ts, l, delta*2)
		}
	}
}

func TestQuadBezCurvature(t *testing.T) {
	// y = x²
	q := QuadBez{Pt(0, 0), Pt(0.5, 0), Pt(1, 1)}
	for _, ts := range []float64{0, 0.05, 0.5, 0.95, 1} {
		diff(t, parabolaCurvature(ts), q.Curvature(ts), cmpopts.EquateApprox(0, 1e-12))
	}
	// a straight quadratic has no curvature
	q = QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	diff(t, 0.0, q.Curvature(0.3))
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	c := q.Raise()
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, q.Eval(ts), c.Eval(ts), 1e-12)
	}
}

func TestQuadBezExtrema(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	diff(t, []float64{0.5}, extrema[:n])
}

func TestIntersectQuad(t *testing.T) {
	q := QuadBez{Pt(0.0, -10.0), Pt(10.0, 20.0), Pt(20.0, -10.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	xs, n := q.IntersectLine(vLine)
	diff(t, []LineIntersection{{0.75, 0.5}}, xs[:n], cmpopts.EquateApprox(0, 1e-9))

	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	if _, n := q.IntersectLine(hLine); n != 2 {
		t.Errorf("got %d intersections, want 2", n)
	}
}
