package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// parabola traces y = x² for x in [0, 1], with x = t.
var parabola = CubicBez{
	Pt(0.0, 0.0),
	Pt(1.0/3.0, 0.0),
	Pt(2.0/3.0, 1.0/3.0),
	Pt(1.0, 1.0),
}

// parabolaCurvature is the signed curvature of y = x² at x = t, using the
// d2 × d convention.
func parabolaCurvature(t float64) float64 {
	return -2 * math.Pow(1+4*t*t, -1.5)
}
