package curve

import (
	"math"
	"slices"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	slices.Sort(roots)
	slices.Sort(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-5, 0, 0, 1)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(-5.0, -1.0, 0.0, 1.0)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(0.0, -1.0, 0.0, 1.0)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(-2.0, -3.0, 0.0, 1.0)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 0.0, 1.0)), []float64{-2.0, 1.0})
	// degrades to a quadratic
	checkRoots(t, slice(SolveCubic(-5.0, 0.0, 1.0, 0.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	// the cubic term is left over from rounding
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 1.0, 1e-15)), []float64{1.0, 2.0})
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
}

func TestElementsFromSegments(t *testing.T) {
	tests := []struct {
		name string
		segs []PathSegment
		want string
	}{
		{
			"single",
			[]PathSegment{
				CubicBez{Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40)}.Seg(),
			},
			"M10,10 C20,20 30,30 40,40",
		},
		{
			"contiguous",
			[]PathSegment{
				CubicBez{Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40)}.Seg(),
				Line{Pt(40, 40), Pt(10, 10)}.Seg(),
			},
			"M10,10 C20,20 30,30 40,40 L10,10",
		},
		{
			"gap",
			[]PathSegment{
				CubicBez{Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40)}.Seg(),
				QuadBez{Pt(50, 50), Pt(30, 30), Pt(10, 10)}.Seg(),
			},
			"M10,10 C20,20 30,30 40,40 M50,50 Q30,30 10,10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path BezPath = slices.Collect(Elements(slices.Values(tt.segs)))
			diff(t, tt.want, path.SVG(SVGOptions{}))
		})
	}
}

func TestSVGMaxPrecision(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1.0/3.0, 2))
	p.LineTo(Pt(10, 0.5))
	p.ClosePath()
	diff(t, "M0.333,2 L10,0.5 Z", p.SVG(SVGOptions{MaxPrecision: 3}))
}
