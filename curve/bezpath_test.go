package curve

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentsClosePathRefersToLastMove(t *testing.T) {
	last := func(seq iter.Seq[PathSegment]) PathSegment {
		var el PathSegment
		for el = range seq {
		}
		return el
	}
	var p BezPath
	p.MoveTo(Pt(5.0, 5.0))
	p.LineTo(Pt(15.0, 15.0))
	p.MoveTo(Pt(10.0, 10.0))
	p.LineTo(Pt(15.0, 15.0))
	p.ClosePath()

	want := Line{Pt(15, 15), Pt(10, 10)}.Seg()
	diff(t, want, last(p.Segments()))
}

func TestSegmentsClosePathAtStart(t *testing.T) {
	// A subpath that already returned to its start doesn't get a closing line.
	p := MustParseSVG("M0 0 L10 0 L10 10 L0 0 Z")
	if n := len(slices.Collect(p.Segments())); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
	p = MustParseSVG("M0 0 L10 0 L10 10 Z")
	if n := len(slices.Collect(p.Segments())); n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
}

func TestWinding(t *testing.T) {
	path := MustParseSVG("M0 0 L1 1 L2 0 Z")
	if w := path.Winding(Pt(1, 0.5)); w != -1 {
		t.Errorf("got winding %v, want -1", w)
	}
	if w := path.ReverseSubpaths().Winding(Pt(1, 0.5)); w != 1 {
		t.Errorf("got winding %v, want 1", w)
	}
	if w := path.Winding(Pt(5, 0.5)); w != 0 {
		t.Errorf("got winding %v, want 0", w)
	}
}

func TestSubpaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Subpath
	}{
		{"empty", "", nil},
		{
			"single open",
			"M0 0 L1 1 L2 2",
			[]Subpath{{MustParseSVG("M0 0 L1 1 L2 2"), false}},
		},
		{
			"single closed",
			"M0 0 L1 0 L1 1 Z",
			[]Subpath{{MustParseSVG("M0 0 L1 0 L1 1 Z"), true}},
		},
		{
			"mixed",
			"M100 100 L100 200 L120 200 Z M75 150 L75 175 M0 0 Q1 1 2 0 Z",
			[]Subpath{
				{MustParseSVG("M100 100 L100 200 L120 200 Z"), true},
				{MustParseSVG("M75 150 L75 175"), false},
				{MustParseSVG("M0 0 Q1 1 2 0 Z"), true},
			},
		},
		{
			"bare moves",
			"M0 0 M1 1 L2 2",
			[]Subpath{
				{MustParseSVG("M0 0"), false},
				{MustParseSVG("M1 1 L2 2"), false},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(MustParseSVG(tt.path).Subpaths())
			diff(t, tt.want, got)
		})
	}
}

func TestSubpathsStopEarly(t *testing.T) {
	p := MustParseSVG("M0 0 L1 1 M2 2 L3 3 M4 4 L5 5")
	n := 0
	for range p.Subpaths() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d iterations, want 2", n)
	}
}

func TestReverseSubpaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single point", "M0 0", "M0 0"},
		{"single point closed", "M0 0 Z", "M0 0 Z"},
		{"line open", "M0 0 L1 1", "M1 1 L0 0"},
		{
			"unclosed",
			"M10 10 Q40 40 60 10 L100 10 C125 10 150 50 125 60",
			"M125 60 C150 50 125 10 100 10 L60 10 Q40 40 10 10",
		},
		{
			"closed triangle",
			"M100 100 L150 200 L50 200 Z",
			"M50 200 L150 200 L100 100 Z",
		},
		{
			"closed shape",
			"M125 100 Q200 150 175 300 C150 150 50 150 25 300 Q0 150 75 100 L100 50 Z",
			"M100 50 L75 100 Q0 150 25 300 C50 150 150 150 175 300 Q200 150 125 100 Z",
		},
		{
			"multiple moves",
			"M2 2 M3 3 Z M4 4",
			"M2 2 M3 3 Z M4 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParseSVG(tt.in).ReverseSubpaths()
			diff(t, []PathElement(MustParseSVG(tt.want)), []PathElement(got), cmpopts.EquateEmpty())
		})
	}
}

func TestReversePreservesSegments(t *testing.T) {
	p := MustParseSVG("M125 100 Q200 150 175 300 C150 150 50 150 25 300 Q0 150 75 100 L100 50 Z")
	fwd := slices.Collect(p.Segments())
	rev := slices.Collect(p.ReverseSubpaths().Segments())
	if len(fwd) != len(rev) {
		t.Fatalf("got %d segments after reversing, want %d", len(rev), len(fwd))
	}
	diff(t, p.SignedArea(), -p.ReverseSubpaths().SignedArea(), cmpopts.EquateApprox(1e-12, 0))
}

func TestControlBox(t *testing.T) {
	// a sort of map ping looking thing drawn with a single cubic
	// cbox is wildly different than tight box
	var p BezPath
	p.MoveTo(Pt(200, 300))
	p.CubicTo(Pt(50, 50), Pt(350, 50), Pt(200, 300))
	want := Rect{50, 50, 350, 300}
	diff(t, p.ControlBox(), want)
	if cb, bb := p.ControlBox(), p.BoundingBox(); cb.Width() < bb.Width() || cb.Height() < bb.Height() {
		t.Errorf("control box %v is smaller than bounding box %v", cb, bb)
	}
}
