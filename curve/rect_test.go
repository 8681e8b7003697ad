package curve

import "testing"

func TestRectAbs(t *testing.T) {
	diff(t, Rect{1, 2, 5, 6}, NewRectFromPoints(Pt(5, 2), Pt(1, 6)))
	diff(t, Rect{1, 2, 5, 6}, Rect{5, 6, 1, 2}.Abs())
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{10, 0, 20, 10}, true},  // shared edge
		{Rect{10, 10, 20, 20}, true}, // shared corner
		{Rect{2, 2, 3, 3}, true},
		{Rect{11, 0, 20, 10}, false},
		{Rect{0, -5, 10, -1}, false},
	}
	for _, tt := range tests {
		if got := r.Overlaps(tt.o); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(r); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", tt.o, r, got, tt.want)
		}
	}
}

func TestRectPath(t *testing.T) {
	r := Rect{1, 2, 4, 6}
	p := r.Path()
	if a := p.SignedArea(); a != r.Width()*r.Height() {
		t.Errorf("got signed area %v, want %v", a, r.Width()*r.Height())
	}
	diff(t, r, p.BoundingBox())
	if w := p.Winding(Pt(2.5, 4)); w == 0 {
		t.Error("center of rectangle isn't inside its path")
	}
}
