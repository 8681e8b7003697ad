package pathops

import (
	"math"

	"honnef.co/go/wonky/curve"
)

const (
	// paramEps is the slack allowed on segment parameters when testing
	// whether an intersection lies within a segment.
	paramEps = 1e-9

	// maxDepth bounds the subdivision of curve pairs.
	maxDepth = 48
	// maxBoxes bounds the number of box pairs examined per curve pair.
	// Pairs that exceed it are treated as coincident, which fails the
	// simplification.
	maxBoxes = 1 << 16
	// jointDepth is the depth below which box pairs that both contain a
	// shared endpoint are no longer subdivided.
	jointDepth = 6
)

// intersect finds the crossings of all segment pairs and records them as
// split points. It returns false if a pair could not be resolved.
func (g *graph) intersect() bool {
	for i := range g.segs {
		bi := g.boxes[i].Inflate(g.eps, g.eps)
		for j := i + 1; j < len(g.segs); j++ {
			if !bi.Overlaps(g.boxes[j]) {
				continue
			}
			if !g.intersectPair(i, j) {
				return false
			}
		}
	}
	return true
}

func (g *graph) intersectPair(i, j int) bool {
	a, b := g.segs[i], g.segs[j]
	switch {
	case a.Kind == curve.LineKind && b.Kind == curve.LineKind:
		g.intersectLines(i, j)
	case a.Kind == curve.LineKind:
		g.intersectLineCurve(i, j)
	case b.Kind == curve.LineKind:
		g.intersectLineCurve(j, i)
	default:
		return g.intersectCurves(i, j)
	}
	return true
}

func (g *graph) intersectLines(i, j int) {
	a, b := g.segs[i].Line(), g.segs[j].Line()
	da := a.P1.Sub(a.P0)
	db := b.P1.Sub(b.P0)
	la, lb := da.Hypot(), db.Hypot()
	w := b.P0.Sub(a.P0)
	den := da.Cross(db)

	if math.Abs(den) <= 1e-12*la*lb {
		if math.Abs(w.Cross(da))/la > g.eps {
			// parallel
			return
		}
		// Collinear. Split each line where the other one ends.
		for k, p := range [2]curve.Point{b.P0, b.P1} {
			if t := p.Sub(a.P0).Dot(da) / (la * la); t > 0 && t < 1 {
				g.addHit(i, t, j, float64(k))
			}
		}
		for k, p := range [2]curve.Point{a.P0, a.P1} {
			if u := p.Sub(b.P0).Dot(db) / (lb * lb); u > 0 && u < 1 {
				g.addHit(i, float64(k), j, u)
			}
		}
		return
	}

	ta := w.Cross(db) / den
	tb := w.Cross(da) / den
	if ta < -paramEps || ta > 1+paramEps || tb < -paramEps || tb > 1+paramEps {
		return
	}
	g.addHit(i, clamp01(ta), j, clamp01(tb))
}

// intersectLineCurve intersects the line segment i with the curve j.
func (g *graph) intersectLineCurve(i, j int) {
	line := g.segs[i].Line()
	hits, n := g.segs[j].IntersectLine(line)
	for _, h := range hits[:n] {
		g.addHit(i, clamp01(h.LineT), j, clamp01(h.SegmentT))
	}
}

// intersectCurves intersects two curves by recursively subdividing both and
// discarding pairs of pieces whose control boxes don't overlap.
func (g *graph) intersectCurves(i, j int) bool {
	a, b := g.segs[i], g.segs[j]
	if a == b || a == b.Reverse() {
		// Coincident segments don't cross. Classification keeps at most
		// one of them.
		return true
	}

	// Endpoints shared by both curves. Near such a joint the curves stay
	// close to each other, and subdividing there would never end.
	var joints [][2]float64
	for _, ta := range [2]float64{0, 1} {
		for _, tb := range [2]float64{0, 1} {
			if a.Eval(ta).Near(b.Eval(tb), g.eps) {
				joints = append(joints, [2]float64{ta, tb})
			}
		}
	}
	atJoint := func(a0, a1, b0, b1 float64) bool {
		for _, jt := range joints {
			if a0 <= jt[0] && jt[0] <= a1 && b0 <= jt[1] && jt[1] <= b1 {
				return true
			}
		}
		return false
	}

	// Boxes are subdivided well below the snapping distance, so that
	// neighbouring leaves of one crossing end up within it.
	fine := g.eps / 8
	small := func(r curve.Rect) bool { return max(r.Width(), r.Height()) < fine }

	type param struct{ ta, tb float64 }
	var found []param
	budget := maxBoxes
	var rec func(a0, a1, b0, b1 float64, depth int) bool
	rec = func(a0, a1, b0, b1 float64, depth int) bool {
		budget--
		if budget < 0 {
			return false
		}
		ba := a.Subsegment(a0, a1).ControlBox()
		bb := b.Subsegment(b0, b1).ControlBox()
		if !ba.Inflate(fine, fine).Overlaps(bb) {
			return true
		}
		if depth > jointDepth && atJoint(a0, a1, b0, b1) {
			return true
		}
		if depth >= maxDepth || (small(ba) && small(bb)) {
			ta, tb := (a0+a1)/2, (b0+b1)/2
			for _, f := range found {
				if a.Eval(f.ta).Near(a.Eval(ta), g.eps) {
					return true
				}
			}
			found = append(found, param{ta, tb})
			return true
		}
		am, bm := (a0+a1)/2, (b0+b1)/2
		return rec(a0, am, b0, bm, depth+1) &&
			rec(a0, am, bm, b1, depth+1) &&
			rec(am, a1, b0, bm, depth+1) &&
			rec(am, a1, bm, b1, depth+1)
	}
	if !rec(0, 1, 0, 1, 0) {
		return false
	}
	for _, f := range found {
		g.addHit(i, f.ta, j, f.tb)
	}
	return true
}

// addHit records an intersection at parameter ta of segment i and tb of
// segment j. A hit at an existing endpoint of a segment doesn't split it,
// and the endpoint becomes the shared vertex.
func (g *graph) addHit(i int, ta float64, j int, tb float64) {
	a, b := g.segs[i], g.segs[j]
	p := hitPoint(a, ta, b, tb)
	aEnd, aOK := nearEndpoint(a, p, g.eps)
	bEnd, bOK := nearEndpoint(b, p, g.eps)
	switch {
	case aOK && bOK:
	case aOK:
		g.splits[j] = append(g.splits[j], split{tb, aEnd})
	case bOK:
		g.splits[i] = append(g.splits[i], split{ta, bEnd})
	default:
		g.splits[i] = append(g.splits[i], split{ta, p})
		g.splits[j] = append(g.splits[j], split{tb, p})
	}
}

// hitPoint returns the location of an intersection. Coordinates of
// horizontal and vertical lines are taken verbatim so that splitting doesn't
// tilt them.
func hitPoint(a curve.PathSegment, ta float64, b curve.PathSegment, tb float64) curve.Point {
	p := a.Eval(ta)
	if a.Kind != curve.LineKind && b.Kind != curve.LineKind {
		return p.Midpoint(b.Eval(tb))
	}
	for _, seg := range [2]curve.PathSegment{a, b} {
		if seg.Kind != curve.LineKind {
			continue
		}
		if seg.P0.X == seg.P1.X {
			p.X = seg.P0.X
		}
		if seg.P0.Y == seg.P1.Y {
			p.Y = seg.P0.Y
		}
	}
	return p
}

func nearEndpoint(seg curve.PathSegment, p curve.Point, eps float64) (curve.Point, bool) {
	if s := seg.Start(); s.Near(p, eps) {
		return s, true
	}
	if e := seg.End(); e.Near(p, eps) {
		return e, true
	}
	return curve.Point{}, false
}

func clamp01(t float64) float64 { return max(0, min(1, t)) }
