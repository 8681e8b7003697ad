// Package pathops removes overlaps from filled outlines.
//
// [Simplify] takes a path in verb/point form, finds every crossing between
// its segments, and keeps the pieces that separate filled from unfilled area
// under the nonzero rule. The kept pieces are linked back into closed
// contours with the filled side on their left.
package pathops

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/wonky/curve"
)

// Simplify returns the outline of the area filled by d under the nonzero
// rule. ok is false if d draws nothing, contains non-finite coordinates, or
// if its outline couldn't be reconstructed.
func Simplify(d *path.Data) (out *path.Data, ok bool) {
	segs, ok := collectSegments(d)
	if !ok || len(segs) == 0 {
		return nil, false
	}
	g := newGraph(segs)
	if !g.intersect() {
		return nil, false
	}
	g.split()
	g.classify()
	loops, ok := g.link()
	if !ok || len(loops) == 0 {
		return nil, false
	}
	return g.data(loops), true
}

// collectSegments flattens d into segments. Every subpath is closed, the way
// a fill closes it.
func collectSegments(d *path.Data) ([]curve.PathSegment, bool) {
	if d == nil {
		return nil, true
	}
	var segs []curve.PathSegment
	var current, start curve.Point
	drawn := false
	add := func(seg curve.PathSegment) {
		seg = reduce(seg)
		if !degenerate(seg, 0) {
			segs = append(segs, seg)
		}
	}
	closeSubpath := func() {
		if drawn && current != start {
			add(curve.Line{P0: current, P1: start}.Seg())
		}
		drawn = false
		current = start
	}

	coordIdx := 0
	take := func(n int) ([]vec.Vec2, bool) {
		if coordIdx+n > len(d.Coords) {
			return nil, false
		}
		pts := d.Coords[coordIdx : coordIdx+n]
		coordIdx += n
		return pts, true
	}
	for _, cmd := range d.Cmds {
		var pts []vec.Vec2
		var ok bool
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			if pts, ok = take(1); !ok {
				return nil, false
			}
			current = toPoint(pts[0])
			start = current
		case path.CmdLineTo:
			if pts, ok = take(1); !ok {
				return nil, false
			}
			p := toPoint(pts[0])
			add(curve.Line{P0: current, P1: p}.Seg())
			current = p
			drawn = true
		case path.CmdQuadTo:
			if pts, ok = take(2); !ok {
				return nil, false
			}
			q := curve.QuadBez{P0: current, P1: toPoint(pts[0]), P2: toPoint(pts[1])}
			add(q.Seg())
			current = q.P2
			drawn = true
		case path.CmdCubeTo:
			if pts, ok = take(3); !ok {
				return nil, false
			}
			c := curve.CubicBez{P0: current, P1: toPoint(pts[0]), P2: toPoint(pts[1]), P3: toPoint(pts[2])}
			add(c.Seg())
			current = c.P3
			drawn = true
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	for _, seg := range segs {
		if seg.IsNaN() || seg.IsInf() {
			return nil, false
		}
	}
	return segs, true
}

// reduce turns curves whose control points lie on the chord between their
// endpoints into lines.
func reduce(seg curve.PathSegment) curve.PathSegment {
	if seg.Kind == curve.LineKind {
		return seg
	}
	start, end := seg.Start(), seg.End()
	chord := end.Sub(start)
	l2 := chord.Hypot2()
	if l2 == 0 {
		return seg
	}
	ctrl := [2]curve.Point{seg.P1, seg.P2}
	n := 1
	if seg.Kind == curve.CubicKind {
		n = 2
	}
	for _, p := range ctrl[:n] {
		v := p.Sub(start)
		if v.Cross(chord)*v.Cross(chord) > 1e-18*l2*l2 {
			return seg
		}
		if t := v.Dot(chord) / l2; t < 0 || t > 1 {
			return seg
		}
	}
	return curve.Line{P0: start, P1: end}.Seg()
}

// degenerate reports whether all points of seg lie within eps of its start.
func degenerate(seg curve.PathSegment, eps float64) bool {
	near := func(p curve.Point) bool {
		if eps == 0 {
			return p == seg.P0
		}
		return p.Near(seg.P0, eps)
	}
	switch seg.Kind {
	case curve.LineKind:
		return near(seg.P1)
	case curve.QuadKind:
		return near(seg.P1) && near(seg.P2)
	default:
		return near(seg.P1) && near(seg.P2) && near(seg.P3)
	}
}

// data converts loops of kept pieces into a verb/point buffer.
func (g *graph) data(loops [][]int) *path.Data {
	d := &path.Data{}
	for _, loop := range loops {
		first := g.pieces[loop[0]]
		d.Cmds = append(d.Cmds, path.CmdMoveTo)
		d.Coords = append(d.Coords, toVec(first.seg.Start()))
		for _, idx := range loop {
			seg := g.pieces[idx].seg
			switch seg.Kind {
			case curve.LineKind:
				d.Cmds = append(d.Cmds, path.CmdLineTo)
				d.Coords = append(d.Coords, toVec(seg.P1))
			case curve.QuadKind:
				d.Cmds = append(d.Cmds, path.CmdQuadTo)
				d.Coords = append(d.Coords, toVec(seg.P1), toVec(seg.P2))
			case curve.CubicKind:
				d.Cmds = append(d.Cmds, path.CmdCubeTo)
				d.Coords = append(d.Coords, toVec(seg.P1), toVec(seg.P2), toVec(seg.P3))
			}
		}
		d.Cmds = append(d.Cmds, path.CmdClose)
	}
	return d
}

func toVec(pt curve.Point) vec.Vec2  { return vec.Vec2{X: pt.X, Y: pt.Y} }
func toPoint(v vec.Vec2) curve.Point { return curve.Pt(v.X, v.Y) }
