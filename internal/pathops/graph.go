package pathops

import (
	"cmp"
	"math"
	"slices"

	"honnef.co/go/wonky/curve"
)

// graph holds the input segments, the pieces they are split into, and the
// vertices shared by those pieces.
type graph struct {
	segs  []curve.PathSegment
	boxes []curve.Rect
	// splits[i] are the interior split points of segs[i].
	splits [][]split

	pieces []piece
	verts  []curve.Point

	// eps is the distance below which points are considered equal.
	eps float64
	// delta is how far from a piece its winding numbers are sampled.
	delta float64
}

type split struct {
	t  float64
	pt curve.Point
}

type piece struct {
	seg      curve.PathSegment
	from, to int
	keep     bool
}

func newGraph(segs []curve.PathSegment) *graph {
	bbox := curve.SegmentsBoundingBox(slices.Values(segs))
	scale := max(bbox.Width(), bbox.Height(), 1)
	g := &graph{
		segs:   segs,
		boxes:  make([]curve.Rect, len(segs)),
		splits: make([][]split, len(segs)),
		eps:    scale * 1e-8,
		delta:  scale * 1e-6,
	}
	for i, seg := range segs {
		g.boxes[i] = seg.ControlBox()
	}
	return g
}

// vertex returns the ID of the vertex at pt, adding one if none is near.
func (g *graph) vertex(pt curve.Point) int {
	for i, v := range g.verts {
		if v.Near(pt, g.eps) {
			return i
		}
	}
	g.verts = append(g.verts, pt)
	return len(g.verts) - 1
}

// split cuts every segment at its split points.
func (g *graph) split() {
	for i, seg := range g.segs {
		sp := g.splits[i]
		slices.SortFunc(sp, func(x, y split) int { return cmp.Compare(x.t, y.t) })
		sp = append(sp, split{1, seg.End()})

		prev := split{0, seg.Start()}
		n := len(g.pieces)
		for _, s := range sp {
			if s.t <= prev.t || s.pt.Near(prev.pt, g.eps) {
				continue
			}
			g.addPiece(withEnds(seg.Subsegment(prev.t, s.t), prev.pt, s.pt))
			prev = s
		}
		if prev.t < 1 && len(g.pieces) > n {
			// The last split point was close enough to the end to swallow
			// it. Extend the last piece to the segment's end.
			last := &g.pieces[len(g.pieces)-1]
			last.seg = withEnds(last.seg, last.seg.Start(), seg.End())
			last.to = g.vertex(seg.End())
		}
	}
}

func (g *graph) addPiece(seg curve.PathSegment) {
	from := g.vertex(seg.Start())
	to := g.vertex(seg.End())
	seg = withEnds(seg, g.verts[from], g.verts[to])
	if from == to && (seg.Kind == curve.LineKind || degenerate(seg, g.eps)) {
		return
	}
	g.pieces = append(g.pieces, piece{seg: seg, from: from, to: to})
}

// withEnds returns seg with its endpoints replaced.
func withEnds(seg curve.PathSegment, start, end curve.Point) curve.PathSegment {
	seg.P0 = start
	switch seg.Kind {
	case curve.LineKind:
		seg.P1 = end
	case curve.QuadKind:
		seg.P2 = end
	case curve.CubicKind:
		seg.P3 = end
	}
	return seg
}

// winding returns the winding number of pt with respect to the input.
func (g *graph) winding(pt curve.Point) int {
	var w int
	for i, seg := range g.segs {
		b := g.boxes[i]
		// Only segments that straddle pt vertically and lie at least
		// partly to its left can cross the ray.
		if pt.Y < b.Y0 || pt.Y > b.Y1 || pt.X < b.X0 {
			continue
		}
		w += seg.Winding(pt)
	}
	return w
}

// classify keeps the pieces that have filled area on exactly one side and
// orients them so that it is on their left.
func (g *graph) classify() {
	for i := range g.pieces {
		pc := &g.pieces[i]
		m := pc.seg.Eval(0.5)
		d := pc.seg.Deriv(0.5)
		if d.Hypot2() == 0 {
			d = pc.seg.End().Sub(pc.seg.Start())
		}
		n := d.Normalize().Turn90()
		// The polyline through the midpoint is shorter than the piece.
		l := m.Distance(pc.seg.Start()) + m.Distance(pc.seg.End())
		off := min(g.delta, l/4)
		left := g.winding(m.Translate(n.Mul(off))) != 0
		right := g.winding(m.Translate(n.Mul(-off))) != 0
		if left == right {
			continue
		}
		if right {
			pc.seg = pc.seg.Reverse()
			pc.from, pc.to = pc.to, pc.from
		}
		pc.keep = true
	}

	// Coincident pieces, as left by duplicated contours, are kept once.
	for i := range g.pieces {
		if !g.pieces[i].keep {
			continue
		}
		for j := i + 1; j < len(g.pieces); j++ {
			if g.pieces[j].keep && g.same(g.pieces[i], g.pieces[j]) {
				g.pieces[j].keep = false
			}
		}
	}
}

func (g *graph) same(p, q piece) bool {
	if p.from != q.from || p.to != q.to || p.seg.Kind != q.seg.Kind {
		return false
	}
	return p.seg.P1.Near(q.seg.P1, g.eps) &&
		p.seg.P2.Near(q.seg.P2, g.eps) &&
		p.seg.P3.Near(q.seg.P3, g.eps)
}

// link joins the kept pieces into closed loops. It returns false if some
// piece can't be continued, which happens only if the kept pieces don't form
// the boundary of an area.
func (g *graph) link() ([][]int, bool) {
	out := make([][]int, len(g.verts))
	for i, pc := range g.pieces {
		if pc.keep {
			out[pc.from] = append(out[pc.from], i)
		}
	}
	used := make([]bool, len(g.pieces))
	var loops [][]int
	for i, pc := range g.pieces {
		if !pc.keep || used[i] {
			continue
		}
		used[i] = true
		loop := []int{i}
		cur := i
		for g.pieces[cur].to != pc.from {
			next := g.next(cur, out[g.pieces[cur].to], used)
			if next < 0 {
				return nil, false
			}
			used[next] = true
			loop = append(loop, next)
			cur = next
		}
		loops = append(loops, loop)
	}
	return loops, true
}

// next picks the unused candidate that continues cur with the sharpest right
// turn. It returns -1 if there is none.
func (g *graph) next(cur int, candidates []int, used []bool) int {
	_, in := g.pieces[cur].seg.Tangents()
	best := -1
	bestTurn := math.Inf(1)
	for _, c := range candidates {
		if used[c] {
			continue
		}
		out, _ := g.pieces[c].seg.Tangents()
		turn := math.Atan2(in.Cross(out), in.Dot(out))
		if turn < bestTurn {
			best, bestTurn = c, turn
		}
	}
	return best
}
