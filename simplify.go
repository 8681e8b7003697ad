package wonky

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/wonky/curve"
	"honnef.co/go/wonky/internal/pathops"
)

// ToPathData converts p into a verb/point buffer. Each element becomes one
// command; its points are appended to Coords in drawing order.
func ToPathData(p curve.BezPath) *path.Data {
	d := &path.Data{
		Cmds:   make([]path.Command, 0, len(p)),
		Coords: make([]vec.Vec2, 0, len(p)),
	}
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, toVec(el.P0))
		case curve.LineToKind:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, toVec(el.P0))
		case curve.QuadToKind:
			d.Cmds = append(d.Cmds, path.CmdQuadTo)
			d.Coords = append(d.Coords, toVec(el.P0), toVec(el.P1))
		case curve.CubicToKind:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, toVec(el.P0), toVec(el.P1), toVec(el.P2))
		case curve.ClosePathKind:
			d.Cmds = append(d.Cmds, path.CmdClose)
		}
	}
	return d
}

// FromPathData converts a verb/point buffer back into a path. Move and line
// consume one point, quadratics two, cubics three, and close none. Unknown
// commands are skipped.
func FromPathData(d *path.Data) curve.BezPath {
	if d == nil {
		return nil
	}
	p := make(curve.BezPath, 0, len(d.Cmds))
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(toPoint(d.Coords[coordIdx]))
			coordIdx++
		case path.CmdLineTo:
			p.LineTo(toPoint(d.Coords[coordIdx]))
			coordIdx++
		case path.CmdQuadTo:
			p.QuadTo(toPoint(d.Coords[coordIdx]), toPoint(d.Coords[coordIdx+1]))
			coordIdx += 2
		case path.CmdCubeTo:
			p.CubicTo(
				toPoint(d.Coords[coordIdx]),
				toPoint(d.Coords[coordIdx+1]),
				toPoint(d.Coords[coordIdx+2]))
			coordIdx += 3
		case path.CmdClose:
			p.ClosePath()
		}
	}
	return p
}

// Simplify returns p with its overlapping contours merged under the nonzero
// fill rule. If the overlap remover fails, Simplify returns a copy of p
// unchanged. p itself is never modified.
func Simplify(p curve.BezPath) curve.BezPath {
	out, ok := pathops.Simplify(ToPathData(p))
	if !ok {
		return slices.Clone(p)
	}
	return FromPathData(out)
}

func toVec(pt curve.Point) vec.Vec2  { return vec.Vec2{X: pt.X, Y: pt.Y} }
func toPoint(v vec.Vec2) curve.Point { return curve.Pt(v.X, v.Y) }
