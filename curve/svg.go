package curve

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}


// svgArgs is the number of arguments each SVG path command takes.
var svgArgs = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParseSVG parses SVG path data. It supports the absolute and relative forms
// of M, L, H, V, Q, T, C, S and Z, including implicit command repetition.
// Elliptical arcs are not supported.
func ParseSVG(s string) (BezPath, error) {
	b := []byte(s)
	i := skipCommaWhitespace(b)
	if i == len(b) {
		return nil, nil
	}
	if isNumberStart(b[i]) || b[i] == ',' {
		return nil, fmt.Errorf("bad path: path should start with a command")
	}

	var (
		p       BezPath
		args    [6]float64
		cur     Point // current point
		start   Point // start of the current subpath
		lastCtl Point // last control point, for S and T
		prevCmd = byte('z')
	)
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(b[i]) {
			cmd = b[i]
			repeat = false
			i++
			i += skipCommaWhitespace(b[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgs[upper]
		if !ok {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := range n {
			num, m := parsestrconv.ParseFloat(b[i:])
			if m == 0 {
				if repeat && j == 0 && i < len(b) {
					return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", b[i], i+1)
				}
				return nil, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, i+1)
			}
			args[j] = num
			i += m
			i += skipCommaWhitespace(b[i:])
		}

		rel := cmd != upper
		pt := func(k int) Point {
			q := Pt(args[k], args[k+1])
			if rel {
				q = q.Translate(Vec2(cur))
			}
			return q
		}
		if upper != 'M' && len(p) == 0 {
			return nil, fmt.Errorf("bad path: command '%c' before first move", cmd)
		}

		switch upper {
		case 'M':
			cur = pt(0)
			start = cur
			p.MoveTo(cur)
			// subsequent pairs are implicit line commands
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.ClosePath()
			cur = start
		case 'L':
			cur = pt(0)
			p.LineTo(cur)
		case 'H':
			x := args[0]
			if rel {
				x += cur.X
			}
			cur.X = x
			p.LineTo(cur)
		case 'V':
			y := args[0]
			if rel {
				y += cur.Y
			}
			cur.Y = y
			p.LineTo(cur)
		case 'C':
			c1, c2, end := pt(0), pt(2), pt(4)
			p.CubicTo(c1, c2, end)
			lastCtl, cur = c2, end
		case 'S':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = cur.Translate(cur.Sub(lastCtl))
			}
			c2, end := pt(0), pt(2)
			p.CubicTo(c1, c2, end)
			lastCtl, cur = c2, end
		case 'Q':
			c, end := pt(0), pt(2)
			p.QuadTo(c, end)
			lastCtl, cur = c, end
		case 'T':
			c := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				c = cur.Translate(cur.Sub(lastCtl))
			}
			end := pt(0)
			p.QuadTo(c, end)
			lastCtl, cur = c, end
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVG is like [ParseSVG] but panics on error.
func MustParseSVG(s string) BezPath {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}
