package wonky

import (
	"log/slog"
	"math"

	"honnef.co/go/wonky/curve"
)

// DefaultTolerance is the relative increase in roughness that is tolerated
// before a glyph is reported.
const DefaultTolerance = 0.25

// Comparison holds the roughness of a path before and after overlap removal.
type Comparison struct {
	Before float64
	After  float64
}

// Increase returns the increase in roughness as a percentage of the initial
// roughness, or 0 if the roughness grew by no more than the given tolerance
// ratio. If the initial roughness is 0 and the simplified path is rough,
// Increase returns +Inf.
func (c Comparison) Increase(tolerance float64) float64 {
	if !(c.After > c.Before*(1+tolerance)) {
		return 0
	}
	if c.Before == 0 {
		return math.Inf(1)
	}
	return (c.After/c.Before - 1) * 100
}

// FromZero reports whether roughness appeared where there was none.
func (c Comparison) FromZero() bool {
	return c.Before == 0 && c.After > 0
}

// Compare scores p, removes its overlaps and scores the result.
func Compare(p curve.BezPath) Comparison {
	return compare(p, discardLogger)
}

func compare(p curve.BezPath, logger *slog.Logger) Comparison {
	before := pathRoughness(p, logger)
	simplified := Simplify(p)
	logger.Debug("removed overlaps", "path", svgValue(simplified))
	after := pathRoughness(simplified, logger)
	return Comparison{Before: before, After: after}
}

// svgValue logs a path as SVG path data. The string is only built if the
// record is handled.
type svgValue curve.BezPath

func (v svgValue) LogValue() slog.Value {
	return slog.StringValue(curve.BezPath(v).SVG(curve.SVGOptions{MaxPrecision: 3}))
}

// An Outline is anything that can draw itself into a [Pen].
type Outline interface {
	Draw(pen Pen) error
}

// OutlineFunc adapts a drawing function to the [Outline] interface.
type OutlineFunc func(pen Pen) error

func (fn OutlineFunc) Draw(pen Pen) error { return fn(pen) }

// PathOutline is an [Outline] that replays a fixed path.
type PathOutline curve.BezPath

func (p PathOutline) Draw(pen Pen) error {
	DrawPath(curve.BezPath(p), pen)
	return nil
}

// CheckGlyph draws src, compares its roughness before and after overlap
// removal, and returns the comparison together with its increase at the given
// tolerance.
func CheckGlyph(src Outline, tolerance float64) (Comparison, float64, error) {
	c, err := drawAndCompare(src, discardLogger)
	if err != nil {
		return Comparison{}, 0, err
	}
	return c, c.Increase(tolerance), nil
}

func drawAndCompare(src Outline, logger *slog.Logger) (Comparison, error) {
	var b PathBuilder
	if err := src.Draw(&b); err != nil {
		return Comparison{}, err
	}
	return compare(b.Path(), logger), nil
}
