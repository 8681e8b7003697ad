package wonky

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"honnef.co/go/wonky/curve"
)

// DefaultMaxIncrease is the increase, in percent, at or above which a
// finding is treated as a measurement anomaly and not reported.
const DefaultMaxIncrease = 1000

// A Font is a source of glyph outlines.
type Font interface {
	// NumGlyphs returns the number of glyphs. Glyph IDs range from 0 to
	// NumGlyphs()-1.
	NumGlyphs() int
	// GlyphName returns a human-readable name for gid. It never returns the
	// empty string.
	GlyphName(gid int) string
	// IsComposite reports whether gid is built from references to other
	// glyphs.
	IsComposite(gid int) bool
	// Instances returns the font's named instances, in declaration order.
	Instances() []Instance
	// DrawGlyph draws the outline of gid at inst into pen.
	DrawGlyph(gid int, inst Instance, pen Pen) error
}

// AxisValue is a coordinate on one design-variation axis.
type AxisValue struct {
	Tag   string
	Value float64
}

// Instance is a location in a font's design space. The zero value denotes
// the default location.
type Instance struct {
	Name   string
	Coords []AxisValue
}

// IsDefault reports whether inst is the font's default location.
func (inst Instance) IsDefault() bool { return len(inst.Coords) == 0 }

// String formats inst as its name followed by its coordinates, for example
// "Bold (wght=700 wdth=100)".
func (inst Instance) String() string {
	name := inst.Name
	if name == "" {
		name = "Unnamed"
	}
	if inst.IsDefault() {
		return name
	}
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" (")
	for i, c := range inst.Coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Tag)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(c.Value, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Finding is a glyph whose roughness increased beyond the tolerance.
type Finding struct {
	Instance   Instance
	GID        int
	Glyph      string
	Comparison Comparison
	// Increase is the increase in percent. It is +Inf if the glyph had no
	// roughness before.
	Increase float64
}

// Options configures [Check].
type Options struct {
	// Tolerance is the relative increase in roughness that is tolerated.
	Tolerance float64
	// MaxIncrease is the increase in percent at or above which findings are
	// suppressed as anomalies. Zero disables the cutoff.
	MaxIncrease float64
	// Glyphs restricts the check to glyphs with these names. An empty list
	// checks all glyphs.
	Glyphs []string
	// OnInstance, if not nil, is called before the glyphs of each instance
	// are checked.
	OnInstance func(Instance)
	// Logger receives diagnostics. A nil Logger discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		Tolerance:   DefaultTolerance,
		MaxIncrease: DefaultMaxIncrease,
	}
}

// Reportable returns the increase of c at opts.Tolerance and whether it is
// reported. Increases of at least opts.MaxIncrease are suppressed as
// anomalies, except when roughness appeared where there was none.
func (opts *Options) Reportable(c Comparison) (float64, bool) {
	increase := c.Increase(opts.Tolerance)
	switch {
	case increase <= 0:
		return increase, false
	case c.FromZero(), opts.MaxIncrease == 0:
		return increase, true
	default:
		return increase, increase < opts.MaxIncrease
	}
}

// Compare is like [Compare] but logs to opts.Logger.
func (opts *Options) Compare(p curve.BezPath) Comparison {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger
	}
	return compare(p, logger)
}

// Check compares the roughness of every simple glyph of f before and after
// overlap removal, at every named instance of f or at its default location if
// it has none. Glyphs are visited in ascending order and fn is called for
// each glyph whose roughness increased by more than opts.Tolerance.
//
// Glyphs that cannot be drawn are skipped. Check stops at the first error
// returned by fn and returns it wrapped with the glyph's name. It returns the
// context's error if ctx is canceled.
func Check(ctx context.Context, f Font, opts Options, fn func(Finding) error) error {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger
	}
	var allow map[string]struct{}
	if len(opts.Glyphs) > 0 {
		allow = make(map[string]struct{}, len(opts.Glyphs))
		for _, name := range opts.Glyphs {
			allow[name] = struct{}{}
		}
	}

	instances := f.Instances()
	if len(instances) == 0 {
		instances = []Instance{{}}
	}
	n := f.NumGlyphs()
	for _, inst := range instances {
		if opts.OnInstance != nil {
			opts.OnInstance(inst)
		}
		ilog := logger.With("instance", inst.String())
		for gid := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			name := f.GlyphName(gid)
			if allow != nil {
				if _, ok := allow[name]; !ok {
					continue
				}
			}
			if f.IsComposite(gid) {
				continue
			}
			glog := ilog.With("glyph", name, "gid", gid)
			src := OutlineFunc(func(pen Pen) error { return f.DrawGlyph(gid, inst, pen) })
			c, err := drawAndCompare(src, glog)
			if err != nil {
				glog.Debug("skipping glyph", "err", err)
				continue
			}
			increase, ok := opts.Reportable(c)
			if increase == 0 {
				continue
			}
			if !ok {
				glog.Debug("suppressing anomalous increase",
					"before", c.Before, "after", c.After, "increase", increase)
				continue
			}
			err = fn(Finding{
				Instance:   inst,
				GID:        gid,
				Glyph:      name,
				Comparison: c,
				Increase:   increase,
			})
			if err != nil {
				return fmt.Errorf("glyph %s: %w", name, err)
			}
		}
	}
	return nil
}
