// Package fontfile reads glyph outlines and instance metadata from OpenType
// and TrueType font files.
package fontfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"honnef.co/go/wonky"
)

var (
	// ErrNoOutline is returned when a glyph has no outline data.
	ErrNoOutline = errors.New("glyph has no outline")
	// ErrUnsupported is returned for glyphs that are stored as bitmaps or
	// SVG documents, and for instance coordinates on unknown axes.
	ErrUnsupported = errors.New("unsupported glyph data")
)

var _ wonky.Font = (*Font)(nil)

// Font is a parsed font file. It implements [wonky.Font].
//
// A Font keeps the variation coordinates of the last drawn instance, so it
// must not be used from multiple goroutines at once.
type Font struct {
	face      *font.Face
	numGlyphs int
	// composite[gid] reports whether gid is a composite TrueType glyph. It is
	// nil for fonts without a glyf table.
	composite []bool
	axes      map[string]ot.Tag
	instances []wonky.Instance
	current   []font.Variation
}

// Open reads and parses the font file at filename. Collections are not
// supported; use the individual font files instead.
func Open(filename string) (*Font, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Parse parses a font from memory.
func Parse(data []byte) (*Font, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("couldn't load font: %w", err)
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse font: %w", err)
	}

	raw, err := ld.RawTable(ot.MustNewTag("maxp"))
	if err != nil {
		return nil, fmt.Errorf("couldn't read maxp table: %w", err)
	}
	maxp, _, err := tables.ParseMaxp(raw)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse maxp table: %w", err)
	}

	f := &Font{
		face:      font.NewFace(ft),
		numGlyphs: int(maxp.NumGlyphs),
		axes:      map[string]ot.Tag{},
	}
	if f.composite, err = composites(ld, f.numGlyphs); err != nil {
		return nil, err
	}
	if err := f.loadInstances(ld); err != nil {
		return nil, err
	}
	return f, nil
}

// composites returns which glyphs of a TrueType font are composites. Fonts
// without a glyf table have no composites and return nil.
func composites(ld *ot.Loader, numGlyphs int) ([]bool, error) {
	glyfRaw, err := ld.RawTable(ot.MustNewTag("glyf"))
	if err != nil {
		return nil, nil
	}
	raw, err := ld.RawTable(ot.MustNewTag("head"))
	if err != nil {
		return nil, fmt.Errorf("couldn't read head table: %w", err)
	}
	head, _, err := tables.ParseHead(raw)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse head table: %w", err)
	}
	raw, err = ld.RawTable(ot.MustNewTag("loca"))
	if err != nil {
		return nil, fmt.Errorf("couldn't read loca table: %w", err)
	}
	loca, err := tables.ParseLoca(raw, numGlyphs, head.IndexToLocFormat == 1)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse loca table: %w", err)
	}
	glyf, err := tables.ParseGlyf(glyfRaw, loca)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse glyf table: %w", err)
	}
	out := make([]bool, numGlyphs)
	for gid, g := range glyf {
		if gid >= numGlyphs {
			break
		}
		_, out[gid] = g.Data.(tables.CompositeGlyph)
	}
	return out, nil
}

// loadInstances reads the named instances from the fvar table, labelling
// them with their subfamily names.
func (f *Font) loadInstances(ld *ot.Loader) error {
	raw, err := ld.RawTable(ot.MustNewTag("fvar"))
	if err != nil {
		// Static font.
		return nil
	}
	fvar, _, err := tables.ParseFvar(raw)
	if err != nil {
		return fmt.Errorf("couldn't parse fvar table: %w", err)
	}

	var names tables.Name
	if raw, err := ld.RawTable(ot.MustNewTag("name")); err == nil {
		// Instances without a name are still checked.
		names, _, _ = tables.ParseName(raw)
	}

	axes := make([]ot.Tag, len(fvar.FvarRecords.Axis))
	for i, axis := range fvar.FvarRecords.Axis {
		axes[i] = axis.Tag
		f.axes[axis.Tag.String()] = axis.Tag
	}
	for _, rec := range fvar.FvarRecords.Instances {
		coords := make([]float64, len(rec.Coordinates))
		for i, c := range rec.Coordinates {
			coords[i] = float64(c)
		}
		f.instances = append(f.instances, instance(names.Name(tables.NameID(rec.SubfamilyNameID)), axes, coords))
	}
	return nil
}

func instance(name string, axes []ot.Tag, coords []float64) wonky.Instance {
	inst := wonky.Instance{Name: name}
	for i, tag := range axes {
		if i >= len(coords) {
			break
		}
		inst.Coords = append(inst.Coords, wonky.AxisValue{Tag: tag.String(), Value: coords[i]})
	}
	return inst
}

func (f *Font) NumGlyphs() int { return f.numGlyphs }

// GlyphName returns the glyph's name from the post or CFF table, or gid<N>
// if the font doesn't name it.
func (f *Font) GlyphName(gid int) string {
	return glyphName(f.face.GlyphName(font.GID(gid)), gid)
}

func glyphName(name string, gid int) string {
	if name != "" {
		return name
	}
	return "gid" + strconv.Itoa(gid)
}

func (f *Font) IsComposite(gid int) bool {
	return gid < len(f.composite) && f.composite[gid]
}

// Instances returns the named instances in the order of the fvar table.
func (f *Font) Instances() []wonky.Instance { return f.instances }

// DrawGlyph draws the unhinted outline of gid in font units at the location
// of inst.
func (f *Font) DrawGlyph(gid int, inst wonky.Instance, pen wonky.Pen) error {
	if err := f.setInstance(inst); err != nil {
		return err
	}
	switch data := f.face.GlyphData(font.GID(gid)).(type) {
	case font.GlyphOutline:
		drawSegments(data.Segments, pen)
		return nil
	case nil:
		return ErrNoOutline
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, data)
	}
}

func (f *Font) setInstance(inst wonky.Instance) error {
	vars := make([]font.Variation, 0, len(inst.Coords))
	for _, c := range inst.Coords {
		tag, ok := f.axes[c.Tag]
		if !ok {
			return fmt.Errorf("%w: axis %q", ErrUnsupported, c.Tag)
		}
		vars = append(vars, font.Variation{Tag: tag, Value: float32(c.Value)})
	}
	if slices.Equal(vars, f.current) {
		return nil
	}
	f.face.SetVariations(vars)
	f.current = vars
	return nil
}

// drawSegments replays an outline into pen. Outlines have no explicit close
// command; every contour is closed before the next one starts.
func drawSegments(segs []ot.Segment, pen wonky.Pen) {
	open := false
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				pen.ClosePath()
			}
			pen.MoveTo(float64(a[0].X), float64(a[0].Y))
			open = true
		case ot.SegmentOpLineTo:
			pen.LineTo(float64(a[0].X), float64(a[0].Y))
		case ot.SegmentOpQuadTo:
			pen.QuadTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case ot.SegmentOpCubeTo:
			pen.CubicTo(
				float64(a[0].X), float64(a[0].Y),
				float64(a[1].X), float64(a[1].Y),
				float64(a[2].X), float64(a[2].Y))
		}
	}
	if open {
		pen.ClosePath()
	}
}
