package fontfile

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/wonky"
	"honnef.co/go/wonky/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func seg(op ot.SegmentOp, pts ...float32) ot.Segment {
	s := ot.Segment{Op: op}
	for i := 0; i < len(pts); i += 2 {
		s.Args[i/2] = ot.SegmentPoint{X: pts[i], Y: pts[i+1]}
	}
	return s
}

func TestDrawSegments(t *testing.T) {
	segs := []ot.Segment{
		seg(ot.SegmentOpMoveTo, 0, 0),
		seg(ot.SegmentOpLineTo, 10, 0),
		seg(ot.SegmentOpQuadTo, 15, 5, 10, 10),
		seg(ot.SegmentOpMoveTo, 20, 20),
		seg(ot.SegmentOpCubeTo, 30, 20, 30, 30, 20, 30),
	}
	var b wonky.PathBuilder
	drawSegments(segs, &b)
	want := curve.MustParseSVG("M 0 0 L 10 0 Q 15 5 10 10 Z M 20 20 C 30 20 30 30 20 30 Z")
	diff(t, want, b.Path())

	b.Reset()
	drawSegments(nil, &b)
	diff(t, 0, len(b.Path()))
}

func TestGlyphName(t *testing.T) {
	diff(t, "A", glyphName("A", 36))
	diff(t, "gid36", glyphName("", 36))
}

func TestInstance(t *testing.T) {
	axes := []ot.Tag{ot.MustNewTag("wght"), ot.MustNewTag("wdth")}
	got := instance("Bold", axes, []float64{700, 100})
	want := wonky.Instance{Name: "Bold", Coords: []wonky.AxisValue{{Tag: "wght", Value: 700}, {Tag: "wdth", Value: 100}}}
	diff(t, want, got)
	diff(t, "Bold (wght=700 wdth=100)", got.String())
}

func TestParseGoRegular(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() == 0 {
		t.Fatal("font has no glyphs")
	}
	if n := len(f.Instances()); n != 0 {
		t.Errorf("static font has %d instances", n)
	}
	for gid := range f.NumGlyphs() {
		if f.GlyphName(gid) == "" {
			t.Fatalf("glyph %d has no name", gid)
		}
	}

	gid := lookup(t, f, 'O')
	if f.IsComposite(int(gid)) {
		t.Error("O is a composite")
	}
	var b wonky.PathBuilder
	if err := f.DrawGlyph(int(gid), wonky.Instance{}, &b); err != nil {
		t.Fatal(err)
	}
	var contours int
	for sp := range b.Subpaths() {
		contours++
		if !sp.Closed {
			t.Error("contour isn't closed")
		}
	}
	diff(t, 2, contours)

	// The default location has no coordinates, and unknown axes are
	// rejected.
	err = f.DrawGlyph(int(gid), wonky.Instance{Coords: []wonky.AxisValue{{Tag: "wght", Value: 700}}}, &b)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want %v", err, ErrUnsupported)
	}
}

func TestCheckGoRegular(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	// Go Regular has no overlapping contours, so nothing gets rougher.
	opts := wonky.DefaultOptions()
	opts.Glyphs = []string{f.GlyphName(int(lookup(t, f, 'O'))), f.GlyphName(int(lookup(t, f, 'e')))}
	err = wonky.Check(t.Context(), f, opts, func(fd wonky.Finding) error {
		t.Errorf("unexpected finding %+v", fd)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func lookup(t *testing.T, f *Font, r rune) font.GID {
	t.Helper()
	gid, ok := f.face.Cmap.Lookup(r)
	if !ok {
		t.Fatalf("no glyph for %q", r)
	}
	return gid
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want %v", err, fs.ErrNotExist)
	}
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("parsing garbage succeeded")
	}
}
