package wonky

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/wonky/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func svg(s string) curve.BezPath { return curve.MustParseSVG(s) }

const (
	crossSVG  = "M 100 100 L 100 200 L 120 200 L 120 100 L 100 100 Z M 75 150 L 75 175 L 150 175L 150 150 L 75 150 Z"
	daggerSVG = "M 100 100 L 100 200 L 120 200 L 120 50 L 100 100 Z M 75 150 L 75 175 L 150 175L 150 150 L 75 150 Z"
	upointSVG = "M 1 20 Q 0 51 0 51 Q 0 51 19 51 Q 38 51 38 51 Q 38 51 38 51 L 38 0 Q 0 0 0 0 L 1 20 Z"
)
