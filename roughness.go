package wonky

import (
	"context"
	"log/slog"
	"math"

	"honnef.co/go/wonky/curve"
)

const (
	// arclenAccuracy is the accuracy passed to [curve.PathSegment.Arclen].
	arclenAccuracy = 0.1

	// Curvature and tangents are sampled slightly inside each segment, where
	// degenerate control points are less likely to make them vanish.
	inSample  = 0.95
	outSample = 0.05
)

var discardLogger = slog.New(slog.DiscardHandler)

// Roughness returns the roughness score of a single subpath.
//
// Segments of zero (or undefined) length are ignored. Each remaining segment
// forms a join with its successor, and the last segment of a closed subpath
// also joins the first. A join with tangent angle θ between the incoming and
// the outgoing segment contributes
//
//	(1 + |κ_in − κ_out|) · |θ − round(θ / 90°) · 90°| / (len_in + len_out)
//
// where κ is the signed curvature near the join. Subpaths with fewer than two
// segments score 0.
func Roughness(subpath curve.Subpath) float64 {
	return roughness(subpath, discardLogger)
}

// PathRoughness returns the sum of the roughness scores of all subpaths of p.
func PathRoughness(p curve.BezPath) float64 {
	return pathRoughness(p, discardLogger)
}

func pathRoughness(p curve.BezPath, logger *slog.Logger) float64 {
	var sum float64
	for sp := range p.Subpaths() {
		sum += roughness(sp, logger)
	}
	return sum
}

type measuredSegment struct {
	seg    curve.PathSegment
	arclen float64
}

func roughness(subpath curve.Subpath, logger *slog.Logger) float64 {
	var segs []measuredSegment
	for seg := range subpath.Segments() {
		// This also drops segments whose length is NaN.
		if l := seg.Arclen(arclenAccuracy); l > 0 {
			segs = append(segs, measuredSegment{seg, l})
		}
	}
	if len(segs) < 2 {
		return 0
	}

	n := len(segs) - 1
	if subpath.Closed {
		n = len(segs)
	}
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	var sum float64
	for i := range n {
		in := segs[i]
		out := segs[(i+1)%len(segs)]
		contrib, angle, dk := joinRoughness(in, out)
		if contrib != 0 && debug {
			logger.Debug("rough join",
				"at", in.seg.End(),
				"in", in.seg.Kind,
				"out", out.seg.Kind,
				"angle", angle*180/math.Pi,
				"curvature_diff", dk,
				"contribution", contrib)
		}
		sum += contrib
	}
	return sum
}

// joinRoughness returns the contribution of the join between in and out,
// together with the tangent angle and curvature difference it was computed
// from.
func joinRoughness(in, out measuredSegment) (contrib, angle, dk float64) {
	dk = math.Abs(in.seg.Curvature(inSample) - out.seg.Curvature(outSample))
	angle = out.seg.Deriv(outSample).AngleTo(in.seg.Deriv(inSample))
	const quarter = math.Pi / 2
	dev := math.Abs(angle - math.Round(angle/quarter)*quarter)
	return (1 + dk) * dev / (in.arclen + out.arclen), angle, dk
}
