package render

import (
	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

// Stitch symbol radii in chart units.
const (
	dcRadius    = 3.5
	chainRadius = 2.5
	ringScale   = 0.45 // center ring radius as a fraction of the foundation circumradius
)

type chartBounds struct {
	minX, minY, maxX, maxY float64
}

func (b chartBounds) width() float64  { return b.maxX - b.minX }
func (b chartBounds) height() float64 { return b.maxY - b.minY }

// computeBounds returns the bounding box of all round corners. Corners are
// the extreme points of every round, so stitch positions are always inside.
func computeBounds(rounds []motif.Round) chartBounds {
	if len(rounds) == 0 {
		return chartBounds{}
	}
	first := rounds[0].Geo.Corners[0]
	b := chartBounds{minX: first.X, minY: first.Y, maxX: first.X, maxY: first.Y}
	for _, r := range rounds {
		for _, c := range r.Geo.Corners {
			b.minX = min(b.minX, c.X)
			b.minY = min(b.minY, c.Y)
			b.maxX = max(b.maxX, c.X)
			b.maxY = max(b.maxY, c.Y)
		}
	}
	return b
}

// resolveAnchor looks up the position an AnchorRef points at. The compiler
// guarantees refs are in bounds, but rendering tolerates partial input
// (e.g. a single round loaded without its predecessor).
func resolveAnchor(rounds []motif.Round, ref *motif.AnchorRef) (geometry.Vec2, bool) {
	if ref == nil {
		return geometry.Vec2{}, false
	}
	for _, r := range rounds {
		if r.ID != ref.RoundID {
			continue
		}
		anchors := r.Sides[ref.Side].Anchors
		if ref.Slot < 0 || ref.Slot >= len(anchors) {
			return geometry.Vec2{}, false
		}
		return anchors[ref.Slot].Position, true
	}
	return geometry.Vec2{}, false
}
