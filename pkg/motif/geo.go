package motif

import "github.com/sunnyyao/crocheo-blog/pkg/geometry"

// BuildGeo computes the bounding square of a round from its center and
// circumradius. Corners are ordered TL, TR, BR, BL; side i of the square
// runs from corner i to corner (i+1) mod 4, matching SideIndex order.
func BuildGeo(center geometry.Vec2, circumradius float64) RoundGeo {
	return RoundGeo{
		Circumradius: circumradius,
		Corners:      geometry.SquareCorners(center, circumradius),
		Center:       center,
	}
}

// SideEndpoints returns the start and end corner of the given side.
func (g RoundGeo) SideEndpoints(s SideIndex) (start, end geometry.Vec2) {
	return geometry.SideEndpoints(g.Corners, int(s))
}

// SideMidpoint returns the midpoint of the given side.
func (g RoundGeo) SideMidpoint(s SideIndex) geometry.Vec2 {
	return geometry.SideMidpoint(g.Corners, int(s))
}

// SideLength returns the edge length of the bounding square.
func (g RoundGeo) SideLength() float64 {
	start, end := g.SideEndpoints(Top)
	return start.Distance(end)
}
