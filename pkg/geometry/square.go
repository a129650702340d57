package geometry

import "math"

// Square corner positions, in the fixed order used throughout the motif
// model: top-left, top-right, bottom-right, bottom-left.
const (
	CornerTL = 0
	CornerTR = 1
	CornerBR = 2
	CornerBL = 3
)

// SquareCorners computes the four corners of an axis-aligned square from its
// center and circumradius (distance from center to a corner). The half side
// length is r·√2/2. Corners are ordered TL, TR, BR, BL.
//
// A negative radius is a caller contract violation and is not checked here.
func SquareCorners(center Vec2, circumradius float64) [4]Vec2 {
	h := circumradius * math.Sqrt2 / 2
	return [4]Vec2{
		{X: center.X - h, Y: center.Y - h}, // TL
		{X: center.X + h, Y: center.Y - h}, // TR
		{X: center.X + h, Y: center.Y + h}, // BR
		{X: center.X - h, Y: center.Y + h}, // BL
	}
}

// SideEndpoints returns the start and end corner of side i of a square,
// walking the corners clockwise: side 0 runs TL→TR, side 1 TR→BR,
// side 2 BR→BL, side 3 BL→TL.
func SideEndpoints(corners [4]Vec2, side int) (start, end Vec2) {
	return corners[side%4], corners[(side+1)%4]
}

// SideMidpoint returns the midpoint of side i of a square.
func SideMidpoint(corners [4]Vec2, side int) Vec2 {
	start, end := SideEndpoints(corners, side)
	return start.Lerp(end, 0.5)
}
