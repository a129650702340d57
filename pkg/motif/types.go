package motif

import (
	"fmt"

	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
)

// =============================================================================
// Sides
// =============================================================================

// SideIndex identifies one of the four sides of a round's bounding square.
// Sides are cyclically ordered clockwise starting from the top.
type SideIndex int

// The four sides of a round.
const (
	Top SideIndex = iota
	Right
	Bottom
	Left
)

// Sides lists all four side indices in their cyclic order.
var Sides = [4]SideIndex{Top, Right, Bottom, Left}

// String returns the lowercase side name.
func (s SideIndex) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Horizontal reports whether the side runs along the x axis.
func (s SideIndex) Horizontal() bool {
	return s == Top || s == Bottom
}

// Next returns the side that follows s in clockwise order.
func (s SideIndex) Next() SideIndex {
	return (s + 1) % 4
}

// =============================================================================
// Anchors
// =============================================================================

// AnchorType describes what kind of space an anchor represents. Every anchor
// carries a type; consumers match exhaustively instead of defaulting.
type AnchorType string

// Anchor types.
const (
	// AnchorCorner marks the chain space at a square's corner.
	AnchorCorner AnchorType = "corner"

	// AnchorSideSpace marks the chain space between two clusters on a side.
	AnchorSideSpace AnchorType = "side_space"

	// AnchorCenterRing marks the foundation ring itself.
	AnchorCenterRing AnchorType = "center_ring"
)

// Anchor is a point on a round where the next round may attach.
type Anchor struct {
	Position geometry.Vec2 `json:"position" bson:"position"`
	Type     AnchorType    `json:"type" bson:"type"`
}

// AnchorRef is a back-reference from a cluster to the anchor it grew from:
// slot Slot on side Side of round RoundID.
type AnchorRef struct {
	RoundID int        `json:"round_id" bson:"round_id"`
	Side    SideIndex  `json:"side" bson:"side"`
	Slot    int        `json:"slot" bson:"slot"`
	Type    AnchorType `json:"type" bson:"type"`
}

// =============================================================================
// Stitches and Clusters
// =============================================================================

// StitchKind identifies the stitch worked at a position.
type StitchKind string

// Stitch kinds, named by their standard crochet abbreviations.
const (
	StitchChain         StitchKind = "ch"
	StitchDoubleCrochet StitchKind = "dc"
)

// Stitch is a single stitch placed in the motif plane.
type Stitch struct {
	ID       string        `json:"id" bson:"id"`
	Kind     StitchKind    `json:"kind" bson:"kind"`
	Position geometry.Vec2 `json:"position" bson:"position"`
}

// Cluster is a group of three double-crochet stitches worked into a single
// anchor point. AnchorRef is nil only when the cluster was compiled without
// a previous round.
type Cluster struct {
	ID       string        `json:"id" bson:"id"`
	Side     SideIndex     `json:"side" bson:"side"`
	Center   geometry.Vec2 `json:"center" bson:"center"`
	Stitches [3]Stitch     `json:"stitches" bson:"stitches"`
	Ref      *AnchorRef    `json:"anchor_ref,omitempty" bson:"anchor_ref,omitempty"`
}

// =============================================================================
// Sides and Rounds
// =============================================================================

// Side holds everything one side of a round contributes: its clusters, the
// two corner chains, and the anchor list exposed to the next round.
type Side struct {
	Side         SideIndex `json:"side" bson:"side"`
	Clusters     []Cluster `json:"clusters" bson:"clusters"`
	CornerChains [2]Stitch `json:"corner_chains" bson:"corner_chains"`
	Anchors      []Anchor  `json:"anchors" bson:"anchors"`
}

// RoundGeo is the bounding square of a round. Corners are ordered
// TL, TR, BR, BL.
type RoundGeo struct {
	Circumradius float64          `json:"circumradius" bson:"circumradius"`
	Corners      [4]geometry.Vec2 `json:"corners" bson:"corners"`
	Center       geometry.Vec2    `json:"center" bson:"center"`
}

// Round is one compiled round of the motif. Rounds are immutable value
// records after construction.
type Round struct {
	ID    int      `json:"id" bson:"id"`
	Geo   RoundGeo `json:"geo" bson:"geo"`
	Sides [4]Side  `json:"sides" bson:"sides"`
}

// ClustersPerSide returns the number of clusters on each side.
// By the growth rule this equals the round id for rounds ≥ 1.
func (r Round) ClustersPerSide() int {
	return len(r.Sides[Top].Clusters)
}

// DoubleCrochets returns the total number of double-crochet stitches in the
// round across all four sides.
func (r Round) DoubleCrochets() int {
	return 4 * 3 * r.ClustersPerSide()
}

// Chains returns the total number of chain stitches in the round.
// The foundation round has none.
func (r Round) Chains() int {
	if r.ID == 0 {
		return 0
	}
	return 4 * 2
}

// StitchUnits returns the number of parametric stitch units along one side:
// 4 for round 1, otherwise 3·clusters + 2. This governs all parametric
// placement along a side.
func StitchUnits(roundID int) int {
	if roundID == 1 {
		return 4
	}
	return 3*roundID + 2
}
