package motif

import (
	"fmt"
	"sync"

	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
)

// stitchSpread is the fraction of the effective stitch width separating
// adjacent stitches within a cluster.
const stitchSpread = 0.8

// Params holds the stitch-dimension inputs shared by every round of a build.
type Params struct {
	StitchHeight float64
	StitchWidth  float64
	Pitch        PitchPolicy
}

// normalized returns a copy with a default pitch policy applied.
func (p Params) normalized() Params {
	if p.Pitch == nil {
		p.Pitch = FixedPitch{}
	}
	return p
}

// CompileRound produces one fully-populated round from the previous round
// (nil for standalone compilation) and the round parameters.
//
// Identical inputs always yield identical output. The four sides are
// compiled independently: each side reads only the previous round's matching
// side and writes only its own slot, so they run concurrently.
//
// A cluster slot that falls outside the previous round's anchor list means
// the anchor chain is broken; CompileRound panics rather than clamping,
// since clamping would silently corrupt anchoring in every later round.
func CompileRound(prev *Round, id int, center geometry.Vec2, circumradius float64, p Params) Round {
	p = p.normalized()
	round := Round{ID: id, Geo: BuildGeo(center, circumradius)}

	if id == 0 {
		for _, s := range Sides {
			round.Sides[s] = foundationSide(round.Geo, s)
		}
		return round
	}

	// Every cluster slot must resolve before the sides fan out, so a broken
	// anchor chain fails on the caller's goroutine.
	if prev != nil {
		for _, s := range Sides {
			if n := len(prev.Sides[s].Anchors); id > n {
				panic(fmt.Sprintf("motif: round %d needs %d anchor slots on round %d side %s, only %d available",
					id, id, prev.ID, s, n))
			}
		}
	}

	var wg sync.WaitGroup
	for _, s := range Sides {
		wg.Add(1)
		go func(s SideIndex) {
			defer wg.Done()
			round.Sides[s] = compileSide(prev, id, round.Geo, s, p)
		}(s)
	}
	wg.Wait()

	return round
}

// foundationSide emits the round-0 shape of a side: no clusters, no corner
// chains, and a single center-ring anchor at the side's midpoint.
func foundationSide(geo RoundGeo, s SideIndex) Side {
	return Side{
		Side: s,
		Anchors: []Anchor{
			{Position: geo.SideMidpoint(s), Type: AnchorCenterRing},
		},
	}
}

// compileSide builds one side of a growth round (id ≥ 1).
func compileSide(prev *Round, id int, geo RoundGeo, s SideIndex, p Params) Side {
	numClusters := id
	units := StitchUnits(id)
	start, end := geo.SideEndpoints(s)

	side := Side{Side: s}

	// Corner chains sit just inside the two side endpoints, snapped onto the
	// side's edge so rounding in the interpolation cannot pull them off it.
	t1 := 0.5 / float64(units)
	chain1 := snapToEdge(start.Lerp(end, t1), start, s)
	chain2 := snapToEdge(start.Lerp(end, 1-t1), start, s)
	side.CornerChains = [2]Stitch{
		{ID: stitchID(id, s, "ch0"), Kind: StitchChain, Position: chain1},
		{ID: stitchID(id, s, "ch1"), Kind: StitchChain, Position: chain2},
	}

	effWidth := p.Pitch.StitchWidth(p.StitchWidth, start.Distance(end), units)

	side.Clusters = make([]Cluster, 0, numClusters)
	for j := 0; j < numClusters; j++ {
		side.Clusters = append(side.Clusters, buildCluster(prev, id, s, j, start, end, units, effWidth, p))
	}

	// Outgoing anchors: first corner chain, the midpoint between each pair
	// of adjacent clusters, then the second corner chain.
	side.Anchors = make([]Anchor, 0, numClusters+1)
	side.Anchors = append(side.Anchors, Anchor{Position: chain1, Type: AnchorCorner})
	for j := 0; j < numClusters-1; j++ {
		mid := side.Clusters[j].Center.Lerp(side.Clusters[j+1].Center, 0.5)
		side.Anchors = append(side.Anchors, Anchor{Position: mid, Type: AnchorSideSpace})
	}
	side.Anchors = append(side.Anchors, Anchor{Position: chain2, Type: AnchorCorner})

	return side
}

// buildCluster places cluster slot j of a side and emits its three
// double crochets.
func buildCluster(prev *Round, id int, s SideIndex, j int, start, end geometry.Vec2, units int, effWidth float64, p Params) Cluster {
	c := Cluster{ID: clusterID(id, s, j), Side: s}

	var prevAnchor *Anchor
	if prev != nil {
		a := prev.Sides[s].Anchors[j] // bounds checked by CompileRound
		prevAnchor = &a
		typ := a.Type
		if typ == "" {
			typ = AnchorSideSpace
		}
		c.Ref = &AnchorRef{RoundID: prev.ID, Side: s, Slot: j, Type: typ}
	}

	switch {
	case prevAnchor != nil && id > 1:
		// Grow one stitch height out of the anchor along the side's
		// perpendicular axis; the in-plane coordinate stays pinned to the
		// anchor so clusters cannot drift along the side.
		c.Center = growFromAnchor(prevAnchor.Position, s, p.StitchHeight)
	case id == 1:
		// Round 1 founds into the ring: its single cluster sits centered
		// between the two corner chains.
		c.Center = snapToEdge(start.Lerp(end, 0.5), start, s)
	default:
		t := (3*float64(j) + 2.5) / float64(units)
		c.Center = snapToEdge(start.Lerp(end, t), start, s)
	}

	dir := sideDirection(start, end)
	for k := 0; k < 3; k++ {
		offset := float64(k-1) * stitchSpread * effWidth
		c.Stitches[k] = Stitch{
			ID:       fmt.Sprintf("%s-dc%d", c.ID, k),
			Kind:     StitchDoubleCrochet,
			Position: c.Center.Add(dir.Mul(offset)),
		}
	}

	return c
}

// =============================================================================
// Placement Helpers
// =============================================================================

// snapToEdge forces the off-axis coordinate of p onto the side's edge line,
// given any endpoint of the side.
func snapToEdge(p, endpoint geometry.Vec2, s SideIndex) geometry.Vec2 {
	if s.Horizontal() {
		p.Y = endpoint.Y
	} else {
		p.X = endpoint.X
	}
	return p
}

// growFromAnchor offsets an anchor position by one stitch height along the
// side's outward growth axis, keeping the other coordinate pinned.
func growFromAnchor(a geometry.Vec2, s SideIndex, stitchHeight float64) geometry.Vec2 {
	switch s {
	case Top:
		return geometry.Vec2{X: a.X, Y: a.Y - stitchHeight}
	case Right:
		return geometry.Vec2{X: a.X + stitchHeight, Y: a.Y}
	case Bottom:
		return geometry.Vec2{X: a.X, Y: a.Y + stitchHeight}
	default: // Left
		return geometry.Vec2{X: a.X - stitchHeight, Y: a.Y}
	}
}

// sideDirection returns the unit vector pointing from a side's start corner
// to its end corner.
func sideDirection(start, end geometry.Vec2) geometry.Vec2 {
	d := end.Sub(start)
	return d.Mul(1 / d.Length())
}

func clusterID(round int, s SideIndex, slot int) string {
	return fmt.Sprintf("r%d-%s-c%d", round, s, slot)
}

func stitchID(round int, s SideIndex, suffix string) string {
	return fmt.Sprintf("r%d-%s-%s", round, s, suffix)
}
