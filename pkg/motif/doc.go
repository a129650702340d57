// Package motif compiles granny-square crochet motifs round by round.
//
// A motif grows outward from a center ring: round 0 is the foundation (no
// stitches, one symbolic anchor per side), and every later round works its
// stitch clusters into anchor points exposed by the round before it.
//
// # Architecture
//
// The package is split into three layers:
//
//  1. Round geometry: BuildGeo computes the bounding square of a round from
//     its center and circumradius.
//  2. Round compiler: CompileRound produces one fully-populated Round
//     (sides, clusters, stitches, anchors) from the previous round and the
//     stitch parameters. Stitch spacing is governed by an injected
//     PitchPolicy.
//  3. Pattern builder: Build runs the compiler over an ordered radius list,
//     feeding each round's anchors to the next.
//
// # Usage
//
//	rounds := motif.Build(
//	    []float64{30, 60, 90, 120},
//	    geometry.V(200, 200),
//	    24, 24,
//	    motif.FixedPitch{},
//	)
//	for _, r := range rounds {
//	    fmt.Println(r.ID, r.ClustersPerSide())
//	}
//
// Rounds are immutable value records once built. Any parameter change
// requires a full rebuild from round 0; there is no incremental update.
package motif
