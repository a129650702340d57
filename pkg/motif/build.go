package motif

import "github.com/sunnyyao/crocheo-blog/pkg/geometry"

// Build compiles the full round list from an ordered circumradius sequence.
// Index 0 is the foundation radius; radii are expected to be positive and
// monotonically increasing. A non-monotonic sequence still compiles without
// error but yields a self-overlapping, geometrically invalid motif; the
// compiler does not correct caller input.
//
// Rounds are compiled strictly in order because round i attaches to round
// i−1's anchors; only the four sides within a round run concurrently.
// An empty radius list returns an empty round list.
func Build(radii []float64, center geometry.Vec2, stitchHeight, stitchWidth float64, pitch PitchPolicy) []Round {
	params := Params{
		StitchHeight: stitchHeight,
		StitchWidth:  stitchWidth,
		Pitch:        pitch,
	}.normalized()

	rounds := make([]Round, 0, len(radii))
	for i, r := range radii {
		var prev *Round
		if i > 0 {
			prev = &rounds[i-1]
		}
		rounds = append(rounds, CompileRound(prev, i, center, r, params))
	}
	return rounds
}

// RadiiFromSpacing derives a radius list from a foundation radius and a
// constant per-round increment. This is the shape the CLI and TUI feed to
// Build when the user only specifies a round count.
func RadiiFromSpacing(n int, foundation, step float64) []float64 {
	radii := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		radii = append(radii, foundation+float64(i)*step)
	}
	return radii
}
