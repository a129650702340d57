package motif_test

import (
	"fmt"

	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

func ExampleBuild() {
	rounds := motif.Build(
		[]float64{30, 64, 98, 132},
		geometry.V(200, 200),
		24, 24,
		motif.FixedPitch{},
	)

	for _, r := range rounds {
		fmt.Printf("round %d: %d clusters/side, %d dc\n",
			r.ID, r.ClustersPerSide(), r.DoubleCrochets())
	}
	// Output:
	// round 0: 0 clusters/side, 0 dc
	// round 1: 1 clusters/side, 12 dc
	// round 2: 2 clusters/side, 24 dc
	// round 3: 3 clusters/side, 36 dc
}

func ExampleCompileRound_foundation() {
	r := motif.CompileRound(nil, 0, geometry.V(0, 0), 30, motif.Params{
		StitchHeight: 24,
		StitchWidth:  24,
	})

	fmt.Println("clusters:", r.ClustersPerSide())
	fmt.Println("anchor type:", r.Sides[motif.Top].Anchors[0].Type)
	// Output:
	// clusters: 0
	// anchor type: center_ring
}
