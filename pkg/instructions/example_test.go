package instructions_test

import (
	"fmt"

	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

func ExampleSteps() {
	rounds := motif.Build(
		[]float64{30, 64, 98},
		geometry.V(0, 0),
		24, 24,
		motif.FixedPitch{},
	)

	for _, s := range instructions.Steps(rounds) {
		fmt.Printf("round %d displayed as %d\n", s.RoundID, s.Display)
	}
	// Output:
	// round 1 displayed as 2
	// round 2 displayed as 3
}
