// Package instructions projects a compiled round list into human-readable
// crochet pattern steps.
//
// The generator reads cluster counts from the rounds themselves, never from
// the round id, so its arithmetic cannot drift from the compiler's growth
// rule. Displayed round numbers follow one convention everywhere: displayed
// number = structural id + 1, with the foundation ring displayed as round 1.
//
// The generator assumes its input came from a valid compiler run and does
// not re-validate cluster counts.
package instructions

import (
	"fmt"
	"strings"

	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

// Step is one pattern instruction, covering a single round.
type Step struct {
	RoundID    int    `json:"round_id"`
	Display    int    `json:"display"`
	SideGroups int    `json:"side_groups"`
	Text       string `json:"text"`
}

// Preamble returns the foundation-ring instruction, displayed as round 1.
// It is not part of Steps because the foundation round contains no stitches.
func Preamble() string {
	return "Round 1: ch 4 and join with a sl st into the first chain to form the center ring."
}

// Steps generates one instruction per round after the foundation, in round
// order.
func Steps(rounds []motif.Round) []Step {
	steps := make([]Step, 0, len(rounds))
	for _, r := range rounds {
		if r.ID == 0 {
			continue
		}
		steps = append(steps, stepFor(r))
	}
	return steps
}

// Render produces the full pattern text: the foundation preamble (when the
// round list includes the foundation) followed by one line per step.
func Render(rounds []motif.Round) string {
	var b strings.Builder
	if len(rounds) > 0 && rounds[0].ID == 0 {
		b.WriteString(Preamble())
		b.WriteString("\n")
	}
	for _, s := range Steps(rounds) {
		b.WriteString(s.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// stepFor builds the instruction for one growth round.
func stepFor(r motif.Round) Step {
	display := r.ID + 1

	if r.ID == 1 {
		return Step{
			RoundID: r.ID,
			Display: display,
			Text: fmt.Sprintf("Round %d: ch 3 (counts as dc), 2 dc into the ring, ch 2, "+
				"*3 dc into the ring, ch 2; repeat from * 2 more times, "+
				"join with a sl st to the top of the ch 3.", display),
		}
	}

	// Counted from the round's own structure, not reconstructed from the id.
	sideGroups := r.ClustersPerSide() - 1

	word := "spaces"
	if sideGroups == 1 {
		word = "space"
	}
	text := fmt.Sprintf("Round %d: sl st into a corner space, ch 3 (counts as dc), "+
		"2 dc in the same space, ch 2, 3 dc in the same space to turn the corner. "+
		"Along each side work ch 1, 3 dc into each of the %d side %s, "+
		"then ch 1, (3 dc, ch 2, 3 dc) in the next corner space. "+
		"Repeat around and join with a sl st to the top of the ch 3.",
		display, sideGroups, word)

	return Step{
		RoundID:    r.ID,
		Display:    display,
		SideGroups: sideGroups,
		Text:       text,
	}
}
