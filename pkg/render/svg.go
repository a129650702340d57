package render

import (
	"bytes"
	"fmt"

	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

// RenderSVG renders the rounds as a schematic SVG chart.
//
// Each round is drawn in its palette color: the foundation as a center ring,
// every later round as corner-chain and cluster symbols. Double crochets are
// filled circles, chains are open circles. Optional layers add the square
// outlines and anchor connection lines.
func RenderSVG(rounds []motif.Round, opts ...Option) []byte {
	c := newConfig(opts...)
	b := computeBounds(rounds)

	w := b.width() + 2*c.margin
	h := b.height() + 2*c.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		b.minX-c.margin, b.minY-c.margin, w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		b.minX-c.margin, b.minY-c.margin, w, h)

	if c.outline {
		for _, r := range rounds {
			writeOutline(&buf, r)
		}
	}
	if c.anchorLines {
		for _, r := range rounds {
			writeAnchorLines(&buf, rounds, r, c.mapper.ColorFor(r.ID))
		}
	}
	for _, r := range rounds {
		writeRound(&buf, r, c.mapper.ColorFor(r.ID))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeOutline(buf *bytes.Buffer, r motif.Round) {
	fmt.Fprintf(buf, `  <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="none" stroke="#dddddd" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
		r.Geo.Corners[0].X, r.Geo.Corners[0].Y,
		r.Geo.Corners[1].X, r.Geo.Corners[1].Y,
		r.Geo.Corners[2].X, r.Geo.Corners[2].Y,
		r.Geo.Corners[3].X, r.Geo.Corners[3].Y)
}

func writeAnchorLines(buf *bytes.Buffer, rounds []motif.Round, r motif.Round, color string) {
	for _, side := range motif.Sides {
		for _, cl := range r.Sides[side].Clusters {
			pos, ok := resolveAnchor(rounds, cl.Ref)
			if !ok {
				continue
			}
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.6" opacity="0.5"/>`+"\n",
				cl.Center.X, cl.Center.Y, pos.X, pos.Y, color)
		}
	}
}

func writeRound(buf *bytes.Buffer, r motif.Round, color string) {
	fmt.Fprintf(buf, `  <g id="round-%d">`+"\n", r.ID)

	if r.ID == 0 {
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
			r.Geo.Center.X, r.Geo.Center.Y, r.Geo.Circumradius*ringScale, color)
		buf.WriteString("  </g>\n")
		return
	}

	for _, side := range motif.Sides {
		s := r.Sides[side]
		for _, ch := range s.CornerChains {
			writeStitch(buf, ch, color)
		}
		for _, cl := range s.Clusters {
			for _, st := range cl.Stitches {
				writeStitch(buf, st, color)
			}
		}
	}
	buf.WriteString("  </g>\n")
}

func writeStitch(buf *bytes.Buffer, st motif.Stitch, color string) {
	switch st.Kind {
	case motif.StitchChain:
		fmt.Fprintf(buf, `    <circle id="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			st.ID, st.Position.X, st.Position.Y, chainRadius, color)
	default:
		fmt.Fprintf(buf, `    <circle id="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			st.ID, st.Position.X, st.Position.Y, dcRadius, color)
	}
}
