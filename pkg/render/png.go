package render

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

// RenderPNG renders the rounds as a raster chart.
//
// The PNG sink paints the same symbols as the SVG sink directly onto a
// raster canvas, so no external SVG converter is needed. WithScale controls
// the pixel density.
func RenderPNG(rounds []motif.Round, opts ...Option) ([]byte, error) {
	c := newConfig(opts...)
	b := computeBounds(rounds)

	w := int((b.width() + 2*c.margin) * c.scale)
	h := int((b.height() + 2*c.margin) * c.scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.Scale(c.scale, c.scale)
	dc.Translate(c.margin-b.minX, c.margin-b.minY)

	if c.outline {
		for _, r := range rounds {
			paintOutline(dc, r)
		}
	}
	if c.anchorLines {
		for _, r := range rounds {
			paintAnchorLines(dc, rounds, r, c.mapper.ColorFor(r.ID))
		}
	}
	for _, r := range rounds {
		paintRound(dc, r, c.mapper.ColorFor(r.ID))
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paintOutline(dc *gg.Context, r motif.Round) {
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1)
	dc.SetDash(4, 3)
	dc.MoveTo(r.Geo.Corners[0].X, r.Geo.Corners[0].Y)
	for i := 1; i < 4; i++ {
		dc.LineTo(r.Geo.Corners[i].X, r.Geo.Corners[i].Y)
	}
	dc.ClosePath()
	dc.Stroke()
	dc.SetDash()
}

func paintAnchorLines(dc *gg.Context, rounds []motif.Round, r motif.Round, color string) {
	dc.SetHexColor(color)
	dc.SetLineWidth(0.6)
	for _, side := range motif.Sides {
		for _, cl := range r.Sides[side].Clusters {
			pos, ok := resolveAnchor(rounds, cl.Ref)
			if !ok {
				continue
			}
			dc.DrawLine(cl.Center.X, cl.Center.Y, pos.X, pos.Y)
			dc.Stroke()
		}
	}
}

func paintRound(dc *gg.Context, r motif.Round, color string) {
	dc.SetHexColor(color)

	if r.ID == 0 {
		dc.SetLineWidth(2)
		dc.DrawCircle(r.Geo.Center.X, r.Geo.Center.Y, r.Geo.Circumradius*ringScale)
		dc.Stroke()
		return
	}

	for _, side := range motif.Sides {
		s := r.Sides[side]
		for _, ch := range s.CornerChains {
			paintStitch(dc, ch, color)
		}
		for _, cl := range s.Clusters {
			for _, st := range cl.Stitches {
				paintStitch(dc, st, color)
			}
		}
	}
}

func paintStitch(dc *gg.Context, st motif.Stitch, color string) {
	dc.SetHexColor(color)
	switch st.Kind {
	case motif.StitchChain:
		dc.SetLineWidth(1.5)
		dc.DrawCircle(st.Position.X, st.Position.Y, chainRadius)
		dc.Stroke()
	default:
		dc.DrawCircle(st.Position.X, st.Position.Y, dcRadius)
		dc.Fill()
	}
}
