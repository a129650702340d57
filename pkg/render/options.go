package render

import "github.com/sunnyyao/crocheo-blog/pkg/palette"

// Option configures chart rendering.
type Option func(*config)

type config struct {
	mapper      palette.Mapper
	outline     bool
	anchorLines bool
	margin      float64
	scale       float64
}

// WithPalette sets the palette mapper used to color each round.
func WithPalette(m palette.Mapper) Option {
	return func(c *config) { c.mapper = m }
}

// WithOutline draws the square outline of each round behind its stitches.
func WithOutline() Option {
	return func(c *config) { c.outline = true }
}

// WithAnchorLines draws a line from each cluster to the anchor it works into.
func WithAnchorLines() Option {
	return func(c *config) { c.anchorLines = true }
}

// WithMargin sets the whitespace around the chart in chart units (default 24).
func WithMargin(m float64) Option {
	return func(c *config) { c.margin = m }
}

// WithScale sets the raster scale factor for PNG output (default 2.0).
func WithScale(s float64) Option {
	return func(c *config) { c.scale = s }
}

func newConfig(opts ...Option) config {
	classic, _ := palette.ByName(palette.DefaultName)
	c := config{
		mapper: palette.Mapper{Palette: classic, Mode: palette.ModeSequential},
		margin: 24,
		scale:  2.0,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
