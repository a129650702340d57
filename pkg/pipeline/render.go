package pipeline

import (
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
	"github.com/sunnyyao/crocheo-blog/pkg/render"
)

// RenderArtifacts renders the pattern in every requested format.
// The returned map is keyed by format name.
func RenderArtifacts(p pattern.Pattern, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	chartOpts := []render.Option{render.WithPalette(opts.Mapper())}
	if opts.Outline {
		chartOpts = append(chartOpts, render.WithOutline())
	}
	if opts.ShowAnchors {
		chartOpts = append(chartOpts, render.WithAnchorLines())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderSVG(p.Rounds, chartOpts...)
		case FormatPNG:
			data, err := render.RenderPNG(p.Rounds, chartOpts...)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
			}
			artifacts[format] = data
		case FormatJSON:
			data, err := render.RenderJSON(p)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			artifacts[format] = data
		case FormatText:
			artifacts[format] = []byte(instructions.Render(p.Rounds))
		default:
			// Formats were already validated, so reaching this branch means a
			// format constant exists without a matching sink.
			return nil, errors.New(errors.ErrCodeUnsupported, "no sink for format %q", format)
		}
	}
	return artifacts, nil
}
