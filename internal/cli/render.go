package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

// renderCommand creates the render command.
// With a pattern file argument it renders that pattern; without one it
// compiles from flags first.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts       pipeline.Options
		formatsStr string
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [pattern.json]",
		Short: "Render a pattern as a chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg, &opts)
			opts.Formats = parseFormats(formatsStr)

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var artifacts map[string][]byte
			var cached bool

			sp := newSpinnerWithContext(cmd.Context(), "Rendering chart...")
			sp.Start()
			if len(args) == 1 {
				p, err := pattern.ReadFile(args[0])
				if err != nil {
					sp.Stop()
					return err
				}
				artifacts, cached, err = runner.RenderWithCacheInfo(cmd.Context(), p, opts)
				if err != nil {
					sp.Stop()
					return err
				}
				if output == "" {
					output = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				}
			} else {
				result, err := runner.Execute(cmd.Context(), opts)
				if err != nil {
					sp.Stop()
					return err
				}
				artifacts = result.Artifacts
				cached = result.CacheInfo.RenderHit
				if output == "" {
					output = "motif"
				}
			}
			sp.Stop()

			base := strings.TrimSuffix(output, filepath.Ext(output))
			printSuccess("Rendered %d format(s)", len(artifacts))
			if cached {
				printDetail("All artifacts served from cache")
			}
			for _, format := range opts.Formats {
				path := fmt.Sprintf("%s.%s", base, extensionFor(format))
				if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Rounds, "rounds", "r", pipeline.DefaultRounds, "number of rounds when no pattern file is given")
	cmd.Flags().Float64Var(&opts.FoundationRadius, "foundation-radius", pipeline.DefaultFoundationRadius, "circumradius of the foundation round")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", pipeline.DefaultSpacing, "circumradius increment per round")
	cmd.Flags().Float64Var(&opts.StitchHeight, "stitch-height", pipeline.DefaultStitchHeight, "double-crochet height in chart units")
	cmd.Flags().Float64Var(&opts.StitchWidth, "stitch-width", pipeline.DefaultStitchWidth, "double-crochet width in chart units")
	cmd.Flags().StringVar(&opts.Pitch, "pitch", "", "stitch pitch policy: fixed (default), proportional")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, text (comma-separated)")
	cmd.Flags().StringVar(&opts.Palette, "palette", "", "color palette (default from config, else classic)")
	cmd.Flags().StringVar(&opts.ColorMode, "color-mode", "", "round color assignment: sequential (default), reflected")
	cmd.Flags().BoolVar(&opts.ShowAnchors, "anchors", false, "draw anchor connection lines")
	cmd.Flags().BoolVar(&opts.Outline, "outline", false, "draw round outlines")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base path")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stage cache")

	return cmd
}

// extensionFor maps a format to its file extension.
func extensionFor(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}
