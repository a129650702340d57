package cli

import (
	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

// compileCommand creates the compile command.
// It builds the motif rounds and writes the pattern document to disk.
func (c *CLI) compileCommand() *cobra.Command {
	var (
		opts    pipeline.Options
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a granny-square pattern to a JSON document",
		Long: `Compile builds the full round structure for a granny square: the
foundation ring plus one worked round per requested round, each with its
corner chains, clusters, and anchor points. The result is written as a
pattern document that render and instructions can consume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg, &opts)

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			sp := newSpinnerWithContext(cmd.Context(), "Compiling pattern...")
			sp.Start()
			p, hit, err := runner.CompileWithCacheInfo(cmd.Context(), opts)
			sp.Stop()
			if err != nil {
				return err
			}

			if err := pattern.WriteFile(p, output); err != nil {
				return err
			}

			printSuccess("Compiled %d rounds", p.RoundCount())
			printStats(p.RoundCount(), p.StitchCount(), hit)
			printFile(output)
			printNextStep("Render a chart", "crocheo render "+output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Rounds, "rounds", "r", pipeline.DefaultRounds, "number of rounds including the foundation ring")
	cmd.Flags().Float64Var(&opts.FoundationRadius, "foundation-radius", pipeline.DefaultFoundationRadius, "circumradius of the foundation round")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", pipeline.DefaultSpacing, "circumradius increment per round")
	cmd.Flags().Float64Var(&opts.StitchHeight, "stitch-height", pipeline.DefaultStitchHeight, "double-crochet height in chart units")
	cmd.Flags().Float64Var(&opts.StitchWidth, "stitch-width", pipeline.DefaultStitchWidth, "double-crochet width in chart units")
	cmd.Flags().StringVar(&opts.Pitch, "pitch", "", "stitch pitch policy: fixed (default), proportional")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompile even if a cached pattern exists")
	cmd.Flags().StringVarP(&output, "output", "o", "pattern.json", "output file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stage cache")

	return cmd
}
