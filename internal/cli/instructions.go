package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

// instructionsCommand creates the instructions command.
// It prints the written crochet instructions for a pattern.
func (c *CLI) instructionsCommand() *cobra.Command {
	var (
		opts    pipeline.Options
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "instructions [pattern.json]",
		Short: "Write row-by-row instructions for a pattern",
		Args:  cobra.MaximumNArgs(1),
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

			var p pattern.Pattern
			if len(args) == 1 {
				p, err = pattern.ReadFile(args[0])
			} else {
				p, err = runner.Compile(cmd.Context(), opts)
			}
			if err != nil {
				return err
			}

			if asJSON {
				steps, err := runner.Steps(cmd.Context(), p)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(steps, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(instructions.Render(p.Rounds))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Rounds, "rounds", "r", pipeline.DefaultRounds, "number of rounds when no pattern file is given")
	cmd.Flags().StringVar(&opts.Pitch, "pitch", "", "stitch pitch policy: fixed (default), proportional")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print structured steps as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stage cache")

	return cmd
}
