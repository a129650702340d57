// Package cli implements the crocheo command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/pkg/buildinfo"
	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/config"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "crocheo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the standard config file location.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "crocheo",
		Short:        "Crocheo compiles granny-square motifs into charts and instructions",
		Long:         `Crocheo is a CLI tool for designing granny-square crochet motifs: it compiles round geometry, renders schematic charts, and writes row-by-row instructions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/crocheo/config.toml)")

	// Register all subcommands
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.instructionsCommand())
	root.AddCommand(c.designCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and registers any custom palettes.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.RegisterPalettes(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/crocheo/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// applyConfigDefaults layers config-file defaults under flags the user did
// not set. Flags always win; the config file only fills the gaps.
func applyConfigDefaults(cmd *cobra.Command, cfg config.Config, opts *pipeline.Options) {
	changed := cmd.Flags().Changed

	if !changed("rounds") && cfg.Defaults.Rounds > 0 {
		opts.Rounds = cfg.Defaults.Rounds
	}
	if !changed("foundation-radius") && cfg.Defaults.FoundationRadius > 0 {
		opts.FoundationRadius = cfg.Defaults.FoundationRadius
	}
	if !changed("spacing") && cfg.Defaults.Spacing > 0 {
		opts.Spacing = cfg.Defaults.Spacing
	}
	if !changed("stitch-height") && cfg.Defaults.StitchHeight > 0 {
		opts.StitchHeight = cfg.Defaults.StitchHeight
	}
	if !changed("stitch-width") && cfg.Defaults.StitchWidth > 0 {
		opts.StitchWidth = cfg.Defaults.StitchWidth
	}
	if !changed("pitch") && cfg.Defaults.Pitch != "" {
		opts.Pitch = cfg.Defaults.Pitch
	}
	if f := cmd.Flags().Lookup("palette"); f != nil && !f.Changed && cfg.Defaults.Palette != "" {
		opts.Palette = cfg.Defaults.Palette
	}
	if f := cmd.Flags().Lookup("color-mode"); f != nil && !f.Changed && cfg.Defaults.ColorMode != "" {
		opts.ColorMode = cfg.Defaults.ColorMode
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
