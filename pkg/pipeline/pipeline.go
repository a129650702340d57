// Package pipeline provides the core pattern pipeline for crocheo.
//
// This package implements the complete compile → render → steps pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compile: Build the motif rounds from the build parameters
//  2. Render: Generate chart artifacts in various formats (SVG, PNG, JSON, text)
//  3. Steps: Generate written crochet instructions
//
// Each stage can be run independently or as part of the complete pipeline.
// There is no incremental recompute: any parameter change rebuilds the
// pattern from the foundation round, so caching is keyed on the full
// parameter set.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rounds:  4,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
	"github.com/sunnyyao/crocheo-blog/pkg/palette"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultRounds is the number of rounds built when none is requested.
	DefaultRounds = 4

	// MaxRounds caps the round count so a bad request cannot build an
	// absurdly large pattern.
	MaxRounds = 64

	// DefaultFoundationRadius is the circumradius of the foundation round.
	DefaultFoundationRadius = 30.0

	// DefaultSpacing is the circumradius increment per round.
	DefaultSpacing = 34.0

	// DefaultStitchHeight is the default double-crochet height in chart units.
	DefaultStitchHeight = 24.0

	// DefaultStitchWidth is the default double-crochet width in chart units.
	DefaultStitchWidth = 24.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pattern pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Compile options
	Rounds           int       `json:"rounds,omitempty"`
	FoundationRadius float64   `json:"foundation_radius,omitempty"`
	Spacing          float64   `json:"spacing,omitempty"`
	Radii            []float64 `json:"radii,omitempty"` // explicit radii win over Rounds/FoundationRadius/Spacing
	CenterX          float64   `json:"center_x,omitempty"`
	CenterY          float64   `json:"center_y,omitempty"`
	StitchHeight     float64   `json:"stitch_height,omitempty"`
	StitchWidth      float64   `json:"stitch_width,omitempty"`
	Pitch            string    `json:"pitch,omitempty"`
	Refresh          bool      `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Palette     string   `json:"palette,omitempty"`
	ColorMode   string   `json:"color_mode,omitempty"`
	ShowAnchors bool     `json:"show_anchors,omitempty"`
	Outline     bool     `json:"outline,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pattern is the compiled pattern document.
	Pattern pattern.Pattern

	// PatternHash is the content hash of the compiled pattern.
	PatternHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Steps contains the written instructions, one per worked round.
	Steps []instructions.Step

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoundCount  int
	StitchCount int
	CompileTime time.Duration
	RenderTime  time.Duration
	StepsTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CompileHit bool // Whether the compiled pattern came from cache
	RenderHit  bool // Whether all artifacts came from cache
	StepsHit   bool // Whether the instruction steps came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompile(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCompile checks and defaults the build parameters.
func (o *Options) ValidateForCompile() error {
	if len(o.Radii) == 0 {
		if o.Rounds == 0 {
			o.Rounds = DefaultRounds
		}
		if o.Rounds < 0 {
			return errors.New(errors.ErrCodeInvalidParams, "rounds must be positive, got %d", o.Rounds)
		}
		if o.Rounds > MaxRounds {
			return errors.New(errors.ErrCodeInvalidParams, "rounds must be at most %d, got %d", MaxRounds, o.Rounds)
		}
	}
	for i, r := range o.Radii {
		if r <= 0 {
			return errors.New(errors.ErrCodeInvalidParams, "radius %d must be positive, got %v", i, r)
		}
	}
	if o.FoundationRadius == 0 {
		o.FoundationRadius = DefaultFoundationRadius
	}
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.FoundationRadius < 0 || o.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidParams, "foundation radius and spacing must be positive")
	}
	if o.StitchHeight == 0 {
		o.StitchHeight = DefaultStitchHeight
	}
	if o.StitchWidth == 0 {
		o.StitchWidth = DefaultStitchWidth
	}
	if o.StitchHeight < 0 || o.StitchWidth < 0 {
		return errors.New(errors.ErrCodeInvalidParams, "stitch dimensions must be positive")
	}
	if o.Pitch == "" {
		o.Pitch = motif.PitchFixed
	}
	if _, err := motif.PolicyByName(o.Pitch); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPitch, err, "invalid pitch policy")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks and defaults the render parameters.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Palette == "" {
		o.Palette = palette.DefaultName
	}
	if _, err := palette.ByName(o.Palette); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPalette, err, "invalid palette")
	}
	if o.ColorMode == "" {
		o.ColorMode = string(palette.ModeSequential)
	}
	if _, err := palette.ParseMode(o.ColorMode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPalette, err, "invalid color mode")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// EffectiveRadii returns the circumradii the compiler will build, either the
// explicit list or one derived from Rounds, FoundationRadius, and Spacing.
func (o *Options) EffectiveRadii() []float64 {
	if len(o.Radii) > 0 {
		return o.Radii
	}
	return motif.RadiiFromSpacing(o.Rounds, o.FoundationRadius, o.Spacing)
}

// PatternParams returns the pattern build parameters for these options.
func (o *Options) PatternParams() pattern.Params {
	return pattern.Params{
		Radii:        o.EffectiveRadii(),
		Center:       geometry.V(o.CenterX, o.CenterY),
		StitchHeight: o.StitchHeight,
		StitchWidth:  o.StitchWidth,
		Pitch:        o.Pitch,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Palette:     o.Palette,
		ColorMode:   o.ColorMode,
		ShowAnchors: o.ShowAnchors,
		Outline:     o.Outline,
	}
}

// Mapper returns the palette mapper for these options.
// Options must have been validated first.
func (o *Options) Mapper() palette.Mapper {
	p, _ := palette.ByName(o.Palette)
	mode, _ := palette.ParseMode(o.ColorMode)
	return palette.Mapper{Palette: p, Mode: mode}
}
