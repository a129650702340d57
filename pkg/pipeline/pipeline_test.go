package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Rounds != DefaultRounds {
		t.Errorf("Rounds = %d, want %d", opts.Rounds, DefaultRounds)
	}
	if opts.FoundationRadius != DefaultFoundationRadius {
		t.Errorf("FoundationRadius = %v, want %v", opts.FoundationRadius, DefaultFoundationRadius)
	}
	if opts.StitchHeight != DefaultStitchHeight || opts.StitchWidth != DefaultStitchWidth {
		t.Error("stitch defaults not applied")
	}
	if opts.Pitch != "fixed" {
		t.Errorf("Pitch = %q, want fixed", opts.Pitch)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Palette != "classic" || opts.ColorMode != "sequential" {
		t.Errorf("palette defaults = %q/%q", opts.Palette, opts.ColorMode)
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestValidateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative rounds", Options{Rounds: -1}, errors.ErrCodeInvalidParams},
		{"too many rounds", Options{Rounds: MaxRounds + 1}, errors.ErrCodeInvalidParams},
		{"non-positive radius", Options{Radii: []float64{30, 0}}, errors.ErrCodeInvalidParams},
		{"unknown pitch", Options{Pitch: "elastic"}, errors.ErrCodeInvalidPitch},
		{"unknown format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"unknown palette", Options{Palette: "neon"}, errors.ErrCodeInvalidPalette},
		{"unknown color mode", Options{ColorMode: "spiral"}, errors.ErrCodeInvalidPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestEffectiveRadii(t *testing.T) {
	opts := Options{Rounds: 3, FoundationRadius: 10, Spacing: 5}
	got := opts.EffectiveRadii()
	want := []float64{10, 15, 20}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("radii[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	explicit := Options{Rounds: 3, Radii: []float64{7, 9}}
	if got := explicit.EffectiveRadii(); len(got) != 2 || got[0] != 7 {
		t.Errorf("explicit radii not honored: %v", got)
	}
}

func TestCompileStandalone(t *testing.T) {
	p, err := Compile(Options{Rounds: 3})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.RoundCount() != 3 {
		t.Errorf("RoundCount = %d, want 3", p.RoundCount())
	}
}

func TestRenderArtifactsFormats(t *testing.T) {
	p, err := Compile(Options{Rounds: 3})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatText}}
	artifacts, err := RenderArtifacts(p, opts)
	if err != nil {
		t.Fatalf("RenderArtifacts: %v", err)
	}

	if !strings.HasPrefix(string(artifacts[FormatSVG]), "<svg") {
		t.Error("svg artifact malformed")
	}
	if _, err := pattern.Unmarshal(artifacts[FormatJSON]); err != nil {
		t.Errorf("json artifact does not parse: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatText]), "Round 1:") {
		t.Error("text artifact missing preamble")
	}
}

func TestRenderArtifactsNoSink(t *testing.T) {
	// A format declared valid without a matching sink must surface as
	// unsupported rather than silently producing an empty artifact.
	ValidFormats["pdf"] = true
	defer delete(ValidFormats, "pdf")

	p, err := Compile(Options{Rounds: 2})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	_, err = RenderArtifacts(p, Options{Formats: []string{"pdf"}})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}

func TestRunnerExecute(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{Rounds: 4, Formats: []string{FormatSVG, FormatText}}
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.RoundCount != 4 {
		t.Errorf("RoundCount = %d, want 4", result.Stats.RoundCount)
	}
	if result.PatternHash == "" {
		t.Error("PatternHash not set")
	}
	if len(result.Artifacts) != 2 {
		t.Errorf("artifact count = %d, want 2", len(result.Artifacts))
	}
	// Rounds 1..3 are worked rounds; the foundation has no step.
	if len(result.Steps) != 3 {
		t.Errorf("step count = %d, want 3", len(result.Steps))
	}
	if result.CacheInfo.CompileHit || result.CacheInfo.RenderHit || result.CacheInfo.StepsHit {
		t.Error("first run should not hit the cache")
	}

	// Second run with identical options hits every stage.
	again, err := runner.Execute(context.Background(), Options{Rounds: 4, Formats: []string{FormatSVG, FormatText}})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !again.CacheInfo.CompileHit || !again.CacheInfo.RenderHit || !again.CacheInfo.StepsHit {
		t.Errorf("second run should hit all stages: %+v", again.CacheInfo)
	}
	if string(again.Artifacts[FormatSVG]) != string(result.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}
}

func TestRunnerRefreshBypassesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	ctx := context.Background()
	if _, err := runner.Execute(ctx, Options{Rounds: 3}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	_, hit, err := runner.CompileWithCacheInfo(ctx, Options{Rounds: 3, Refresh: true})
	if err != nil {
		t.Fatalf("CompileWithCacheInfo: %v", err)
	}
	if hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerParameterChangeRecomputes(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	ctx := context.Background()
	if _, err := runner.Execute(ctx, Options{Rounds: 3}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	_, hit, err := runner.CompileWithCacheInfo(ctx, Options{Rounds: 3, Pitch: "proportional"})
	if err != nil {
		t.Fatalf("CompileWithCacheInfo: %v", err)
	}
	if hit {
		t.Error("changed pitch must not reuse the cached pattern")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	p, err := runner.Compile(context.Background(), Options{Rounds: 2})
	if err != nil {
		t.Fatalf("Compile with null cache: %v", err)
	}
	if p.RoundCount() != 2 {
		t.Errorf("RoundCount = %d, want 2", p.RoundCount())
	}
}
