package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/instructions"
	"github.com/sunnyyao/crocheo-blog/pkg/observability"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compile → render → steps pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Compile
	compileStart := time.Now()
	observability.Pipeline().OnCompileStart(ctx, len(opts.EffectiveRadii()))
	p, compileHit, err := r.CompileWithCacheInfo(ctx, opts)
	result.Stats.CompileTime = time.Since(compileStart)
	observability.Pipeline().OnCompileComplete(ctx, p.RoundCount(), p.StitchCount(), result.Stats.CompileTime, err)
	if err != nil {
		return nil, err
	}
	result.Pattern = p
	result.Stats.RoundCount = p.RoundCount()
	result.Stats.StitchCount = p.StitchCount()
	result.CacheInfo.CompileHit = compileHit

	// Compute pattern hash for cache keys and API responses
	if data, err := pattern.Marshal(p); err == nil {
		result.PatternHash = cache.Hash(data)
	}

	r.Logger.Info("compiled pattern",
		"rounds", result.Stats.RoundCount,
		"stitches", result.Stats.StitchCount,
		"duration", result.Stats.CompileTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	// Stage 3: Steps
	stepsStart := time.Now()
	observability.Pipeline().OnStepsStart(ctx, result.Stats.RoundCount)
	steps, stepsHit, err := r.StepsWithCacheInfo(ctx, p, opts)
	result.Stats.StepsTime = time.Since(stepsStart)
	observability.Pipeline().OnStepsComplete(ctx, len(steps), result.Stats.StepsTime, err)
	if err != nil {
		return nil, err
	}
	result.Steps = steps
	result.CacheInfo.StepsHit = stepsHit

	r.Logger.Info("generated instructions",
		"steps", len(steps),
		"duration", result.Stats.StepsTime)

	return result, nil
}

// CompileWithCacheInfo builds the pattern with caching and reports whether
// the result came from cache.
func (r *Runner) CompileWithCacheInfo(ctx context.Context, opts Options) (pattern.Pattern, bool, error) {
	if err := opts.ValidateForCompile(); err != nil {
		return pattern.Pattern{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.PatternKey(paramsHash(opts))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if p, err := pattern.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "pattern")
				return p, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "pattern")
	}

	p, err := Compile(opts)
	if err != nil {
		return pattern.Pattern{}, false, err
	}

	if data, err := pattern.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPattern)
		observability.Cache().OnCacheSet(ctx, "pattern", len(data))
	}

	return p, false, nil
}

// Compile is a convenience wrapper that discards the cache hit info.
func (r *Runner) Compile(ctx context.Context, opts Options) (pattern.Pattern, error) {
	p, _, err := r.CompileWithCacheInfo(ctx, opts)
	return p, err
}

// RenderWithCacheInfo renders artifacts with caching and reports whether all
// of them came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p pattern.Pattern, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	data, err := pattern.Marshal(p)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize pattern for cache key")
	}
	patternHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(patternHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := RenderArtifacts(p, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(patternHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p pattern.Pattern, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// StepsWithCacheInfo generates instruction steps with caching and reports
// whether the result came from cache.
func (r *Runner) StepsWithCacheInfo(ctx context.Context, p pattern.Pattern, opts Options) ([]instructions.Step, bool, error) {
	r.applyLogger(&opts)

	data, err := pattern.Marshal(p)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize pattern for cache key")
	}
	cacheKey := r.Keyer.StepsKey(cache.Hash(data))

	if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var steps []instructions.Step
		if err := json.Unmarshal(cached, &steps); err == nil {
			observability.Cache().OnCacheHit(ctx, "steps")
			return steps, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "steps")

	steps := instructions.Steps(p.Rounds)

	if encoded, err := json.Marshal(steps); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, encoded, cache.TTLSteps)
		observability.Cache().OnCacheSet(ctx, "steps", len(encoded))
	}

	return steps, false, nil
}

// Steps is a convenience wrapper that discards the cache hit info.
func (r *Runner) Steps(ctx context.Context, p pattern.Pattern) ([]instructions.Step, error) {
	steps, _, err := r.StepsWithCacheInfo(ctx, p, Options{})
	return steps, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
