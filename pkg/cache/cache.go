// Package cache provides stage caching for the pattern pipeline.
//
// Compiled patterns, rendered artifacts, and generated instruction steps are
// cached separately, keyed by content hashes of their inputs. Three backends
// are provided:
//   - FileCache: directory-based cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per stage. Compiled patterns are deterministic in their
// parameters, so the TTLs exist to bound disk usage, not staleness.
const (
	// TTLPattern is the lifetime of cached compiled patterns.
	TTLPattern = 30 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 30 * 24 * time.Hour

	// TTLSteps is the lifetime of cached instruction steps.
	TTLSteps = 30 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render options that contribute to an artifact
// cache key. Two renders with the same pattern but different options must
// not share a cache entry.
type ArtifactKeyOpts struct {
	Format      string
	Palette     string
	ColorMode   string
	ShowAnchors bool
	Outline     bool
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// PatternKey generates a key for a compiled pattern from the hash of
	// its build parameters.
	PatternKey(paramsHash string) string

	// ArtifactKey generates a key for a rendered artifact from the hash of
	// the compiled pattern and the render options.
	ArtifactKey(patternHash string, opts ArtifactKeyOpts) string

	// StepsKey generates a key for generated instruction steps.
	StepsKey(patternHash string) string
}

// DefaultKeyer is the standard key generation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PatternKey generates a key for a compiled pattern.
func (DefaultKeyer) PatternKey(paramsHash string) string {
	return hashKey("pattern", paramsHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", patternHash, opts)
}

// StepsKey generates a key for instruction steps.
func (DefaultKeyer) StepsKey(patternHash string) string {
	return hashKey("steps", patternHash)
}
