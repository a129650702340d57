package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// serve command uses this to keep the API's cache entries separate from the
// local CLI cache when both share a backend.
//
// Example usage:
//
//	serverKeyer := NewScopedKeyer(NewDefaultKeyer(), "srv:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PatternKey generates a prefixed key for compiled-pattern caching.
func (k *ScopedKeyer) PatternKey(paramsHash string) string {
	return k.prefix + k.inner.PatternKey(paramsHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(patternHash, opts)
}

// StepsKey generates a prefixed key for instruction-step caching.
func (k *ScopedKeyer) StepsKey(patternHash string) string {
	return k.prefix + k.inner.StepsKey(patternHash)
}
