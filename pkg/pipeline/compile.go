package pipeline

import (
	"encoding/json"

	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

// Compile builds the pattern described by the options. It has no caching;
// callers that want cached compilation go through Runner.
func Compile(opts Options) (pattern.Pattern, error) {
	if err := opts.ValidateForCompile(); err != nil {
		return pattern.Pattern{}, err
	}
	p, err := pattern.Compile(opts.PatternParams())
	if err != nil {
		return pattern.Pattern{}, errors.Wrap(errors.ErrCodeInvalidParams, err, "compile pattern")
	}
	return p, nil
}

// paramsHash returns the content hash of the compile-relevant parameters.
// It determines the pattern cache key: any parameter change is a new key,
// so a cached pattern is never partially rebuilt.
func paramsHash(opts Options) string {
	data, _ := json.Marshal(opts.PatternParams())
	return cache.Hash(data)
}
