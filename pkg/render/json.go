package render

import (
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
)

// RenderJSON renders the pattern document as indented JSON.
// It is the same encoding pattern files use, so the output can be read back
// with pattern.Unmarshal.
func RenderJSON(p pattern.Pattern) ([]byte, error) {
	return pattern.Marshal(p)
}
