// Package pattern defines the canonical serialization format for compiled
// motifs. It is used for CLI artifact files, API responses, caching, and
// storage; the format is human-readable JSON with round-trip fidelity.
package pattern

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

// Params are the inputs a pattern was compiled from. They are carried
// alongside the rounds so a serialized pattern is reproducible.
type Params struct {
	Radii        []float64     `json:"radii" bson:"radii"`
	Center       geometry.Vec2 `json:"center" bson:"center"`
	StitchHeight float64       `json:"stitch_height" bson:"stitch_height"`
	StitchWidth  float64       `json:"stitch_width" bson:"stitch_width"`
	Pitch        string        `json:"pitch" bson:"pitch"`
}

// Pattern is a compiled motif: the parameters and the full round list.
type Pattern struct {
	Params Params        `json:"params" bson:"params"`
	Rounds []motif.Round `json:"rounds" bson:"rounds"`
}

// Compile builds a pattern from its parameters. The only validated input is
// the pitch policy name; radii are a caller contract (see the motif
// package).
func Compile(p Params) (Pattern, error) {
	pitch, err := motif.PolicyByName(p.Pitch)
	if err != nil {
		return Pattern{}, err
	}
	p.Pitch = pitch.Name() // canonicalize the empty default
	return Pattern{
		Params: p,
		Rounds: motif.Build(p.Radii, p.Center, p.StitchHeight, p.StitchWidth, pitch),
	}, nil
}

// RoundCount returns the number of compiled rounds.
func (p Pattern) RoundCount() int {
	return len(p.Rounds)
}

// StitchCount returns the total number of stitches across all rounds.
func (p Pattern) StitchCount() int {
	total := 0
	for _, r := range p.Rounds {
		total += r.DoubleCrochets() + r.Chains()
	}
	return total
}

// =============================================================================
// Pattern Serialization API
// =============================================================================

// Marshal converts a pattern to JSON bytes.
func Marshal(p Pattern) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a pattern.
func Unmarshal(data []byte) (Pattern, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes a pattern as JSON to an io.Writer.
func Write(p Pattern, w io.Writer) error {
	return writeTo(p, w)
}

// Read decodes a JSON pattern from an io.Reader.
func Read(r io.Reader) (Pattern, error) {
	return readFrom(r)
}

// WriteFile writes a pattern to a JSON file with 0644 permissions.
func WriteFile(p Pattern, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(p, f)
}

// ReadFile reads a JSON file and returns the decoded pattern.
func ReadFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Pattern{}, errors.New(errors.ErrCodeFileNotFound, "pattern file not found: %s", path)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(p Pattern, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (Pattern, error) {
	var p Pattern
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Pattern{}, fmt.Errorf("decode: %w", err)
	}
	return p, nil
}
