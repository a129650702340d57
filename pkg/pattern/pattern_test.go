package pattern

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/geometry"
	"github.com/sunnyyao/crocheo-blog/pkg/motif"
)

func testPattern(t *testing.T) Pattern {
	t.Helper()
	p, err := Compile(Params{
		Radii:        motif.RadiiFromSpacing(3, 30, 34),
		Center:       geometry.V(200, 200),
		StitchHeight: 24,
		StitchWidth:  24,
		Pitch:        motif.PitchFixed,
	})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return p
}

func TestCompile(t *testing.T) {
	p := testPattern(t)
	if p.RoundCount() != 3 {
		t.Errorf("RoundCount = %d, want 3", p.RoundCount())
	}
	// Round 1: 12 dc + 8 ch; round 2: 24 dc + 8 ch.
	if got := p.StitchCount(); got != 52 {
		t.Errorf("StitchCount = %d, want 52", got)
	}
}

func TestCompileInvalidPitch(t *testing.T) {
	_, err := Compile(Params{Radii: []float64{30}, Pitch: "banana"})
	if err == nil {
		t.Error("expected error for unknown pitch policy")
	}
}

func TestCompileCanonicalizesPitch(t *testing.T) {
	p, err := Compile(Params{Radii: []float64{30}})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if p.Params.Pitch != motif.PitchFixed {
		t.Errorf("Pitch = %q, want %q", p.Params.Pitch, motif.PitchFixed)
	}
}

func TestRoundTrip(t *testing.T) {
	p := testPattern(t)

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(p, got) {
		t.Error("round trip changed the pattern")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	p := testPattern(t)
	a, _ := Marshal(p)
	b, _ := Marshal(p)
	if !bytes.Equal(a, b) {
		t.Error("Marshal is not deterministic")
	}
}

func TestFileRoundTrip(t *testing.T) {
	p := testPattern(t)
	path := filepath.Join(t.TempDir(), "pattern.json")

	if err := WriteFile(p, path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !reflect.DeepEqual(p, got) {
		t.Error("file round trip changed the pattern")
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
