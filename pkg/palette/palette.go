// Package palette maps round ids to display colors.
//
// Color choice is purely presentational: the geometry core never sees a
// palette. Renderers receive a Mapper as injected configuration and key it
// off each round's id.
package palette

import (
	"fmt"
	"sort"
)

// Palette is a named, ordered list of hex colors.
type Palette struct {
	Name   string   `json:"name" toml:"name"`
	Colors []string `json:"colors" toml:"colors"`
}

// Built-in palettes. Additional palettes can be supplied via the config
// file and merged with Register.
var builtins = map[string]Palette{
	"classic": {Name: "classic", Colors: []string{"#d94f4f", "#e8a33d", "#3d8b6e", "#3d5a8b", "#7d4f94"}},
	"meadow":  {Name: "meadow", Colors: []string{"#5a8f3d", "#8fbf5f", "#d9d26e", "#b8803d"}},
	"sunset":  {Name: "sunset", Colors: []string{"#f2c14e", "#f78154", "#b4436c", "#5b2a86"}},
	"ocean":   {Name: "ocean", Colors: []string{"#0b3954", "#087e8b", "#bfd7ea", "#5bc0be"}},
	"mono":    {Name: "mono", Colors: []string{"#222222", "#555555", "#888888", "#bbbbbb"}},
}

// DefaultName is the palette used when none is configured.
const DefaultName = "classic"

// ByName resolves a palette by name.
func ByName(name string) (Palette, error) {
	if name == "" {
		name = DefaultName
	}
	p, ok := builtins[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette: %q (available: %v)", name, Names())
	}
	return p, nil
}

// Register adds or replaces a palette. Palettes from the config file are
// registered at startup, before any rendering.
func Register(p Palette) error {
	if p.Name == "" {
		return fmt.Errorf("palette name is required")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palette %q has no colors", p.Name)
	}
	builtins[p.Name] = p
	return nil
}

// Names lists the available palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Round → Color Assignment
// =============================================================================

// ColorMode selects how round ids index into a palette.
type ColorMode string

// Color assignment modes.
const (
	// ModeSequential cycles through the palette in order, wrapping around.
	ModeSequential ColorMode = "sequential"

	// ModeReflected walks the palette forward then backward, so adjacent
	// rounds never jump from the last color back to the first.
	ModeReflected ColorMode = "reflected"
)

// ParseMode validates a color mode name.
func ParseMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ModeSequential, "":
		return ModeSequential, nil
	case ModeReflected:
		return ModeReflected, nil
	default:
		return "", fmt.Errorf("unknown color mode: %q (must be one of: sequential, reflected)", s)
	}
}

// Mapper assigns a display color to each round id.
type Mapper struct {
	Palette Palette
	Mode    ColorMode
}

// ColorFor returns the color for the given round id.
func (m Mapper) ColorFor(roundID int) string {
	k := len(m.Palette.Colors)
	if k == 0 {
		return "#000000"
	}
	if k == 1 {
		return m.Palette.Colors[0]
	}

	switch m.Mode {
	case ModeReflected:
		period := 2*k - 2
		i := roundID % period
		if i >= k {
			i = period - i
		}
		return m.Palette.Colors[i]
	default:
		return m.Palette.Colors[roundID%k]
	}
}
