package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/pkg/motif"
	"github.com/sunnyyao/crocheo-blog/pkg/palette"
	"github.com/sunnyyao/crocheo-blog/pkg/pattern"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

// designCommand creates the design command, an interactive parameter
// controller with a live stats preview.
func (c *CLI) designCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design a pattern interactively",
		Long: `Design opens an interactive controller for the build parameters:
round count, stitch dimensions, pitch policy, palette, and color mode.
The stats preview recompiles on every change; press s to save the pattern.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Rounds:           cfg.Defaults.Rounds,
				FoundationRadius: cfg.Defaults.FoundationRadius,
				Spacing:          cfg.Defaults.Spacing,
				StitchHeight:     cfg.Defaults.StitchHeight,
				StitchWidth:      cfg.Defaults.StitchWidth,
				Pitch:            cfg.Defaults.Pitch,
				Palette:          cfg.Defaults.Palette,
				ColorMode:        cfg.Defaults.ColorMode,
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			model := newDesignModel(opts, output)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			m := final.(designModel)
			if m.saved {
				printSuccess("Saved pattern")
				printStats(m.preview.RoundCount(), m.preview.StitchCount(), false)
				printFile(m.output)
				printNextStep("Render a chart", "crocheo render "+m.output)
			}
			return m.err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "pattern.json", "output file for saved patterns")

	return cmd
}

// =============================================================================
// designModel - Interactive parameter controller
// =============================================================================

// Parameter rows, in display order.
const (
	fieldRounds = iota
	fieldStitchHeight
	fieldStitchWidth
	fieldPitch
	fieldPalette
	fieldColorMode
	fieldCount
)

var fieldNames = [fieldCount]string{
	"Rounds",
	"Stitch height",
	"Stitch width",
	"Pitch policy",
	"Palette",
	"Color mode",
}

// designModel is the bubbletea model for the design command.
type designModel struct {
	opts    pipeline.Options
	cursor  int
	preview pattern.Pattern
	output  string
	saved   bool
	err     error
}

func newDesignModel(opts pipeline.Options, output string) designModel {
	m := designModel{opts: opts, output: output}
	m.recompile()
	return m
}

// recompile rebuilds the preview pattern from the current parameters.
// The compiler starts over from the foundation round on every change.
func (m *designModel) recompile() {
	p, err := pipeline.Compile(m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.preview = p
}

func (m designModel) Init() tea.Cmd {
	return nil
}

func (m designModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < fieldCount-1 {
			m.cursor++
		}

	case "left", "h":
		m.adjust(-1)
		m.recompile()

	case "right", "l":
		m.adjust(1)
		m.recompile()

	case "s", "enter":
		if m.err == nil {
			if err := pattern.WriteFile(m.preview, m.output); err != nil {
				m.err = err
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// adjust moves the selected parameter one step in the given direction.
func (m *designModel) adjust(dir int) {
	switch m.cursor {
	case fieldRounds:
		m.opts.Rounds = clamp(m.opts.Rounds+dir, 1, pipeline.MaxRounds)
	case fieldStitchHeight:
		m.opts.StitchHeight = float64(clamp(int(m.opts.StitchHeight)+2*dir, 4, 80))
	case fieldStitchWidth:
		m.opts.StitchWidth = float64(clamp(int(m.opts.StitchWidth)+2*dir, 4, 80))
	case fieldPitch:
		if m.opts.Pitch == motif.PitchFixed {
			m.opts.Pitch = motif.PitchProportional
		} else {
			m.opts.Pitch = motif.PitchFixed
		}
	case fieldPalette:
		m.opts.Palette = cycle(palette.Names(), m.opts.Palette, dir)
	case fieldColorMode:
		if m.opts.ColorMode == string(palette.ModeSequential) {
			m.opts.ColorMode = string(palette.ModeReflected)
		} else {
			m.opts.ColorMode = string(palette.ModeSequential)
		}
	}
}

func (m designModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("crocheo design") + "\n\n")

	for i := 0; i < fieldCount; i++ {
		marker := "  "
		nameStyle := listNormalStyle
		if i == m.cursor {
			marker = listSelectedStyle.Render("> ")
			nameStyle = listSelectedStyle
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			nameStyle.Render(fmt.Sprintf("%-14s", fieldNames[i])),
			StyleValue.Render(m.fieldValue(i))))
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(StyleWarning.Render("! "+m.err.Error()) + "\n")
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %d rounds · %d dc · %d ch",
			m.preview.RoundCount(),
			totalDoubleCrochets(m.preview),
			totalChains(m.preview))) + "\n")
	}

	b.WriteString("\n" + StyleDim.Render("↑/↓ select · ←/→ adjust · s save · q quit") + "\n")
	return b.String()
}

func (m designModel) fieldValue(field int) string {
	switch field {
	case fieldRounds:
		return fmt.Sprintf("%d", m.opts.Rounds)
	case fieldStitchHeight:
		return fmt.Sprintf("%.0f", m.opts.StitchHeight)
	case fieldStitchWidth:
		return fmt.Sprintf("%.0f", m.opts.StitchWidth)
	case fieldPitch:
		return m.opts.Pitch
	case fieldPalette:
		return m.opts.Palette
	case fieldColorMode:
		return m.opts.ColorMode
	}
	return ""
}

// List styles shared with future interactive views.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Helpers
// =============================================================================

func totalDoubleCrochets(p pattern.Pattern) int {
	n := 0
	for _, r := range p.Rounds {
		n += r.DoubleCrochets()
	}
	return n
}

func totalChains(p pattern.Pattern) int {
	n := 0
	for _, r := range p.Rounds {
		n += r.Chains()
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cycle steps through values by dir, wrapping at both ends.
func cycle(values []string, current string, dir int) string {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(values)) % len(values)
	return values[idx]
}
