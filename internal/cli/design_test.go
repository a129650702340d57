package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
)

func newTestDesignModel(t *testing.T) designModel {
	t.Helper()
	opts := pipeline.Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	return newDesignModel(opts, "pattern.json")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDesignModelAdjustRounds(t *testing.T) {
	m := newTestDesignModel(t)
	before := m.opts.Rounds

	next, _ := m.Update(keyMsg("l"))
	m = next.(designModel)

	if m.opts.Rounds != before+1 {
		t.Errorf("Rounds = %d, want %d", m.opts.Rounds, before+1)
	}
	if m.preview.RoundCount() != before+1 {
		t.Errorf("preview not recompiled: %d rounds", m.preview.RoundCount())
	}
}

func TestDesignModelRoundsLowerBound(t *testing.T) {
	m := newTestDesignModel(t)
	for i := 0; i < pipeline.MaxRounds+5; i++ {
		next, _ := m.Update(keyMsg("h"))
		m = next.(designModel)
	}
	if m.opts.Rounds != 1 {
		t.Errorf("Rounds = %d, want 1 after repeated decrements", m.opts.Rounds)
	}
}

func TestDesignModelPitchToggle(t *testing.T) {
	m := newTestDesignModel(t)
	m.cursor = fieldPitch

	next, _ := m.Update(keyMsg("l"))
	m = next.(designModel)
	if m.opts.Pitch != "proportional" {
		t.Errorf("Pitch = %q, want proportional", m.opts.Pitch)
	}

	next, _ = m.Update(keyMsg("l"))
	m = next.(designModel)
	if m.opts.Pitch != "fixed" {
		t.Errorf("Pitch = %q, want fixed", m.opts.Pitch)
	}
}

func TestDesignModelCursorBounds(t *testing.T) {
	m := newTestDesignModel(t)

	next, _ := m.Update(keyMsg("k"))
	m = next.(designModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	for i := 0; i < fieldCount+3; i++ {
		next, _ = m.Update(keyMsg("j"))
		m = next.(designModel)
	}
	if m.cursor != fieldCount-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, fieldCount-1)
	}
}

func TestCycle(t *testing.T) {
	values := []string{"a", "b", "c"}
	if got := cycle(values, "a", 1); got != "b" {
		t.Errorf("cycle forward = %q, want b", got)
	}
	if got := cycle(values, "a", -1); got != "c" {
		t.Errorf("cycle wraps backward = %q, want c", got)
	}
	if got := cycle(nil, "x", 1); got != "x" {
		t.Errorf("cycle empty = %q, want x", got)
	}
}
