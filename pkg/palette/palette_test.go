package palette

import "testing"

func TestByName(t *testing.T) {
	p, err := ByName("classic")
	if err != nil {
		t.Fatalf("ByName error: %v", err)
	}
	if len(p.Colors) == 0 {
		t.Error("classic palette has no colors")
	}

	// Empty name resolves to the default.
	p, err = ByName("")
	if err != nil {
		t.Fatalf("ByName(\"\") error: %v", err)
	}
	if p.Name != DefaultName {
		t.Errorf("default palette = %q, want %q", p.Name, DefaultName)
	}

	if _, err := ByName("does-not-exist"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestRegister(t *testing.T) {
	if err := Register(Palette{Name: "custom", Colors: []string{"#123456"}}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	p, err := ByName("custom")
	if err != nil {
		t.Fatalf("ByName after Register: %v", err)
	}
	if p.Colors[0] != "#123456" {
		t.Errorf("registered color = %q", p.Colors[0])
	}

	if err := Register(Palette{Name: "", Colors: []string{"#fff"}}); err == nil {
		t.Error("expected error for unnamed palette")
	}
	if err := Register(Palette{Name: "empty"}); err == nil {
		t.Error("expected error for colorless palette")
	}
}

func TestSequentialMode(t *testing.T) {
	m := Mapper{
		Palette: Palette{Name: "t", Colors: []string{"a", "b", "c"}},
		Mode:    ModeSequential,
	}
	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	for id, w := range want {
		if got := m.ColorFor(id); got != w {
			t.Errorf("ColorFor(%d) = %q, want %q", id, got, w)
		}
	}
}

func TestReflectedMode(t *testing.T) {
	m := Mapper{
		Palette: Palette{Name: "t", Colors: []string{"a", "b", "c", "d"}},
		Mode:    ModeReflected,
	}
	// Period 2k−2 = 6: forward a b c d, then back through c b, repeat.
	want := []string{"a", "b", "c", "d", "c", "b", "a", "b", "c", "d"}
	for id, w := range want {
		if got := m.ColorFor(id); got != w {
			t.Errorf("ColorFor(%d) = %q, want %q", id, got, w)
		}
	}
}

func TestSingleColorPalette(t *testing.T) {
	m := Mapper{Palette: Palette{Name: "t", Colors: []string{"x"}}, Mode: ModeReflected}
	for id := 0; id < 5; id++ {
		if got := m.ColorFor(id); got != "x" {
			t.Errorf("ColorFor(%d) = %q, want x", id, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeSequential {
		t.Errorf("ParseMode(\"\") = %v, %v", m, err)
	}
	if m, err := ParseMode("reflected"); err != nil || m != ModeReflected {
		t.Errorf("ParseMode(reflected) = %v, %v", m, err)
	}
	if _, err := ParseMode("zigzag"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
