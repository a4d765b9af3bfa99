package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/quantity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != DefaultTheme {
		t.Errorf("expected theme %s, got %s", DefaultTheme, cfg.Theme)
	}
	if cfg.Precision <= 0 {
		t.Error("precision should be positive")
	}
	if cfg.Plot.Points < 2 {
		t.Error("sweep needs at least two points")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sciunits.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "ocean"
	cfg.Precision = 3
	cfg.Presets = map[string]Preset{
		"lab": {Quantity: "time", Converter: "Amount of Substance from Catalytic Activity", Left: "5 min", Right: "1 µkat"},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Theme != "ocean" || loaded.Precision != 3 {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if loaded.Presets["lab"].Right != "1 µkat" {
		t.Errorf("preset not preserved: %+v", loaded.Presets)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("precision: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Precision)
	}
	if cfg.Theme != DefaultTheme || cfg.Plot.Width != DefaultPlotWidth {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		if got := cfg.SlogLevel(); got != tt.expected {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p, ok := GetPreset("enzyme")
	if !ok {
		t.Fatal("expected preset enzyme")
	}
	if p.Left != "2 kat" {
		t.Errorf("expected left 2 kat, got %s", p.Left)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestConfig_PresetOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Presets = map[string]Preset{"enzyme": {Left: "4 kat"}}

	p, ok := cfg.Preset("enzyme")
	if !ok || p.Left != "4 kat" {
		t.Errorf("user preset should win, got %+v", p)
	}
	if _, ok := cfg.Preset("battery"); !ok {
		t.Error("builtin presets should still resolve")
	}

	names := cfg.PresetNames()
	if len(names) != len(Presets) {
		t.Errorf("expected %d names, got %v", len(Presets), names)
	}
}

func TestBuiltinPresetsResolve(t *testing.T) {
	cat := converter.Default()

	for _, name := range ListPresets() {
		p, _ := GetPreset(name)
		conv, left, right, err := p.Resolve(cat)
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if _, err := conv.Compute(left, right); err != nil {
			t.Errorf("preset %s: compute: %v", name, err)
		}
	}
}

func TestPresetResolve_Enzyme(t *testing.T) {
	p, _ := GetPreset("enzyme")
	conv, left, right, err := p.Resolve(converter.Default())
	if err != nil {
		t.Fatal(err)
	}
	v, err := conv.Compute(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if v.Unit() != quantity.Mole || v.Magnitude() != 6 {
		t.Errorf("expected 6 mol, got %s", v)
	}
}

func TestPresetResolve_HeatingIsTemperatureRise(t *testing.T) {
	p, _ := GetPreset("heating")
	conv, left, right, err := p.Resolve(converter.Default())
	if err != nil {
		t.Fatal(err)
	}
	if right.Unit().Offset() != 0 {
		t.Errorf("heating rise should use a linear unit, got %s", right.Unit())
	}
	v, err := conv.Compute(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if v.Unit() != quantity.Joule || math.Abs(v.Magnitude()-84000) > 1e-6 {
		t.Errorf("expected 84000 J, got %s", v)
	}
}

func TestPresetResolve_Errors(t *testing.T) {
	cat := converter.Default()
	tests := []Preset{
		{Quantity: "nothing", Converter: "x", Left: "1 s", Right: "1 s"},
		{Quantity: "time", Converter: "Nope", Left: "1 s", Right: "1 s"},
		{Quantity: "catalytic-activity", Converter: "Amount of Substance from Time", Left: "bad", Right: "1 s"},
		{Quantity: "catalytic-activity", Converter: "Amount of Substance from Time", Left: "1 kat", Right: "1 parsec"},
	}
	for i, p := range tests {
		if _, _, _, err := p.Resolve(cat); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
