package config

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme       = "cyberpunk"
	DefaultPrecision   = 6
	DefaultLogLevel    = "warn"
	DefaultPlotWidth   = 80
	DefaultPlotHeight  = 15
	DefaultSweepPoints = 50
)

type Config struct {
	Theme     string            `yaml:"theme"`
	Precision int               `yaml:"precision"`
	LogLevel  string            `yaml:"log_level"`
	Plot      PlotConfig        `yaml:"plot"`
	Presets   map[string]Preset `yaml:"presets"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Points int `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Precision: DefaultPrecision,
		LogLevel:  DefaultLogLevel,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			Points: DefaultSweepPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Preset returns a user preset from the config file, falling back to the
// built-in presets.
func (c *Config) Preset(name string) (Preset, bool) {
	if p, ok := c.Presets[name]; ok {
		return p, true
	}
	return GetPreset(name)
}

// PresetNames lists built-in and user presets, sorted.
func (c *Config) PresetNames() []string {
	seen := make(map[string]bool)
	for _, n := range ListPresets() {
		seen[n] = true
	}
	for n := range c.Presets {
		seen[n] = true
	}
	return sortedKeys(seen)
}
