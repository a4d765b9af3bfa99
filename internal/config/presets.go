package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

// Preset is a named converter computation.
type Preset struct {
	Quantity  string `yaml:"quantity"`
	Converter string `yaml:"converter"`
	Left      string `yaml:"left"`
	Right     string `yaml:"right"`
}

var Presets = map[string]Preset{
	"enzyme": {
		Quantity: "catalytic-activity", Converter: "Amount of Substance from Time",
		Left: "2 kat", Right: "3 s",
	},
	"assay": {
		Quantity: "catalytic-activity", Converter: "Amount of Substance from Time",
		Left: "150 U", Right: "10 min",
	},
	"battery": {
		Quantity: "electric-current", Converter: "Electric Charge from Time",
		Left: "250 mA", Right: "8 h",
	},
	"kettle": {
		Quantity: "power", Converter: "Energy from Time",
		Left: "2 kW", Right: "3 min",
	},
	"sprint": {
		Quantity: "length", Converter: "Speed from Time",
		Left: "100 m", Right: "9.58 s",
	},
	"tyre": {
		Quantity: "force", Converter: "Pressure from Area",
		Left: "4000 N", Right: "150 cm2",
	},
	"heating": {
		Quantity: "heat-capacity", Converter: "Energy from Temperature",
		Left: "4.2 kJ/K", Right: "20 K",
	},
	"brine": {
		Quantity: "molarity", Converter: "Amount of Substance from Volume",
		Left: "0.5 M", Right: "2 L",
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	seen := make(map[string]bool, len(Presets))
	for name := range Presets {
		seen[name] = true
	}
	return sortedKeys(seen)
}

// Resolve looks up the preset's converter in cat and parses its operands.
func (p Preset) Resolve(cat *converter.Catalog) (*converter.Converter, scientific.Value, scientific.Value, error) {
	q, err := quantity.ParseQuantity(p.Quantity)
	if err != nil {
		return nil, scientific.Value{}, scientific.Value{}, err
	}
	conv, ok := cat.Lookup(q, p.Converter)
	if !ok {
		return nil, scientific.Value{}, scientific.Value{}, fmt.Errorf("no converter %q for %s", p.Converter, q)
	}
	left, err := scientific.Parse(p.Left)
	if err != nil {
		return nil, scientific.Value{}, scientific.Value{}, fmt.Errorf("left operand: %w", err)
	}
	right, err := scientific.Parse(p.Right)
	if err != nil {
		return nil, scientific.Value{}, scientific.Value{}, fmt.Errorf("right operand: %w", err)
	}
	return conv, left, right, nil
}

func sortedKeys(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
