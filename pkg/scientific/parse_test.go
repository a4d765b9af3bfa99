package scientific

import (
	"testing"

	"github.com/san-kum/sciunits/pkg/quantity"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Value
	}{
		{"2 kat", New(2, quantity.Katal)},
		{"3 s", New(3, quantity.Second)},
		{"  -40 °F ", New(-40, quantity.Fahrenheit)},
		{"3.5e-3 mol", New(3.5e-3, quantity.Mole)},
		{"12 nautical mile", New(12, quantity.NauticalMile)},
		{"1 Celsius", New(1, quantity.Celsius)},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.expected)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "2", "kat", "two kat", "2 parsec"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}
