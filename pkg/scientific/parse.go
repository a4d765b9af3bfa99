package scientific

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/sciunits/pkg/quantity"
)

// Parse reads a value literal of the form "<number> <unit>", e.g. "2 kat",
// "3.5e-3 mol" or "12 nautical mile". The unit must match a registered
// symbol or name exactly (names ignore case).
func Parse(s string) (Value, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Value{}, fmt.Errorf("scientific: value %q needs a magnitude and a unit", s)
	}

	magnitude, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Value{}, fmt.Errorf("scientific: bad magnitude in %q: %w", s, err)
	}

	symbol := strings.Join(fields[1:], " ")
	unit, ok := quantity.Lookup(symbol)
	if !ok {
		return Value{}, fmt.Errorf("scientific: unknown unit %q", symbol)
	}
	return New(magnitude, unit), nil
}
