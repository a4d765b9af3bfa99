package quantity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidUnit indicates a unit that cannot be placed in a unit table.
var ErrInvalidUnit = errors.New("quantity: invalid unit")

type table struct {
	byQuantity map[Quantity][]Unit
	canonical  map[Quantity]Unit
	bySymbol   map[string]Unit
	byName     map[string]Unit
}

// units is the process-wide unit table. It is built before any other
// package-level state in the engine and never mutated afterwards.
var units = mustBuildTable(registeredUnits())

func registeredUnits() []Unit {
	var all []Unit
	for _, family := range [][][]Unit{mechanicsUnits, electricUnits, thermalUnits, chemistryUnits, flowUnits} {
		for _, group := range family {
			all = append(all, group...)
		}
	}
	return all
}

func mustBuildTable(list []Unit) *table {
	t, err := buildTable(list)
	if err != nil {
		panic(err)
	}
	return t
}

// buildTable indexes list. The first unit listed for a quantity is its
// canonical SI unit; every quantity must have one and no symbol or name may
// be claimed twice.
func buildTable(list []Unit) (*table, error) {
	t := &table{
		byQuantity: make(map[Quantity][]Unit),
		canonical:  make(map[Quantity]Unit),
		bySymbol:   make(map[string]Unit, len(list)),
		byName:     make(map[string]Unit, len(list)),
	}

	for _, u := range list {
		if !u.quantity.Valid() {
			return nil, fmt.Errorf("%w: %s has no quantity", ErrInvalidUnit, u.symbol)
		}
		if u.symbol == "" {
			return nil, fmt.Errorf("%w: empty symbol for %s", ErrInvalidUnit, u.quantity)
		}
		if u.factor == 0 || math.IsNaN(u.factor) || math.IsInf(u.factor, 0) {
			return nil, fmt.Errorf("%w: %s has factor %v", ErrInvalidUnit, u.symbol, u.factor)
		}
		if prev, ok := t.bySymbol[u.symbol]; ok {
			return nil, fmt.Errorf("%w: symbol %q used by %s and %s", ErrInvalidUnit, u.symbol, prev.quantity, u.quantity)
		}
		name := strings.ToLower(u.name)
		if _, ok := t.byName[name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidUnit, u.name)
		}
		if _, ok := t.canonical[u.quantity]; !ok {
			if u.factor != 1 || u.offset != 0 {
				return nil, fmt.Errorf("%w: first unit of %s must be the SI unit, got %s", ErrInvalidUnit, u.quantity, u.symbol)
			}
			t.canonical[u.quantity] = u
		}

		t.bySymbol[u.symbol] = u
		t.byName[name] = u
		t.byQuantity[u.quantity] = append(t.byQuantity[u.quantity], u)
	}

	for _, q := range All() {
		if _, ok := t.canonical[q]; !ok {
			return nil, fmt.Errorf("%w: %s has no canonical unit", ErrInvalidUnit, q)
		}
	}

	return t, nil
}

// Lookup resolves a unit by exact symbol ("kat", "°C") or, failing that, by
// case-insensitive name ("katal", "Celsius").
func Lookup(s string) (Unit, bool) {
	if u, ok := units.bySymbol[s]; ok {
		return u, true
	}
	u, ok := units.byName[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// MustLookup is Lookup for tests and static tables; it panics on a miss.
func MustLookup(s string) Unit {
	u, ok := Lookup(s)
	if !ok {
		panic(fmt.Sprintf("quantity: unknown unit %q", s))
	}
	return u
}
