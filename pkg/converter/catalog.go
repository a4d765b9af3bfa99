package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/san-kum/sciunits/pkg/operator"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

var (
	// ErrUnregisteredRelation indicates a definition with no matching entry
	// in the operator registry.
	ErrUnregisteredRelation = errors.New("converter: relation not in registry")

	// ErrDuplicateDefinition indicates the same operator and partner listed
	// twice for one quantity.
	ErrDuplicateDefinition = errors.New("converter: duplicate definition")
)

// Definition authors one converter of a quantity.
type Definition struct {
	Operator operator.Operator
	Partner  quantity.Quantity
}

// Catalog maps each quantity to its ordered converter list.
type Catalog struct {
	cells map[quantity.Quantity]func() []*Converter
}

// NewCatalog checks every definition against calc's registry and prepares a
// lazily built converter list per quantity. Nothing is built until
// Converters is called.
func NewCatalog(calc *scientific.Calculator, defs map[quantity.Quantity][]Definition) (*Catalog, error) {
	c := &Catalog{
		cells: make(map[quantity.Quantity]func() []*Converter, len(defs)),
	}

	for q, list := range defs {
		entries, err := resolve(calc.Registry(), q, list)
		if err != nil {
			return nil, err
		}
		c.cells[q] = sync.OnceValue(func() []*Converter {
			out := make([]*Converter, len(entries))
			for i, e := range entries {
				out[i] = newConverter(e, calc)
			}
			slog.Debug("converter list built", "quantity", q.String(), "converters", len(out))
			return out
		})
	}

	return c, nil
}

// MustNewCatalog is NewCatalog for static definitions.
func MustNewCatalog(calc *scientific.Calculator, defs map[quantity.Quantity][]Definition) *Catalog {
	c, err := NewCatalog(calc, defs)
	if err != nil {
		panic(err)
	}
	return c
}

func resolve(reg *operator.Registry, q quantity.Quantity, list []Definition) ([]operator.Entry, error) {
	entries := make([]operator.Entry, 0, len(list))
	seen := make(map[Definition]bool, len(list))

	for _, d := range list {
		if seen[d] {
			return nil, fmt.Errorf("%w: %s %s %s", ErrDuplicateDefinition, q, d.Operator.Symbol(), d.Partner)
		}
		seen[d] = true

		e, ok := reg.Lookup(q, d.Partner, d.Operator)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s %s", ErrUnregisteredRelation, q, d.Operator.Symbol(), d.Partner)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Converters returns q's converters in authored order. The converters are
// shared between calls; the slice is the caller's.
func (c *Catalog) Converters(q quantity.Quantity) []*Converter {
	cell, ok := c.cells[q]
	if !ok {
		return nil
	}
	list := cell()
	out := make([]*Converter, len(list))
	copy(out, list)
	return out
}

// Lookup finds one of q's converters by label.
func (c *Catalog) Lookup(q quantity.Quantity, label string) (*Converter, bool) {
	cell, ok := c.cells[q]
	if !ok {
		return nil, false
	}
	for _, conv := range cell() {
		if conv.label == label {
			return conv, true
		}
	}
	return nil, false
}

// Quantities returns the quantities the catalog has definitions for, in
// declaration order.
func (c *Catalog) Quantities() []quantity.Quantity {
	qs := make([]quantity.Quantity, 0, len(c.cells))
	for q := range c.cells {
		qs = append(qs, q)
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i] < qs[j] })
	return qs
}

var defaultCatalog = MustNewCatalog(scientific.Default(), builtinDefinitions())

// Default returns the catalog of built-in converters.
func Default() *Catalog {
	return defaultCatalog
}

// Converters returns q's built-in converters.
func Converters(q quantity.Quantity) []*Converter {
	return defaultCatalog.Converters(q)
}
