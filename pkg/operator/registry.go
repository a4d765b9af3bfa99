package operator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/san-kum/sciunits/pkg/quantity"
)

// Registry construction errors.
var (
	// ErrInvalidEntry indicates an entry with an unknown quantity, operator or
	// a default unit that does not belong to the result quantity.
	ErrInvalidEntry = errors.New("operator: invalid registry entry")

	// ErrUnbalanced indicates an entry whose operand dimensions do not
	// compose to the dimension of its result.
	ErrUnbalanced = errors.New("operator: dimensionally unbalanced relation")

	// ErrConflict indicates two entries with the same key but different
	// results.
	ErrConflict = errors.New("operator: conflicting relation")
)

// Key identifies an ordered operation between two quantities.
type Key struct {
	Left     quantity.Quantity
	Right    quantity.Quantity
	Operator Operator
}

// Entry records that Left Operator Right yields Result, expressed in Unit.
type Entry struct {
	Left     quantity.Quantity
	Right    quantity.Quantity
	Operator Operator
	Result   quantity.Quantity
	// Unit is the default unit results are wrapped in. Left zero, it is
	// the SI unit of Result.
	Unit quantity.Unit
}

func (e Entry) Key() Key {
	return Key{Left: e.Left, Right: e.Right, Operator: e.Operator}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.Left, e.Operator.Symbol(), e.Right, e.Result)
}

func (e Entry) validate() error {
	if !e.Left.Valid() || !e.Right.Valid() || !e.Result.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, e)
	}
	if !e.Operator.Valid() {
		return fmt.Errorf("%w: %s has no operator", ErrInvalidEntry, e)
	}
	if e.Unit.Quantity() != e.Result {
		return fmt.Errorf("%w: %s default unit %s is a %s", ErrInvalidEntry, e, e.Unit.Symbol(), e.Unit.Quantity())
	}

	var got quantity.Dimension
	switch e.Operator {
	case Multiplication:
		got = e.Left.Dimension().Mul(e.Right.Dimension())
	case Division:
		got = e.Left.Dimension().Div(e.Right.Dimension())
	}
	if want := e.Result.Dimension(); got != want {
		return fmt.Errorf("%w: %s gives [%s], %s is [%s]", ErrUnbalanced, e, got, e.Result, want)
	}
	return nil
}

// Registry is an immutable table of quantity relations.
type Registry struct {
	entries []Entry
	index   map[Key]int
}

// NewRegistry validates entries and builds a registry. Entries repeating an
// existing key with the same result are dropped; a different result for the
// same key is an error.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Key]int, len(entries)),
	}

	for _, e := range entries {
		if e.Unit.IsZero() {
			e.Unit = e.Result.SIUnit()
		}
		if err := e.validate(); err != nil {
			return nil, err
		}
		if i, ok := r.index[e.Key()]; ok {
			if prev := r.entries[i]; prev.Result != e.Result {
				return nil, fmt.Errorf("%w: %s and %s", ErrConflict, prev, e)
			}
			continue
		}
		r.index[e.Key()] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	slog.Debug("operator registry built", "entries", len(r.entries))
	return r, nil
}

// MustNewRegistry is NewRegistry for static tables.
func MustNewRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the entry for left op right.
func (r *Registry) Lookup(left, right quantity.Quantity, op Operator) (Entry, bool) {
	i, ok := r.index[Key{Left: left, Right: right, Operator: op}]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// From returns the entries whose left operand is q, in registration order.
func (r *Registry) From(q quantity.Quantity) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Left == q {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Product spells out the entries implied by a × b = result: both operand
// orders of the product and both quotients of result. Duplicates produced
// when a == b are removed by NewRegistry.
func Product(a, b, result quantity.Quantity) []Entry {
	return []Entry{
		{Left: a, Right: b, Operator: Multiplication, Result: result},
		{Left: b, Right: a, Operator: Multiplication, Result: result},
		{Left: result, Right: a, Operator: Division, Result: b},
		{Left: result, Right: b, Operator: Division, Result: a},
	}
}
