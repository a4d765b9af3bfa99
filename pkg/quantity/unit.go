package quantity

import "fmt"

// Unit is a concrete scale of one quantity. A magnitude x in this unit maps
// to x*factor + offset in the quantity's canonical unit. Units are immutable
// and comparable.
type Unit struct {
	symbol   string
	name     string
	quantity Quantity
	factor   float64
	offset   float64
}

// NewUnit returns a linear unit of q scaled by factor relative to the SI unit.
func NewUnit(symbol, name string, q Quantity, factor float64) Unit {
	return Unit{symbol: symbol, name: name, quantity: q, factor: factor}
}

// NewAffineUnit returns a unit whose zero is shifted from the SI zero, such
// as degrees Celsius.
func NewAffineUnit(symbol, name string, q Quantity, factor, offset float64) Unit {
	return Unit{symbol: symbol, name: name, quantity: q, factor: factor, offset: offset}
}

func (u Unit) Symbol() string { return u.symbol }
func (u Unit) Name() string { return u.name }
func (u Unit) Quantity() Quantity { return u.quantity }
func (u Unit) Factor() float64 { return u.factor }
func (u Unit) Offset() float64 { return u.offset }
func (u Unit) IsZero() bool { return u == Unit{} }
func (u Unit) String() string { return u.symbol }

// IsCanonical reports whether u is the SI unit of its quantity.
func (u Unit) IsCanonical() bool {
	return u.quantity.Valid() && u == u.quantity.SIUnit()
}

// ToCanonical converts a magnitude in u to the canonical unit.
func (u Unit) ToCanonical(x float64) float64 {
	return x*u.factor + u.offset
}

// FromCanonical converts a canonical magnitude back to u.
func (u Unit) FromCanonical(x float64) float64 {
	return (x - u.offset) / u.factor
}

// GoString is used by %#v and in test failure output.
func (u Unit) GoString() string {
	return fmt.Sprintf("quantity.Unit{%s %s}", u.symbol, u.quantity)
}
