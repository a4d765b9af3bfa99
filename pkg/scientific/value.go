package scientific

import (
	"strconv"

	"github.com/san-kum/sciunits/pkg/quantity"
)

// Value is a magnitude expressed in a unit. The magnitude is never
// normalized implicitly; it always means "this many of Unit".
type Value struct {
	magnitude float64
	unit      quantity.Unit
}

func New(magnitude float64, unit quantity.Unit) Value {
	return Value{magnitude: magnitude, unit: unit}
}

func (v Value) Magnitude() float64 { return v.magnitude }
func (v Value) Unit() quantity.Unit { return v.unit }
func (v Value) Quantity() quantity.Quantity { return v.unit.Quantity() }

// Canonical returns the magnitude in the SI unit of v's quantity.
func (v Value) Canonical() float64 {
	return v.unit.ToCanonical(v.magnitude)
}

// ToUnit re-expresses v in another unit of the same quantity.
func (v Value) ToUnit(target quantity.Unit) (Value, error) {
	if target.Quantity() != v.Quantity() {
		return Value{}, &QuantityError{Op: "to", Left: v.Quantity(), Right: target.Quantity(), Wrapped: ErrDimensionMismatch}
	}
	if target == v.unit {
		return v, nil
	}
	return New(target.FromCanonical(v.Canonical()), target), nil
}

// String renders the shortest exact representation, e.g. "6 mol".
func (v Value) String() string {
	return strconv.FormatFloat(v.magnitude, 'g', -1, 64) + " " + v.unit.Symbol()
}
