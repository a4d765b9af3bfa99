package scientific

import (
	"github.com/san-kum/sciunits/pkg/operator"
)

// Calculator evaluates products and quotients against one registry.
type Calculator struct {
	registry *operator.Registry
}

func NewCalculator(reg *operator.Registry) *Calculator {
	return &Calculator{registry: reg}
}

var defaultCalculator = NewCalculator(operator.Default())

// Default returns the calculator bound to the built-in registry.
func Default() *Calculator {
	return defaultCalculator
}

func (c *Calculator) Registry() *operator.Registry {
	return c.registry
}

func (c *Calculator) Multiply(a, b Value) (Value, error) {
	return c.Apply(operator.Multiplication, a, b)
}

func (c *Calculator) Divide(a, b Value) (Value, error) {
	return c.Apply(operator.Division, a, b)
}

// Apply computes a op b. Both operands are taken to their canonical units,
// combined, and the result is wrapped in the relation's default unit.
func (c *Calculator) Apply(op operator.Operator, a, b Value) (Value, error) {
	entry, ok := c.registry.Lookup(a.Quantity(), b.Quantity(), op)
	if !ok {
		return Value{}, &QuantityError{Op: op.Symbol(), Left: a.Quantity(), Right: b.Quantity(), Wrapped: ErrUnsupportedOperation}
	}
	canonical := op.Apply(a.Canonical(), b.Canonical())
	return New(entry.Unit.FromCanonical(canonical), entry.Unit), nil
}

// Multiply computes a × b with the built-in registry.
func Multiply(a, b Value) (Value, error) {
	return defaultCalculator.Multiply(a, b)
}

// Divide computes a ÷ b with the built-in registry.
func Divide(a, b Value) (Value, error) {
	return defaultCalculator.Divide(a, b)
}

// Add returns a + b in a's unit.
func Add(a, b Value) (Value, error) {
	rb, err := sameQuantity("+", a, b)
	if err != nil {
		return Value{}, err
	}
	return New(a.magnitude+rb, a.unit), nil
}

// Subtract returns a - b in a's unit.
func Subtract(a, b Value) (Value, error) {
	rb, err := sameQuantity("-", a, b)
	if err != nil {
		return Value{}, err
	}
	return New(a.magnitude-rb, a.unit), nil
}

// sameQuantity returns b's magnitude expressed in a's unit.
func sameQuantity(op string, a, b Value) (float64, error) {
	if a.Quantity() != b.Quantity() {
		return 0, &QuantityError{Op: op, Left: a.Quantity(), Right: b.Quantity(), Wrapped: ErrDimensionMismatch}
	}
	if a.unit == b.unit {
		return b.magnitude, nil
	}
	return a.unit.FromCanonical(b.Canonical()), nil
}
