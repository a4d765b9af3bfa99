package converter

import (
	"fmt"

	"github.com/san-kum/sciunits/pkg/operator"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

// Converter derives Result from Quantity combined with Partner.
type Converter struct {
	label   string
	owner   quantity.Quantity
	partner quantity.Quantity
	op      operator.Operator
	result  quantity.Quantity
	unit    quantity.Unit
	compute func(a, b scientific.Value) (scientific.Value, error)
}

func newConverter(entry operator.Entry, calc *scientific.Calculator) *Converter {
	c := &Converter{
		label:   fmt.Sprintf("%s from %s", entry.Result, entry.Right),
		owner:   entry.Left,
		partner: entry.Right,
		op:      entry.Operator,
		result:  entry.Result,
		unit:    entry.Unit,
	}
	switch entry.Operator {
	case operator.Multiplication:
		c.compute = calc.Multiply
	case operator.Division:
		c.compute = calc.Divide
	}
	return c
}

func (c *Converter) Label() string { return c.label }
func (c *Converter) Operator() operator.Operator { return c.op }
func (c *Converter) Quantity() quantity.Quantity { return c.owner }
func (c *Converter) Partner() quantity.Quantity { return c.partner }
func (c *Converter) Result() quantity.Quantity { return c.result }

// Unit is the unit results are expressed in.
func (c *Converter) Unit() quantity.Unit { return c.unit }

// String renders the relation, e.g. "Catalytic Activity × Time = Amount of Substance".
func (c *Converter) String() string {
	return fmt.Sprintf("%s %s %s = %s", c.owner, c.op.Symbol(), c.partner, c.result)
}

// Compute applies the converter. left must be of the converter's quantity
// and right of its partner; a product also accepts the operands swapped.
func (c *Converter) Compute(left, right scientific.Value) (scientific.Value, error) {
	if c.op == operator.Multiplication && c.owner != c.partner &&
		left.Quantity() == c.partner && right.Quantity() == c.owner {
		left, right = right, left
	}
	if got := left.Quantity(); got != c.owner {
		return scientific.Value{}, &TypeMismatchError{Converter: c.label, Operand: "left", Expected: c.owner, Actual: got}
	}
	if got := right.Quantity(); got != c.partner {
		return scientific.Value{}, &TypeMismatchError{Converter: c.label, Operand: "right", Expected: c.partner, Actual: got}
	}
	return c.compute(left, right)
}

// TypeMismatchError reports a converter operand of the wrong quantity. It
// unwraps to scientific.ErrTypeMismatch.
type TypeMismatchError struct {
	Converter string
	Operand   string
	Expected  quantity.Quantity
	Actual    quantity.Quantity
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: %s operand is %s, expected %s",
		scientific.ErrTypeMismatch, e.Converter, e.Operand, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Unwrap() error {
	return scientific.ErrTypeMismatch
}
