package scientific

import (
	"errors"
	"fmt"

	"github.com/san-kum/sciunits/pkg/quantity"
)

// Error kinds surfaced by arithmetic and converters.
var (
	// ErrDimensionMismatch indicates a same-quantity operation (add, subtract,
	// re-expression) on values of different quantities.
	ErrDimensionMismatch = errors.New("scientific: dimension mismatch")

	// ErrUnsupportedOperation indicates a product or quotient with no
	// registered relation.
	ErrUnsupportedOperation = errors.New("scientific: unsupported operation")

	// ErrTypeMismatch indicates a converter invoked with operands of the wrong
	// quantities.
	ErrTypeMismatch = errors.New("scientific: type mismatch")
)

// QuantityError wraps an error kind with the operation and the quantities
// that caused it.
type QuantityError struct {
	Op      string
	Left    quantity.Quantity
	Right   quantity.Quantity
	Wrapped error
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s: %s %s %s", e.Wrapped, e.Left, e.Op, e.Right)
}

func (e *QuantityError) Unwrap() error {
	return e.Wrapped
}
