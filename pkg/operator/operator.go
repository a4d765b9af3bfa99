package operator

import "fmt"

// Operator is a binary operation between two quantities.
type Operator int

const (
	Multiplication Operator = iota + 1
	Division
)

// Apply combines two canonical magnitudes.
func (o Operator) Apply(left, right float64) float64 {
	switch o {
	case Multiplication:
		return left * right
	case Division:
		return left / right
	default:
		panic(fmt.Sprintf("operator: apply on invalid %s", o))
	}
}

func (o Operator) Valid() bool {
	return o == Multiplication || o == Division
}

func (o Operator) Symbol() string {
	switch o {
	case Multiplication:
		return "×"
	case Division:
		return "÷"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}
