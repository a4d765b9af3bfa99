// Package scientific pairs magnitudes with units and implements arithmetic
// that respects dimensional analysis.
//
//   - [Add], [Subtract]: same quantity only, result in the left unit
//   - [Multiply], [Divide]: resolved through an [operator.Registry], result in
//     the registry's default unit for the produced quantity
//
// Failures are returned as errors wrapping [ErrDimensionMismatch],
// [ErrUnsupportedOperation] or [ErrTypeMismatch]; nothing in this package
// panics on caller input.
//
// # Example
//
//	rate := scientific.New(2, quantity.Katal)
//	dt := scientific.New(3, quantity.Second)
//	amount, err := scientific.Multiply(rate, dt) // 6 mol
package scientific
