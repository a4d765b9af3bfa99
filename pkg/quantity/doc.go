// Package quantity defines the physical quantities and measurement units the
// engine understands.
//
// The package is built around two value types:
//
//   - [Quantity]: closed enumeration of quantity kinds (Time, Energy, ...)
//   - [Unit]: a concrete scale for one quantity, with an affine mapping to
//     the quantity's canonical SI unit
//
// Every [Unit] belongs to exactly one [Quantity]. The built-in unit table is
// assembled once when the package initializes and is read-only afterwards;
// [Lookup] and [Quantity.Units] never allocate shared state.
//
// # Example
//
//	u, _ := quantity.Lookup("km/h")
//	ms := u.ToCanonical(36) // 10 m/s
//
// # Thread Safety
//
// All exported functions and values are safe for concurrent use.
package quantity
