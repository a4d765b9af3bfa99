// Package converter exposes, for each physical quantity, the list of
// relationships that derive another quantity from it.
//
// A [Converter] pairs a label ("Amount of Substance from Time") with an
// operator and a partner quantity; [Converter.Compute] checks its operands
// and delegates to the scientific arithmetic. A [Catalog] holds the authored
// converter lists, validates them against the operator registry once, and
// builds each quantity's list lazily the first time it is requested.
//
// # Thread Safety
//
// Catalogs and converters are immutable once built and safe for concurrent
// use. Concurrent first requests for the same quantity build its list once.
package converter
