// Package operator holds the Quantity Operator Registry: the fixed table
// mapping an ordered pair of quantities and an operator (× or ÷) to the
// quantity the operation produces.
//
// Every relation is registered explicitly. The registry never infers
// commutativity or inverse relations; the [Product] authoring helper simply
// spells out the four entries a product implies. [NewRegistry] checks every
// entry for dimensional balance before the table is usable, and the table is
// read-only afterwards, so lookups need no locking.
package operator
