// Package sqltype provides the data type lattice and conversion catalog for
// quarry's SQL layer.
//
// This package is the leaf of the semantic core: every later compilation
// phase consults it and it imports nothing internal. It answers two
// questions:
//
//   - given two operand types, what type must both be coerced to before
//     comparison or arithmetic (CommonType), and
//   - can a value of one type become a value of another, and through which
//     conversion (CanConvert, ConversionFor, Convert).
//
// The DataType set and the Conversion catalog are closed, initialized as
// compile-time constants, and never mutated, so every operation here is a
// pure computation safe for unbounded concurrency.
//
// Conversion ordinals are a wire contract. Persisted plans reference a
// conversion by catalog position, so the catalog is append-only: new
// conversions go after the last constant and existing ordinals are never
// reordered or reused.
package sqltype
