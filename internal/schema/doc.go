// Package schema describes the expected structure of every YAML document the
// tool reads and validates values against it.
//
// A Shape is a closed tagged variant:
//
//   - Scalar: a type stub with no further structure (string, int, float,
//     bool, list, mapping)
//   - *Record: named fields, each required or optional, each with a shape
//   - *Literal: the value must be one of an enumerated set of strings
//   - *Union: the value must satisfy at least one alternative
//   - *ListOf: every element must satisfy the element shape
//
// Shapes are built once at package initialisation (see catalog.go) and are
// never modified afterwards. Validate interprets them and returns ordered,
// path-qualified diagnostics; it never fails and has no side effects.
package schema
