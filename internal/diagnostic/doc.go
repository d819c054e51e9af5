// Package diagnostic provides the path-qualified findings produced by the
// structural validator.
//
// A Diagnostic is an ordered (kind, path, detail) triple. Paths use dots for
// nested fields and an [index] suffix for list elements, e.g. "tags[0].id".
// The four kinds are:
//   - missing-key: a required field is absent
//   - extra-key: a field is present that the shape does not declare
//   - type-mismatch: the value has the wrong scalar type
//   - invalid-literal: the value is not one of an enumerated set
package diagnostic
