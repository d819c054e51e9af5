// Package values holds the ordered mapping type used for every YAML document
// the tool reads or writes, plus the deep merge that cascades collection
// default values onto monitors.
//
// Decoded documents only ever contain the following Go values:
//
//	string, int, float64, bool, nil, []any, *Map
//
// Key order is preserved on read and write so that rewritten monitor files
// stay reviewable in a diff.
//
// # Merging
//
// Merge(base, overlay) walks overlay: keys absent from base are copied in,
// mapping-vs-mapping conflicts recurse, and anything else (scalars, lists)
// is replaced wholesale by the overlay value. Lists are never concatenated.
package values
