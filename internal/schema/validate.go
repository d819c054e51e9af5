package schema

import (
	"fmt"

	"dqac/internal/diagnostic"
	"dqac/internal/values"
)

// Validate checks value against shape and returns every violation found,
// depth first: record fields in declaration order followed by undeclared keys
// in data order, list elements in index order. path prefixes every reported
// path; pass "" at the root.
//
// A union stops at its first alternative that produces no diagnostics. When
// all alternatives fail, only the diagnostics of the last one are returned.
func Validate(value any, shape Shape, path string) []diagnostic.Diagnostic {
	switch shape.Kind() {
	case KindLiteral:
		s := shape.(*Literal)
		if s.Contains(value) {
			return nil
		}

		return []diagnostic.Diagnostic{{
			Kind:   diagnostic.InvalidLiteral,
			Path:   path,
			Detail: fmt.Sprintf("Expected one of %s at %s, but got value: %s", s, display(path), describe(value)),
		}}

	case KindUnion:
		var diags []diagnostic.Diagnostic

		for _, alt := range shape.(*Union).Alternatives {
			diags = Validate(value, alt, path)
			if len(diags) == 0 {
				return nil
			}
		}

		return diags

	case KindListOf:
		list, ok := value.([]any)
		if !ok {
			return mismatch(path, AnyList, value)
		}

		elem := shape.(*ListOf).Elem

		var diags []diagnostic.Diagnostic
		for i, item := range list {
			diags = append(diags, Validate(item, elem, diagnostic.Index(path, i))...)
		}

		return diags

	case KindRecord:
		m, ok := value.(*values.Map)
		if !ok {
			return mismatch(path, AnyMapping, value)
		}

		return validateRecord(m, shape.(*Record), path)

	case KindScalar:
		s := shape.(Scalar)
		if values.TypeName(value) == string(s) {
			return nil
		}

		return mismatch(path, s, value)

	default:
		panic(fmt.Sprintf("schema: cannot validate against shape of kind %s", shape.Kind()))
	}
}

func validateRecord(m *values.Map, r *Record, path string) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic

	declared := make(map[string]struct{}, len(r.Fields))

	for _, f := range r.Fields {
		declared[f.Name] = struct{}{}
		fieldPath := diagnostic.Key(path, f.Name)

		v, present := m.Get(f.Name)
		if !present {
			if f.Optional {
				continue
			}

			diags = append(diags, diagnostic.Diagnostic{
				Kind:   diagnostic.MissingKey,
				Path:   fieldPath,
				Detail: "Missing key: " + fieldPath,
			})

			continue
		}

		diags = append(diags, Validate(v, f.Shape, fieldPath)...)
	}

	for _, key := range m.Keys() {
		if _, ok := declared[key]; ok {
			continue
		}

		keyPath := diagnostic.Key(path, key)
		diags = append(diags, diagnostic.Diagnostic{
			Kind:   diagnostic.ExtraKey,
			Path:   keyPath,
			Detail: "Extra key: " + keyPath,
		})
	}

	return diags
}

func mismatch(path string, expected Scalar, value any) []diagnostic.Diagnostic {
	return []diagnostic.Diagnostic{{
		Kind:   diagnostic.TypeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("Expected %s at %s, but got %s", expected, display(path), values.TypeName(value)),
	}}
}

func display(path string) string {
	if path == "" {
		return "root"
	}

	return path
}

func describe(value any) string {
	switch value.(type) {
	case *values.Map, []any:
		return values.TypeName(value)
	default:
		return fmt.Sprint(value)
	}
}
