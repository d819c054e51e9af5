package schema

import (
	"slices"
	"strings"
)

// Shape is one node of a shape description.
type Shape interface {
	Kind() Kind
}

// Scalar is a type stub. Its value is the type name reported in diagnostics.
type Scalar string

const (
	String     Scalar = "string"
	Int        Scalar = "int"
	Float      Scalar = "float"
	Bool       Scalar = "bool"
	AnyList    Scalar = "list"
	AnyMapping Scalar = "mapping"
)

func (Scalar) Kind() Kind { return KindScalar }

// Field is one declared entry of a Record.
type Field struct {
	Name     string
	Shape    Shape
	Optional bool
}

// Required declares a field that must be present.
func Required(name string, shape Shape) Field {
	return Field{Name: name, Shape: shape}
}

// Optional declares a field that may be absent.
func Optional(name string, shape Shape) Field {
	return Field{Name: name, Shape: shape, Optional: true}
}

// Record is a mapping with a closed set of declared fields.
// Name is used by error reporting to pick a diagnostic type.
type Record struct {
	Name   string
	Fields []Field
}

// NewRecord builds a record shape.
func NewRecord(name string, fields ...Field) *Record {
	return &Record{Name: name, Fields: fields}
}

func (*Record) Kind() Kind { return KindRecord }

// Field returns the declared field called name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Extend returns a new record with r's fields followed by fields. A field
// that redeclares an existing name replaces it in place.
func (r *Record) Extend(name string, fields ...Field) *Record {
	out := &Record{Name: name, Fields: slices.Clone(r.Fields)}

	for _, f := range fields {
		idx := slices.IndexFunc(out.Fields, func(e Field) bool { return e.Name == f.Name })
		if idx >= 0 {
			out.Fields[idx] = f
			continue
		}

		out.Fields = append(out.Fields, f)
	}

	return out
}

// Literal accepts one of an enumerated set of strings.
type Literal struct {
	Values []string
}

// OneOf builds a literal shape.
func OneOf(values ...string) *Literal {
	return &Literal{Values: values}
}

func (*Literal) Kind() Kind { return KindLiteral }

// Contains reports whether v is one of the enumerated values.
func (l *Literal) Contains(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	return slices.Contains(l.Values, s)
}

func (l *Literal) String() string {
	quoted := make([]string, len(l.Values))
	for i, v := range l.Values {
		quoted[i] = `"` + v + `"`
	}

	return "(" + strings.Join(quoted, ", ") + ")"
}

// Union accepts a value matching any alternative, tried in order.
type Union struct {
	Alternatives []Shape
}

// AnyOf builds a union shape.
func AnyOf(alternatives ...Shape) *Union {
	return &Union{Alternatives: alternatives}
}

func (*Union) Kind() Kind { return KindUnion }

// ListOf is a list whose every element has the same shape.
type ListOf struct {
	Elem Shape
}

// NewListOf builds a list-of shape.
func NewListOf(elem Shape) *ListOf {
	return &ListOf{Elem: elem}
}

func (*ListOf) Kind() Kind { return KindListOf }

// Partial returns a copy of shape in which every record field, at any depth,
// is optional. Record names are kept.
func Partial(shape Shape) Shape {
	switch shape.Kind() {
	case KindRecord:
		s := shape.(*Record)
		out := &Record{Name: s.Name, Fields: make([]Field, len(s.Fields))}
		for i, f := range s.Fields {
			out.Fields[i] = Optional(f.Name, Partial(f.Shape))
		}

		return out
	case KindListOf:
		return NewListOf(Partial(shape.(*ListOf).Elem))
	case KindUnion:
		s := shape.(*Union)
		alts := make([]Shape, len(s.Alternatives))
		for i, a := range s.Alternatives {
			alts[i] = Partial(a)
		}

		return AnyOf(alts...)
	default:
		return shape
	}
}

// NameOf returns the record name of shape, or "" for unnamed shapes.
func NameOf(shape Shape) string {
	if r, ok := shape.(*Record); ok {
		return r.Name
	}

	return ""
}
