package schema

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind tags the variant of a Shape.
type Kind int

const (
	_ Kind = iota // invalid

	KindScalar  // scalar
	KindRecord  // record
	KindLiteral // literal
	KindUnion   // union
	KindListOf  // list-of
)
