package diagnostic

import (
	"strconv"
	"strings"
)

// Kind identifies what went wrong at a path.
type Kind int

const (
	MissingKey Kind = iota + 1
	ExtraKey
	TypeMismatch
	InvalidLiteral
)

// String returns the kebab-case kind name.
func (k Kind) String() string {
	switch k {
	case MissingKey:
		return "missing-key"
	case ExtraKey:
		return "extra-key"
	case TypeMismatch:
		return "type-mismatch"
	case InvalidLiteral:
		return "invalid-literal"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single validation finding.
type Diagnostic struct {
	// Kind of the finding.
	Kind Kind
	// Path is the dotted path of the offending value ("" for the root).
	Path string
	// Detail is the human-readable message, path included.
	Detail string
}

// String returns the detail message.
func (d Diagnostic) String() string {
	return d.Detail
}

// Bullets renders diagnostics one per line, each prefixed with "- ".
func Bullets(diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = "- " + d.Detail
	}

	return strings.Join(lines, "\n")
}

// Key joins a field name onto a path.
func Key(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

// Index appends a list index to a path.
func Index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// Paths returns the paths of diags in order.
func Paths(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Path
	}

	return out
}
