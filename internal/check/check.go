package check

import (
	"fmt"
	"os"
	"strings"

	"dqac/internal/common"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// Option configures Structure.
type Option func(*options)

type options struct {
	filePath string
}

// File records the file the checked value was read from.
func File(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

type binding func(Report) error

var bindings = map[string]binding{
	schema.WorkspaceFileName: func(r Report) error {
		return &WorkspaceFormatError{Report: r}
	},
	schema.MonitorsFileName: func(r Report) error {
		return &MonitorsFileFormatError{Report: r}
	},
	schema.DefaultValuesFileName: func(r Report) error {
		return &DefaultValuesFormatError{Report: r}
	},
	schema.MonitorName: newMonitorFormatError,
}

// Structure validates value against shape. It returns nil when value
// conforms, otherwise the error bound to the shape's name.
func Structure(value any, shape schema.Shape, opts ...Option) error {
	diags := schema.Validate(value, shape, "")
	if common.IsEmpty(diags) {
		return nil
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	report := Report{
		Value:       value,
		Diagnostics: diags,
		FilePath:    o.filePath,
	}

	name := schema.NameOf(shape)
	if bind, ok := bindings[name]; ok {
		return bind(report)
	}

	return &FormatError{Report: report, Shape: name}
}

func newMonitorFormatError(r Report) error {
	line, err := identifierLine(r.FilePath, r.Value)
	if err != nil {
		return err
	}

	return &MonitorFormatError{Report: r, Line: line}
}

// identifierLine returns the 1-based line of path that first contains the
// monitor's identifier, or 0 when there is no file or no identifier.
func identifierLine(path string, value any) (int, error) {
	if path == "" {
		return 0, nil
	}

	m, ok := value.(*values.Map)
	if !ok {
		return 0, nil
	}

	id, ok := m.String(schema.IdentifierKey)
	if !ok || id == "" {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not find file %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, id) {
			return i + 1, nil
		}
	}

	return 0, nil
}
