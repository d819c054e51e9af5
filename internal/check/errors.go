package check

import (
	"fmt"
	"strings"

	"dqac/internal/diagnostic"
	"dqac/internal/values"
)

const tab = "   "

// Report is the data shared by every format error.
type Report struct {
	// Value is the instance that failed validation.
	Value any
	// Diagnostics lists every violation, in validation order.
	Diagnostics []diagnostic.Diagnostic
	// FilePath is the file Value came from, if known.
	FilePath string
}

func (r Report) render(summary, valueTitle, fileSuffix string) string {
	var b strings.Builder

	b.WriteString(summary)

	if r.Value != nil {
		b.WriteString("\n\n[" + valueTitle + "]\n")
		b.WriteString(indent(dump(r.Value)))
	}

	if len(r.Diagnostics) > 0 {
		b.WriteString("\n\n[Format errors]\n")
		b.WriteString(indent(diagnostic.Bullets(r.Diagnostics)))
	}

	if r.FilePath != "" {
		b.WriteString("\n\n[File]\n")
		b.WriteString(tab + r.FilePath + fileSuffix)
	}

	return b.String()
}

// WorkspaceFormatError is returned when the workspace declaration is malformed.
type WorkspaceFormatError struct {
	Report
}

func (e *WorkspaceFormatError) Error() string {
	return e.render("Wrong collections to render file format.", "Value", "")
}

// MonitorsFileFormatError is returned when a monitor-bearing file in a
// collection is malformed.
type MonitorsFileFormatError struct {
	Report
}

func (e *MonitorsFileFormatError) Error() string {
	return e.render("Wrong file format.", "Value", "")
}

// DefaultValuesFormatError is returned when a collection default-values file
// is malformed.
type DefaultValuesFormatError struct {
	Report
}

func (e *DefaultValuesFormatError) Error() string {
	return e.render("Wrong default values file format.", "Value", "")
}

// MonitorFormatError is returned when a monitor, after merging with its
// collection defaults, does not match the monitor shape.
type MonitorFormatError struct {
	Report
	// Line is the 1-based line of FilePath mentioning the monitor's
	// identifier, 0 when unknown.
	Line int
}

func (e *MonitorFormatError) Error() string {
	suffix := ""
	if e.Line > 0 {
		suffix = fmt.Sprintf(", line %d", e.Line)
	}

	return e.render("Wrong format for monitor after merging with default values.", "Merged monitor", suffix)
}

// FormatError is returned for shapes without a dedicated error type.
type FormatError struct {
	Report
	Shape string
}

func (e *FormatError) Error() string {
	summary := "Wrong format."
	if e.Shape != "" {
		summary = fmt.Sprintf("Wrong format for %s.", e.Shape)
	}

	return e.render(summary, "Value", "")
}

func dump(v any) string {
	data, err := values.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return strings.TrimRight(string(data), "\n")
}

func indent(s string) string {
	return tab + strings.ReplaceAll(s, "\n", "\n"+tab)
}
