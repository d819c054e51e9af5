// Package template renders monitor templates into ordered mappings.
//
// A template is a YAML document with text/template actions, for example:
//
//	identifier: freshness_{{ .dataset }}
//	name: "[DQAC] Freshness for {{ .dataset }}"
//	parameters:
//	  kind: Freshness
//
// Variables missing from the supplied set render as empty strings.
package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"dqac/internal/values"
)

// Render executes the template file at path with vars and parses the output
// as a YAML mapping.
func Render(path string, vars map[string]string) (*values.Map, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return RenderString(filepath.Base(path), string(src), vars)
}

// RenderString is Render for an in-memory template.
func RenderString(name, src string, vars map[string]string) (*values.Map, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("error rendering template %s: %w", name, err)
	}

	if vars == nil {
		vars = map[string]string{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("error rendering template %s: %w", name, err)
	}

	m, err := values.Parse(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("rendered template %s: %w", name, err)
	}

	return m, nil
}

// ParseVars turns "key=value" pairs into a variable set. Later pairs win.
func ParseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", p)
		}

		vars[k] = v
	}

	return vars, nil
}
