package values

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile reads a YAML mapping document from path.
// A missing file yields an error wrapping fs.ErrNotExist.
func ReadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not find file %s, make sure the file exists: %w", path, err)
		}

		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading file %s, make sure it has a valid format: %w", path, err)
	}

	return m, nil
}

// WriteFile replaces the content of path with m encoded as YAML.
func WriteFile(path string, m *Map) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
