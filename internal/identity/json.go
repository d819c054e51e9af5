package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// JSONStore is a Store backed by a flat JSON object in one file.
type JSONStore struct {
	path string
}

// OpenJSON returns a store backed by path, creating the parent directories
// and an empty object when the file does not exist yet.
func OpenJSON(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create identity store directory: %w", err)
		}
	}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to create identity store: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat identity store: %w", err)
	}

	return &JSONStore{path: path}, nil
}

// Path returns the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Add(key string) (string, error) {
	data, err := s.load()
	if err != nil {
		return "", err
	}

	if _, ok := data[key]; ok {
		return "", duplicate(key)
	}

	id := newID()
	data[key] = id

	if err := s.save(data); err != nil {
		return "", err
	}

	return id, nil
}

func (s *JSONStore) Read(key string) (string, bool, error) {
	data, err := s.load()
	if err != nil {
		return "", false, err
	}

	id, ok := data[key]

	return id, ok, nil
}

func (s *JSONStore) Delete(key string) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := data[key]; !ok {
		return notFound(key)
	}

	delete(data, key)

	return s.save(data)
}

// Close is a no-op; the file is not held open between calls.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity store: %w", err)
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse identity store %s: %w", s.path, err)
	}

	// A file holding "null" decodes to a nil map.
	if data == nil {
		data = map[string]string{}
	}

	return data, nil
}

func (s *JSONStore) save(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identity store: %w", err)
	}

	raw = append(raw, '\n')
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write identity store: %w", err)
	}

	return nil
}
