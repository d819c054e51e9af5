package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateKey is returned by Add when the key already has an identifier.
	ErrDuplicateKey = errors.New("key already exists")
	// ErrKeyNotFound is returned by Delete when the key has no identifier.
	ErrKeyNotFound = errors.New("key does not exist")
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store is a persistent key to identifier mapping.
type Store interface {
	// Add generates an identifier for key and persists it.
	Add(key string) (string, error)
	// Read returns the identifier stored for key. ok is false when the key
	// is absent.
	Read(key string) (id string, ok bool, err error)
	// Delete removes key.
	Delete(key string) error
	// Close releases the backend.
	Close() error
}

// Open opens the store for the named backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		s, err := OpenJSON(path)
		if err != nil {
			return nil, err
		}

		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}

		return s, nil
	default:
		return nil, fmt.Errorf("unknown identity backend %q", backend)
	}
}

// Ensure returns the identifier stored for key, adding one when absent.
// created reports whether a new identifier was generated.
func Ensure(s Store, key string) (id string, created bool, err error) {
	id, ok, err := s.Read(key)
	if err != nil {
		return "", false, err
	}

	if ok {
		return id, false, nil
	}

	id, err = s.Add(key)
	if err != nil {
		return "", false, err
	}

	return id, true, nil
}

func newID() string {
	return uuid.New().String()
}

func duplicate(key string) error {
	return fmt.Errorf("monitor %s: %w", key, ErrDuplicateKey)
}

func notFound(key string) error {
	return fmt.Errorf("monitor %s: %w", key, ErrKeyNotFound)
}
