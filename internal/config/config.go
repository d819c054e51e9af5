// Package config loads the optional dqac.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dqac/internal/collection"
	"dqac/internal/identity"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultFile           = "dqac.yaml"
	DefaultWorkspace      = "collections.yaml"
	DefaultRenderedFolder = "rendered_monitors"
	DefaultIdentityPath   = "database/database.json"
)

// ErrUnknownBackend is returned for an identity backend other than json or
// sqlite.
var ErrUnknownBackend = errors.New("unknown identity backend")

// Config is the project configuration.
type Config struct {
	// Workspace is the workspace declaration file.
	Workspace string `yaml:"workspace"`

	// RenderedFolder receives rendered monitors.
	RenderedFolder string `yaml:"rendered_folder"`

	// DefaultsFilename is the reserved default-values file name inside each
	// collection.
	DefaultsFilename string `yaml:"defaults_filename"`

	Identity IdentityConfig `yaml:"identity"`
}

// IdentityConfig selects the identity store.
type IdentityConfig struct {
	// Backend is json or sqlite.
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Load reads the config file at path. A missing file yields the defaults.
// Relative paths in the file are kept relative to the working directory.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *Config {
	return &Config{
		Workspace:        DefaultWorkspace,
		RenderedFolder:   DefaultRenderedFolder,
		DefaultsFilename: collection.DefaultValuesFilename,
		Identity: IdentityConfig{
			Backend: identity.BackendJSON,
			Path:    DefaultIdentityPath,
		},
	}
}

// Validate checks required fields and structural constraints.
func (c *Config) Validate() error {
	if c.Workspace == "" {
		return errors.New("workspace is required")
	}

	switch filepath.Ext(c.Workspace) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("workspace must be a yaml file, got %s", c.Workspace)
	}

	if c.RenderedFolder == "" {
		return errors.New("rendered_folder is required")
	}

	if c.DefaultsFilename == "" || filepath.Base(c.DefaultsFilename) != c.DefaultsFilename {
		return fmt.Errorf("defaults_filename must be a plain file name, got %q", c.DefaultsFilename)
	}

	switch c.Identity.Backend {
	case identity.BackendJSON, identity.BackendSQLite:
	default:
		return fmt.Errorf("identity.backend %q: %w", c.Identity.Backend, ErrUnknownBackend)
	}

	if c.Identity.Path == "" {
		return errors.New("identity.path is required")
	}

	return nil
}

// OpenIdentity opens the configured identity store.
func (c *Config) OpenIdentity() (identity.Store, error) {
	return identity.Open(c.Identity.Backend, c.Identity.Path)
}
