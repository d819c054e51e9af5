package collection

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dqac/internal/common"
)

// Create scaffolds a new collection directory under workspaceDir for the
// dotted (or slash-separated) name: the directory itself, an empty
// default-values file and a README. It returns the created directory.
func Create(workspaceDir, name string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name = common.NormalizeName(name)
	if name == "" {
		return "", errors.New("collection name is empty")
	}

	dir := filepath.Join(workspaceDir, common.PathFromName(name))

	_, err := os.Stat(dir)
	switch {
	case err == nil:
		return "", fmt.Errorf("creation of the directory %s failed: %w", dir, fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("creation of the directory %s failed: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creation of the directory %s failed: %w", dir, err)
	}

	if err := os.WriteFile(filepath.Join(dir, o.defaultsFilename), nil, 0o644); err != nil {
		return "", fmt.Errorf("failed to write default values file: %w", err)
	}

	readme := fmt.Sprintf("# %s\n", name)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o644); err != nil {
		return "", fmt.Errorf("failed to write README: %w", err)
	}

	return dir, nil
}
