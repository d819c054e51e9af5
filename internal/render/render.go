// Package render writes monitors in their external API shape, one YAML file
// per monitor named after its identity.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"dqac/internal/check"
	"dqac/internal/collection"
	"dqac/internal/identity"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// Summary counts what a render wrote.
type Summary struct {
	Collections int
	Monitors    int
}

// Option configures Folder.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Folder removes and recreates dir, then writes every monitor of collections
// to "<dir>/<identity>.yaml". Ids come from ids, added when missing. Files
// written before a failure are left in place.
func Folder(dir string, collections []*collection.Collection, ids identity.Store, opts ...Option) (Summary, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.RemoveAll(dir); err != nil {
		return Summary{}, fmt.Errorf("failed to clear %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var sum Summary

	for _, c := range collections {
		o.logger.Info("rendering collection", zap.String("collection", c.Name()))

		for _, m := range c.Monitors() {
			if err := Monitor(dir, m, ids); err != nil {
				return sum, err
			}

			o.logger.Debug("monitor rendered",
				zap.String("monitor", m.String()),
				zap.String("dataset", m.Dataset()),
			)

			sum.Monitors++
		}

		sum.Collections++
	}

	return sum, nil
}

// Monitor writes one monitor to "<dir>/<identity>.yaml".
func Monitor(dir string, m *collection.Monitor, ids identity.Store) error {
	fields, err := m.APIFields(ids)
	if err != nil {
		return err
	}

	if err := check.Structure(fields, schema.APIMonitor); err != nil {
		return fmt.Errorf("rendered monitor %s: %w", m, err)
	}

	return values.WriteFile(filepath.Join(dir, m.String()+".yaml"), fields)
}
