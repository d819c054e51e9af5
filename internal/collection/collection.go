package collection

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"dqac/internal/check"
	"dqac/internal/common"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// Collection is a directory of monitors files.
type Collection struct {
	name     string
	dir      string
	defaults *values.Map
	monitors []*Monitor
	children []*Collection
	opts     options
}

// New loads the collection rooted at dir. name is its dotted name relative to
// the workspace. parentDefaults are the parent's effective defaults, nil for
// a root collection.
func New(dir, name string, parentDefaults *values.Map, opts ...Option) (*Collection, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collection{
		name: name,
		dir:  dir,
		opts: o,
	}

	defaults, err := c.loadDefaults(parentDefaults)
	if err != nil {
		return nil, err
	}
	c.defaults = defaults

	if err := c.loadMonitors(); err != nil {
		return nil, err
	}

	if err := c.checkUnique(); err != nil {
		return nil, err
	}

	o.logger.Debug("collection loaded",
		zap.String("collection", name),
		zap.String("dir", dir),
		zap.Int("monitors", len(c.monitors)),
	)

	return c, nil
}

// NewChild loads the sub-directory dirName as a child collection inheriting
// c's effective defaults, and records it among c's children.
func (c *Collection) NewChild(dirName string) (*Collection, error) {
	name := common.NameFromPath(filepath.Join(common.PathFromName(c.name), dirName))

	child, err := New(filepath.Join(c.dir, dirName), name, c.defaults, c.optionList()...)
	if err != nil {
		return nil, err
	}

	c.children = append(c.children, child)

	return child, nil
}

func (c *Collection) optionList() []Option {
	return []Option{
		WithLogger(c.opts.logger),
		WithDefaultsFilename(c.opts.defaultsFilename),
	}
}

// Name returns the dotted collection name.
func (c *Collection) Name() string { return c.name }

// Dir returns the collection directory.
func (c *Collection) Dir() string { return c.dir }

// String returns the collection name.
func (c *Collection) String() string { return c.name }

// Defaults returns a copy of the effective default values.
func (c *Collection) Defaults() *values.Map { return c.defaults.Clone() }

// Monitors returns the collection's monitors in file order.
func (c *Collection) Monitors() []*Monitor { return slices.Clone(c.monitors) }

// Children returns the sub-collections loaded through NewChild.
func (c *Collection) Children() []*Collection { return slices.Clone(c.children) }

// Len returns the number of monitors.
func (c *Collection) Len() int { return len(c.monitors) }

// Monitor returns the monitor with the given identity.
func (c *Collection) Monitor(identity string) (*Monitor, bool) {
	i := c.indexOf(identity)
	if i < 0 {
		return nil, false
	}

	return c.monitors[i], true
}

func (c *Collection) indexOf(identity string) int {
	return slices.IndexFunc(c.monitors, func(m *Monitor) bool {
		return m.String() == identity
	})
}

func (c *Collection) loadDefaults(parent *values.Map) (*values.Map, error) {
	path := filepath.Join(c.dir, c.opts.defaultsFilename)

	local, err := values.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		local = values.New()
	case err != nil:
		return nil, err
	default:
		if err := check.Structure(local, schema.DefaultValuesFile, check.File(path)); err != nil {
			return nil, err
		}
	}

	return values.Merge(parent, local), nil
}

// monitorFiles lists the monitors files of the collection in lexical order.
func (c *Collection) monitorFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", c.name, err)
	}

	var files []string

	for _, e := range entries {
		if !e.Type().IsRegular() || !common.IsYAML(e.Name()) || e.Name() == c.opts.defaultsFilename {
			continue
		}

		files = append(files, e.Name())
	}

	return files, nil
}

func (c *Collection) loadMonitors() error {
	names, err := c.monitorFiles()
	if err != nil {
		return err
	}

	files := make([]*values.Map, len(names))

	for i, name := range names {
		path := filepath.Join(c.dir, name)

		file, err := values.ReadFile(path)
		if err != nil {
			return err
		}

		if err := check.Structure(file, schema.MonitorsFile, check.File(path)); err != nil {
			return err
		}

		files[i] = file
	}

	for i, file := range files {
		path := filepath.Join(c.dir, names[i])

		for dataset, raw := range entries(file) {
			m, err := c.build(raw, dataset, path)
			if err != nil {
				return err
			}

			c.monitors = append(c.monitors, m)
		}
	}

	return nil
}

// build merges raw on top of the effective defaults and validates the result.
func (c *Collection) build(raw any, dataset, path string) (*Monitor, error) {
	fields, ok := raw.(*values.Map)
	if !ok {
		return nil, check.Structure(raw, schema.CollectionMonitor, check.File(path))
	}

	return NewMonitor(values.Merge(c.defaults, fields), c.name, dataset, path)
}

func (c *Collection) checkUnique() error {
	seen := make(map[string]struct{}, len(c.monitors))

	for _, m := range c.monitors {
		id := m.String()
		if _, ok := seen[id]; ok {
			return &DuplicateMonitorError{Monitor: id, Collection: c.name}
		}

		seen[id] = struct{}{}
	}

	return nil
}
