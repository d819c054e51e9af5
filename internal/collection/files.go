package collection

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"dqac/internal/check"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// AddOptions control AddMonitor.
type AddOptions struct {
	// Filename is the monitors file to append to. When empty, the file
	// already holding the dataset is used, or "<dataset>.yaml" is created.
	Filename string
	// Replace allows replacing a monitor with the same identity.
	Replace bool
}

// AddMonitor validates raw merged with the collection defaults, then appends
// raw (unmerged) to the dataset's monitor list in the backing file.
func (c *Collection) AddMonitor(raw *values.Map, dataset string, opts AddOptions) (*Monitor, error) {
	candidate, err := c.build(raw, dataset, "")
	if err != nil {
		return nil, err
	}

	identity := candidate.String()

	if c.indexOf(identity) >= 0 {
		if !opts.Replace {
			return nil, &DuplicateMonitorError{Monitor: identity, Collection: c.name, Flag: UpdateFlag}
		}

		if err := c.RemoveMonitor(identity); err != nil {
			return nil, err
		}
	}

	path, err := c.persist(raw, dataset, opts.Filename)
	if err != nil {
		return nil, err
	}

	// Only monitors that reached disk are tracked in memory.
	candidate.filePath = path
	c.monitors = append(c.monitors, candidate)

	c.opts.logger.Info("monitor added",
		zap.String("monitor", identity),
		zap.String("file", path),
	)

	return candidate, nil
}

// persist appends raw to the dataset's list in filename, or in the file
// chosen by fileForDataset when filename is empty, and returns its path.
func (c *Collection) persist(raw *values.Map, dataset, filename string) (string, error) {
	var err error
	if filename == "" {
		filename, err = c.fileForDataset(dataset)
	} else {
		err = c.ensureFile(filename)
	}

	if err != nil {
		return "", err
	}

	path := filepath.Join(c.dir, filename)
	if err := c.appendToFile(path, raw, dataset); err != nil {
		return "", err
	}

	return path, nil
}

// RemoveMonitor deletes the first entry whose identity matches from the
// collection's files and drops it from the loaded monitors.
func (c *Collection) RemoveMonitor(identity string) error {
	names, err := c.monitorFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		path := filepath.Join(c.dir, name)

		file, err := values.ReadFile(path)
		if err != nil {
			return err
		}

		if !c.removeFromFile(file, identity) {
			continue
		}

		if err := values.WriteFile(path, file); err != nil {
			return err
		}

		if i := c.indexOf(identity); i >= 0 {
			c.monitors = slices.Delete(c.monitors, i, i+1)
		}

		c.opts.logger.Info("monitor removed",
			zap.String("monitor", identity),
			zap.String("file", path),
		)

		return nil
	}

	return fmt.Errorf("monitor %s is not in collection %s: %w", identity, c.name, ErrMonitorNotFound)
}

func (c *Collection) removeFromFile(file *values.Map, identity string) bool {
	datasets, _ := file.List(schema.DatasetsKey)

	for _, item := range datasets {
		ds, ok := item.(*values.Map)
		if !ok {
			continue
		}

		monitors, _ := ds.List(schema.MonitorsKey)

		for i, m := range monitors {
			fields, ok := m.(*values.Map)
			if !ok {
				continue
			}

			id, _ := fields.String(schema.IdentifierKey)
			if c.name+"."+id == identity {
				ds.Set(schema.MonitorsKey, slices.Delete(monitors, i, i+1))
				return true
			}
		}
	}

	return false
}

// fileForDataset returns the monitors file holding dataset, creating
// "<dataset>.yaml" seeded with an empty monitor list when none does.
func (c *Collection) fileForDataset(dataset string) (string, error) {
	names, err := c.monitorFiles()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		file, err := values.ReadFile(filepath.Join(c.dir, name))
		if err != nil {
			return "", err
		}

		if datasetEntry(file, dataset) != nil {
			return name, nil
		}
	}

	name := dataset + ".yaml"
	path := filepath.Join(c.dir, name)

	if _, err := os.Stat(path); err == nil {
		return name, nil
	}

	seed := values.New()
	seed.Set(schema.DatasetsKey, []any{newDatasetEntry(dataset)})

	if err := values.WriteFile(path, seed); err != nil {
		return "", err
	}

	c.opts.logger.Info("created monitors file for dataset",
		zap.String("dataset", dataset),
		zap.String("file", path),
	)

	return name, nil
}

// ensureFile creates filename with an empty datasets list if it is missing.
func (c *Collection) ensureFile(filename string) error {
	path := filepath.Join(c.dir, filename)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	seed := values.New()
	seed.Set(schema.DatasetsKey, []any{})

	if err := values.WriteFile(path, seed); err != nil {
		return err
	}

	c.opts.logger.Info("created monitors file", zap.String("file", path))

	return nil
}

func (c *Collection) appendToFile(path string, raw *values.Map, dataset string) error {
	file, err := values.ReadFile(path)
	if err != nil {
		return err
	}

	if err := check.Structure(file, schema.MonitorsFile, check.File(path)); err != nil {
		return err
	}

	ds := datasetEntry(file, dataset)
	if ds == nil {
		ds = newDatasetEntry(dataset)
		datasets, _ := file.List(schema.DatasetsKey)
		file.Set(schema.DatasetsKey, append(datasets, ds))
	}

	monitors, _ := ds.List(schema.MonitorsKey)
	ds.Set(schema.MonitorsKey, append(monitors, raw.Clone()))

	return values.WriteFile(path, file)
}

func newDatasetEntry(dataset string) *values.Map {
	ds := values.New()
	ds.Set(schema.DatasetKey, dataset)
	ds.Set(schema.MonitorsKey, []any{})

	return ds
}

func datasetEntry(file *values.Map, dataset string) *values.Map {
	datasets, _ := file.List(schema.DatasetsKey)

	for _, item := range datasets {
		ds, ok := item.(*values.Map)
		if !ok {
			continue
		}

		if id, _ := ds.String(schema.DatasetKey); id == dataset {
			return ds
		}
	}

	return nil
}

// entries yields (dataset, raw monitor) pairs of a validated monitors file.
func entries(file *values.Map) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		datasets, _ := file.List(schema.DatasetsKey)

		for _, item := range datasets {
			ds, ok := item.(*values.Map)
			if !ok {
				continue
			}

			dataset, _ := ds.String(schema.DatasetKey)
			monitors, _ := ds.List(schema.MonitorsKey)

			for _, m := range monitors {
				if !yield(dataset, m) {
					return
				}
			}
		}
	}
}
