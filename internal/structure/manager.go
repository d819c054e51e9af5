package structure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"dqac/internal/check"
	"dqac/internal/collection"
	"dqac/internal/common"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// ErrCollectionNotFound is returned by Manager.Collection for unknown names.
var ErrCollectionNotFound = errors.New("collection not found")

// Option configures a Manager.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	collections []collection.Option
}

// WithLogger sets the logger used by the manager and every collection it
// loads.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCollectionOptions passes options to every loaded collection.
func WithCollectionOptions(opts ...collection.Option) Option {
	return func(o *options) {
		o.collections = append(o.collections, opts...)
	}
}

// Manager holds the collection tree of one workspace.
type Manager struct {
	workspaceFile string
	dir           string
	declared      []string
	roots         []*collection.Collection
	collections   []*collection.Collection
	toRender      []*collection.Collection
	opts          options
}

// New reads the workspace declaration at workspaceFile and loads the tree.
func New(workspaceFile string, opts ...Option) (*Manager, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		workspaceFile: workspaceFile,
		dir:           filepath.Dir(workspaceFile),
		opts:          o,
	}

	declared, err := readDeclaration(workspaceFile)
	if err != nil {
		return nil, err
	}
	m.declared = declared

	if err := m.load(); err != nil {
		return nil, err
	}

	m.toRender = m.selectToRender()

	o.logger.Info("workspace loaded",
		zap.String("workspace", workspaceFile),
		zap.Int("collections", len(m.collections)),
		zap.Int("to_render", len(m.toRender)),
	)

	return m, nil
}

func readDeclaration(path string) ([]string, error) {
	file, err := values.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := check.Structure(file, schema.WorkspaceFile, check.File(path)); err != nil {
		return nil, err
	}

	list, _ := file.List(schema.CollectionsKey)

	declared := make([]string, 0, len(list))
	for _, item := range list {
		declared = append(declared, common.NormalizeName(item.(string)))
	}

	return declared, nil
}

func (m *Manager) collectionOptions() []collection.Option {
	return append([]collection.Option{collection.WithLogger(m.opts.logger)}, m.opts.collections...)
}

func (m *Manager) load() error {
	var roots []string

	for _, name := range m.declared {
		if first, ok := common.First(common.SplitName(name)); ok {
			roots = append(roots, first)
		}
	}

	for _, name := range common.Unique(roots) {
		root, err := collection.New(filepath.Join(m.dir, name), name, nil, m.collectionOptions()...)
		if err != nil {
			return err
		}

		m.roots = append(m.roots, root)
		m.collections = append(m.collections, root)

		if err := m.discover(root); err != nil {
			return err
		}
	}

	return nil
}

// discover loads every sub-directory of c as a child collection, depth
// first in lexical order.
func (m *Manager) discover(c *collection.Collection) error {
	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		return fmt.Errorf("failed to list collection %s: %w", c.Name(), err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		child, err := c.NewChild(e.Name())
		if err != nil {
			return err
		}

		m.collections = append(m.collections, child)

		if err := m.discover(child); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) selectToRender() []*collection.Collection {
	prefixes := make([][]string, len(m.declared))
	for i, name := range m.declared {
		prefixes[i] = common.SplitName(name)
	}

	var out []*collection.Collection

	for _, c := range m.collections {
		parts := common.SplitName(c.Name())

		if slices.ContainsFunc(prefixes, func(p []string) bool {
			return common.HasPrefix(parts, p)
		}) {
			out = append(out, c)
		}
	}

	return out
}

// WorkspaceDir returns the directory holding the workspace declaration.
func (m *Manager) WorkspaceDir() string { return m.dir }

// Declared returns the declared collection paths.
func (m *Manager) Declared() []string { return slices.Clone(m.declared) }

// Roots returns the root collections.
func (m *Manager) Roots() []*collection.Collection { return slices.Clone(m.roots) }

// Collections returns every loaded collection: each root followed by its
// descendants.
func (m *Manager) Collections() []*collection.Collection { return slices.Clone(m.collections) }

// ToRender returns the collections selected for rendering.
func (m *Manager) ToRender() []*collection.Collection { return slices.Clone(m.toRender) }

// Collection returns the loaded collection named name ("a.b" or "a/b").
func (m *Manager) Collection(name string) (*collection.Collection, error) {
	name = common.NormalizeName(name)

	for _, c := range m.collections {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("could not find collection %s, make sure the collection exists and is declared in %s: %w",
		name, m.workspaceFile, ErrCollectionNotFound)
}
