package collection

import (
	"fmt"

	"dqac/internal/check"
	"dqac/internal/identity"
	"dqac/internal/schema"
	"dqac/internal/values"
)

// Monitor is a merged and validated monitor owned by a collection.
type Monitor struct {
	fields     *values.Map
	collection string
	dataset    string
	filePath   string
}

// NewMonitor validates fields against the monitor shape. filePath, when not
// empty, is used for error context.
func NewMonitor(fields *values.Map, collection, dataset, filePath string) (*Monitor, error) {
	if err := check.Structure(fields, schema.CollectionMonitor, check.File(filePath)); err != nil {
		return nil, err
	}

	return &Monitor{
		fields:     fields,
		collection: collection,
		dataset:    dataset,
		filePath:   filePath,
	}, nil
}

// Identifier returns the monitor's identifier field.
func (m *Monitor) Identifier() string {
	id, _ := m.fields.String(schema.IdentifierKey)
	return id
}

// Collection returns the owning collection's name.
func (m *Monitor) Collection() string { return m.collection }

// Dataset returns the dataset the monitor belongs to.
func (m *Monitor) Dataset() string { return m.dataset }

// FilePath returns the file the monitor was read from or written to.
func (m *Monitor) FilePath() string { return m.filePath }

// Fields returns a copy of the merged monitor fields.
func (m *Monitor) Fields() *values.Map { return m.fields.Clone() }

// String returns the monitor identity, "<collection>.<identifier>".
func (m *Monitor) String() string {
	return m.collection + "." + m.Identifier()
}

// APIFields returns the monitor in the external API shape: the identifier
// field removed, an id assigned through ids and the dataset rewritten as
// [{id: <dataset>}].
func (m *Monitor) APIFields(ids identity.Store) (*values.Map, error) {
	id, _, err := identity.Ensure(ids, m.String())
	if err != nil {
		return nil, fmt.Errorf("failed to assign id to monitor %s: %w", m, err)
	}

	out := m.fields.Clone()
	out.Set(schema.IDKey, id)
	out.Delete(schema.IdentifierKey)

	ref := values.New()
	ref.Set(schema.IDKey, m.dataset)
	out.Set(schema.DatasetsKey, []any{ref})

	return out, nil
}
