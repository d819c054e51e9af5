package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqac/internal/collection"
	"dqac/internal/identity"
	"dqac/internal/structure"
	"dqac/internal/values"
)

const defaults = `kind: Monitor
version: 1
name: default name
incident:
  severity: Low
`

func write(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func monitorsFile(identifier string) string {
	return "datasets:\n  - dataset: ds-" + identifier + "\n    monitors:\n      - identifier: " + identifier +
		"\n        parameters:\n          kind: Freshness\n"
}

func TestFolder_EndToEnd(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "collections.yaml"), "collections:\n  - teamA\n")
	write(t, filepath.Join(root, "teamA", collection.DefaultValuesFilename), defaults)
	write(t, filepath.Join(root, "teamA", "monitors.yaml"), monitorsFile("top"))
	write(t, filepath.Join(root, "teamA", "sub", "monitors.yaml"), monitorsFile("nested"))

	m, err := structure.New(filepath.Join(root, "collections.yaml"))
	require.NoError(t, err)

	ids, err := identity.OpenJSON(filepath.Join(root, "database", "database.json"))
	require.NoError(t, err)

	out := filepath.Join(root, "rendered_monitors")
	write(t, filepath.Join(out, "stale.yaml"), "old: true\n")

	sum, err := Folder(out, m.ToRender(), ids)
	require.NoError(t, err)
	assert.Equal(t, Summary{Collections: 2, Monitors: 2}, sum)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)

	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	assert.Equal(t, []string{"teamA.sub.nested.yaml", "teamA.top.yaml"}, files)

	for key, dataset := range map[string]string{"teamA.top": "ds-top", "teamA.sub.nested": "ds-nested"} {
		rendered, err := values.ReadFile(filepath.Join(out, key+".yaml"))
		require.NoError(t, err)

		assert.False(t, rendered.Has("identifier"))
		assert.Equal(t, []string{"kind", "version", "name", "incident", "parameters", "id", "datasets"}, rendered.Keys())

		id, _ := rendered.String("id")
		stored, ok, err := ids.Read(key)
		require.NoError(t, err)
		require.True(t, ok, "no id stored for %s", key)
		assert.Equal(t, stored, id)

		_, err = uuid.Parse(id)
		require.NoError(t, err)

		datasets, _ := rendered.List("datasets")
		require.Len(t, datasets, 1)
		ref, ok := datasets[0].(*values.Map)
		require.True(t, ok)
		got, _ := ref.String("id")
		assert.Equal(t, dataset, got)
	}
}

func TestFolder_IDsAreStableAcrossRenders(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "collections.yaml"), "collections: [teamA]\n")
	write(t, filepath.Join(root, "teamA", collection.DefaultValuesFilename), defaults)
	write(t, filepath.Join(root, "teamA", "monitors.yaml"), monitorsFile("top"))

	m, err := structure.New(filepath.Join(root, "collections.yaml"))
	require.NoError(t, err)

	ids, err := identity.OpenJSON(filepath.Join(root, "database.json"))
	require.NoError(t, err)

	out := filepath.Join(root, "out")

	_, err = Folder(out, m.ToRender(), ids)
	require.NoError(t, err)
	first, err := values.ReadFile(filepath.Join(out, "teamA.top.yaml"))
	require.NoError(t, err)

	_, err = Folder(out, m.ToRender(), ids)
	require.NoError(t, err)
	second, err := values.ReadFile(filepath.Join(out, "teamA.top.yaml"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFolder_NothingToRender(t *testing.T) {
	ids, err := identity.OpenJSON(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out")

	sum, err := Folder(out, nil, ids)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.DirExists(t, out)
}
