package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dqac/internal/values"
)

const (
	testDataset = "fcc34946-9ef5-438f-9473-99ab692cdac7"

	testDefaults = `kind: Monitor
version: 1
name: test monitor
description: Monitors made with DQAC for test
incident:
  message: test message incident
  severity: Low
`

	testMonitorsFile = `datasets:
  - dataset: fcc34946-9ef5-438f-9473-99ab692cdac7
    monitors:
      - identifier: test_identifier
        name: "[DQAC] Freshness"
        parameters:
          kind: Freshness
          timeWindow:
            duration: P1D
            field: creationTimestamp
`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newCollectionDir creates dir/<name> holding the default values file and the
// given monitors files.
func newCollectionDir(t *testing.T, defaults string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "teamA")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	if defaults != "" {
		writeFile(t, filepath.Join(dir, DefaultValuesFilename), defaults)
	}

	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
	}

	return dir
}

func parse(t *testing.T, src string) *values.Map {
	t.Helper()

	m, err := values.Parse([]byte(src))
	require.NoError(t, err)

	return m
}

func readFile(t *testing.T, path string) *values.Map {
	t.Helper()

	m, err := values.ReadFile(path)
	require.NoError(t, err)

	return m
}

// identifiers returns the identifiers listed under dataset in a monitors file.
func identifiers(t *testing.T, file *values.Map, dataset string) []string {
	t.Helper()

	ds := datasetEntry(file, dataset)
	require.NotNil(t, ds, "dataset %s not in file", dataset)

	monitors, ok := ds.List("monitors")
	require.True(t, ok)

	out := make([]string, 0, len(monitors))
	for _, m := range monitors {
		id, _ := m.(*values.Map).String("identifier")
		out = append(out, id)
	}

	return out
}
