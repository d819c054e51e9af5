package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqac/internal/values"
)

const freshnessTemplate = `identifier: {{ .identifier }}
name: "[DQAC] Freshness_for_{{ .dataset }}"
parameters:
  kind: Freshness
  timeWindow:
    duration: P1D
    field: creationTimestamp
`

const teamDefaults = `kind: Monitor
version: 1
name: test monitor
incident:
  severity: Low
`

// project lays out a workspace in a temporary directory and returns the
// path of its config file.
func project(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	cfg := "workspace: " + filepath.Join(root, "collections.yaml") + "\n" +
		"rendered_folder: " + filepath.Join(root, "rendered_monitors") + "\n" +
		"identity:\n  backend: json\n  path: " + filepath.Join(root, "database", "database.json") + "\n"

	require.NoError(t, os.WriteFile(filepath.Join(root, "dqac.yaml"), []byte(cfg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "collections.yaml"), []byte("collections: [teamA]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "freshness.tmpl"), []byte(freshnessTemplate), 0o644))

	return root, filepath.Join(root, "dqac.yaml")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCLI_CreateAddRenderRemove(t *testing.T) {
	root, cfg := project(t)

	out, err := run(t, "--config", cfg, "create", "teamA")
	require.NoError(t, err, out)
	require.NoError(t, os.WriteFile(filepath.Join(root, "teamA", "_default_values.yaml"), []byte(teamDefaults), 0o644))

	out, err = run(t, "--config", cfg, "create", "teamA.sub")
	require.NoError(t, err, out)
	assert.DirExists(t, filepath.Join(root, "teamA", "sub"))

	out, err = run(t, "--config", cfg, "add", "teamA.sub",
		"--dataset", "ds1",
		"--template", filepath.Join(root, "freshness.tmpl"),
		"--env", "identifier=orders_freshness",
		"--env", "dataset=ds1",
	)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Successfully added monitor <[DQAC] Freshness_for_ds1> to collection teamA.sub")
	assert.FileExists(t, filepath.Join(root, "teamA", "sub", "ds1.yaml"))

	_, err = run(t, "--config", cfg, "add", "teamA/sub",
		"--dataset", "ds1",
		"--template", filepath.Join(root, "freshness.tmpl"),
		"--env", "identifier=orders_freshness",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--update-monitor")

	out, err = run(t, "--config", cfg, "render")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Successfully rendered 1 monitor as code from 2 collections!")

	rendered, err := values.ReadFile(filepath.Join(root, "rendered_monitors", "teamA.sub.orders_freshness.yaml"))
	require.NoError(t, err)
	assert.False(t, rendered.Has("identifier"))
	assert.True(t, rendered.Has("id"))

	out, err = run(t, "--config", cfg, "remove", "teamA.sub", "orders_freshness", "--forget-id")
	require.NoError(t, err, out)

	out, err = run(t, "--config", cfg, "render")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Successfully rendered 0 monitor as code from 2 collections!")

	_, err = run(t, "--config", cfg, "remove", "teamA.sub", "orders_freshness")
	require.Error(t, err)
}

func TestCLI_RenderRejectsNonYAMLWorkspace(t *testing.T) {
	_, cfg := project(t)

	_, err := run(t, "--config", cfg, "render", "collections.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a yaml file")
}

func TestCLI_AddRequiresFlags(t *testing.T) {
	_, cfg := project(t)

	_, err := run(t, "--config", cfg, "add", "teamA")
	require.Error(t, err)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 monitor", plural(1, "monitor"))
	assert.Equal(t, "0 monitor", plural(0, "monitor"))
	assert.Equal(t, "3 monitors", plural(3, "monitor"))
}
