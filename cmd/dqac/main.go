// Package main provides the dqac command line.
//
// dqac turns a tree of YAML collection folders into API-ready monitor
// definitions:
//   - render: load the declared collections and write one file per monitor
//   - add: render a template and append the monitor to a collection
//   - remove: delete a monitor from a collection's files
//   - create: scaffold a new collection directory
//   - watch: re-render whenever collection files change
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dqac/internal/collection"
	"dqac/internal/config"
	"dqac/internal/identity"
	"dqac/internal/render"
	"dqac/internal/structure"
)

type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "dqac",
		Short: "Data quality as code",
		Long: `dqac renders monitors declared in YAML collection folders.

Each collection directory may hold a default-values file whose fields cascade
to the monitors of the collection and of its sub-collections. The workspace
declaration (collections.yaml) lists the collections to render.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultFile, "Project configuration file")

	root.AddCommand(
		a.renderCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.createCmd(),
		a.watchCmd(),
	)

	return root
}

func (a *app) init() error {
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

func (a *app) collectionOptions() []collection.Option {
	return []collection.Option{
		collection.WithLogger(a.logger),
		collection.WithDefaultsFilename(a.cfg.DefaultsFilename),
	}
}

func (a *app) loadWorkspace(workspace string) (*structure.Manager, error) {
	return structure.New(workspace,
		structure.WithLogger(a.logger),
		structure.WithCollectionOptions(a.collectionOptions()...),
	)
}

func (a *app) openIdentity() (identity.Store, error) {
	return a.cfg.OpenIdentity()
}

// renderWorkspace loads workspace and writes the selected collections to out.
func (a *app) renderWorkspace(workspace, out string) (render.Summary, error) {
	m, err := a.loadWorkspace(workspace)
	if err != nil {
		return render.Summary{}, err
	}

	ids, err := a.openIdentity()
	if err != nil {
		return render.Summary{}, err
	}
	defer ids.Close()

	return render.Folder(out, m.ToRender(), ids, render.WithLogger(a.logger))
}

func plural(n int, word string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, word)
	}

	return fmt.Sprintf("%d %s", n, word)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
