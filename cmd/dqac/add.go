package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dqac/internal/collection"
	"dqac/internal/template"
)

func (a *app) addCmd() *cobra.Command {
	var (
		dataset         string
		templatePath    string
		env             []string
		collectionsFile string
		filename        string
		update          bool
	)

	cmd := &cobra.Command{
		Use:   "add <collection>",
		Short: "Render a monitor template and add it to a collection",
		Example: `  dqac add teamA.sub --dataset fcc34946-9ef5-438f-9473-99ab692cdac7 \
    --template templates/freshness.yaml.tmpl --env identifier=orders_freshness`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := template.ParseVars(env)
			if err != nil {
				return err
			}

			raw, err := template.Render(templatePath, vars)
			if err != nil {
				return err
			}

			if collectionsFile == "" {
				collectionsFile = a.cfg.Workspace
			}

			m, err := a.loadWorkspace(collectionsFile)
			if err != nil {
				return err
			}

			c, err := m.Collection(args[0])
			if err != nil {
				return err
			}

			mon, err := c.AddMonitor(raw, dataset, collection.AddOptions{
				Filename: filename,
				Replace:  update,
			})
			if err != nil {
				return err
			}

			a.logger.Debug("monitor written", zap.String("monitor", mon.String()), zap.String("file", mon.FilePath()))

			name, _ := raw.String("name")
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully added monitor <%s> to collection %s\n", name, c.Name())

			return nil
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset the monitor belongs to (required)")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Monitor template file (required)")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Template variable as key=value, repeatable")
	cmd.Flags().StringVar(&collectionsFile, "collections-file", "", "Workspace declaration (default from config)")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Monitors file to append to")
	cmd.Flags().BoolVar(&update, "update-monitor", false, "Replace a monitor with the same identifier")

	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
