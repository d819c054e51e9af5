package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dqac/internal/common"
)

func (a *app) renderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [workspace]",
		Short: "Render the declared collections, one file per monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := a.cfg.Workspace
			if len(args) == 1 {
				workspace = args[0]
			}

			if !common.IsYAML(workspace) {
				return fmt.Errorf("workspace file must be a yaml file, got %s", workspace)
			}

			if out == "" {
				out = a.cfg.RenderedFolder
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rendering monitors from %s...\n", workspace)

			sum, err := a.renderWorkspace(workspace, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s as code from %s!\n",
				plural(sum.Monitors, "monitor"), plural(sum.Collections, "collection"))

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Rendered monitors folder (default from config)")

	return cmd
}
