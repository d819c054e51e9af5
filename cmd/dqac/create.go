package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dqac/internal/collection"
)

func (a *app) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <collection.path>",
		Short: "Create a new collection directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := collection.Create(filepath.Dir(a.cfg.Workspace), args[0],
				collection.WithDefaultsFilename(a.cfg.DefaultsFilename))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully created the collection %s in %s.\n", args[0], dir)

			return nil
		},
	}
}
