package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dqac/internal/identity"
)

func (a *app) removeCmd() *cobra.Command {
	var (
		collectionsFile string
		forgetID        bool
	)

	cmd := &cobra.Command{
		Use:   "remove <collection> <identifier>",
		Short: "Remove a monitor from a collection's files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			key := c.Name() + "." + args[1]
			if err := c.RemoveMonitor(key); err != nil {
				return err
			}

			if forgetID {
				if err := a.forget(key); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed monitor %s\n", key)

			return nil
		},
	}

	cmd.Flags().StringVar(&collectionsFile, "collections-file", "", "Workspace declaration (default from config)")
	cmd.Flags().BoolVar(&forgetID, "forget-id", false, "Also delete the monitor's id from the identity store")

	return cmd
}

func (a *app) forget(key string) error {
	ids, err := a.openIdentity()
	if err != nil {
		return err
	}
	defer ids.Close()

	err = ids.Delete(key)
	if errors.Is(err, identity.ErrKeyNotFound) {
		a.logger.Info("monitor had no id", zap.String("monitor", key))
		return nil
	}

	return err
}
