package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dqac/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "watch [workspace]",
		Short: "Re-render whenever collection files change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := a.cfg.Workspace
			if len(args) == 1 {
				workspace = args[0]
			}

			if out == "" {
				out = a.cfg.RenderedFolder
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rerender := func(context.Context) error {
				sum, err := a.renderWorkspace(workspace, out)
				if err != nil {
					return err
				}

				a.logger.Info("rendered",
					zap.Int("collections", sum.Collections),
					zap.Int("monitors", sum.Monitors),
				)

				return nil
			}

			if err := rerender(ctx); err != nil {
				a.logger.Error("initial render failed", zap.Error(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes, press Ctrl+C to stop.\n", filepath.Dir(workspace))

			return watch.Run(ctx, filepath.Dir(workspace), watch.Options{
				OnChange: rerender,
				Ignore:   []string{out},
				Logger:   a.logger,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Rendered monitors folder (default from config)")

	return cmd
}
