package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/conspect/conspect/internal/adapters/detector"
	"github.com/conspect/conspect/internal/adapters/tui"
	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/core/ports"
	"github.com/conspect/conspect/internal/ui/render"
)

func (c *CLI) newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate the recipe manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.recipePath(cmd)
			if err != nil {
				return err
			}

			r := renderer(cmd)
			lintErr := c.app.Lint(cmd.Context(), path)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), r.LintResult(path, lintErr))

			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				if lintErr != nil {
					return domain.ErrLintFailed
				}
				return nil
			}

			outputFlag, _ := cmd.Flags().GetString("output")
			mode := detector.ResolveMode(detector.DetectEnvironment(), outputFlag)

			if mode == detector.ModeTUI {
				return c.runWatchTUI(cmd, path)
			}
			return c.runWatchPlain(cmd, r, path)
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-validate whenever the recipe file changes")
	cmd.Flags().String("output", "auto", "Watch output mode: auto, tui, or plain")
	return cmd
}

// runWatchPlain prints one result line per change until interrupted.
func (c *CLI) runWatchPlain(cmd *cobra.Command, r *render.Renderer, path string) error {
	err := c.app.Watch(cmd.Context(), path, func(_ ports.WatchEvent, lintErr error) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), r.LintResult(path, lintErr))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runWatchTUI drives the interactive watch view. The watch loop feeds
// check results into the bubbletea program; quitting the program tears
// down the watch.
func (c *CLI) runWatchTUI(cmd *cobra.Command, path string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := tea.NewProgram(
		tui.NewModel(path),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := c.app.Watch(gctx, path, func(event ports.WatchEvent, lintErr error) {
			program.Send(tui.MsgRecipeChecked{Event: event, Err: lintErr})
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	return g.Wait()
}
