package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show where generated build files are placed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.recipePath(cmd)
			if err != nil {
				return err
			}

			rec, err := c.app.Inspect(cmd.Context(), path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).Layout(rec))
			return nil
		},
	}
}
