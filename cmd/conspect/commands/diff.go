package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old-recipe> <new-recipe>",
		Short: "Compare two recipe revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.app.Diff(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).Diff(d))
			return nil
		},
	}
}
