package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the parsed recipe manifest",
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

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).Recipe(rec))
			return nil
		},
	}
}
