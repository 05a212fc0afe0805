package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Compute the package fingerprint for the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.recipePath(cmd)
			if err != nil {
				return err
			}

			sets, _ := cmd.Flags().GetStringArray("set")
			overrides, err := parseOverrides(sets)
			if err != nil {
				return err
			}

			id, values, err := c.app.ID(cmd.Context(), path, overrides)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderer(cmd).PackageID(values, id))
			return nil
		},
	}
	cmd.Flags().StringArrayP("set", "s", nil, "Override an axis value, e.g. --set build_type=Debug (repeatable)")
	return cmd
}

// parseOverrides splits repeated --set axis=value flags into a map.
func parseOverrides(sets []string) (map[string]string, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(sets))
	for _, entry := range sets {
		axis, value, found := strings.Cut(entry, "=")
		if !found || axis == "" || value == "" {
			return nil, zerr.With(zerr.New("invalid --set value, expected axis=value"), "set", entry)
		}
		overrides[axis] = value
	}

	return overrides, nil
}
