package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [project]",
		Short: "Relink a project whenever its configuration changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Watch(cmd.Context(), projectArg(args))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
