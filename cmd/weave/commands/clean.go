package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [project]",
		Short: "Remove the links, platform directories and solution files of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				return c.app.CleanAll(cmd.Context())
			}
			return c.app.Clean(cmd.Context(), projectArg(args))
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Clean every project")

	return cmd
}
