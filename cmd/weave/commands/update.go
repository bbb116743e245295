package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project]",
		Short: "Resolve packages and relink a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				return c.app.UpdateAll(cmd.Context())
			}
			target, err := targetFromFlags(cmd)
			if err != nil {
				return err
			}
			return c.app.Update(cmd.Context(), projectArg(args), target)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().BoolP("all", "a", false, "Update every configured target of every project")
	return cmd
}
