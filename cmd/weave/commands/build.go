package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [project]",
		Short: "Generate the IDE solution of a project and build it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configuration, _ := cmd.Flags().GetString("configuration")
			target, err := targetFromFlags(cmd)
			if err != nil {
				return err
			}
			if prebuilt, _ := cmd.Flags().GetBool("prebuilt"); prebuilt {
				if err := c.app.BuildPrebuilt(cmd.Context(), projectArg(args), target, configuration); err != nil {
					return err
				}
			}
			return c.app.Build(cmd.Context(), projectArg(args), target, configuration)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().StringP("configuration", "c", domain.DefaultConfiguration, "Solution configuration to build")
	cmd.Flags().Bool("prebuilt", false, "Build the prebuilt projects of the resolved packages first")
	return cmd
}
