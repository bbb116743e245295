package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <project>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settingsFrom, _ := cmd.Flags().GetString("settings-from")
			roots, _ := cmd.Flags().GetStringSlice("package-root")

			target, err := targetFromFlags(cmd)
			if err != nil {
				return err
			}

			return c.app.Init(cmd.Context(), args[0], app.InitOptions{
				SettingsFrom: settingsFrom,
				PackageRoots: roots,
				Target:       target,
			})
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().String("settings-from", "", "Share the engine settings of another project")
	cmd.Flags().StringSlice("package-root", nil, "Package search root written to the new config (repeatable)")
	return cmd
}
