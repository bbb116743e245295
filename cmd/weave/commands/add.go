package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/core/domain"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [project] <package>",
		Short: "Add a package to a project",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := domain.PluginTier
			if asset, _ := cmd.Flags().GetBool("asset"); asset {
				tier = domain.AssetTier
			}
			project, name := "", args[0]
			if len(args) == 2 {
				project, name = args[0], args[1]
			}
			return c.app.AddPackage(project, name, tier)
		},
	}
	cmd.Flags().Bool("asset", false, "Add the package to assetPackages instead of pluginPackages")
	return cmd
}
