package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [project]",
		Short: "Print the resolved dependency tree of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetFromFlags(cmd)
			if err != nil {
				return err
			}
			if folders, _ := cmd.Flags().GetBool("folders"); folders {
				return c.printSolutionFolders(cmd, projectArg(args), target)
			}
			lines, err := c.app.DependencyTree(projectArg(args), target)
			if err != nil {
				return err
			}
			printLines(cmd, lines)
			return nil
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().Bool("folders", false, "Print the solution folder of each grouped package instead of the tree")
	return cmd
}

func (c *CLI) printSolutionFolders(cmd *cobra.Command, project string, target *domain.ProjectTarget) error {
	folders, err := c.app.SolutionFolders(project, target)
	if err != nil {
		return err
	}
	for _, f := range folders {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Folder, strings.Join(f.Packages, ", "))
	}
	return nil
}
