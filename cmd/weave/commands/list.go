package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, packages or targets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "List every project in the projects directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := c.app.ListProjects()
			if err != nil {
				return err
			}
			for _, p := range projects {
				line := p.Name
				if p.Alias != "" {
					line += fmt.Sprintf(" (%s)", p.Alias)
				}
				if p.Default {
					line += " (default)"
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "packages [project]",
		Short: "List every package available to a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.app.ListPackages(projectArg(args))
			if err != nil {
				return err
			}
			printLines(cmd, names)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "targets [project]",
		Short: "List the targets of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := c.app.ListTargets(projectArg(args))
			if err != nil {
				return err
			}
			for _, t := range targets {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.FolderName())
			}
			return nil
		},
	})

	return cmd
}

func printLines(cmd *cobra.Command, lines []string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
}
